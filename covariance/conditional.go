package covariance

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gofractal/process"
	"github.com/sartorproj/gofractal/timegrid"
)

// pinvRcond is the relative singular-value cutoff of the pseudo-inverse used
// in Gaussian conditioning.
const pinvRcond = 1e-12

// Conditional holds the result of Gaussian conditioning: the conditional
// mean and covariance of the process on the target grid given observed
// values on the observation grid, and the gain matrix mapping observations
// to the conditional mean.
type Conditional struct {
	Mean []float64
	Cov  *mat.Dense
	Gain *mat.Dense
}

// Condition computes the conditional law of a zero-mean Gaussian process on
// the target grid given its observed values on the observation grid:
//
//	mean = Sxy Syy^+ y
//	cov  = Sxx - Sxy Syy^+ Sxy'
//
// The observation covariance is inverted through an SVD pseudo-inverse
// rather than a direct solve, trading exactness for robustness when Syy is
// near singular.
func Condition(p process.Process, target, obs timegrid.Grid, y []float64) (*Conditional, error) {
	if len(y) != obs.Len() {
		return nil, fmt.Errorf("%w: %d observed values on a grid of %d points",
			ErrDimensionMismatch, len(y), obs.Len())
	}

	sxx, err := Matrix(p, target)
	if err != nil {
		return nil, err
	}
	syy, err := Matrix(p, obs)
	if err != nil {
		return nil, err
	}
	sxy, err := CrossMatrix(p, target, obs)
	if err != nil {
		return nil, err
	}

	inv, err := pseudoInverse(syy, pinvRcond)
	if err != nil {
		return nil, err
	}

	nt, no := target.Len(), obs.Len()
	gain := mat.NewDense(nt, no, nil)
	gain.Mul(sxy, inv)

	mean := mat.NewVecDense(nt, nil)
	mean.MulVec(gain, mat.NewVecDense(no, y))

	cov := mat.NewDense(nt, nt, nil)
	cov.Mul(gain, sxy.T())
	cov.Sub(sxx, cov)

	out := make([]float64, nt)
	copy(out, mean.RawVector().Data)
	return &Conditional{Mean: out, Cov: cov, Gain: gain}, nil
}

// pseudoInverse computes the Moore-Penrose pseudo-inverse of a, discarding
// singular values below rcond times the largest one.
func pseudoInverse(a mat.Matrix, rcond float64) (*mat.Dense, error) {
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, fmt.Errorf("covariance: SVD factorization failed")
	}
	s := svd.Values(nil)

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	cut := 0.0
	if len(s) > 0 {
		cut = rcond * s[0]
	}
	k := len(s)
	sinv := mat.NewDense(k, k, nil)
	for i, sv := range s {
		if sv > cut {
			sinv.Set(i, i, 1/sv)
		}
	}

	// V * S^+ * U'
	var tmp mat.Dense
	tmp.Mul(sinv, u.T())
	r, c := a.Dims()
	out := mat.NewDense(c, r, nil)
	out.Mul(&v, &tmp)
	return out, nil
}
