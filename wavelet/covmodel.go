package wavelet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validateScales checks a scale list: non-empty, strictly increasing,
// positive integers.
func validateScales(sclrng []int) error {
	if len(sclrng) == 0 {
		return fmt.Errorf("%w: empty scale list", ErrInvalidParameter)
	}
	for i, a := range sclrng {
		if a <= 0 {
			return fmt.Errorf("%w: scale %d is not positive", ErrInvalidParameter, a)
		}
		if i > 0 && sclrng[i-1] >= a {
			return fmt.Errorf("%w: scales must be strictly increasing", ErrInvalidParameter)
		}
	}
	return nil
}

// CovarianceModel builds the full covariance matrix of B-spline DCWT
// coefficients of unit-volatility fBm across lags+1 consecutive time lags:
// a square matrix of dimension J*(lags+1), J = len(sclrng), laid out in lag
// blocks of J scales each. Block (p,q) holds the cross-scale covariances at
// time offset p-q; the matrix is built blockwise for the lower triangle and
// symmetrized by construction.
func CovarianceModel(sclrng []int, v int, h float64, lags int, mode Mode) (*mat.SymDense, error) {
	if err := validateScales(sclrng); err != nil {
		return nil, err
	}
	if v < 1 {
		return nil, fmt.Errorf("%w: vanishing-moment order %d", ErrInvalidParameter, v)
	}
	if h <= 0 || h >= 1 {
		return nil, fmt.Errorf("%w: hurst exponent %v outside (0,1)", ErrInvalidParameter, h)
	}
	if lags < 0 {
		return nil, fmt.Errorf("%w: negative lag count %d", ErrInvalidParameter, lags)
	}

	j := len(sclrng)
	dim := j * (lags + 1)
	out := mat.NewSymDense(dim, nil)

	for p := 0; p <= lags; p++ {
		for q := 0; q <= p; q++ {
			for ri, ai := range sclrng {
				for ci, aj := range sclrng {
					row := p*j + ri
					col := q*j + ci
					if col > row {
						continue
					}
					prod := float64(ai) * float64(aj)
					tau := float64(p-q) / math.Sqrt(prod)
					c, err := C1rho(tau, float64(ai)/float64(aj), h, v, mode)
					if err != nil {
						return nil, err
					}
					out.SetSym(row, col, math.Pow(prod, h+0.5)*c)
				}
			}
		}
	}
	return out, nil
}

// StackLags reshapes a J x n coefficient matrix into the stacked observation
// matrix of the full wavelet MLE: each column t holds the coefficients of
// lags+1 consecutive time positions, J scales per lag block, giving a
// J*(lags+1) x (n-lags) matrix.
func StackLags(w *mat.Dense, lags int) (*mat.Dense, error) {
	j, n := w.Dims()
	if lags < 0 {
		return nil, fmt.Errorf("%w: negative lag count %d", ErrInvalidParameter, lags)
	}
	cols := n - lags
	if cols < 1 {
		return nil, fmt.Errorf("%w: %d coefficient columns cannot cover %d lags",
			ErrDimensionMismatch, n, lags)
	}
	out := mat.NewDense(j*(lags+1), cols, nil)
	for t := 0; t < cols; t++ {
		for p := 0; p <= lags; p++ {
			for s := 0; s < j; s++ {
				out.Set(p*j+s, t, w.At(s, t+p))
			}
		}
	}
	return out, nil
}
