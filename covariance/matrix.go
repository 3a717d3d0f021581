package covariance

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gofractal/process"
	"github.com/sartorproj/gofractal/timegrid"
)

var (
	// ErrEmptyGrid indicates an operation received a grid with no points.
	ErrEmptyGrid = errors.New("covariance: empty grid")

	// ErrDimensionMismatch indicates inputs with incompatible shapes.
	ErrDimensionMismatch = errors.New("covariance: dimension mismatch")

	// ErrIrregularGrid indicates an operation that requires a regular grid
	// received an irregular one.
	ErrIrregularGrid = errors.New("covariance: grid is not regular")
)

// lagCovariance returns the lag autocovariance function of a process that
// behaves as stationary, or false when the capability is absent.
func lagCovariance(p process.Process) (func(tau float64) (float64, error), bool) {
	if !process.BehavesAsStationary(p) {
		return nil, false
	}
	sp, ok := p.(process.Stationary)
	if !ok {
		return nil, false
	}
	return sp.AutocovLag, true
}

// Sequence computes the autocovariance sequence gamma(0), gamma(step), ...,
// gamma((n-1)*step) of a stationary-behaving process. Returns
// process.ErrNotImplemented when p does not behave as stationary.
func Sequence(p process.Process, n int, step float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: sequence length %d", ErrDimensionMismatch, n)
	}
	lag, ok := lagCovariance(p)
	if !ok {
		return nil, fmt.Errorf("%w: lag autocovariance requires a stationary-behaving process",
			process.ErrNotImplemented)
	}
	seq := make([]float64, n)
	for k := range seq {
		c, err := lag(float64(k) * step)
		if err != nil {
			return nil, err
		}
		seq[k] = c
	}
	return seq, nil
}

// Matrix builds the symmetric autocovariance matrix of p on grid g.
//
// For a stationary-behaving process on a verified-regular grid the matrix is
// Toeplitz: it is expanded from the length-N autocovariance sequence with
// O(N) process evaluations. Otherwise the lower triangle is filled by
// pairwise two-point evaluations and mirrored. Irregular grids always take
// the dense pairwise path regardless of stationarity.
func Matrix(p process.Process, g timegrid.Grid) (*mat.SymDense, error) {
	n := g.Len()
	if n == 0 {
		return nil, ErrEmptyGrid
	}

	regular := g.IsRegular()
	if lag, ok := lagCovariance(p); ok && regular {
		step := math.Abs(g.Step())
		seq := make([]float64, n)
		for k := range seq {
			c, err := lag(float64(k) * step)
			if err != nil {
				return nil, err
			}
			seq[k] = c
		}
		out := mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			for j := 0; j <= i; j++ {
				out.SetSym(i, j, seq[i-j])
			}
		}
		return out, nil
	}

	out := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			c, err := p.Autocov(g[i], g[j])
			if err != nil {
				return nil, err
			}
			out.SetSym(i, j, c)
		}
	}
	return out, nil
}

// CrossMatrix builds the rectangular cross-covariance matrix
// C[i][j] = Cov(X(g1[i]), X(g2[j])). No symmetry is exploited.
func CrossMatrix(p process.Process, g1, g2 timegrid.Grid) (*mat.Dense, error) {
	if g1.Len() == 0 || g2.Len() == 0 {
		return nil, ErrEmptyGrid
	}
	out := mat.NewDense(g1.Len(), g2.Len(), nil)
	for i := 0; i < g1.Len(); i++ {
		for j := 0; j < g2.Len(); j++ {
			c, err := p.Autocov(g1[i], g2[j])
			if err != nil {
				return nil, err
			}
			out.Set(i, j, c)
		}
	}
	return out, nil
}
