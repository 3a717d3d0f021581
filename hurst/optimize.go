package hurst

import (
	"context"
	"math"
)

// Optimizer selects the 1-D minimization driver used by the profiled fits.
type Optimizer int

const (
	// OptimizerBounded is a derivative-free golden-section search on the
	// bounded interval. Preferred: robust to non-smooth objectives.
	OptimizerBounded Optimizer = iota
	// OptimizerGridScan evaluates the objective on a fixed grid and takes
	// the best point. Fallback and verification mode.
	OptimizerGridScan
	// OptimizerNelderMead is the 2-D simplex search of the joint fit. It is
	// never selected through Config; FitFGnJoint reports it in its trace.
	OptimizerNelderMead
)

// String returns the name of the optimizer.
func (o Optimizer) String() string {
	switch o {
	case OptimizerBounded:
		return "bounded"
	case OptimizerGridScan:
		return "grid-scan"
	case OptimizerNelderMead:
		return "nelder-mead"
	default:
		return "unknown"
	}
}

// Trace records the state of a 1-D minimization: the best point and value
// found, the work done, and whether the driver converged. A cancellation is
// recorded in Err; the best state found so far is still valid.
type Trace struct {
	Method      Optimizer
	X           float64
	F           float64
	Iterations  int
	Evaluations int
	Converged   bool
	Err         error
}

// invphi is the inverse golden ratio.
var invphi = (math.Sqrt(5) - 1) / 2

// minimizeBounded runs a golden-section search for the minimum of f on
// [lo, hi], stopping when the bracket is below tol or after maxIter
// iterations. The context is checked between iterations.
func minimizeBounded(ctx context.Context, f func(float64) float64, lo, hi, tol float64, maxIter int) *Trace {
	tr := &Trace{Method: OptimizerBounded}

	a, b := lo, hi
	c := b - invphi*(b-a)
	d := a + invphi*(b-a)
	fc, fd := f(c), f(d)
	tr.Evaluations = 2

	for i := 0; i < maxIter; i++ {
		if err := ctx.Err(); err != nil {
			tr.Err = err
			break
		}
		if b-a <= tol {
			tr.Converged = true
			break
		}
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - invphi*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + invphi*(b-a)
			fd = f(d)
		}
		tr.Iterations++
		tr.Evaluations++
	}

	if fc < fd {
		tr.X, tr.F = c, fc
	} else {
		tr.X, tr.F = d, fd
	}
	return tr
}

// minimizeGrid scans f on the grid lo, lo+step, ..., hi and returns the best
// point. The context is checked between evaluations.
func minimizeGrid(ctx context.Context, f func(float64) float64, lo, hi, step float64) *Trace {
	tr := &Trace{Method: OptimizerGridScan, X: lo, F: math.Inf(1)}
	for x := lo; x <= hi+1e-15; x += step {
		if err := ctx.Err(); err != nil {
			tr.Err = err
			return tr
		}
		v := f(x)
		tr.Evaluations++
		tr.Iterations++
		if v < tr.F {
			tr.X, tr.F = x, v
		}
	}
	tr.Converged = true
	return tr
}

// logit transform helpers for the 2-D boxed search: the box is mapped to the
// whole plane so an unconstrained minimizer can be used.

func boxToPlane(x, lo, hi float64) float64 {
	u := (x - lo) / (hi - lo)
	return math.Log(u / (1 - u))
}

func planeToBox(z, lo, hi float64) float64 {
	u := 1 / (1 + math.Exp(-z))
	return lo + u*(hi-lo)
}
