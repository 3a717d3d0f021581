package hurst

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/sartorproj/gofractal/covariance"
	"github.com/sartorproj/gofractal/process"
	"github.com/sartorproj/gofractal/timegrid"
)

// Estimate is the result of a Hurst/volatility fit. Exactly one of Optim
// and Regression is set, depending on whether the estimate came from a
// likelihood search or a scalogram regression.
type Estimate struct {
	Hurst      float64
	Volatility float64
	Optim      *Trace
	Regression *Regression
}

// Regression holds the diagnostics of a log-log regression estimate.
type Regression struct {
	Slope     float64
	Intercept float64
	R2        float64
	Points    int
}

// Config holds the tuning of a likelihood fit.
type Config struct {
	// Optimizer selects the search driver.
	Optimizer Optimizer
	// Epsilon is the margin of the Hurst search interval [eps, 1-eps] and
	// the step of the grid scan.
	Epsilon float64
	// EigTol is the eigenvalue cutoff of the likelihood core.
	EigTol float64
	// Tol is the bracket tolerance of the bounded search.
	Tol float64
	// MaxIter bounds the optimizer iterations.
	MaxIter int
}

// DefaultConfig returns the default fit configuration.
func DefaultConfig() *Config {
	return &Config{
		Optimizer: OptimizerBounded,
		Epsilon:   1e-2,
		EigTol:    0,
		Tol:       1e-6,
		MaxIter:   200,
	}
}

// CovarianceModel maps a Hurst exponent to the covariance matrix of the
// observations under that exponent, at unit volatility.
type CovarianceModel func(h float64) (*mat.SymDense, error)

// ProfileFit minimizes h -> -LogLikelihood(model(h), x) over the bounded
// interval [eps, 1-eps] and recovers the volatility in closed form from the
// safe quadratic form at the optimum. The model is evaluated at unit
// volatility; scale is profiled out by the likelihood core.
//
// Model or likelihood failures inside the search are treated as an infinite
// objective; the first such error is returned only if no finite point was
// found at all. Optimizer non-convergence is reported through the trace,
// not as an error.
func ProfileFit(ctx context.Context, model CovarianceModel, x *mat.Dense, cfg *Config) (*Estimate, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	var firstErr error
	objective := func(h float64) float64 {
		sigma, err := model(h)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return math.Inf(1)
		}
		ll, err := LogLikelihood(sigma, x, cfg.EigTol)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return math.Inf(1)
		}
		return -ll
	}

	lo, hi := cfg.Epsilon, 1-cfg.Epsilon
	var tr *Trace
	switch cfg.Optimizer {
	case OptimizerGridScan:
		tr = minimizeGrid(ctx, objective, lo, hi, cfg.Epsilon)
	default:
		tr = minimizeBounded(ctx, objective, lo, hi, cfg.Tol, cfg.MaxIter)
	}
	if math.IsInf(tr.F, 1) {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, fmt.Errorf("%w: objective is infinite on the whole interval", ErrDegenerate)
	}

	h := tr.X
	sigma, err := model(h)
	if err != nil {
		return nil, err
	}
	qf, _, _, err := QuadFormEig(sigma, x, cfg.EigTol)
	if err != nil {
		return nil, err
	}
	xr, xc := x.Dims()
	sigma2 := qf / float64(xr*xc)

	return &Estimate{Hurst: h, Volatility: math.Sqrt(sigma2), Optim: tr}, nil
}

// fgnModel returns the covariance model of fractional Gaussian noise at
// unit volatility and unit step on an n-point integer grid.
func fgnModel(n int) CovarianceModel {
	g := timegrid.Integers(0, n)
	return func(h float64) (*mat.SymDense, error) {
		return covariance.Matrix(process.NewFGn(h, 1), g)
	}
}

// FitFGn fits fractional Gaussian noise to an observation matrix whose
// columns are i.i.d. realizations, returning the Hurst exponent, the
// volatility and the optimizer trace. The observation must have at least
// two rows.
func FitFGn(x *mat.Dense, cfg *Config) (*Estimate, error) {
	return FitFGnContext(context.Background(), x, cfg)
}

// FitFGnContext is FitFGn with cancellation honoured between optimizer
// iterations. On cancellation the best estimate found so far is returned
// and the cause is recorded in the trace.
func FitFGnContext(ctx context.Context, x *mat.Dense, cfg *Config) (*Estimate, error) {
	n, _ := x.Dims()
	if n < 2 {
		return nil, fmt.Errorf("%w: observation has %d rows, need at least 2", ErrDimensionMismatch, n)
	}
	return ProfileFit(ctx, fgnModel(n), x, cfg)
}

// FitFGnJoint fits (H, sigma) jointly with a 2-D boxed Nelder-Mead search on
// the full Gaussian log-likelihood, without profiling the scale. Slower than
// FitFGn and used as a cross-check; the box is [eps, 1-eps] for H and
// (0, inf) for sigma through a log transform.
func FitFGnJoint(x *mat.Dense, cfg *Config) (*Estimate, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	n, c := x.Dims()
	if n < 2 {
		return nil, fmt.Errorf("%w: observation has %d rows, need at least 2", ErrDimensionMismatch, n)
	}
	model := fgnModel(n)
	lo, hi := cfg.Epsilon, 1-cfg.Epsilon
	numel := float64(n * c)

	var firstErr error
	objective := func(z []float64) float64 {
		h := planeToBox(z[0], lo, hi)
		sigma2 := math.Exp(2 * z[1])
		cov, err := model(h)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return math.Inf(1)
		}
		qf, logdet, _, err := QuadFormEig(cov, x, cfg.EigTol)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return math.Inf(1)
		}
		// Full negative log-likelihood up to the 2*pi constant.
		return 0.5 * (qf/sigma2 + float64(c)*(logdet+float64(n)*math.Log(sigma2)))
	}

	// Start at the middle of the box with the sample standard deviation.
	var ss float64
	for i := 0; i < n; i++ {
		for j := 0; j < c; j++ {
			v := x.At(i, j)
			ss += v * v
		}
	}
	init := []float64{boxToPlane(0.5, lo, hi), 0.5 * math.Log(ss/numel)}

	problem := optimize.Problem{Func: objective}
	result, err := optimize.Minimize(problem, init, &optimize.Settings{
		MajorIterations: cfg.MaxIter,
	}, &optimize.NelderMead{})
	if result == nil {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, err
	}

	tr := &Trace{
		Method:      OptimizerNelderMead,
		X:           planeToBox(result.X[0], lo, hi),
		F:           result.F,
		Iterations:  result.MajorIterations,
		Evaluations: result.FuncEvaluations,
		Converged:   err == nil,
	}
	return &Estimate{
		Hurst:      planeToBox(result.X[0], lo, hi),
		Volatility: math.Exp(result.X[1]),
		Optim:      tr,
	}, nil
}
