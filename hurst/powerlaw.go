package hurst

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// FitPowerLaw estimates (H, sigma) of a self-similar path from the power-law
// scaling of its increment moments: for fBm,
//
//	E|X(t+a) - X(t)|^pow = c_pow sigma^pow a^(pow H)
//
// with c_pow the absolute moment of the standard normal. The slope of the
// log moment against the log lag gives H = slope/pow; the intercept recovers
// sigma. This is the cheapest estimator in the package: one pass per lag and
// one regression, no covariance matrix.
//
// The path must be longer than the largest lag and at least two lags are
// required.
func FitPowerLaw(x []float64, lags []int, pow float64) (*Estimate, error) {
	if pow <= 0 {
		return nil, fmt.Errorf("%w: moment order %v must be positive", ErrDimensionMismatch, pow)
	}
	if len(lags) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 lags", ErrDimensionMismatch)
	}
	n := len(x)
	for i, a := range lags {
		if a <= 0 || a >= n {
			return nil, fmt.Errorf("%w: lag %d outside (0, %d)", ErrDimensionMismatch, a, n)
		}
		if i > 0 && lags[i-1] >= a {
			return nil, fmt.Errorf("%w: lags must be strictly increasing", ErrDimensionMismatch)
		}
	}

	xs := make([]float64, len(lags))
	ys := make([]float64, len(lags))
	for i, a := range lags {
		sum := 0.0
		for t := 0; t+a < n; t++ {
			sum += math.Pow(math.Abs(x[t+a]-x[t]), pow)
		}
		m := sum / float64(n-a)
		if m <= 0 {
			return nil, fmt.Errorf("%w: vanishing moment at lag %d", ErrDegenerate, a)
		}
		xs[i] = math.Log(float64(a))
		ys[i] = math.Log(m)
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	reg := &Regression{
		Slope:     beta,
		Intercept: alpha,
		R2:        stat.RSquared(xs, ys, nil, alpha, beta),
		Points:    len(xs),
	}

	h := beta / pow
	if h < 1e-2 {
		h = 1e-2
	} else if h > 1-1e-2 {
		h = 1 - 1e-2
	}

	// Absolute moment of the standard normal.
	cpow := math.Exp2(pow/2) * math.Gamma((pow+1)/2) / math.Sqrt(math.Pi)
	sigma := math.Pow(math.Exp(alpha)/cpow, 1/pow)

	return &Estimate{Hurst: h, Volatility: sigma, Regression: reg}, nil
}
