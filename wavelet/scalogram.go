package wavelet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gofractal/hurst"
)

// Scalogram returns the per-scale variance of a coefficient matrix (rows =
// scales, columns = time). Coefficients are zero-mean by the vanishing
// moments of the wavelet, so the variance is the mean square.
func Scalogram(w *mat.Dense) []float64 {
	j, n := w.Dims()
	out := make([]float64, j)
	for s := 0; s < j; s++ {
		sum := 0.0
		for t := 0; t < n; t++ {
			c := w.At(s, t)
			sum += c * c
		}
		out[s] = sum / float64(n)
	}
	return out
}

// crossMoment returns the empirical covariance between two coefficient rows.
func crossMoment(w *mat.Dense, i, j int) float64 {
	_, n := w.Dims()
	sum := 0.0
	for t := 0; t < n; t++ {
		sum += w.At(i, t) * w.At(j, t)
	}
	return sum / float64(n)
}

// clampHurst pins a regression-derived exponent into the open unit interval
// used by the rest of the library.
func clampHurst(h float64) float64 {
	const margin = 1e-2
	return math.Min(1-margin, math.Max(margin, h))
}

// regress fits y = intercept + slope*x and returns the diagnostics.
func regress(x, y []float64) *hurst.Regression {
	alpha, beta := stat.LinearRegression(x, y, nil, false)
	return &hurst.Regression{
		Slope:     beta,
		Intercept: alpha,
		R2:        stat.RSquared(x, y, nil, alpha, beta),
		Points:    len(x),
	}
}

// FitScalogram estimates (H, sigma) from a DCWT coefficient matrix by the
// B-spline scalogram regression: the per-scale variance of wavelet
// coefficients of fBm is sigma^2 a^(2H+1) C1rho(0, 1, H, v), so the slope
// of log variance against log scale is 2H+1 and the estimate is
// slope/2 - 1/2. The intercept recovers sigma through the C1rho normalizing
// constant at the estimated exponent. Needs at least two scales.
func FitScalogram(w *mat.Dense, sclrng []int, v int, mode Mode) (*hurst.Estimate, error) {
	if err := validateScales(sclrng); err != nil {
		return nil, err
	}
	j, _ := w.Dims()
	if j != len(sclrng) {
		return nil, fmt.Errorf("%w: %d coefficient rows for %d scales",
			ErrDimensionMismatch, j, len(sclrng))
	}
	if j < 2 {
		return nil, fmt.Errorf("%w: scalogram regression needs at least 2 scales", ErrDimensionMismatch)
	}

	vars := Scalogram(w)
	x := make([]float64, j)
	y := make([]float64, j)
	for i, a := range sclrng {
		if vars[i] <= 0 {
			return nil, fmt.Errorf("%w: zero variance at scale %d", ErrDimensionMismatch, a)
		}
		x[i] = math.Log(float64(a))
		y[i] = math.Log(vars[i])
	}

	reg := regress(x, y)
	h := clampHurst(reg.Slope/2 - 0.5)

	c1, err := C1rho(0, 1, h, v, mode)
	if err != nil {
		return nil, err
	}
	sigma2 := math.Exp(reg.Intercept) / c1

	return &hurst.Estimate{
		Hurst:      h,
		Volatility: math.Sqrt(math.Max(sigma2, 0)),
		Regression: reg,
	}, nil
}

// gcd returns the greatest common divisor of two positive integers.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// FitGenScalogram estimates (H, sigma) from the generalized scalogram: the
// empirical covariance between coefficients at scale pairs with the rational
// ratio r = p/q >= 1, regressed as log |cov| against log(a_i a_j). The slope
// is H + 1/2, so the estimate is slope - 1/2; the intercept recovers sigma
// through C1rho(0, r, H, v).
//
// With r > 1 the scale list must be an arithmetic progression of integers so
// that the required scale pairs exist inside it; otherwise the fit fails
// with ErrIncompatibleScales before any regression is attempted.
func FitGenScalogram(w *mat.Dense, sclrng []int, v, p, q int, mode Mode) (*hurst.Estimate, error) {
	if err := validateScales(sclrng); err != nil {
		return nil, err
	}
	if p <= 0 || q <= 0 {
		return nil, fmt.Errorf("%w: ratio %d/%d", ErrIncompatibleScales, p, q)
	}
	g := gcd(p, q)
	p, q = p/g, q/g
	if p < q {
		return nil, fmt.Errorf("%w: ratio %d/%d is below 1", ErrIncompatibleScales, p, q)
	}
	j, _ := w.Dims()
	if j != len(sclrng) {
		return nil, fmt.Errorf("%w: %d coefficient rows for %d scales",
			ErrDimensionMismatch, j, len(sclrng))
	}

	if p > q && !isArithmetic(sclrng) {
		return nil, fmt.Errorf("%w: ratio %d/%d needs an arithmetic progression of integer scales",
			ErrIncompatibleScales, p, q)
	}

	// Pair every scale a_i with a_j = a_i * p/q when that scale exists in
	// the list.
	idx := make(map[int]int, j)
	for i, a := range sclrng {
		idx[a] = i
	}
	var xs, ys []float64
	r := float64(p) / float64(q)
	for i, a := range sclrng {
		if (a*p)%q != 0 {
			continue
		}
		jscale := a * p / q
		k, ok := idx[jscale]
		if !ok {
			continue
		}
		c := crossMoment(w, i, k)
		if c == 0 {
			continue
		}
		xs = append(xs, math.Log(float64(a)*float64(jscale)))
		ys = append(ys, math.Log(math.Abs(c)))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: only %d usable scale pairs for ratio %d/%d",
			ErrIncompatibleScales, len(xs), p, q)
	}

	reg := regress(xs, ys)
	h := clampHurst(reg.Slope - 0.5)

	c1, err := C1rho(0, r, h, v, mode)
	if err != nil {
		return nil, err
	}
	sigma2 := math.Exp(reg.Intercept) / math.Abs(c1)

	return &hurst.Estimate{
		Hurst:      h,
		Volatility: math.Sqrt(sigma2),
		Regression: reg,
	}, nil
}

// isArithmetic reports whether the integer scale list has constant
// difference.
func isArithmetic(sclrng []int) bool {
	if len(sclrng) <= 2 {
		return true
	}
	d := sclrng[1] - sclrng[0]
	for i := 2; i < len(sclrng); i++ {
		if sclrng[i]-sclrng[i-1] != d {
			return false
		}
	}
	return true
}
