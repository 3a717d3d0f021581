package wavelet

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// haarFilter returns the discrete Haar filter at scale a: +1 on the first
// a/2 taps, -1 on the rest.
func haarFilter(a int) []float64 {
	f := make([]float64, a)
	for i := range f {
		if i < a/2 {
			f[i] = 1
		} else {
			f[i] = -1
		}
	}
	return f
}

// convolve returns the full discrete convolution of a and b.
func convolve(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, x := range a {
		if x == 0 {
			continue
		}
		for j, y := range b {
			out[i+j] += x * y
		}
	}
	return out
}

// bsplineFilter returns the discretized B-spline wavelet filter at scale a
// with v vanishing moments: the v-fold self-convolution of the scale-a Haar
// filter, normalized so the taps approximate samples of the continuous
// wavelet psi_v(t/a).
func bsplineFilter(a, v int) []float64 {
	base := haarFilter(a)
	f := base
	for k := 1; k < v; k++ {
		f = convolve(f, base)
	}
	norm := math.Pow(float64(a), float64(v-1))
	for i := range f {
		f[i] /= norm
	}
	return f
}

// Transform computes the B-spline DCWT of a sample path at the given even
// integer scales, returning the coefficient matrix (rows = scales, columns =
// time). Coefficients are aligned across scales according to mode; only
// positions where every scale's filter fits inside the path are kept, so no
// boundary coefficients are fabricated.
func Transform(x []float64, sclrng []int, v int, mode Mode) (*mat.Dense, error) {
	if err := validateScales(sclrng); err != nil {
		return nil, err
	}
	if v < 1 {
		return nil, fmt.Errorf("%w: vanishing-moment order %d", ErrInvalidParameter, v)
	}
	for _, a := range sclrng {
		if a%2 != 0 {
			return nil, fmt.Errorf("%w: scale %d must be even", ErrInvalidParameter, a)
		}
	}

	j := len(sclrng)
	maxLen := v*(sclrng[j-1]-1) + 1
	cols := len(x) - maxLen + 1
	if cols < 1 {
		return nil, fmt.Errorf("%w: path of %d samples is shorter than the largest filter (%d taps)",
			ErrDimensionMismatch, len(x), maxLen)
	}

	out := mat.NewDense(j, cols, nil)
	for s, a := range sclrng {
		f := bsplineFilter(a, v)
		// Alignment offset of this scale's coefficients relative to the
		// common time axis.
		var off int
		switch mode {
		case ModeLeft:
			off = 0
		case ModeRight:
			off = maxLen - len(f)
		default:
			off = (maxLen - len(f)) / 2
		}
		amp := 1 / math.Sqrt(float64(a))
		for t := 0; t < cols; t++ {
			sum := 0.0
			for m, c := range f {
				sum += c * x[t+off+m]
			}
			out.Set(s, t, amp*sum)
		}
	}
	return out, nil
}
