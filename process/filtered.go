package process

import (
	"fmt"
	"math"
)

// zeroSumTol bounds the kernel coefficient sum below which a kernel counts
// as zero-sum for the stationarity capability check.
const zeroSumTol = 1e-12

// Filtered is a linear filtration of a parent process through a finite
// kernel: X(t) = sum_i a[i] P(t - i*step) in the causal convention, or
// P(t + i*step) in the anti-causal one. The parent is shared, not owned,
// and must outlive every filtered view.
type Filtered struct {
	parent    Process
	kernel    []float64
	causality Causality
	step      float64
}

// NewFiltered creates a filtered view of parent with the given kernel,
// causality convention and step. The kernel is copied. It panics if the
// kernel is empty or the step is not positive.
func NewFiltered(parent Process, kernel []float64, c Causality, step float64) *Filtered {
	if len(kernel) == 0 {
		panic(fmt.Errorf("%w: empty filter kernel", ErrInvalidParameter))
	}
	if step <= 0 {
		panic(fmt.Errorf("%w: step %v must be positive", ErrInvalidParameter, step))
	}
	k := make([]float64, len(kernel))
	copy(k, kernel)
	return &Filtered{parent: parent, kernel: k, causality: c, step: step}
}

// NewDifferential creates the differential process of parent at the given
// lag: the filtered view with kernel [1, 0, ..., 0, -1] of length lag+1.
// It panics if lag is not positive.
func NewDifferential(parent Process, lag int, step float64, c Causality) *Filtered {
	if lag <= 0 {
		panic(fmt.Errorf("%w: lag %d must be positive", ErrInvalidParameter, lag))
	}
	k := make([]float64, lag+1)
	k[0] = 1
	k[lag] = -1
	return NewFiltered(parent, k, c, step)
}

// Parent returns the parent process.
func (f *Filtered) Parent() Process { return f.parent }

// Kernel returns a copy of the filter kernel.
func (f *Filtered) Kernel() []float64 {
	k := make([]float64, len(f.kernel))
	copy(k, f.kernel)
	return k
}

// Causality returns the filter's causality convention.
func (f *Filtered) Causality() Causality { return f.causality }

// Step returns the filter step.
func (f *Filtered) Step() float64 { return f.step }

// TimeStyle returns the parent's time style.
func (f *Filtered) TimeStyle() TimeStyle { return f.parent.TimeStyle() }

// IsStationary returns whether the parent is stationary. A filtered view of
// a stationary process is stationary; a filtered view of a non-stationary
// process is not stationary in general, even when it behaves as stationary
// (see BehavesAsStationary).
func (f *Filtered) IsStationary() bool { return f.parent.IsStationary() }

// zeroSum reports whether the kernel coefficients sum to zero.
func (f *Filtered) zeroSum() bool {
	s := 0.0
	for _, a := range f.kernel {
		s += a
	}
	return math.Abs(s) <= zeroSumTol
}

// BehavesAsStationary reports whether the filtered view's autocovariance
// depends only on the time difference. True when the parent is stationary,
// or when the parent is self-similar with stationary increments and the
// kernel sums to zero (the zero-sum filtration cancels the non-stationary
// part of the parent covariance).
func (f *Filtered) BehavesAsStationary() bool {
	if f.parent.IsStationary() {
		return true
	}
	if _, ok := f.parent.(SelfSimilar); ok {
		return f.zeroSum()
	}
	return false
}

// shift returns the signed time offset of kernel tap i.
func (f *Filtered) shift(i int) float64 {
	if f.causality == Causal {
		return -float64(i) * f.step
	}
	return float64(i) * f.step
}

// Autocov returns the two-point autocovariance, derived from the parent via
// the double kernel sum Cov(t,s) = sum_ij a[i] a[j] CovP(t+u_i, s+u_j) with
// tap offsets u fixed by the causality convention.
func (f *Filtered) Autocov(t, s float64) (float64, error) {
	total := 0.0
	for i, ai := range f.kernel {
		if ai == 0 {
			continue
		}
		for j, aj := range f.kernel {
			if aj == 0 {
				continue
			}
			c, err := f.parent.Autocov(t+f.shift(i), s+f.shift(j))
			if err != nil {
				return 0, err
			}
			total += ai * aj * c
		}
	}
	return total, nil
}

// AutocovLag returns the lag-tau autocovariance of a filtered view that
// behaves as stationary. For a stationary parent it reduces to the double
// kernel sum over the parent's lag autocovariance. For a self-similar parent
// with a zero-sum kernel it uses the closed form
//
//	gamma(tau) = -1/2 sum_ij a[i] a[j] |tau + (u_i - u_j)|^2H
//
// obtained by cancelling the |t|^2H and |s|^2H parent terms against the
// zero-sum index. Returns ErrNotImplemented when the view does not behave
// as stationary.
func (f *Filtered) AutocovLag(tau float64) (float64, error) {
	if sp, ok := f.parent.(Stationary); ok {
		total := 0.0
		for i, ai := range f.kernel {
			if ai == 0 {
				continue
			}
			for j, aj := range f.kernel {
				if aj == 0 {
					continue
				}
				c, err := sp.AutocovLag(tau + f.shift(i) - f.shift(j))
				if err != nil {
					return 0, err
				}
				total += ai * aj * c
			}
		}
		return total, nil
	}
	ss, ok := f.parent.(SelfSimilar)
	if !ok || !f.zeroSum() {
		return 0, fmt.Errorf("%w: filtered view is not stationary", ErrNotImplemented)
	}
	h2 := 2 * ss.Hurst()
	total := 0.0
	for i, ai := range f.kernel {
		if ai == 0 {
			continue
		}
		for j, aj := range f.kernel {
			if aj == 0 {
				continue
			}
			total += ai * aj * math.Pow(math.Abs(tau+f.shift(i)-f.shift(j)), h2)
		}
	}
	return -0.5 * total, nil
}
