package process

import (
	"fmt"
	"math"
)

// FBm is fractional Brownian motion with Hurst exponent H in (0,1) and unit
// volatility. It is continuous-time, non-stationary, self-similar, and has
// stationary increments. Its autocovariance is
//
//	Cov(t, s) = (|t|^2H + |s|^2H - |t-s|^2H) / 2
type FBm struct {
	hurst float64
}

// NewFBm creates a fractional Brownian motion with the given Hurst exponent.
// It panics if hurst lies outside (0,1); estimation code always supplies
// exponents from a bounded search interval.
func NewFBm(hurst float64) *FBm {
	if hurst <= 0 || hurst >= 1 {
		panic(fmt.Errorf("%w: hurst exponent %v outside (0,1)", ErrInvalidParameter, hurst))
	}
	return &FBm{hurst: hurst}
}

// Hurst returns the Hurst exponent.
func (p *FBm) Hurst() float64 { return p.hurst }

// TimeStyle returns ContinuousTime.
func (p *FBm) TimeStyle() TimeStyle { return ContinuousTime }

// IsStationary returns false; fBm is self-similar, not stationary.
func (p *FBm) IsStationary() bool { return false }

// Autocov returns the fBm autocovariance at the two time points.
func (p *FBm) Autocov(t, s float64) (float64, error) {
	h2 := 2 * p.hurst
	return 0.5 * (math.Pow(math.Abs(t), h2) + math.Pow(math.Abs(s), h2) -
		math.Pow(math.Abs(t-s), h2)), nil
}

// Increments returns the increment process of p at the given step, i.e.
// fractional Gaussian noise with the same Hurst exponent.
func (p *FBm) Increments(step float64) *FGn {
	return NewFGn(p.hurst, step)
}

// FGn is fractional Gaussian noise: the stationary increment process
// X(t) = B_H(t) - B_H(t-delta) of fractional Brownian motion. Its lag
// autocovariance is
//
//	gamma(tau) = (|tau+delta|^2H + |tau-delta|^2H - 2|tau|^2H) / 2
type FGn struct {
	hurst float64
	step  float64
}

// NewFGn creates fractional Gaussian noise with the given Hurst exponent and
// increment step. It panics if hurst lies outside (0,1) or step is not
// positive.
func NewFGn(hurst, step float64) *FGn {
	if hurst <= 0 || hurst >= 1 {
		panic(fmt.Errorf("%w: hurst exponent %v outside (0,1)", ErrInvalidParameter, hurst))
	}
	if step <= 0 {
		panic(fmt.Errorf("%w: step %v must be positive", ErrInvalidParameter, step))
	}
	return &FGn{hurst: hurst, step: step}
}

// Hurst returns the Hurst exponent.
func (p *FGn) Hurst() float64 { return p.hurst }

// Step returns the increment step.
func (p *FGn) Step() float64 { return p.step }

// TimeStyle returns ContinuousTime.
func (p *FGn) TimeStyle() TimeStyle { return ContinuousTime }

// IsStationary returns true.
func (p *FGn) IsStationary() bool { return true }

// AutocovLag returns the lag-tau autocovariance.
func (p *FGn) AutocovLag(tau float64) (float64, error) {
	h2 := 2 * p.hurst
	d := p.step
	return 0.5 * (math.Pow(math.Abs(tau+d), h2) + math.Pow(math.Abs(tau-d), h2) -
		2*math.Pow(math.Abs(tau), h2)), nil
}

// Autocov returns the two-point autocovariance, derived from AutocovLag.
func (p *FGn) Autocov(t, s float64) (float64, error) {
	return p.AutocovLag(t - s)
}
