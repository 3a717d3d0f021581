package process

import "errors"

// ErrNotImplemented indicates that a process variant does not provide the
// requested capability. Callers should fall back to an algorithm that needs
// less of the contract (for example Levinson-Durbin instead of a closed-form
// partial autocorrelation) or treat the process as unusable for the
// operation.
var ErrNotImplemented = errors.New("process: capability not implemented")

// ErrInvalidParameter indicates a process was constructed with a parameter
// outside its admissible range.
var ErrInvalidParameter = errors.New("process: invalid parameter")

// TimeStyle tags a process as defined in continuous or discrete time.
type TimeStyle int

const (
	// ContinuousTime processes are defined for every real time point.
	ContinuousTime TimeStyle = iota
	// DiscreteTime processes are defined on integer time points only.
	DiscreteTime
)

// String returns the name of the time style.
func (ts TimeStyle) String() string {
	switch ts {
	case ContinuousTime:
		return "continuous"
	case DiscreteTime:
		return "discrete"
	default:
		return "unknown"
	}
}

// Causality selects the sign convention of a linear filtration: a causal
// filter combines past values of the parent process, an anti-causal filter
// combines future values.
type Causality int

const (
	// Causal filters look backward in time.
	Causal Causality = iota
	// AntiCausal filters look forward in time.
	AntiCausal
)

// String returns the name of the causality convention.
func (c Causality) String() string {
	switch c {
	case Causal:
		return "causal"
	case AntiCausal:
		return "anticausal"
	default:
		return "unknown"
	}
}

// Process describes a zero-mean real-valued stochastic process.
//
// Autocov returns the autocovariance Cov(X(t), X(s)). A process kind for
// which the two-point autocovariance is undefined returns ErrNotImplemented.
type Process interface {
	TimeStyle() TimeStyle
	IsStationary() bool
	Autocov(t, s float64) (float64, error)
}

// Stationary is a process whose autocovariance depends only on the time
// difference. AutocovLag returns Cov(X(t+tau), X(t)); the two-point form is
// derived as AutocovLag(t-s).
type Stationary interface {
	Process
	AutocovLag(tau float64) (float64, error)
}

// SelfSimilar is a process X satisfying X(at) == a^H X(t) in distribution,
// with stationary increments. Its Hurst exponent lies in (0,1).
type SelfSimilar interface {
	Process
	Hurst() float64
}

// BehavesAsStationary reports whether p may be treated as stationary for
// covariance purposes: either p is stationary by construction, or p is a
// filtered view whose covariance provably depends only on the time
// difference. This is the explicit capability check gating the Toeplitz
// fast path in the covariance layer.
func BehavesAsStationary(p Process) bool {
	if p.IsStationary() {
		return true
	}
	if f, ok := p.(*Filtered); ok {
		return f.BehavesAsStationary()
	}
	return false
}
