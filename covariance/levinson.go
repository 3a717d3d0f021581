package covariance

import (
	"fmt"

	"github.com/sartorproj/gofractal/process"
	"github.com/sartorproj/gofractal/timegrid"
)

// PartialMethod selects the algorithm used by PartialAutocorr.
type PartialMethod int

const (
	// MethodLevinson runs the Levinson-Durbin recursion over the
	// autocovariance sequence. It needs only the lag autocovariance and is
	// the preferred method for any stationary-behaving process.
	MethodLevinson PartialMethod = iota
	// MethodDirect uses a process-provided closed form. The process must
	// implement PartialCorrelator; otherwise process.ErrNotImplemented is
	// returned.
	MethodDirect
)

// String returns the name of the method.
func (m PartialMethod) String() string {
	switch m {
	case MethodLevinson:
		return "levinson-durbin"
	case MethodDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// PartialCorrelator is the capability interface for processes with a
// closed-form partial autocorrelation.
type PartialCorrelator interface {
	PartialAutocorr(lag int) (float64, error)
}

// LevinsonResult holds the output of the Levinson-Durbin recursion over an
// autocovariance sequence gamma(0..m).
type LevinsonResult struct {
	// Coeffs[k] are the forward prediction coefficients of the order-(k+1)
	// predictor, k = 0..m-1.
	Coeffs [][]float64
	// Variances[k] is the prediction-error variance after order k;
	// Variances[0] = gamma(0).
	Variances []float64
	// PACF[k] is the partial correlation at lag k+1 (the last coefficient
	// of the order-(k+1) predictor).
	PACF []float64
}

// LevinsonDurbin runs the Levinson-Durbin recursion on an autocovariance
// sequence. gamma must have length at least 2 (lag 0 and lag 1) and a
// positive gamma(0). The recursion stops early if a prediction-error
// variance becomes non-positive; the returned slices then cover the orders
// reached.
func LevinsonDurbin(gamma []float64) (*LevinsonResult, error) {
	if len(gamma) < 2 {
		return nil, fmt.Errorf("%w: autocovariance sequence of length %d, need at least 2",
			ErrDimensionMismatch, len(gamma))
	}
	if gamma[0] <= 0 {
		return nil, fmt.Errorf("%w: gamma(0)=%v must be positive", ErrDimensionMismatch, gamma[0])
	}

	m := len(gamma) - 1
	res := &LevinsonResult{
		Coeffs:    make([][]float64, 0, m),
		Variances: make([]float64, 1, m+1),
		PACF:      make([]float64, 0, m),
	}
	res.Variances[0] = gamma[0]

	phi := make([]float64, 0, m)
	v := gamma[0]

	for k := 1; k <= m; k++ {
		// Reflection coefficient.
		kappa := gamma[k]
		for j := 0; j < k-1; j++ {
			kappa -= phi[j] * gamma[k-1-j]
		}
		kappa /= v

		next := make([]float64, k)
		for j := 0; j < k-1; j++ {
			next[j] = phi[j] - kappa*phi[k-2-j]
		}
		next[k-1] = kappa
		phi = next

		v *= 1 - kappa*kappa

		res.Coeffs = append(res.Coeffs, append([]float64(nil), phi...))
		res.Variances = append(res.Variances, v)
		res.PACF = append(res.PACF, kappa)

		if v <= 0 {
			break
		}
	}
	return res, nil
}

// PartialAutocorr computes the partial autocorrelation sequence of p on grid
// g at lags 1..len(g)-1.
//
// MethodLevinson requires a stationary-behaving process on a regular grid;
// MethodDirect requires the process to implement PartialCorrelator. Missing
// capabilities surface as process.ErrNotImplemented.
func PartialAutocorr(p process.Process, g timegrid.Grid, method PartialMethod) ([]float64, error) {
	if g.Len() < 2 {
		return nil, fmt.Errorf("%w: grid of %d points", ErrDimensionMismatch, g.Len())
	}

	switch method {
	case MethodDirect:
		pc, ok := p.(PartialCorrelator)
		if !ok {
			return nil, fmt.Errorf("%w: process provides no closed-form partial autocorrelation; try MethodLevinson",
				process.ErrNotImplemented)
		}
		out := make([]float64, g.Len()-1)
		for k := 1; k < g.Len(); k++ {
			v, err := pc.PartialAutocorr(k)
			if err != nil {
				return nil, err
			}
			out[k-1] = v
		}
		return out, nil

	case MethodLevinson:
		if !g.IsRegular() {
			return nil, fmt.Errorf("%w: Levinson-Durbin needs a regular grid", ErrIrregularGrid)
		}
		seq, err := Sequence(p, g.Len(), g.Step())
		if err != nil {
			return nil, err
		}
		res, err := LevinsonDurbin(seq)
		if err != nil {
			return nil, err
		}
		return res.PACF, nil

	default:
		return nil, fmt.Errorf("covariance: unknown partial autocorrelation method %d", method)
	}
}
