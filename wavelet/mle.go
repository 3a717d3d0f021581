package wavelet

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gofractal/hurst"
)

// FitMLE fits (H, sigma) to a J x n DCWT coefficient matrix by maximum
// likelihood over the full multi-lag covariance model: the observations are
// stacked into lags+1 consecutive time-lag blocks per column and the
// profiled likelihood search of package hurst runs over the blockwise
// covariance model. With lags == 0 this is the partial wavelet MLE, using
// only the contemporaneous cross-scale covariance.
//
// Each likelihood evaluation eigendecomposes a J*(lags+1) square matrix, so
// the cost is governed by the model dimension, not the series length.
func FitMLE(w *mat.Dense, sclrng []int, v, lags int, mode Mode, cfg *hurst.Config) (*hurst.Estimate, error) {
	return FitMLEContext(context.Background(), w, sclrng, v, lags, mode, cfg)
}

// FitMLEContext is FitMLE with cancellation honoured between optimizer
// iterations.
func FitMLEContext(ctx context.Context, w *mat.Dense, sclrng []int, v, lags int, mode Mode, cfg *hurst.Config) (*hurst.Estimate, error) {
	if err := validateScales(sclrng); err != nil {
		return nil, err
	}
	j, _ := w.Dims()
	if j != len(sclrng) {
		return nil, fmt.Errorf("%w: %d coefficient rows for %d scales",
			ErrDimensionMismatch, j, len(sclrng))
	}

	obs, err := StackLags(w, lags)
	if err != nil {
		return nil, err
	}
	model := func(h float64) (*mat.SymDense, error) {
		return CovarianceModel(sclrng, v, h, lags, mode)
	}
	return hurst.ProfileFit(ctx, model, obs, cfg)
}
