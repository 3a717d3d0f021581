package rolling

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gofractal/hurst"
)

// meanEstimator records the observation batches it receives and returns the
// batch mean as a fake Hurst value.
func meanEstimator(batches *[]*mat.Dense) Estimator {
	return func(obs *mat.Dense) (*hurst.Estimate, error) {
		if batches != nil {
			c := mat.DenseCopyOf(obs)
			*batches = append(*batches, c)
		}
		r, n := obs.Dims()
		sum := 0.0
		for i := 0; i < r; i++ {
			for j := 0; j < n; j++ {
				sum += obs.At(i, j)
			}
		}
		return &hurst.Estimate{Hurst: sum / float64(r*n)}, nil
	}
}

func ramp(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = float64(i + 1)
	}
	return x
}

func TestCausalBoundaryContract(t *testing.T) {
	// Series of length 10, w=4, n=1, d=0, p=1, causal: exactly 7 estimates
	// for windows ending at positions 4..10, ascending.
	cfg := &Config{Width: 4, Count: 1, Spacing: 0, Stride: 1, Mode: Causal}
	pts, err := RollSeries(meanEstimator(nil), ramp(10), cfg)
	require.NoError(t, err)
	require.Len(t, pts, 7)
	for i, p := range pts {
		assert.Equal(t, 4+i, p.Index)
	}
}

func TestSpanLargerThanSeries(t *testing.T) {
	cfg := &Config{Width: 11, Count: 1, Stride: 1, Mode: Causal}
	pts, err := RollSeries(meanEstimator(nil), ramp(10), cfg)
	require.NoError(t, err)
	assert.Empty(t, pts)

	cfg = &Config{Width: 4, Count: 3, Spacing: 4, Stride: 1, Mode: AntiCausal}
	require.Equal(t, 12, cfg.Span())
	pts, err = RollSeries(meanEstimator(nil), ramp(10), cfg)
	require.NoError(t, err)
	assert.Empty(t, pts)
}

func TestAntiCausalTraversal(t *testing.T) {
	cfg := &Config{Width: 4, Count: 1, Stride: 3, Mode: AntiCausal}
	pts, err := RollSeries(meanEstimator(nil), ramp(10), cfg)
	require.NoError(t, err)
	// Starts 0, 3, 6 -> ends 4, 7, 10.
	require.Len(t, pts, 3)
	assert.Equal(t, []int{4, 7, 10}, []int{pts[0].Index, pts[1].Index, pts[2].Index})
}

func TestCausalStrideAnchorsAtSeriesEnd(t *testing.T) {
	cfg := &Config{Width: 4, Count: 1, Stride: 3, Mode: Causal}
	pts, err := RollSeries(meanEstimator(nil), ramp(10), cfg)
	require.NoError(t, err)
	// Ends 10, 7, 4 walked backward, emitted ascending.
	require.Len(t, pts, 3)
	assert.Equal(t, []int{4, 7, 10}, []int{pts[0].Index, pts[1].Index, pts[2].Index})
}

func TestSubWindowDecomposition(t *testing.T) {
	// w=2, d=1, n=3: span 4, overlapping sub-windows become the columns of
	// one observation batch.
	var batches []*mat.Dense
	cfg := &Config{Width: 2, Spacing: 1, Count: 3, Stride: 1, Mode: AntiCausal}
	pts, err := RollSeries(meanEstimator(&batches), ramp(5), cfg)
	require.NoError(t, err)
	require.Len(t, pts, 2)

	first := batches[0]
	r, c := first.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	// Window over samples 1..4: columns (1,2), (2,3), (3,4).
	assert.Equal(t, []float64{1, 2}, []float64{first.At(0, 0), first.At(1, 0)})
	assert.Equal(t, []float64{2, 3}, []float64{first.At(0, 1), first.At(1, 1)})
	assert.Equal(t, []float64{3, 4}, []float64{first.At(0, 2), first.At(1, 2)})
}

func TestMultivariateFlattening(t *testing.T) {
	// Two variates: a column interleaves the variates of each time point.
	series := mat.NewDense(2, 4, []float64{
		1, 2, 3, 4,
		10, 20, 30, 40,
	})
	var batches []*mat.Dense
	cfg := &Config{Width: 2, Count: 1, Stride: 1, Mode: AntiCausal}
	pts, err := Roll(meanEstimator(&batches), series, cfg)
	require.NoError(t, err)
	require.Len(t, pts, 3)

	first := batches[0]
	r, c := first.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 1, c)
	assert.Equal(t,
		[]float64{1, 10, 2, 20},
		[]float64{first.At(0, 0), first.At(1, 0), first.At(2, 0), first.At(3, 0)})
}

func TestParallelMatchesSerial(t *testing.T) {
	serialCfg := &Config{Width: 4, Count: 2, Spacing: 2, Stride: 2, Mode: Causal}
	parallelCfg := *serialCfg
	parallelCfg.Workers = 4

	x := ramp(40)
	serial, err := RollSeries(meanEstimator(nil), x, serialCfg)
	require.NoError(t, err)
	parallel, err := RollSeries(meanEstimator(nil), x, &parallelCfg)
	require.NoError(t, err)

	require.Equal(t, len(serial), len(parallel))
	for i := range serial {
		assert.Equal(t, serial[i].Index, parallel[i].Index)
		assert.InDelta(t, serial[i].Estimate.Hurst, parallel[i].Estimate.Hurst, 1e-12)
	}
}

func TestEstimatorErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	est := func(obs *mat.Dense) (*hurst.Estimate, error) { return nil, boom }

	cfg := &Config{Width: 4, Count: 1, Stride: 1, Mode: Causal}
	_, err := RollSeries(est, ramp(10), cfg)
	require.ErrorIs(t, err, boom)

	cfg.Workers = 3
	_, err = RollSeries(est, ramp(10), cfg)
	require.ErrorIs(t, err, boom)
}

func TestConfigValidation(t *testing.T) {
	x := ramp(10)
	for name, cfg := range map[string]*Config{
		"zero width":     {Width: 0, Count: 1, Stride: 1},
		"zero count":     {Width: 4, Count: 0, Stride: 1},
		"negative space": {Width: 4, Count: 2, Spacing: -1, Stride: 1},
		"zero stride":    {Width: 4, Count: 1, Stride: 0},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := RollSeries(meanEstimator(nil), x, cfg)
			assert.ErrorIs(t, err, ErrInvalidWindow)
		})
	}

	_, err := RollSeries(meanEstimator(nil), nil, &Config{Width: 4, Count: 1, Stride: 1})
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := &Config{Width: 4, Count: 1, Stride: 1, Mode: Causal}
	_, err := RollContext(ctx, meanEstimator(nil), mat.NewDense(1, 10, ramp(10)), cfg)
	require.ErrorIs(t, err, context.Canceled)
}
