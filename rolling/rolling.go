package rolling

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gofractal/hurst"
)

var (
	// ErrInvalidWindow indicates a window shape or stride that cannot
	// describe any window.
	ErrInvalidWindow = errors.New("rolling: invalid window configuration")

	// ErrEmptySeries indicates an input series with no samples.
	ErrEmptySeries = errors.New("rolling: empty series")
)

// Mode selects the traversal direction of the rolling harness.
type Mode int

const (
	// Causal walks window end-points backward from the series end toward
	// its start.
	Causal Mode = iota
	// AntiCausal walks window start-points forward from the series start.
	AntiCausal
)

// String returns the name of the traversal mode.
func (m Mode) String() string {
	switch m {
	case Causal:
		return "causal"
	case AntiCausal:
		return "anticausal"
	default:
		return "unknown"
	}
}

// Estimator is any point estimator usable by the harness: it receives one
// observation matrix whose columns are treated as an i.i.d. batch and
// returns an estimate. The entry points of packages hurst and wavelet
// satisfy this contract once their configuration is bound.
type Estimator func(obs *mat.Dense) (*hurst.Estimate, error)

// Config describes the window shape and traversal of a rolling run.
type Config struct {
	// Width is the sub-window width w.
	Width int
	// Spacing is the distance d between consecutive sub-window starts.
	Spacing int
	// Count is the number n of sub-windows per window; the total span is
	// L = (n-1)d + w.
	Count int
	// Stride is the step p between consecutive window positions.
	Stride int
	// Mode is the traversal direction.
	Mode Mode
	// Workers bounds the number of windows estimated concurrently; values
	// below 2 run serially.
	Workers int
}

// DefaultConfig returns a causal single-sub-window configuration with unit
// stride. Width must still be set by the caller.
func DefaultConfig() *Config {
	return &Config{
		Spacing: 0,
		Count:   1,
		Stride:  1,
		Mode:    Causal,
	}
}

// Span returns the total window span L = (n-1)d + w.
func (c *Config) Span() int {
	return (c.Count-1)*c.Spacing + c.Width
}

// validate checks the window configuration against the series length.
func (c *Config) validate(rows, cols int) error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width %d", ErrInvalidWindow, c.Width)
	}
	if c.Count <= 0 {
		return fmt.Errorf("%w: sub-window count %d", ErrInvalidWindow, c.Count)
	}
	if c.Spacing < 0 {
		return fmt.Errorf("%w: spacing %d", ErrInvalidWindow, c.Spacing)
	}
	if c.Stride <= 0 {
		return fmt.Errorf("%w: stride %d", ErrInvalidWindow, c.Stride)
	}
	if rows <= 0 || cols <= 0 {
		return ErrEmptySeries
	}
	return nil
}

// Point is one rolling estimate: the 1-based end position of its window and
// the estimate itself.
type Point struct {
	Index    int
	Estimate *hurst.Estimate
}

// window extracts the observation matrix of the window starting at s: the n
// flattened sub-windows as columns. Entries within a column are laid out
// time-major with the variates of one time point contiguous.
func window(series *mat.Dense, s int, cfg *Config) *mat.Dense {
	m, _ := series.Dims()
	obs := mat.NewDense(cfg.Width*m, cfg.Count, nil)
	for k := 0; k < cfg.Count; k++ {
		start := s + k*cfg.Spacing
		for u := 0; u < cfg.Width; u++ {
			for r := 0; r < m; r++ {
				obs.Set(u*m+r, k, series.At(r, start+u))
			}
		}
	}
	return obs
}

// starts returns the 0-based window start positions in chronological order.
// Boundary-crossing windows are skipped, never padded: a span larger than
// the series yields no positions.
func starts(cols int, cfg *Config) []int {
	span := cfg.Span()
	var out []int
	switch cfg.Mode {
	case AntiCausal:
		for s := 0; s+span <= cols; s += cfg.Stride {
			out = append(out, s)
		}
	default:
		for t := cols; t >= span; t -= cfg.Stride {
			out = append(out, t-span)
		}
		// Walked backward; emit chronologically.
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// Roll applies the estimator to every admissible window position of a
// multivariate series (rows = variates, columns = time) and returns the
// estimates in chronological order of window end.
func Roll(est Estimator, series *mat.Dense, cfg *Config) ([]Point, error) {
	return RollContext(context.Background(), est, series, cfg)
}

// RollSeries is Roll for a univariate series.
func RollSeries(est Estimator, x []float64, cfg *Config) ([]Point, error) {
	if len(x) == 0 {
		return nil, ErrEmptySeries
	}
	return Roll(est, mat.NewDense(1, len(x), x), cfg)
}

// RollContext is Roll with cancellation. When Workers is above 1, windows
// are estimated concurrently on a bounded pool; results are assembled in
// chronological order regardless of execution order.
func RollContext(ctx context.Context, est Estimator, series *mat.Dense, cfg *Config) ([]Point, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil configuration", ErrInvalidWindow)
	}
	rows, cols := series.Dims()
	if err := cfg.validate(rows, cols); err != nil {
		return nil, err
	}

	pos := starts(cols, cfg)
	if len(pos) == 0 {
		return nil, nil
	}
	span := cfg.Span()
	out := make([]Point, len(pos))

	if cfg.Workers > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Workers)
		for i, s := range pos {
			i, s := i, s
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				e, err := est(window(series, s, cfg))
				if err != nil {
					return fmt.Errorf("rolling: window ending at %d: %w", s+span, err)
				}
				out[i] = Point{Index: s + span, Estimate: e}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return out, nil
	}

	for i, s := range pos {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e, err := est(window(series, s, cfg))
		if err != nil {
			return nil, fmt.Errorf("rolling: window ending at %d: %w", s+span, err)
		}
		out[i] = Point{Index: s + span, Estimate: e}
	}
	return out, nil
}
