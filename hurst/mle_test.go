package hurst

import (
	"context"
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestFitFGnRecovery(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical recovery test")
	}

	// Repeated draws: the empirical mean of the estimates should land in a
	// tolerance band around the true exponent. A statistical, not exact,
	// property.
	for _, h0 := range []float64{0.3, 0.7} {
		var sum float64
		trials := 4
		for i := 0; i < trials; i++ {
			x := sampleFGn(t, h0, 1, 256, 1, uint64(100*i+1))
			est, err := FitFGn(x, DefaultConfig())
			if err != nil {
				t.Fatalf("FitFGn: %v", err)
			}
			if est.Hurst <= 0 || est.Hurst >= 1 {
				t.Fatalf("estimate %v outside (0,1)", est.Hurst)
			}
			if est.Volatility < 0 {
				t.Fatalf("negative volatility %v", est.Volatility)
			}
			sum += est.Hurst
			t.Logf("H0=%v trial %d: H=%.3f sigma=%.3f iters=%d", h0, i, est.Hurst, est.Volatility, est.Optim.Iterations)
		}
		mean := sum / float64(trials)
		if math.Abs(mean-h0) > 0.1 {
			t.Errorf("mean estimate %.3f outside +-0.1 of true H %v", mean, h0)
		}
	}
}

func TestFitFGnVolatilityRecovery(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical recovery test")
	}

	x := sampleFGn(t, 0.6, 2.5, 200, 2, 11)
	est, err := FitFGn(x, DefaultConfig())
	if err != nil {
		t.Fatalf("FitFGn: %v", err)
	}
	t.Logf("sigma0=2.5: sigma=%.3f (H=%.3f)", est.Volatility, est.Hurst)
	if est.Volatility < 1.5 || est.Volatility > 3.5 {
		t.Errorf("volatility %.3f far from true 2.5", est.Volatility)
	}
}

func TestFitFGnGridScanAgreesWithBounded(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical recovery test")
	}

	x := sampleFGn(t, 0.65, 1, 96, 2, 3)

	bounded, err := FitFGn(x, DefaultConfig())
	if err != nil {
		t.Fatalf("bounded: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Optimizer = OptimizerGridScan
	grid, err := FitFGn(x, cfg)
	if err != nil {
		t.Fatalf("grid scan: %v", err)
	}

	if grid.Optim.Method != OptimizerGridScan {
		t.Errorf("trace method %v, want grid-scan", grid.Optim.Method)
	}
	// Grid resolution is Epsilon, so the two drivers agree to that order.
	if math.Abs(bounded.Hurst-grid.Hurst) > 2*cfg.Epsilon {
		t.Errorf("bounded %.3f vs grid %.3f differ beyond grid resolution", bounded.Hurst, grid.Hurst)
	}
}

func TestFitFGnJoint(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical recovery test")
	}

	x := sampleFGn(t, 0.7, 1, 128, 2, 5)

	joint, err := FitFGnJoint(x, DefaultConfig())
	if err != nil {
		t.Fatalf("FitFGnJoint: %v", err)
	}
	profiled, err := FitFGn(x, DefaultConfig())
	if err != nil {
		t.Fatalf("FitFGn: %v", err)
	}
	t.Logf("joint: H=%.3f sigma=%.3f; profiled: H=%.3f sigma=%.3f",
		joint.Hurst, joint.Volatility, profiled.Hurst, profiled.Volatility)

	if joint.Optim.Method != OptimizerNelderMead {
		t.Errorf("joint trace method %v, want nelder-mead", joint.Optim.Method)
	}

	if math.Abs(joint.Hurst-profiled.Hurst) > 0.05 {
		t.Errorf("joint and profiled Hurst disagree: %.3f vs %.3f", joint.Hurst, profiled.Hurst)
	}
	if math.Abs(joint.Volatility-profiled.Volatility) > 0.5 {
		t.Errorf("joint and profiled volatility disagree: %.3f vs %.3f", joint.Volatility, profiled.Volatility)
	}
}

func TestFitFGnPreconditions(t *testing.T) {
	_, err := FitFGn(mat.NewDense(1, 1, []float64{1}), nil)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
}

func TestFitFGnCancellation(t *testing.T) {
	x := sampleFGn(t, 0.5, 1, 64, 1, 9)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	est, err := FitFGnContext(ctx, x, DefaultConfig())
	if err != nil {
		t.Fatalf("cancelled fit should return the best state found, got error %v", err)
	}
	if est.Optim.Err == nil {
		t.Error("trace should record the cancellation")
	}
	if est.Optim.Converged {
		t.Error("cancelled fit must not report convergence")
	}
	if est.Hurst <= 0 || est.Hurst >= 1 {
		t.Errorf("estimate %v outside (0,1)", est.Hurst)
	}
}

func TestMinimizeBoundedQuadratic(t *testing.T) {
	f := func(x float64) float64 { return (x - 0.37) * (x - 0.37) }
	tr := minimizeBounded(context.Background(), f, 0, 1, 1e-8, 200)
	if !tr.Converged {
		t.Fatal("golden section did not converge on a quadratic")
	}
	if math.Abs(tr.X-0.37) > 1e-6 {
		t.Errorf("minimum at %v, want 0.37", tr.X)
	}
}

func TestMinimizeGridStep(t *testing.T) {
	f := func(x float64) float64 { return math.Abs(x - 0.52) }
	tr := minimizeGrid(context.Background(), f, 0, 1, 0.01)
	if math.Abs(tr.X-0.52) > 0.011 {
		t.Errorf("grid minimum at %v, want within one step of 0.52", tr.X)
	}
	if tr.Evaluations < 99 {
		t.Errorf("grid scan made %d evaluations, expected the full grid", tr.Evaluations)
	}
}
