package wavelet

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestScalogramValues(t *testing.T) {
	w := mat.NewDense(2, 3, []float64{
		1, -1, 2,
		3, 0, -3,
	})
	vars := Scalogram(w)
	if math.Abs(vars[0]-2) > 1e-12 {
		t.Errorf("vars[0] = %v, want 2", vars[0])
	}
	if math.Abs(vars[1]-6) > 1e-12 {
		t.Errorf("vars[1] = %v, want 6", vars[1])
	}
}

func TestFitScalogramRecovers(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	sclrng := []int{8, 16, 32}
	for i, h0 := range []float64{0.3, 0.7} {
		x := sampleFBm(t, h0, 1, 4096, uint64(41+i))
		w, err := Transform(x, sclrng, 2, ModeCenter)
		if err != nil {
			t.Fatalf("Transform: %v", err)
		}
		est, err := FitScalogram(w, sclrng, 2, ModeCenter)
		if err != nil {
			t.Fatalf("FitScalogram: %v", err)
		}
		t.Logf("H0=%v: H=%.3f sigma=%.3f R2=%.4f", h0, est.Hurst, est.Volatility, est.Regression.R2)
		if math.Abs(est.Hurst-h0) > 0.15 {
			t.Errorf("H0=%v: estimate %v off by more than 0.15", h0, est.Hurst)
		}
		if est.Volatility < 0.5 || est.Volatility > 2 {
			t.Errorf("H0=%v: volatility %v outside [0.5, 2]", h0, est.Volatility)
		}
		if est.Regression == nil || est.Regression.Points != len(sclrng) {
			t.Errorf("H0=%v: missing or short regression diagnostics", h0)
		}
	}
}

func TestFitGenScalogramRecovers(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	// Arithmetic scales with step 8: ratio 2 pairs (8,16), (16,32), (24,48).
	sclrng := []int{8, 16, 24, 32, 40, 48}
	h0 := 0.7
	x := sampleFBm(t, h0, 1, 4096, 43)
	w, err := Transform(x, sclrng, 2, ModeCenter)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	est, err := FitGenScalogram(w, sclrng, 2, 2, 1, ModeCenter)
	if err != nil {
		t.Fatalf("FitGenScalogram: %v", err)
	}
	t.Logf("H0=%v: H=%.3f sigma=%.3f points=%d", h0, est.Hurst, est.Volatility, est.Regression.Points)
	if math.Abs(est.Hurst-h0) > 0.15 {
		t.Errorf("estimate %v off by more than 0.15", est.Hurst)
	}
	if est.Regression.Points != 3 {
		t.Errorf("used %d scale pairs, want 3", est.Regression.Points)
	}
}

func TestFitGenScalogramUnitRatioMatchesScalogram(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	sclrng := []int{8, 16, 32}
	x := sampleFBm(t, 0.6, 1, 2048, 44)
	w, err := Transform(x, sclrng, 2, ModeCenter)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	plain, err := FitScalogram(w, sclrng, 2, ModeCenter)
	if err != nil {
		t.Fatalf("FitScalogram: %v", err)
	}
	gen, err := FitGenScalogram(w, sclrng, 2, 1, 1, ModeCenter)
	if err != nil {
		t.Fatalf("FitGenScalogram: %v", err)
	}
	// Ratio 1 pairs every scale with itself: same moments, same fit up to
	// the parameterization of the regression axis.
	if math.Abs(plain.Hurst-gen.Hurst) > 1e-9 {
		t.Errorf("unit-ratio fit %v differs from scalogram fit %v", gen.Hurst, plain.Hurst)
	}
}

func TestFitGenScalogramScaleChecks(t *testing.T) {
	w := mat.NewDense(3, 10, make([]float64, 30))
	for i := range w.RawMatrix().Data {
		w.RawMatrix().Data[i] = float64(i%5) - 2
	}

	// Non-arithmetic scales cannot host ratio 2.
	if _, err := FitGenScalogram(w, []int{1, 2, 5}, 1, 2, 1, ModeCenter); !errors.Is(err, ErrIncompatibleScales) {
		t.Errorf("non-arithmetic scales: got %v, want ErrIncompatibleScales", err)
	}
	// Ratios below 1 are rejected.
	if _, err := FitGenScalogram(w, []int{2, 4, 6}, 1, 1, 2, ModeCenter); !errors.Is(err, ErrIncompatibleScales) {
		t.Errorf("ratio below 1: got %v, want ErrIncompatibleScales", err)
	}
	// Arithmetic but too short for ratio 3: only (2,6) pairs up.
	if _, err := FitGenScalogram(w, []int{2, 4, 6}, 1, 3, 1, ModeCenter); !errors.Is(err, ErrIncompatibleScales) {
		t.Errorf("single pair: got %v, want ErrIncompatibleScales", err)
	}
}

func TestFitScalogramShapeChecks(t *testing.T) {
	w := mat.NewDense(2, 10, make([]float64, 20))
	if _, err := FitScalogram(w, []int{8, 16, 32}, 2, ModeCenter); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("row/scale mismatch: got %v", err)
	}
	one := mat.NewDense(1, 10, make([]float64, 10))
	if _, err := FitScalogram(one, []int{8}, 2, ModeCenter); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("single scale: got %v", err)
	}
}
