package wavelet

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gofractal/covariance"
	"github.com/sartorproj/gofractal/process"
	"github.com/sartorproj/gofractal/timegrid"
)

// sampleFBm draws one length-n fBm path with the given Hurst exponent and
// volatility: exact Cholesky sampling of the increments, then a cumulative
// sum.
func sampleFBm(t *testing.T, h, vol float64, n int, seed uint64) []float64 {
	t.Helper()

	sigma, err := covariance.Matrix(process.NewFGn(h, 1), timegrid.Integers(0, n))
	if err != nil {
		t.Fatalf("covariance: %v", err)
	}
	var chol mat.Cholesky
	if !chol.Factorize(sigma) {
		t.Fatalf("fGn covariance not positive definite at H=%v, n=%d", h, n)
	}
	var l mat.TriDense
	chol.LTo(&l)

	normal := distuv.Normal{Mu: 0, Sigma: vol, Src: rand.NewSource(seed)}
	z := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		z.SetVec(i, normal.Rand())
	}
	var incr mat.VecDense
	incr.MulVec(&l, z)

	path := make([]float64, n)
	acc := 0.0
	for i := 0; i < n; i++ {
		acc += incr.AtVec(i)
		path[i] = acc
	}
	return path
}
