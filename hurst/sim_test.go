package hurst

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gofractal/covariance"
	"github.com/sartorproj/gofractal/process"
	"github.com/sartorproj/gofractal/timegrid"
)

// sampleFGn draws cols i.i.d. length-n paths of fractional Gaussian noise
// with the given Hurst exponent and volatility by exact Cholesky sampling.
func sampleFGn(t *testing.T, h, vol float64, n, cols int, seed uint64) *mat.Dense {
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
	z := mat.NewDense(n, cols, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < cols; j++ {
			z.Set(i, j, normal.Rand())
		}
	}

	x := mat.NewDense(n, cols, nil)
	x.Mul(&l, z)
	return x
}
