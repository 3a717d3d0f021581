package hurst

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotPSD indicates a covariance matrix with a significantly negative
	// eigenvalue.
	ErrNotPSD = errors.New("hurst: covariance matrix is not positive semi-definite")

	// ErrDimensionMismatch indicates an observation whose row count does
	// not match the covariance dimension.
	ErrDimensionMismatch = errors.New("hurst: dimension mismatch")

	// ErrDegenerate indicates a covariance with no retained eigenvalues or
	// a vanishing quadratic form.
	ErrDegenerate = errors.New("hurst: degenerate likelihood")
)

// psdRelTol is the relative tolerance on negative eigenvalues before a
// matrix is rejected as non-PSD. Small negative eigenvalues are expected
// from round-off on near-singular covariances.
const psdRelTol = 1e-8

// QuadFormEig evaluates the safe quadratic form x' S^+ x and the
// log-determinant of a symmetric positive semi-definite matrix through its
// eigendecomposition. Eigen-pairs with eigenvalue <= eps are discarded; the
// quadratic form aggregates over every column of x. Returns the quadratic
// form, the log-determinant over retained eigenvalues, and the retained
// count.
func QuadFormEig(sigma *mat.SymDense, x *mat.Dense, eps float64) (qf, logdet float64, kept int, err error) {
	n := sigma.SymmetricDim()
	xr, xc := x.Dims()
	if xr != n {
		return 0, 0, 0, fmt.Errorf("%w: covariance is %dx%d, observation has %d rows",
			ErrDimensionMismatch, n, n, xr)
	}

	var eig mat.EigenSym
	if !eig.Factorize(sigma, true) {
		return 0, 0, 0, fmt.Errorf("hurst: eigendecomposition failed")
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	maxVal := 0.0
	for _, v := range vals {
		if v > maxVal {
			maxVal = v
		}
	}
	for _, v := range vals {
		if v < -psdRelTol*math.Max(maxVal, 1) {
			return 0, 0, 0, fmt.Errorf("%w: eigenvalue %v", ErrNotPSD, v)
		}
	}

	// Project the observations onto the eigenbasis once.
	var proj mat.Dense
	proj.Mul(vecs.T(), x)

	for i, v := range vals {
		if v <= eps {
			continue
		}
		kept++
		logdet += math.Log(v)
		for j := 0; j < xc; j++ {
			p := proj.At(i, j)
			qf += p * p / v
		}
	}
	if kept == 0 {
		return 0, 0, 0, fmt.Errorf("%w: no eigenvalues above cutoff %v", ErrDegenerate, eps)
	}
	return qf, logdet, kept, nil
}

// LogLikelihood evaluates the profiled-scale Gaussian log-likelihood of an
// observation matrix x (columns i.i.d. with common covariance sigma):
//
//	-1/2 ( numel(x) * log(x' S^+ x) + ncols(x) * logdet(S) )
//
// The quadratic form aggregates across all columns before the single
// logarithm, which profiles the volatility out analytically: only the shape
// of sigma matters, its scale shifts the value by a constant.
func LogLikelihood(sigma *mat.SymDense, x *mat.Dense, eps float64) (float64, error) {
	qf, logdet, _, err := QuadFormEig(sigma, x, eps)
	if err != nil {
		return 0, err
	}
	if qf <= 0 {
		return 0, fmt.Errorf("%w: quadratic form %v", ErrDegenerate, qf)
	}
	xr, xc := x.Dims()
	numel := float64(xr * xc)
	return -0.5 * (numel*math.Log(qf) + float64(xc)*logdet), nil
}
