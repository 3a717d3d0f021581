// Package wavelet implements wavelet-domain Hurst and volatility estimators
// built on the B-spline discrete continuous wavelet transform (DCWT).
//
// The common ground of every estimator here is the covariance model of
// B-spline wavelet coefficients of fractional Brownian motion: for scales
// a_i, a_j and a time shift b,
//
//	Cov(W(a_i, t+b), W(a_j, t)) = sigma^2 (a_i a_j)^(H+1/2) C1rho(b/sqrt(a_i a_j), a_i/a_j, H, v, mode)
//
// where C1rho is the closed-form kernel evaluated in the Fourier domain: the
// vanishing moments of the wavelet make the |t-s|^2H term of the fBm
// covariance the only contributor, and the remaining integral is computed by
// Gauss-Legendre panels over a geometric subdivision of the frequency axis.
//
// # Estimators
//
// FitMLE builds the full multi-lag covariance model and reuses the
// likelihood core and bounded optimizer of package hurst; with zero lags it
// degrades to the partial (contemporaneous) wavelet MLE. FitScalogram and
// FitGenScalogram instead regress log variance-per-scale (or log absolute
// covariance at a rational scale ratio) against log scale, trading
// statistical efficiency for O(J) cost; they share the (H, sigma) output
// contract of the MLE estimators.
//
// Transform computes the B-spline DCWT of a sample path at even integer
// scales, producing the coefficient matrix (rows = scales, columns = time)
// the estimators consume.
package wavelet
