// Package gofractal provides Hurst exponent and volatility estimation for
// self-similar and long-memory stochastic processes.
//
// GoFractal is a Go package for fitting fractal and long-memory models
// (fractional Brownian motion and its discrete analogues) to observed sample
// paths. It supplies the covariance machinery the estimators depend on: a
// generic process abstraction that turns a declarative process description
// into covariance matrices and sequences, a numerically stable log-likelihood
// core built on eigendecomposition, derivative-free constrained optimization
// drivers, wavelet-domain covariance models, and a rolling-window harness
// that turns any point estimator into a time-indexed estimator sequence.
//
// # Quick Start
//
// Estimate the Hurst exponent of a sample of fractional Gaussian noise:
//
//	obs := mat.NewDense(len(x), 1, x)
//	est, _ := hurst.FitFGn(obs, hurst.DefaultConfig())
//	fmt.Printf("H=%.3f sigma=%.3f\n", est.Hurst, est.Volatility)
//
// Use the fast scalogram estimator on wavelet coefficients:
//
//	scl := []int{4, 8, 16, 32}
//	w, _ := wavelet.Transform(x, scl, 2, wavelet.ModeCenter)
//	est, _ := wavelet.FitScalogram(w, scl, 2, wavelet.ModeCenter)
//
// Track a time-varying Hurst exponent with the rolling harness:
//
//	pts, _ := rolling.RollSeries(estimator, x, rolling.DefaultConfig())
//
// # Packages
//
// The library is organized into the following packages:
//
//   - process: process abstraction and concrete fBm/fGn/filtered models
//   - timegrid: sampling grids and regularity checks
//   - covariance: autocovariance matrices, Gaussian conditioning, Levinson-Durbin
//   - hurst: stable likelihood core and time-domain maximum-likelihood estimation
//   - wavelet: B-spline DCWT covariance models and wavelet-domain estimators
//   - rolling: causal/anti-causal rolling-window estimation harness
//
// # References
//
//   - Mandelbrot, B. B., & Van Ness, J. W. (1968). Fractional Brownian Motions,
//     Fractional Noises and Applications
//   - Flandrin, P. (1992). Wavelet Analysis and Synthesis of Fractional
//     Brownian Motion
//   - Beran, J. (1994). Statistics for Long-Memory Processes
package gofractal
