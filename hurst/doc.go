// Package hurst implements maximum-likelihood estimation of the Hurst
// exponent and volatility of fractional Gaussian noise, together with the
// numerically stable likelihood core shared by every MLE variant.
//
// # Likelihood core
//
// Naive evaluation of x' S^-1 x and log det S is unstable when the
// covariance S is near singular, which is common for Hurst exponents close
// to 0 or 1 and for long lag ranges. The core eigendecomposes S once,
// discards eigen-pairs at or below a cutoff, computes the quadratic form as
// sum (u_i' x)^2 / lambda_i over the retained pairs and the log-determinant
// as sum log lambda_i. The cutoff acts as a rank truncation: numerical
// degeneracy is absorbed, not raised.
//
// The log-likelihood is a scale likelihood: volatility is profiled out
// analytically, so only the shape of the covariance, not its scale, matters
// during the search, and the volatility is recovered in closed form from the
// quadratic form afterwards.
//
// # Estimation
//
// FitFGn fits (H, sigma) to an observation matrix whose columns are i.i.d.
// realizations, using a derivative-free bounded search over H (golden
// section) or an exhaustive grid scan. ProfileFit runs the same loop over
// any caller-supplied covariance model, which is how the wavelet-domain MLE
// reuses this package. FitFGnJoint performs a 2-D boxed Nelder-Mead search
// over (H, sigma) without profiling, as a cross-check.
//
// Each likelihood evaluation costs one eigendecomposition, O(N^3) for an
// N-point window; the bounded search multiplies this by O(log(1/tol))
// iterations. Beyond a few hundred points per window this cost dominates,
// which is what motivates running the estimator on short rolling windows
// (see package rolling).
//
// Optimizer non-convergence is not an error: the best state found is
// returned with its trace, and callers inspect the trace when precision
// matters. Cancellation is honoured between optimizer iterations via the
// context variants.
package hurst
