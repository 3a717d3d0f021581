// Package rolling applies a point estimator to a sliding window over a time
// series, turning it into a time-indexed estimator sequence.
//
// A rolling window of total span L = (n-1)d + w is decomposed into n
// (possibly overlapping) sub-windows of width w spaced d apart; each
// sub-window's flattened content becomes one column of the observation
// matrix handed to the estimator as a single i.i.d. batch. This is how a
// single long series is reshaped into the matrix-of-i.i.d.-columns form the
// estimators in packages hurst and wavelet expect. The i.i.d. treatment of
// overlapping sub-windows is part of the statistical model and is preserved
// deliberately.
//
// Causal traversal walks window end-points backward from the series end at
// the configured stride; anti-causal traversal walks window start-points
// forward from the series start. Either way, results are emitted in
// chronological order of window end, and windows that would extend past the
// series boundaries are silently skipped, never padded.
//
// Windows are independent, so the harness can optionally fan out over a
// bounded worker pool; only the assembly of results is ordered, not their
// execution.
package rolling
