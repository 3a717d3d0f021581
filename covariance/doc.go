// Package covariance computes covariance matrices and sequences from any
// process satisfying the process contract.
//
// The package is the protocol layer between a declarative process
// description and the estimation code: it knows when a covariance matrix may
// be built from a length-N autocovariance sequence (stationary-behaving
// process on a verified-regular grid, Toeplitz fast path with O(N) process
// evaluations) and when it must fall back to the dense pairwise path
// (O(N^2) evaluations, lower triangle mirrored).
//
// # Operations
//
// Matrix builds the symmetric autocovariance matrix of a process on a grid.
// CrossMatrix builds the rectangular cross-covariance between two grids.
// Sequence computes the lag autocovariance sequence of a stationary-behaving
// process. Condition performs Gaussian conditioning with an SVD
// pseudo-inverse of the observation covariance, returning the conditional
// mean, conditional covariance and gain matrix. LevinsonDurbin converts an
// autocovariance sequence into forward prediction coefficients, innovation
// variances and partial correlations; PartialAutocorr selects between the
// recursion and a process-provided closed form.
//
// # Errors
//
// Contract violations (dimension mismatch, empty grid, irregular grid where
// a regular one is required) surface as wrapped sentinel errors. A process
// lacking a required capability surfaces process.ErrNotImplemented so that
// callers can fall back rather than crash.
package covariance
