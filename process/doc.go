// Package process defines the stochastic process abstraction used by the
// covariance and estimation layers.
//
// A process is a declarative description of a zero-mean real-valued
// stochastic process: a time style (continuous or discrete), a stationarity
// flag, and an autocovariance function. Capabilities beyond the minimal
// Process contract are expressed as additional interfaces rather than an
// inheritance hierarchy: a stationary process additionally provides a
// lag-based autocovariance (Stationary), a self-similar process exposes its
// Hurst exponent (SelfSimilar). Callers check capabilities explicitly; a
// missing capability surfaces as ErrNotImplemented, never as a panic.
//
// # Concrete processes
//
// FBm is fractional Brownian motion, the canonical self-similar process with
// stationary increments. FGn is fractional Gaussian noise, the stationary
// increment process of FBm at a given step. Filtered is a linear filtration
// of a parent process through a finite kernel; NewDifferential builds the
// common special case of a unit difference at a given lag.
//
// A filtered view of a non-stationary parent can still behave as a
// stationary process: filtering a self-similar parent through a zero-sum
// kernel cancels the non-stationary part of the covariance. This is an
// explicit, checked property (BehavesAsStationary), not a type guarantee.
//
// # Usage
//
//	fgn := process.NewFGn(0.7, 1)
//	c, _ := fgn.AutocovLag(3)
//
//	// Increments of fBm at lag 2, as a filtered view of the parent.
//	d := process.NewDifferential(process.NewFBm(0.7), 2, 1, process.Causal)
//	d.BehavesAsStationary() // true
package process
