// Package timegrid provides sampling grids for stochastic processes.
//
// A Grid is an ordered sequence of sampling times, continuous or integer
// valued. Regularity (constant spacing) is a derived, checked property of a
// grid, not an intrinsic tag: covariance code asks IsRegular at the point of
// use and branches explicitly.
//
// # Usage
//
// Build a regular grid and check its properties:
//
//	g := timegrid.Regular(0, 0.5, 100)
//	g.IsRegular()  // true
//	g.Step()       // 0.5
//
// Integer grids for discrete-time processes:
//
//	g := timegrid.Integers(1, 100)  // 1, 2, ..., 100
//
// Any float64 slice is a valid grid:
//
//	g := timegrid.Grid{1, 2, 4, 5}
//	g.IsRegular()  // false
package timegrid
