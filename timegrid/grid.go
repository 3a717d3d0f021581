package timegrid

import "math"

// RegularityTol is the tolerance used by IsRegular when checking that the
// second difference of grid points vanishes.
const RegularityTol = 1e-10

// Grid is an ordered sequence of sampling times.
type Grid []float64

// Regular creates a grid of n points starting at start with constant spacing
// step.
func Regular(start, step float64, n int) Grid {
	g := make(Grid, n)
	for i := range g {
		g[i] = start + float64(i)*step
	}
	return g
}

// Integers creates the integer grid start, start+1, ..., start+n-1.
func Integers(start, n int) Grid {
	g := make(Grid, n)
	for i := range g {
		g[i] = float64(start + i)
	}
	return g
}

// Len returns the number of grid points.
func (g Grid) Len() int {
	return len(g)
}

// IsRegular reports whether the grid has constant spacing. Grids of length
// two or less are always regular; longer grids are regular when every second
// difference of the points is below RegularityTol in absolute value.
func (g Grid) IsRegular() bool {
	if len(g) <= 2 {
		return true
	}
	step := g[1] - g[0]
	for i := 2; i < len(g); i++ {
		if math.Abs((g[i]-g[i-1])-step) > RegularityTol {
			return false
		}
	}
	return true
}

// Step returns the spacing of the first two grid points. For a regular grid
// this is the common spacing; grids of length less than two have step zero.
func (g Grid) Step() float64 {
	if len(g) < 2 {
		return 0
	}
	return g[1] - g[0]
}

// Copy creates a deep copy of the grid.
func (g Grid) Copy() Grid {
	out := make(Grid, len(g))
	copy(out, g)
	return out
}
