package timegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRegular(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		want bool
	}{
		{"evenly spaced integers", Grid{1, 2, 3, 4, 5}, true},
		{"missing point", Grid{1, 2, 4, 5}, false},
		{"empty", Grid{}, true},
		{"single point", Grid{3}, true},
		{"two points", Grid{3, 7}, true},
		{"tiny jitter within tolerance", Grid{0, 1, 2 + 1e-12, 3}, true},
		{"jitter beyond tolerance", Grid{0, 1, 2 + 1e-6, 3}, false},
		{"negative step", Grid{5, 4, 3, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.grid.IsRegular())
		})
	}
}

func TestRegularConstructor(t *testing.T) {
	g := Regular(1.5, 0.25, 10)
	assert.Equal(t, 10, g.Len())
	assert.True(t, g.IsRegular())
	assert.InDelta(t, 0.25, g.Step(), 1e-15)
	assert.InDelta(t, 1.5+9*0.25, g[9], 1e-15)
}

func TestIntegers(t *testing.T) {
	g := Integers(1, 5)
	assert.Equal(t, Grid{1, 2, 3, 4, 5}, g)
	assert.True(t, g.IsRegular())
	assert.Equal(t, 1.0, g.Step())
}

func TestStepDegenerate(t *testing.T) {
	assert.Equal(t, 0.0, Grid{}.Step())
	assert.Equal(t, 0.0, Grid{42}.Step())
}

func TestCopyIndependence(t *testing.T) {
	g := Grid{1, 2, 3}
	c := g.Copy()
	c[0] = 99
	assert.Equal(t, 1.0, g[0])
}
