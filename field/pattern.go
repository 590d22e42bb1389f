package field

import (
	"math"
	"math/rand"
)

// Noise returns a grid of uniform noise in [-amplitude, amplitude]. The same
// seed always yields the same grid.
func Noise(seed int64, amplitude float64, width, height int) *Grid {
	g := New(width, height)
	rng := rand.New(rand.NewSource(seed))
	for i := range g.data {
		g.data[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return g
}

// Impulse returns a zero grid with a single 1 at (x, y). Coordinates outside
// the grid yield all zeros.
func Impulse(width, height, x, y int) *Grid {
	g := New(width, height)
	if x >= 0 && x < width && y >= 0 && y < height {
		g.Set(x, y, 1)
	}
	return g
}

// Constant returns a grid filled with value.
func Constant(value float64, width, height int) *Grid {
	g := New(width, height)
	g.Fill(value)
	return g
}

// Plane returns cos(2*pi*(fx*x/width + fy*y/height)), a single plane wave
// whose spectrum has energy only at (fx, fy) and its mirror.
func Plane(fx, fy float64, width, height int) *Grid {
	g := New(width, height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			phase := 2 * math.Pi * (fx*float64(x)/float64(width) + fy*float64(y)/float64(height))
			g.data[x+g.width*y] = math.Cos(phase)
		}
	}
	return g
}

// Ramp returns a grid whose cell (x, y) holds its flat index x + width*y.
func Ramp(width, height int) *Grid {
	g := New(width, height)
	for i := range g.data {
		g.data[i] = float64(i)
	}
	return g
}
