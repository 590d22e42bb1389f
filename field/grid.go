package field

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Grid is a rectangular, row-major array of float64 samples.
type Grid struct {
	width  int
	height int
	data   []float64
}

// New returns a zero-filled grid. Non-positive dimensions yield an empty grid.
func New(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		return &Grid{}
	}
	return &Grid{width: width, height: height, data: make([]float64, width*height)}
}

// FromSlice wraps data without copying.
// Mutations to the slice are visible through the Grid and vice versa.
func FromSlice(width, height int, data []float64) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: %dx%d grid needs %d samples, got %d",
			ErrSizeMismatch, width, height, width*height, len(data))
	}
	return &Grid{width: width, height: height, data: data}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns Width*Height.
func (g *Grid) Len() int { return len(g.data) }

// Data returns the backing slice.
func (g *Grid) Data() []float64 { return g.data }

// Index returns the flat index of cell (x, y).
func (g *Grid) Index(x, y int) int { return x + g.width*y }

// At returns the value at (x, y).
func (g *Grid) At(x, y int) float64 { return g.data[x+g.width*y] }

// Set stores v at (x, y).
func (g *Grid) Set(x, y int, v float64) { g.data[x+g.width*y] = v }

// SameSize reports whether g and other have equal dimensions.
func (g *Grid) SameSize(other *Grid) bool {
	return other != nil && g.width == other.width && g.height == other.height
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.data))
	copy(data, g.data)
	return &Grid{width: g.width, height: g.height, data: data}
}

// CopyFrom overwrites g with the contents of src. Panics if sizes differ.
func (g *Grid) CopyFrom(src *Grid) {
	g.mustMatch(src)
	copy(g.data, src.data)
}

// Fill sets every cell to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Scale multiplies every cell by s.
func (g *Grid) Scale(s float64) {
	floats.Scale(s, g.data)
}

// Add adds other cellwise into g. Panics if sizes differ.
func (g *Grid) Add(other *Grid) {
	g.mustMatch(other)
	floats.Add(g.data, other.data)
}

// Mul multiplies g cellwise by other. Panics if sizes differ.
func (g *Grid) Mul(other *Grid) {
	g.mustMatch(other)
	floats.Mul(g.data, other.data)
}

// Min returns the smallest sample, or 0 for an empty grid.
func (g *Grid) Min() float64 {
	if len(g.data) == 0 {
		return 0
	}
	return floats.Min(g.data)
}

// Max returns the largest sample, or 0 for an empty grid.
func (g *Grid) Max() float64 {
	if len(g.data) == 0 {
		return 0
	}
	return floats.Max(g.data)
}

// Sum returns the sum of all samples.
func (g *Grid) Sum() float64 {
	return floats.Sum(g.data)
}

// Mean returns the average sample value, or 0 for an empty grid.
func (g *Grid) Mean() float64 {
	if len(g.data) == 0 {
		return 0
	}
	return floats.Sum(g.data) / float64(len(g.data))
}

// Normalize rescales the grid in place so that its range becomes [0, 1].
// A constant grid becomes all zeros.
func (g *Grid) Normalize() {
	if len(g.data) == 0 {
		return
	}
	lo, hi := g.Min(), g.Max()
	floats.AddConst(-lo, g.data)
	span := hi - lo
	if span == 0 {
		return
	}
	floats.Scale(1/span, g.data)
}

// EqualApprox reports whether both grids have the same size and every pair of
// samples is within tol, either absolutely or relatively.
func (g *Grid) EqualApprox(other *Grid, tol float64) bool {
	if !g.SameSize(other) {
		return false
	}
	return floats.EqualApprox(g.data, other.data, tol)
}

func (g *Grid) mustMatch(other *Grid) {
	if !g.SameSize(other) {
		panic(fmt.Sprintf("field: grid size mismatch: %dx%d vs %s", g.width, g.height, sizeString(other)))
	}
}

func sizeString(g *Grid) string {
	if g == nil {
		return "nil"
	}
	return fmt.Sprintf("%dx%d", g.width, g.height)
}
