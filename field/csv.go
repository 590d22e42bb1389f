package field

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// MaxCSVCells bounds the grid ReadCSV will allocate.
const MaxCSVCells = 1 << 26

// Cell is one CSV row of a grid export.
type Cell struct {
	X     int     `csv:"x"`
	Y     int     `csv:"y"`
	Value float64 `csv:"value"`
}

// Cells returns every cell of g in storage order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, len(g.data))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			cells = append(cells, Cell{X: x, Y: y, Value: g.data[x+g.width*y]})
		}
	}
	return cells
}

// WriteCSV writes g as x,y,value rows with a header line.
func WriteCSV(w io.Writer, g *Grid) error {
	if err := gocsv.Marshal(g.Cells(), w); err != nil {
		return fmt.Errorf("field: writing csv: %w", err)
	}
	return nil
}

// ReadCSV rebuilds a grid from x,y,value rows. The grid spans the largest
// coordinates present; cells that are not listed stay zero. Tables whose
// extent exceeds MaxCSVCells are rejected with ErrInvalidCSV.
func ReadCSV(r io.Reader) (*Grid, error) {
	var cells []Cell
	if err := gocsv.Unmarshal(r, &cells); err != nil {
		return nil, fmt.Errorf("field: reading csv: %w", err)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: no cells", ErrInvalidCSV)
	}

	width, height := 0, 0
	for _, c := range cells {
		if c.X < 0 || c.Y < 0 {
			return nil, fmt.Errorf("%w: negative coordinate (%d, %d)", ErrInvalidCSV, c.X, c.Y)
		}
		if c.X >= MaxCSVCells || c.Y >= MaxCSVCells {
			return nil, fmt.Errorf("%w: coordinate (%d, %d) too large", ErrInvalidCSV, c.X, c.Y)
		}
		width = max(width, c.X+1)
		height = max(height, c.Y+1)
	}
	if width > MaxCSVCells/height {
		return nil, fmt.Errorf("%w: %dx%d grid exceeds %d cells", ErrInvalidCSV, width, height, MaxCSVCells)
	}

	g := New(width, height)
	for _, c := range cells {
		g.Set(c.X, c.Y, c.Value)
	}
	return g, nil
}
