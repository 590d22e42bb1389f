package view

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-field/field"
	"github.com/cwbudde/algo-field/field/spectral"
)

// Mode selects which grid a viewer displays.
type Mode int

const (
	ModeSpatial Mode = iota
	ModeReal
	ModeImaginary
	ModeMagnitude
	numModes
)

var modeNames = [...]string{"spatial", "real", "imaginary", "magnitude"}

// String returns the mode name.
func (m Mode) String() string {
	if m >= 0 && m < numModes {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Next returns the following mode, wrapping after the last one.
func (m Mode) Next() Mode {
	return (m + 1) % numModes
}

// ParseMode resolves a mode by name, case-insensitively.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("view: unknown mode %q", name)
}

// Select returns the grid to display for m. The spatial mode returns
// spatial itself; the spectral modes extract a new grid from s.
func Select(m Mode, spatial *field.Grid, s *spectral.Spectrum) *field.Grid {
	switch m {
	case ModeReal:
		return s.Real()
	case ModeImaginary:
		return s.Imaginary()
	case ModeMagnitude:
		return s.Magnitude()
	default:
		return spatial
	}
}

// Probe formats the value of cell (x, y) as "(x, y) = value".
func Probe(g *field.Grid, x, y int) string {
	return fmt.Sprintf("(%d, %d) = %f", x, y, g.At(x, y))
}
