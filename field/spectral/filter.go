package spectral

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-field/field"
	"github.com/cwbudde/algo-vecmath"
)

// Profile selects the transition shape of a mask.
type Profile int

const (
	// ProfileIdeal is a hard 0/1 cutoff.
	ProfileIdeal Profile = iota
	// ProfileGaussian rolls off as exp(-r^2 / (2*cutoff^2)).
	ProfileGaussian
)

// String returns the profile name.
func (p Profile) String() string {
	switch p {
	case ProfileIdeal:
		return "ideal"
	case ProfileGaussian:
		return "gaussian"
	default:
		return fmt.Sprintf("Profile(%d)", int(p))
	}
}

// radius returns the distance of shifted cell (x, y) from DC, measured in
// frequency bins.
func radius(x, y, width, height int) float64 {
	fx := signedFrequency(shiftIndex(x, width), width)
	fy := signedFrequency(shiftIndex(y, height), height)
	return math.Hypot(float64(fx), float64(fy))
}

func lowPassGain(r, cutoff float64, p Profile) float64 {
	if p == ProfileGaussian {
		if cutoff <= 0 {
			if r == 0 {
				return 1
			}
			return 0
		}
		return math.Exp(-r * r / (2 * cutoff * cutoff))
	}
	if r <= cutoff {
		return 1
	}
	return 0
}

func buildMask(width, height int, gain func(r float64) float64) *field.Grid {
	m := field.New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.Set(x, y, gain(radius(x, y, width, height)))
		}
	}
	return m
}

// LowPass returns a DC-centred mask passing bins within cutoff of DC.
func LowPass(width, height int, cutoff float64, p Profile) *field.Grid {
	return buildMask(width, height, func(r float64) float64 {
		return lowPassGain(r, cutoff, p)
	})
}

// HighPass returns the complement of LowPass.
func HighPass(width, height int, cutoff float64, p Profile) *field.Grid {
	return buildMask(width, height, func(r float64) float64 {
		return 1 - lowPassGain(r, cutoff, p)
	})
}

// BandPass returns a DC-centred mask passing bins between low and high.
func BandPass(width, height int, low, high float64, p Profile) *field.Grid {
	return buildMask(width, height, func(r float64) float64 {
		if p == ProfileIdeal {
			if r >= low && r <= high {
				return 1
			}
			return 0
		}
		return lowPassGain(r, high, p) * (1 - lowPassGain(r, low, p))
	})
}

// Filter multiplies the shifted real and imaginary parts of s by mask and
// returns the reconstructed spatial field. The filtered spectrum replaces
// the contents of s's frequency buffer.
func Filter(s *Spectrum, mask *field.Grid) (*field.Grid, error) {
	s.mustReady("Filter")
	s.mustMatch("Filter", mask)

	re := s.Real()
	im := s.Imaginary()
	vecmath.MulBlockInPlace(re.Data(), mask.Data())
	vecmath.MulBlockInPlace(im.Data(), mask.Data())

	return s.InverseFromParts(re, im)
}
