package spectral

import (
	"math"

	"github.com/cwbudde/algo-field/field"
	"github.com/cwbudde/algo-vecmath"
)

// Real returns the real part of the spectrum, shifted so DC sits at the
// centre and scaled by 1/TotalCells.
func (s *Spectrum) Real() *field.Grid {
	s.mustReady("Real")
	g := field.New(s.width, s.height)
	d := g.Data()
	for i, c := range s.frequency {
		d[i] = real(c)
	}
	Shift(g)
	g.Scale(1 / float64(s.TotalCells()))
	return g
}

// Imaginary returns the imaginary part of the spectrum, shifted so DC sits
// at the centre and scaled by 1/TotalCells.
func (s *Spectrum) Imaginary() *field.Grid {
	s.mustReady("Imaginary")
	g := field.New(s.width, s.height)
	d := g.Data()
	for i, c := range s.frequency {
		d[i] = imag(c)
	}
	Shift(g)
	g.Scale(1 / float64(s.TotalCells()))
	return g
}

// Magnitude returns |X| per bin, shifted but at native transform scale.
// Unlike Real and Imaginary it is not divided by TotalCells.
func (s *Spectrum) Magnitude() *field.Grid {
	s.mustReady("Magnitude")
	g := field.New(s.width, s.height)
	re, im := s.split()
	defer field.PutGrid(re)
	defer field.PutGrid(im)

	vecmath.Magnitude(g.Data(), re.Data(), im.Data())
	Shift(g)
	return g
}

// Power returns |X|^2 per bin, shifted and at native transform scale.
func (s *Spectrum) Power() *field.Grid {
	s.mustReady("Power")
	g := field.New(s.width, s.height)
	re, im := s.split()
	defer field.PutGrid(re)
	defer field.PutGrid(im)

	vecmath.Power(g.Data(), re.Data(), im.Data())
	Shift(g)
	return g
}

// Phase returns atan2(im, re) per bin in radians, shifted.
func (s *Spectrum) Phase() *field.Grid {
	s.mustReady("Phase")
	g := field.New(s.width, s.height)
	d := g.Data()
	for i, c := range s.frequency {
		d[i] = math.Atan2(imag(c), real(c))
	}
	Shift(g)
	return g
}

// split copies the frequency buffer into pooled real and imaginary grids.
func (s *Spectrum) split() (re, im *field.Grid) {
	re = field.GetGrid(s.width, s.height)
	im = field.GetGrid(s.width, s.height)
	rd, id := re.Data(), im.Data()
	for i, c := range s.frequency {
		rd[i] = real(c)
		id[i] = imag(c)
	}
	return re, im
}
