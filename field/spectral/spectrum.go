package spectral

import (
	"fmt"

	"github.com/cwbudde/algo-field/field"
	"github.com/cwbudde/algo-field/field/fft2d"
)

// Spectrum is the Fourier-domain representation of a fixed-size real field.
//
// The zero value is not usable; create one with New, NewSized or
// NewFromGrid. A Spectrum is exclusively owned and not safe for concurrent
// use.
type Spectrum struct {
	backend fft2d.Backend
	plan    *fft2d.Plan

	width  int
	height int

	spatial   []complex128
	frequency []complex128
}

// New returns an uninitialized spectrum. The first Forward call fixes its
// dimensions.
func New(opts ...Option) *Spectrum {
	cfg := applyOptions(opts)
	return &Spectrum{backend: cfg.backend}
}

// NewSized returns a ready spectrum of the given size with an all-zero
// frequency buffer. The plan and both buffers are built up front.
func NewSized(width, height int, opts ...Option) (*Spectrum, error) {
	s := New(opts...)
	if err := s.init(width, height); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFromGrid returns a spectrum sized for g holding its forward transform.
func NewFromGrid(g *field.Grid, opts ...Option) (*Spectrum, error) {
	s, err := NewSized(g.Width(), g.Height(), opts...)
	if err != nil {
		return nil, err
	}
	if err := s.Forward(g); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Spectrum) init(width, height int) error {
	plan, err := fft2d.NewPlan(width, height, s.backend)
	if err != nil {
		return fmt.Errorf("spectral: failed to create FFT plan: %w", err)
	}
	n := width * height
	s.plan = plan
	s.width, s.height = width, height
	s.spatial = make([]complex128, n)
	s.frequency = make([]complex128, n)
	return nil
}

// Release drops the buffers and the plan. The spectrum returns to the
// uninitialized state and may be reused for a different size.
func (s *Spectrum) Release() {
	s.plan = nil
	s.width, s.height = 0, 0
	s.spatial, s.frequency = nil, nil
}

// Ready reports whether the spectrum has buffers and a plan.
func (s *Spectrum) Ready() bool { return s.plan != nil }

// Width returns the field width, or 0 before initialization.
func (s *Spectrum) Width() int { return s.width }

// Height returns the field height, or 0 before initialization.
func (s *Spectrum) Height() int { return s.height }

// TotalCells returns Width*Height.
func (s *Spectrum) TotalCells() int { return s.width * s.height }

// Backend returns the FFT backend in use. Before initialization this is the
// requested backend.
func (s *Spectrum) Backend() fft2d.Backend {
	if s.plan != nil {
		return s.plan.Backend()
	}
	return s.backend
}

// Forward loads g into the spatial buffer and transforms it into the
// frequency buffer. The first call on an uninitialized spectrum builds the
// plan for g's size; afterwards g must match that size.
func (s *Spectrum) Forward(g *field.Grid) error {
	if s.plan == nil {
		if err := s.init(g.Width(), g.Height()); err != nil {
			return err
		}
	} else {
		s.mustMatch("Forward", g)
	}

	for i, v := range g.Data() {
		s.spatial[i] = complex(v, 0)
	}

	if err := s.plan.Forward(s.frequency, s.spatial); err != nil {
		return fmt.Errorf("spectral: forward transform failed: %w", err)
	}
	return nil
}

// Inverse transforms the frequency buffer back to the spatial domain and
// writes the real part into dst. The plan's inverse carries the 1/total
// normalization, so a Forward/Inverse pair reproduces the input. The
// frequency buffer is left unchanged.
func (s *Spectrum) Inverse(dst *field.Grid) error {
	s.mustReady("Inverse")
	s.mustMatch("Inverse", dst)

	if err := s.plan.Inverse(s.spatial, s.frequency); err != nil {
		return fmt.Errorf("spectral: inverse transform failed: %w", err)
	}

	out := dst.Data()
	for i, c := range s.spatial {
		out[i] = real(c)
	}
	return nil
}

// InverseFromParts reconstructs a spatial field from real and imaginary
// grids given in the shifted, 1/total-scaled convention of Real and
// Imaginary. Both grids are shifted back to native layout, multiplied by the
// cell count and loaded into the frequency buffer, replacing its contents.
// The inputs are not modified.
func (s *Spectrum) InverseFromParts(re, im *field.Grid) (*field.Grid, error) {
	s.mustReady("InverseFromParts")
	s.mustMatch("InverseFromParts", re)
	s.mustMatch("InverseFromParts", im)

	reNative := field.GetGrid(s.width, s.height)
	imNative := field.GetGrid(s.width, s.height)
	defer field.PutGrid(reNative)
	defer field.PutGrid(imNative)

	reNative.CopyFrom(re)
	imNative.CopyFrom(im)
	Shift(reNative)
	Shift(imNative)

	total := float64(s.TotalCells())
	rd, id := reNative.Data(), imNative.Data()
	for i := range s.frequency {
		s.frequency[i] = complex(total*rd[i], total*id[i])
	}

	out := field.New(s.width, s.height)
	if err := s.Inverse(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Multiply performs per-bin complex multiplication of s by other in place.
// This is convolution in the spatial domain; no normalization is applied.
func (s *Spectrum) Multiply(other *Spectrum) {
	s.mustReady("Multiply")
	other.mustReady("Multiply")
	if other.width != s.width || other.height != s.height {
		dimensionPanic("Multiply", s.width, s.height, other.width, other.height)
	}

	for i, a := range s.frequency {
		b := other.frequency[i]
		re, im := real(a), imag(a)
		ore, oim := real(b), imag(b)
		s.frequency[i] = complex(re*ore-im*oim, re*oim+im*ore)
	}
}

// Bin returns the frequency bin at (x, y) in native layout (DC at 0, 0).
func (s *Spectrum) Bin(x, y int) complex128 {
	s.mustReady("Bin")
	return s.frequency[x+s.width*y]
}

// SetBin overwrites the frequency bin at (x, y) in native layout.
func (s *Spectrum) SetBin(x, y int, c complex128) {
	s.mustReady("SetBin")
	s.frequency[x+s.width*y] = c
}

// Coefficients copies the native-layout frequency buffer into dst and
// returns it. dst is reallocated if it is too short.
func (s *Spectrum) Coefficients(dst []complex128) []complex128 {
	s.mustReady("Coefficients")
	if cap(dst) < len(s.frequency) {
		dst = make([]complex128, len(s.frequency))
	}
	dst = dst[:len(s.frequency)]
	copy(dst, s.frequency)
	return dst
}

func (s *Spectrum) mustReady(op string) {
	if s.plan == nil {
		panic(fmt.Errorf("%w: %s called before Forward", ErrNotReady, op))
	}
}

func (s *Spectrum) mustMatch(op string, g *field.Grid) {
	if g.Width() != s.width || g.Height() != s.height {
		dimensionPanic(op, s.width, s.height, g.Width(), g.Height())
	}
}
