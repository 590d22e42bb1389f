package spectral

import (
	"fmt"

	"github.com/cwbudde/algo-field/field"
)

// Convolve returns the circular convolution of a and b computed through the
// convolution theorem: forward both, multiply the spectra, invert.
func Convolve(a, b *field.Grid, opts ...Option) (*field.Grid, error) {
	if !a.SameSize(b) {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch,
			a.Width(), a.Height(), b.Width(), b.Height())
	}

	sa, err := NewFromGrid(a, opts...)
	if err != nil {
		return nil, err
	}
	sb, err := NewFromGrid(b, opts...)
	if err != nil {
		return nil, err
	}

	sa.Multiply(sb)

	out := field.New(a.Width(), a.Height())
	if err := sa.Inverse(out); err != nil {
		return nil, err
	}
	return out, nil
}

// CircularConvolve computes the 2D circular convolution of a and b directly.
// This is O(N^2) in the cell count and serves as a reference for Convolve.
func CircularConvolve(a, b *field.Grid) (*field.Grid, error) {
	if a.Len() == 0 || b.Len() == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDimensionMismatch)
	}
	if !a.SameSize(b) {
		return nil, fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch,
			a.Width(), a.Height(), b.Width(), b.Height())
	}

	w, h := a.Width(), a.Height()
	out := field.New(w, h)
	for y1 := 0; y1 < h; y1++ {
		for x1 := 0; x1 < w; x1++ {
			av := a.At(x1, y1)
			if av == 0 {
				continue
			}
			for y2 := 0; y2 < h; y2++ {
				y := (y1 + y2) % h
				for x2 := 0; x2 < w; x2++ {
					x := (x1 + x2) % w
					out.Set(x, y, out.At(x, y)+av*b.At(x2, y2))
				}
			}
		}
	}
	return out, nil
}
