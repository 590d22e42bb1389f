// Package spectral maintains the Fourier-domain view of a 2D real field.
//
// A [Spectrum] owns a spatial staging buffer, a frequency buffer and one
// [fft2d.Plan]. It starts uninitialized; the first [Spectrum.Forward] (or
// [NewSized]) fixes the dimensions and builds the plan, after which every
// transform reuses it:
//
//	s := spectral.New()
//	if err := s.Forward(img); err != nil {
//		return err
//	}
//	re, im := s.Real(), s.Imaginary() // DC-centred, scaled by 1/total
//	mag := s.Magnitude()              // DC-centred, native scale
//
// # Conventions
//
// The frequency buffer holds the unnormalized forward DFT in native layout,
// DC at (0, 0). [Spectrum.Real] and [Spectrum.Imaginary] return it shifted
// (DC moved to the centre by [Shift]) and divided by the cell count.
// [Spectrum.Magnitude] and [Spectrum.Power] are shifted but left at native
// scale. [Spectrum.InverseFromParts] accepts edited real and imaginary
// grids in the scaled, shifted convention, so
//
//	s.InverseFromParts(s.Real(), s.Imaginary())
//
// reproduces the last forward input.
//
// # Contract violations
//
// Passing a grid whose size differs from the spectrum's, or reading a
// spectrum before it has buffers, panics with an error wrapping
// [ErrDimensionMismatch] or [ErrNotReady]. Transform failures reported by
// the FFT backend are returned as errors.
package spectral
