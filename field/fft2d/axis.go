package fft2d

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// axisPlan transforms one row or column in place.
// inverse must be normalized by 1/n.
type axisPlan interface {
	forward(data []complex128) error
	inverse(data []complex128) error
}

// identityAxis handles length-1 axes, where the DFT is the identity.
type identityAxis struct{}

func (identityAxis) forward([]complex128) error { return nil }
func (identityAxis) inverse([]complex128) error { return nil }

type algofftAxis struct {
	plan *algofft.Plan[complex128]
}

func newAlgofftAxis(n int) (axisPlan, error) {
	if n == 1 {
		return identityAxis{}, nil
	}
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fft2d: failed to create algo-fft plan of length %d: %w", n, err)
	}
	return algofftAxis{plan: plan}, nil
}

func (a algofftAxis) forward(data []complex128) error { return a.plan.Forward(data, data) }

// algo-fft normalizes its inverse by 1/n.
func (a algofftAxis) inverse(data []complex128) error { return a.plan.Inverse(data, data) }

type gonumAxis struct {
	fft     *fourier.CmplxFFT
	scratch []complex128
	scale   complex128
}

func newGonumAxis(n int) (axisPlan, error) {
	if n == 1 {
		return identityAxis{}, nil
	}
	return &gonumAxis{
		fft:     fourier.NewCmplxFFT(n),
		scratch: make([]complex128, n),
		scale:   complex(1/float64(n), 0),
	}, nil
}

func (g *gonumAxis) forward(data []complex128) error {
	copy(g.scratch, data)
	g.fft.Coefficients(data, g.scratch)
	return nil
}

// gonum's sequence is unnormalized; scale to match the other backends.
func (g *gonumAxis) inverse(data []complex128) error {
	copy(g.scratch, data)
	g.fft.Sequence(data, g.scratch)
	for i := range data {
		data[i] *= g.scale
	}
	return nil
}

// newAxis builds a 1D plan for backend, which must not be BackendAuto or
// BackendGoDSP.
func newAxis(backend Backend, n int) (axisPlan, error) {
	switch backend {
	case BackendAlgoFFT:
		return newAlgofftAxis(n)
	case BackendGonum:
		return newGonumAxis(n)
	default:
		return nil, fmt.Errorf("%w: %v has no 1D plans", ErrUnknownBackend, backend)
	}
}
