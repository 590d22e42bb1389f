package fft2d

import (
	"fmt"

	"github.com/mjibson/go-dsp/fft"
)

// Plan executes 2D transforms of a fixed width and height.
// A Plan keeps scratch state and is not safe for concurrent use.
type Plan struct {
	width   int
	height  int
	backend Backend

	rows axisPlan // length width
	cols axisPlan // length height; shares rows when the grid is square

	column []complex128
}

// NewPlan creates a plan for width*height buffers using backend.
// Both axis plans are built up front.
func NewPlan(width, height int, backend Backend) (*Plan, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	p := &Plan{width: width, height: height, backend: backend}

	switch backend {
	case BackendGoDSP:
		return p, nil
	case BackendAlgoFFT, BackendGonum:
		if err := p.buildAxes(backend); err != nil {
			return nil, err
		}
	case BackendAuto:
		if err := p.buildAxes(BackendAlgoFFT); err != nil {
			if err := p.buildAxes(BackendGonum); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownBackend, backend)
	}

	p.column = make([]complex128, height)
	return p, nil
}

func (p *Plan) buildAxes(backend Backend) error {
	rows, err := newAxis(backend, p.width)
	if err != nil {
		return err
	}
	cols := rows
	if p.height != p.width {
		cols, err = newAxis(backend, p.height)
		if err != nil {
			return err
		}
	}
	p.rows, p.cols, p.backend = rows, cols, backend
	return nil
}

// Width returns the number of columns per row.
func (p *Plan) Width() int { return p.width }

// Height returns the number of rows.
func (p *Plan) Height() int { return p.height }

// Len returns width*height, the required buffer length.
func (p *Plan) Len() int { return p.width * p.height }

// Backend returns the backend executing the plan. For a plan requested with
// BackendAuto this is the backend that was actually selected.
func (p *Plan) Backend() Backend { return p.backend }

// Forward computes the unnormalized 2D DFT of src into dst.
// dst may alias src.
func (p *Plan) Forward(dst, src []complex128) error {
	return p.transform(dst, src, false)
}

// Inverse computes the inverse 2D DFT of src into dst, normalized by
// 1/(width*height). dst may alias src.
func (p *Plan) Inverse(dst, src []complex128) error {
	return p.transform(dst, src, true)
}

func (p *Plan) transform(dst, src []complex128, inverse bool) error {
	n := p.Len()
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: plan %dx%d needs %d, got dst=%d src=%d",
			ErrLengthMismatch, p.width, p.height, n, len(dst), len(src))
	}

	if p.backend == BackendGoDSP {
		return p.transformGoDSP(dst, src, inverse)
	}

	copy(dst, src)

	apply := func(ap axisPlan, data []complex128) error {
		if inverse {
			return ap.inverse(data)
		}
		return ap.forward(data)
	}

	for y := 0; y < p.height; y++ {
		row := dst[y*p.width : (y+1)*p.width]
		if err := apply(p.rows, row); err != nil {
			return fmt.Errorf("fft2d: row %d: %w", y, err)
		}
	}

	for x := 0; x < p.width; x++ {
		for y := range p.column {
			p.column[y] = dst[x+p.width*y]
		}
		if err := apply(p.cols, p.column); err != nil {
			return fmt.Errorf("fft2d: column %d: %w", x, err)
		}
		for y, v := range p.column {
			dst[x+p.width*y] = v
		}
	}

	return nil
}

// transformGoDSP runs go-dsp's whole-array transform. go-dsp allocates its
// result, so rows are gathered into a [][]complex128 view and copied back.
func (p *Plan) transformGoDSP(dst, src []complex128, inverse bool) error {
	rows := make([][]complex128, p.height)
	for y := range rows {
		rows[y] = src[y*p.width : (y+1)*p.width]
	}

	var out [][]complex128
	if inverse {
		out = fft.IFFT2(rows)
	} else {
		out = fft.FFT2(rows)
	}

	for y, row := range out {
		copy(dst[y*p.width:(y+1)*p.width], row)
	}
	return nil
}
