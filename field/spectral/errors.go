package spectral

import (
	"errors"
	"fmt"
)

// Errors carried by contract-violation panics and returned by helpers.
var (
	ErrDimensionMismatch = errors.New("spectral: dimension mismatch")
	ErrNotReady          = errors.New("spectral: spectrum not initialized")
)

func dimensionPanic(op string, w, h, gotW, gotH int) {
	panic(fmt.Errorf("%w: %s: spectrum is %dx%d, got %dx%d", ErrDimensionMismatch, op, w, h, gotW, gotH))
}
