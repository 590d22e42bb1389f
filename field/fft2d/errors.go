package fft2d

import "errors"

// Errors returned by plan construction and execution.
var (
	ErrInvalidSize    = errors.New("fft2d: invalid size")
	ErrLengthMismatch = errors.New("fft2d: buffer length mismatch")
	ErrUnknownBackend = errors.New("fft2d: unknown backend")
)
