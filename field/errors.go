package field

import "errors"

// Errors returned by grid constructors and readers.
var (
	ErrSizeMismatch = errors.New("field: size mismatch")
	ErrInvalidSize  = errors.New("field: invalid size")
	ErrInvalidCSV   = errors.New("field: invalid csv")
)
