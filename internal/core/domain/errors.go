package domain

import "errors"

// Domain errors represent conversion failures.
// Adapters wrap them with context; callers match with errors.Is.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown format, encoding or transformer.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrMissingInput indicates the source text file does not exist.
	ErrMissingInput = errors.New("input file not found")

	// ErrWriteFailed indicates the destination package could not be written.
	// No partial output is left behind when this is returned.
	ErrWriteFailed = errors.New("write failed")

	// ErrNotImplemented indicates an optional adapter is not configured.
	ErrNotImplemented = errors.New("not implemented")
)
