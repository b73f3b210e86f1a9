// Package transpose: sentinel error set. Every contract violation the
// engine can detect returns one of these, wrapped with the operation name
// that surfaced it via opErrorf. Callers should match with errors.Is,
// never by string comparison.
package transpose

import "errors"

var (
	// ErrShapeMismatch is returned when len(v) != rows*cols.
	ErrShapeMismatch = errors.New("transpose: buffer length does not match rows*cols")

	// ErrInvalidShape is returned when rows or cols is negative. rows or
	// cols equal to 0 or 1 are valid no-op shapes, not an error.
	ErrInvalidShape = errors.New("transpose: rows and cols must be non-negative")

	// ErrDimensionOverflow is returned when computing rows*cols (or an
	// internal product derived from it) would overflow int on this
	// platform. The engine refuses to run rather than silently wrap.
	ErrDimensionOverflow = errors.New("transpose: dimension product overflows int")
)

// opErrorf wraps an underlying sentinel with the public operation name that
// surfaced it. The sentinel already carries the "transpose: " domain
// prefix; opErrorf only adds which public entry point produced it.
func opErrorf(op string, err error) error {
	return &opError{op: op, err: err}
}

type opError struct {
	op  string
	err error
}

func (e *opError) Error() string { return e.op + ": " + e.err.Error() }

func (e *opError) Unwrap() error { return e.err }
