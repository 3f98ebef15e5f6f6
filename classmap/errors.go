package classmap

import (
	"errors"

	"classmap-builder/dispatch"
	"classmap-builder/internal/mapping"
)

var (
	// ErrInvalidModel is returned when the model type is not a struct or a pointer to one.
	ErrInvalidModel = errors.New("model type must be a struct")
	// ErrColumnOutOfRange is returned by Populate when an entry's column is not in the row.
	ErrColumnOutOfRange = errors.New("column index out of range")
)

// UnknownFieldError reports a path segment that does not name a field of the
// type reached so far.
type UnknownFieldError = mapping.UnknownFieldError

// UnsupportedTypeError reports a leaf whose declared type has no accessor.
type UnsupportedTypeError = dispatch.UnsupportedTypeError
