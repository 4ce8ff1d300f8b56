package descriptors

import "errors"

var (
	// ErrInvalidArgument is returned when a caller supplies an unusable value, e.g. an empty name.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNilReference is returned when a required object is absent.
	ErrNilReference = errors.New("nil reference")
	// ErrUnsupportedType is returned when a Go type can not be mapped to an input type.
	ErrUnsupportedType = errors.New("unsupported type")
)
