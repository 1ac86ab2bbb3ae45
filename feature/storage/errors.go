package storage

import "errors"

var (
	// ErrInvalidArgument reports a missing required argument.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidValue reports an optional argument of the wrong shape.
	ErrInvalidValue = errors.New("invalid value")
)
