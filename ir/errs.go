package ir

import "errors"

var (
	// ErrMalformed reports a tree containing a nil Value.
	ErrMalformed = errors.New("malformed value tree")

	ErrUnsupported = errors.New("unsupported go value")
)
