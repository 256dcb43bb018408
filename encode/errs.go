package encode

import (
	"errors"
	"fmt"

	"github.com/signadot/jbuild/ir"
)

var (
	errInternal = errors.New("internal error")

	// ErrAllocation reports that the output buffer could not be obtained.
	ErrAllocation = errors.New("allocation error")

	// ErrBufferTooSmall reports a caller buffer shorter than
	// SerializedSize.
	ErrBufferTooSmall = errors.New("buffer too small")
)

func malformed(where string) error {
	return fmt.Errorf("%w: nil value %s", ir.ErrMalformed, where)
}

func unknown(v ir.Value) error {
	return fmt.Errorf("%w: unknown value %T", ir.ErrMalformed, v)
}
