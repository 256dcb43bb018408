package encode

import (
	"fmt"
	"io"
	"runtime"

	"github.com/signadot/jbuild/debug"
	"github.com/signadot/jbuild/ir"
)

type EncState struct {
	maxSize int
	nl      bool

	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(opts ...EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Stringify returns the compact serialization of v in a buffer allocated
// for exactly SerializedSize(v) bytes. The returned slice excludes the
// terminating 0 byte, which is at index len(res) of res[:len(res)+1].
//
// If the buffer can not be obtained, Stringify returns nil and an error
// wrapping ErrAllocation.
func Stringify(v ir.Value, opts ...EncodeOption) ([]byte, error) {
	return stringify(v, newEncState(opts...))
}

func stringify(v ir.Value, es *EncState) ([]byte, error) {
	n := Size(v)
	buf, err := alloc(n+1, es)
	if err != nil {
		return nil, err
	}
	writeExact(v, buf, n)
	return buf[:n], nil
}

// WriteInto writes the serialization of v followed by a 0 byte into buf
// and returns the number of bytes before the 0 byte.
//
// buf must hold at least SerializedSize(v) bytes. Otherwise nothing is
// written and the error wraps ErrBufferTooSmall.
func WriteInto(v ir.Value, buf []byte) (int, error) {
	n := Size(v)
	if len(buf) < n+1 {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, n+1, len(buf))
	}
	return writeExact(v, buf[:n+1], n), nil
}

// MustWriteInto is WriteInto but panics when buf is too small.
func MustWriteInto(v ir.Value, buf []byte) int {
	n, err := WriteInto(v, buf)
	if err != nil {
		panic(err)
	}
	return n
}

// writeExact writes v, sized at n bytes, into buf[:n] and puts the
// sentinel at buf[n].
func writeExact(v ir.Value, buf []byte, n int) int {
	w := &writer{buf: buf[:n]}
	w.write(v)
	if w.off != n {
		panic(fmt.Errorf("%w: sized %d bytes but wrote %d", errInternal, n, w.off))
	}
	buf[n] = 0
	if debug.Write() {
		debug.Logf("wrote %d bytes for %s\n", n, v)
	}
	return n
}

func alloc(n int, es *EncState) (buf []byte, err error) {
	if es.maxSize > 0 && n > es.maxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrAllocation, n, es.maxSize)
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		rErr, ok := r.(runtime.Error)
		if !ok {
			panic(r)
		}
		buf, err = nil, fmt.Errorf("%w: %d bytes: %w", ErrAllocation, n, rErr)
	}()
	if debug.Alloc() {
		debug.LogAny(map[string]any{"alloc": n, "maxSize": es.maxSize})
	}
	return make([]byte, n), nil
}

// Encode writes the serialization of v to w. Without EncodeColors this
// is Stringify followed by a single Write.
func Encode(v ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts...)
	if es.Color != nil {
		if n := Size(v) + 1; es.maxSize > 0 && n > es.maxSize {
			return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrAllocation, n, es.maxSize)
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	} else {
		d, err := stringify(v, es)
		if err != nil {
			return err
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
	}
	if es.nl {
		return writeString(w, "\n")
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
