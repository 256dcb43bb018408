package encode

import (
	"fmt"

	"github.com/signadot/jbuild/format"
	"github.com/signadot/jbuild/ir"
)

// writer fills buf from the start and never writes past len(buf).
type writer struct {
	buf []byte
	off int
}

func (w *writer) overflow(need int) error {
	return fmt.Errorf("%w: write of %d bytes at offset %d overflows %d byte buffer",
		errInternal, need, w.off, len(w.buf))
}

func (w *writer) writeByte(c byte) {
	if w.off >= len(w.buf) {
		panic(w.overflow(1))
	}
	w.buf[w.off] = c
	w.off++
}

func (w *writer) writeString(s string) {
	if len(s) > len(w.buf)-w.off {
		panic(w.overflow(len(s)))
	}
	w.off += copy(w.buf[w.off:], s)
}

// free is the unwritten part of buf with its capacity capped, so that an
// append which does not fit reallocates instead of running past buf.
func (w *writer) free() []byte {
	return w.buf[w.off:w.off:len(w.buf)]
}

func (w *writer) commit(b []byte) {
	if len(b) > len(w.buf)-w.off {
		panic(w.overflow(len(b)))
	}
	w.off += len(b)
}

func (w *writer) writeQuoted(s string) {
	w.writeByte('"')
	w.writeString(s)
	w.writeByte('"')
}

func (w *writer) write(v ir.Value) {
	switch x := v.(type) {
	case ir.NullValue:
		w.writeString(format.Null)
	case ir.BoolValue:
		w.writeString(format.Bool(x.Bool()))
	case ir.IntValue:
		w.commit(format.AppendInt(w.free(), x.Int64()))
	case ir.FloatValue:
		w.commit(format.AppendFloat(w.free(), x.Float64()))
	case ir.StringValue:
		w.writeQuoted(x.Text())
	case ir.ArrayValue:
		w.writeArray(x)
	case ir.ObjectValue:
		w.writeObject(x)
	case nil:
		panic(malformed("in write"))
	default:
		panic(unknown(v))
	}
}

func (w *writer) writeArray(a ir.ArrayValue) {
	w.writeByte('[')
	for i, c := range a.All() {
		if i != 0 {
			w.writeByte(',')
		}
		w.write(c)
	}
	w.writeByte(']')
}

func (w *writer) writeObject(o ir.ObjectValue) {
	w.writeByte('{')
	for i, p := range o.All() {
		if i != 0 {
			w.writeByte(',')
		}
		w.writeQuoted(p.Key)
		w.writeByte(':')
		w.write(p.Value)
	}
	w.writeByte('}')
}
