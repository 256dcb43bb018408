package encode

import (
	"github.com/signadot/jbuild/debug"
	"github.com/signadot/jbuild/format"
	"github.com/signadot/jbuild/ir"
)

// Size returns the exact number of bytes of the serialization of v,
// not counting the terminating sentinel.
//
// Size panics with ir.ErrMalformed if the tree contains a nil value.
func Size(v ir.Value) int {
	n := size(v)
	if debug.Size() {
		debug.Logf("size of %s: %d\n", v, n)
	}
	return n
}

// SerializedSize returns Size(v)+1, the buffer length WriteInto needs.
func SerializedSize(v ir.Value) int {
	return Size(v) + 1
}

func size(v ir.Value) int {
	switch x := v.(type) {
	case ir.NullValue:
		return len(format.Null)
	case ir.BoolValue:
		return len(format.Bool(x.Bool()))
	case ir.IntValue:
		return format.IntLen(x.Int64())
	case ir.FloatValue:
		return format.FloatLen(x.Float64())
	case ir.StringValue:
		return format.QuotedLen(x.Text())
	case ir.ArrayValue:
		return sizeArray(x)
	case ir.ObjectValue:
		return sizeObject(x)
	case nil:
		panic(malformed("in size"))
	default:
		panic(unknown(v))
	}
}

func sizeArray(a ir.ArrayValue) int {
	n := len("[]")
	for i, c := range a.All() {
		if i != 0 {
			n += len(",")
		}
		n += size(c)
	}
	return n
}

func sizeObject(o ir.ObjectValue) int {
	n := len("{}")
	for i, p := range o.All() {
		if i != 0 {
			n += len(",")
		}
		n += format.QuotedLen(p.Key) + len(":")
		n += size(p.Value)
	}
	return n
}
