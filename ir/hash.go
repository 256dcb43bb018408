package ir

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"math"
)

var seed = maphash.MakeSeed()

var nanBits = math.Float64bits(math.NaN())

// floatBits maps values Compare treats as equal to the same bits:
// both zeros, and every NaN.
func floatBits(f float64) uint64 {
	switch {
	case f == 0:
		return 0
	case math.IsNaN(f):
		return nanBits
	}
	return math.Float64bits(f)
}

// Hash returns a 64-bit hash of the value, stable within a process.
// Values that are Equal hash the same. It panics with ErrMalformed if
// the tree contains a nil value.
func Hash(v Value) uint64 {
	if v == nil {
		panic(fmt.Errorf("%w: nil value in Hash", ErrMalformed))
	}

	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteByte(byte(v.Type()))

	var b [8]byte
	switch x := v.(type) {
	case NullValue:
	case BoolValue:
		if x.v {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntValue:
		binary.LittleEndian.PutUint64(b[:], uint64(x.v))
		h.Write(b[:])
	case FloatValue:
		binary.LittleEndian.PutUint64(b[:], floatBits(x.v))
		h.Write(b[:])
	case StringValue:
		h.WriteString(x.s)
	case ArrayValue:
		// child hashes are combined in order
		for _, c := range x.values {
			binary.LittleEndian.PutUint64(b[:], Hash(c))
			h.Write(b[:])
		}
	case ObjectValue:
		for _, p := range x.props {
			h.WriteString(p.Key)
			h.WriteByte(0)
			binary.LittleEndian.PutUint64(b[:], Hash(p.Value))
			h.Write(b[:])
		}
	}
	return h.Sum64()
}
