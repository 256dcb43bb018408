package format

import (
	"math"
	"strconv"
)

// FloatPrecision is the number of fractional digits written for floats.
const FloatPrecision = 6

const (
	Null  = "null"
	True  = "true"
	False = "false"

	nan    = "nan"
	posInf = "inf"
	negInf = "-inf"
)

func Bool(b bool) string {
	if b {
		return True
	}
	return False
}

// IntLen returns the length of the base-10 form of i, sign included.
func IntLen(i int64) int {
	n := 1
	u := uint64(i)
	if i < 0 {
		n++
		u = -u
	}
	for u >= 10 {
		u /= 10
		n++
	}
	return n
}

func AppendInt(dst []byte, i int64) []byte {
	return strconv.AppendInt(dst, i, 10)
}

// FloatLen returns the length of AppendFloat's output for f.
func FloatLen(f float64) int {
	var scratch [32]byte
	return len(AppendFloat(scratch[:0], f))
}

// AppendFloat appends f in fixed-point notation with FloatPrecision
// fractional digits. Non-finite values are spelled nan, inf and -inf.
func AppendFloat(dst []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, nan...)
	case math.IsInf(f, 1):
		return append(dst, posInf...)
	case math.IsInf(f, -1):
		return append(dst, negInf...)
	}
	return strconv.AppendFloat(dst, f, 'f', FloatPrecision, 64)
}

// QuotedLen is the length of s between two quote characters.
func QuotedLen(s string) int {
	return len(s) + 2
}
