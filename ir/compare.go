package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b Value) int {
	if a == nil || b == nil {
		switch {
		case a == b:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	ta, tb := a.Type(), b.Type()
	if ta != tb {
		return cmp.Compare(ta, tb)
	}

	switch x := a.(type) {
	case NullValue:
		return 0
	case BoolValue:
		y := b.(BoolValue)
		if x.v == y.v {
			return 0
		}
		if !x.v {
			return -1
		}
		return 1
	case IntValue:
		return cmp.Compare(x.v, b.(IntValue).v)
	case FloatValue:
		return cmp.Compare(x.v, b.(FloatValue).v)
	case StringValue:
		return strings.Compare(x.s, b.(StringValue).s)
	case ArrayValue:
		return compareArrays(x, b.(ArrayValue))
	case ObjectValue:
		return compareObjects(x, b.(ObjectValue))
	}
	return 0
}

func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

func compareArrays(a, b ArrayValue) int {
	lenA := len(a.values)
	lenB := len(b.values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// objects compare property by property in insertion order, key first.
func compareObjects(a, b ObjectValue) int {
	lenA := len(a.props)
	lenB := len(b.props)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.props[i].Key, b.props[i].Key); c != 0 {
			return c
		}
		if c := Compare(a.props[i].Value, b.props[i].Value); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
