package ir

import "fmt"

// Depth returns the nesting depth of v. Leaves and empty containers
// have depth 1.
func Depth(v Value) int {
	switch x := v.(type) {
	case ArrayValue:
		d := 0
		for _, c := range x.values {
			d = max(d, Depth(c))
		}
		return d + 1
	case ObjectValue:
		d := 0
		for _, p := range x.props {
			d = max(d, Depth(p.Value))
		}
		return d + 1
	case nil:
		panic(fmt.Errorf("%w: nil value", ErrMalformed))
	default:
		return 1
	}
}

// Count returns the number of values in the tree rooted at v,
// including v.
func Count(v Value) int {
	switch x := v.(type) {
	case ArrayValue:
		n := 1
		for _, c := range x.values {
			n += Count(c)
		}
		return n
	case ObjectValue:
		n := 1
		for _, p := range x.props {
			n += Count(p.Value)
		}
		return n
	case nil:
		panic(fmt.Errorf("%w: nil value", ErrMalformed))
	default:
		return 1
	}
}
