package ir

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// FromAny builds a tree from already decoded Go data: nil, bool,
// integers, floats, strings, []any, map[string]any, []Prop and Value.
// Map keys are sorted since Go maps carry no order.
func FromAny(x any) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case bool:
		return FromBool(v), nil
	case int:
		return FromInt(int64(v)), nil
	case int8:
		return FromInt(int64(v)), nil
	case int16:
		return FromInt(int64(v)), nil
	case int32:
		return FromInt(int64(v)), nil
	case int64:
		return FromInt(v), nil
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return FromInt(int64(v)), nil
	case uint16:
		return FromInt(int64(v)), nil
	case uint32:
		return FromInt(int64(v)), nil
	case uint64:
		return fromUint(v)
	case float32:
		return FromFloat(float64(v)), nil
	case float64:
		return FromFloat(v), nil
	case string:
		return FromString(v), nil
	case []any:
		res := make([]Value, len(v))
		for i, e := range v {
			ev, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res[i] = ev
		}
		return FromSlice(res), nil
	case []Value:
		return FromSlice(v), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(v))
		res := make([]Prop, len(keys))
		for i, k := range keys {
			ev, err := FromAny(v[k])
			if err != nil {
				return nil, fmt.Errorf(".%s: %w", k, err)
			}
			res[i] = P(k, ev)
		}
		return FromProps(res), nil
	case []Prop:
		return FromProps(v), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, x)
	}
}

func fromUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d overflows int64", ErrUnsupported, u)
	}
	return FromInt(int64(u)), nil
}
