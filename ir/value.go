package ir

import "iter"

// Value is a node of an immutable JSON-like tree. The set of
// implementations is closed: NullValue, BoolValue, IntValue,
// FloatValue, StringValue, ArrayValue and ObjectValue.
type Value interface {
	Type() Type
	isValue()
}

type NullValue struct{}

type BoolValue struct{ v bool }

type IntValue struct{ v int64 }

type FloatValue struct{ v float64 }

type StringValue struct{ s string }

// ArrayValue references the slice it was built from.
type ArrayValue struct{ values []Value }

// ObjectValue references the slice it was built from. Properties keep
// their insertion order and duplicate keys are kept as given.
type ObjectValue struct{ props []Prop }

// Prop is an object property.
type Prop struct {
	Key   string
	Value Value
}

func (NullValue) Type() Type { return NullType }
func (BoolValue) Type() Type { return BoolType }
func (IntValue) Type() Type { return IntType }
func (FloatValue) Type() Type { return FloatType }
func (StringValue) Type() Type { return StringType }
func (ArrayValue) Type() Type { return ArrayType }
func (ObjectValue) Type() Type { return ObjectType }

func (NullValue) isValue() {}
func (BoolValue) isValue() {}
func (IntValue) isValue() {}
func (FloatValue) isValue() {}
func (StringValue) isValue() {}
func (ArrayValue) isValue() {}
func (ObjectValue) isValue() {}

func (b BoolValue) Bool() bool { return b.v }
func (i IntValue) Int64() int64 { return i.v }
func (f FloatValue) Float64() float64 { return f.v }
func (s StringValue) Text() string { return s.s }
func (a ArrayValue) Len() int { return len(a.values) }
func (a ArrayValue) At(i int) Value { return a.values[i] }
func (o ObjectValue) Len() int { return len(o.props) }
func (o ObjectValue) At(i int) Prop { return o.props[i] }
func (o ObjectValue) Key(i int) string { return o.props[i].Key }

func (a ArrayValue) All() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, v := range a.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (o ObjectValue) All() iter.Seq2[int, Prop] {
	return func(yield func(int, Prop) bool) {
		for i, p := range o.props {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Get returns the value of the first property named key.
func (o ObjectValue) Get(key string) (Value, bool) {
	for _, p := range o.props {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

func Null() Value {
	return NullValue{}
}

func FromBool(v bool) Value {
	return BoolValue{v: v}
}

func FromInt(v int64) Value {
	return IntValue{v: v}
}

func FromFloat(f float64) Value {
	return FloatValue{v: f}
}

func FromString(v string) Value {
	return StringValue{s: v}
}

// FromSlice builds an array over vs without copying it.
func FromSlice(vs []Value) Value {
	return ArrayValue{values: vs}
}

func Array(vs ...Value) Value {
	return FromSlice(vs)
}

// FromProps builds an object over ps without copying it.
func FromProps(ps []Prop) Value {
	return ObjectValue{props: ps}
}

func Object(ps ...Prop) Value {
	return FromProps(ps)
}

func P(key string, v Value) Prop {
	return Prop{Key: key, Value: v}
}
