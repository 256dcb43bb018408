// Package ir provides the value tree serialized by package encode.
//
// # Overview
//
// A Value represents a single JSON-like value. The set of value kinds is
// closed:
//
//   - NullValue: null
//   - BoolValue: true or false
//   - IntValue: a 64-bit signed integer
//   - FloatValue: a 64-bit float
//   - StringValue: a string, never escaped on output
//   - ArrayValue: an ordered list of values
//   - ObjectValue: an ordered list of properties (key and value)
//
// Each value reports its kind with Type(). Payloads are only reachable
// from the concrete type, so a consumer switches on the type:
//
//	switch x := v.(type) {
//	case ir.IntValue:
//	    use(x.Int64())
//	case ir.ArrayValue:
//	    for _, c := range x.All() { ... }
//	}
//
// # Creating Values
//
// Trees are built bottom up:
//
//	doc := ir.Object(
//	    ir.P("entries", ir.Array(
//	        ir.Null(),
//	        ir.FromBool(true),
//	        ir.FromInt(1),
//	        ir.FromFloat(1.1),
//	        ir.FromString("string"),
//	    )),
//	)
//
// Building bottom up means a tree can not contain a cycle.
//
// # Ownership
//
// Values never copy what they are given. Strings are shared as is, and
// FromSlice, FromProps and the variadic Array and Object keep a reference
// to the caller's slice. Callers must not modify such a slice while the
// tree is in use. There are no mutating operations on values.
//
// # Objects
//
// Object properties keep insertion order. Duplicate keys are neither
// rejected nor merged; ObjectValue.Get returns the first match.
//
// # Thread Safety
//
// Values are immutable, so a tree may be read from any number of
// goroutines as long as the slices it borrows are not modified.
//
// # Related Packages
//
//   - github.com/signadot/jbuild/encode - serializes values to text
//   - github.com/signadot/jbuild/format - leaf formatting rules
package ir
