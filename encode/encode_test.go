package encode

import (
	"bytes"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/jbuild/ir"
)

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   ir.Value
		want string
	}{
		{"null", ir.Null(), `null`},
		{"true", ir.FromBool(true), `true`},
		{"false", ir.FromBool(false), `false`},
		{"zero", ir.FromInt(0), `0`},
		{"negative int", ir.FromInt(-12345678), `-12345678`},
		{"max int", ir.FromInt(math.MaxInt64), `9223372036854775807`},
		{"min int", ir.FromInt(math.MinInt64), `-9223372036854775808`},
		{"zero float", ir.FromFloat(0), `0.000000`},
		{"float", ir.FromFloat(1234.5678), `1234.567800`},
		{"float rounding", ir.FromFloat(1.1), `1.100000`},
		{"negative float", ir.FromFloat(-3.14), `-3.140000`},
		{"negative zero", ir.FromFloat(math.Copysign(0, -1)), `-0.000000`},
		{"large float", ir.FromFloat(1e20), `100000000000000000000.000000`},
		{"nan", ir.FromFloat(math.NaN()), `nan`},
		{"inf", ir.FromFloat(math.Inf(1)), `inf`},
		{"-inf", ir.FromFloat(math.Inf(-1)), `-inf`},
		{"empty string", ir.FromString(""), `""`},
		{"string", ir.FromString("string"), `"string"`},
		{"empty array", ir.Array(), `[]`},
		{"empty object", ir.Object(), `{}`},
		{"nil slice array", ir.FromSlice(nil), `[]`},
		{"nil props object", ir.FromProps(nil), `{}`},
		{
			"composite",
			ir.Array(ir.Null(), ir.FromInt(1), ir.FromFloat(1.1), ir.FromString("string"), ir.Array(), ir.Object()),
			`[null,1,1.100000,"string",[],{}]`,
		},
		{
			"object order",
			ir.Object(ir.P("Null", ir.Null()), ir.P("Int", ir.FromInt(1))),
			`{"Null":null,"Int":1}`,
		},
		{
			"duplicate keys",
			ir.Object(ir.P("a", ir.FromInt(1)), ir.P("a", ir.FromInt(2))),
			`{"a":1,"a":2}`,
		},
		{
			"empty key",
			ir.Object(ir.P("", ir.Null())),
			`{"":null}`,
		},
		{
			"nested",
			ir.Object(ir.P("entries", ir.Array(
				ir.Null(),
				ir.FromBool(true),
				ir.FromInt(1),
				ir.FromFloat(1.1),
				ir.FromString("string"),
			))),
			`{"entries":[null,true,1,1.100000,"string"]}`,
		},
		{
			"array of object",
			ir.Array(ir.Object(
				ir.P("1", ir.FromInt(4)),
				ir.P("2", ir.FromInt(4)),
				ir.P("3", ir.Array(
					ir.FromInt(1),
					ir.Null(),
					ir.FromBool(false),
					ir.FromString("string"),
					ir.FromFloat(3.14),
				)),
			)),
			`[{"1":4,"2":4,"3":[1,null,false,"string",3.140000]}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Stringify(tt.in)
			if err != nil {
				t.Fatalf("Stringify() error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Stringify() = %q, want %q", got, tt.want)
			}
			if n := Size(tt.in); n != len(tt.want) {
				t.Errorf("Size() = %d, want %d", n, len(tt.want))
			}
			if n := SerializedSize(tt.in); n != len(tt.want)+1 {
				t.Errorf("SerializedSize() = %d, want %d", n, len(tt.want)+1)
			}
		})
	}
}

func TestStringifySentinel(t *testing.T) {
	v := ir.Array(ir.FromString("abc"), ir.FromInt(-7))
	got, err := Stringify(v)
	if err != nil {
		t.Fatal(err)
	}
	if cap(got) != len(got)+1 {
		t.Errorf("cap = %d, want exactly %d", cap(got), len(got)+1)
	}
	if s := got[:len(got)+1][len(got)]; s != 0 {
		t.Errorf("sentinel = %d, want 0", s)
	}
}

func TestSerializedSizeIdempotent(t *testing.T) {
	v := ir.Object(ir.P("a", ir.Array(ir.FromFloat(2.5), ir.FromString("x"))))
	a, b := SerializedSize(v), SerializedSize(v)
	if a != b {
		t.Errorf("SerializedSize() not stable: %d then %d", a, b)
	}
}

func TestWriteInto(t *testing.T) {
	v := ir.Array(ir.Object(ir.P("k", ir.FromFloat(0.5))), ir.Null())
	want := MustString(v)

	buf := make([]byte, SerializedSize(v))
	n, err := WriteInto(v, buf)
	if err != nil {
		t.Fatalf("WriteInto() error: %v", err)
	}
	if n != len(want) {
		t.Errorf("WriteInto() = %d, want %d", n, len(want))
	}
	if diff := cmp.Diff(want, string(buf[:n])); diff != "" {
		t.Errorf("WriteInto() mismatch (-want +got):\n%s", diff)
	}
	if buf[n] != 0 {
		t.Errorf("sentinel = %d, want 0", buf[n])
	}

	// larger buffers are fine and only the prefix is touched
	big := bytes.Repeat([]byte{'x'}, SerializedSize(v)+4)
	n, err = WriteInto(v, big)
	if err != nil {
		t.Fatalf("WriteInto() large buffer error: %v", err)
	}
	if string(big[:n]) != want || big[n] != 0 || string(big[n+1:]) != "xxxx" {
		t.Errorf("WriteInto() large buffer = %q", big)
	}
}

func TestWriteIntoTooSmall(t *testing.T) {
	v := ir.Object(ir.P("Null", ir.Null()), ir.P("Int", ir.FromInt(1)))
	buf := bytes.Repeat([]byte{'x'}, SerializedSize(v)-1)
	n, err := WriteInto(v, buf)
	if !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("WriteInto() error = %v, want ErrBufferTooSmall", err)
	}
	if n != 0 {
		t.Errorf("WriteInto() = %d, want 0", n)
	}
	if strings.Trim(string(buf), "x") != "" {
		t.Errorf("WriteInto() wrote into a short buffer: %q", buf)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrBufferTooSmall) {
			t.Errorf("MustWriteInto() panic = %v, want ErrBufferTooSmall", r)
		}
	}()
	MustWriteInto(v, buf)
}

func TestMaxSize(t *testing.T) {
	v := ir.Null()
	if _, err := Stringify(v, MaxSize(4)); !errors.Is(err, ErrAllocation) {
		t.Errorf("Stringify(MaxSize(4)) error = %v, want ErrAllocation", err)
	}
	got, err := Stringify(v, MaxSize(5))
	if err != nil {
		t.Fatalf("Stringify(MaxSize(5)) error: %v", err)
	}
	if string(got) != "null" {
		t.Errorf("Stringify(MaxSize(5)) = %q", got)
	}
	var buf bytes.Buffer
	if err := Encode(v, &buf, MaxSize(1)); !errors.Is(err, ErrAllocation) {
		t.Errorf("Encode(MaxSize(1)) error = %v, want ErrAllocation", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Encode() wrote %q after failing", buf.String())
	}

	s := ir.FromString("0123456789")
	err = Encode(s, &buf, MaxSize(2), EncodeColors(NewColors()))
	if !errors.Is(err, ErrAllocation) {
		t.Errorf("Encode(MaxSize(2), EncodeColors) error = %v, want ErrAllocation", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Encode(EncodeColors) wrote %q after failing", buf.String())
	}
	if err := Encode(s, &buf, MaxSize(13), EncodeColors(NewColors())); err != nil {
		t.Errorf("Encode(MaxSize(13), EncodeColors) error: %v", err)
	}
}

// foreign satisfies ir.Value through the embedded NullValue but is none
// of the ir value types.
type foreign struct{ ir.NullValue }

func TestMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   ir.Value
	}{
		{"nil root", nil},
		{"nil element", ir.Array(ir.Null(), nil)},
		{"nil property", ir.Object(ir.P("a", nil))},
		{"foreign value", ir.Array(foreign{})},
	}
	passes := map[string]func(ir.Value){
		"size":  func(v ir.Value) { Size(v) },
		"write": func(v ir.Value) { (&writer{buf: make([]byte, 64)}).write(v) },
		"color": func(v ir.Value) { encode(v, io.Discard, newEncState(EncodeColors(NewColors()))) },
	}
	for _, tt := range tests {
		for pass, f := range passes {
			t.Run(tt.name+"/"+pass, func(t *testing.T) {
				defer func() {
					r := recover()
					err, ok := r.(error)
					if !ok || !errors.Is(err, ir.ErrMalformed) {
						t.Errorf("panic = %v, want ir.ErrMalformed", r)
					}
				}()
				f(tt.in)
			})
		}
	}
}

// Strings are written as given, so quotes and control characters make
// the output invalid JSON.
func TestNoEscaping(t *testing.T) {
	v := ir.Object(ir.P(`k"ey`, ir.FromString("a\"b\n\x00c")))
	want := "{\"k\"ey\":\"a\"b\n\x00c\"}"
	got := MustString(v)
	if got != want {
		t.Errorf("MustString() = %q, want %q", got, want)
	}
	if Size(v) != len(want) {
		t.Errorf("Size() = %d, want %d", Size(v), len(want))
	}
}

func TestEncode(t *testing.T) {
	v := ir.Array(ir.FromInt(1), ir.Object(ir.P("a", ir.FromString("%d"))))
	var buf bytes.Buffer
	if err := Encode(v, &buf, EncodeNL(true)); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), `[1,{"a":"%d"}]`+"\n"; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}
