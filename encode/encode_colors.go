package encode

import (
	"io"
	"strings"

	"github.com/signadot/jbuild/format"
	"github.com/signadot/jbuild/ir"

	"github.com/fatih/color"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	colors.Map[Colorable{Type: ir.ArrayType, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[Colorable{Type: ir.ObjectType, Attr: SepColor}] = color.RGB(196, 128, 128).SprintfFunc()
	colors.Map[Colorable{Type: ir.ObjectType, Attr: FieldColor}] = color.RGB(128, 168, 196).SprintfFunc()

	able := Colorable{Attr: ValueColor}
	able.Type = ir.NullType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Type = ir.BoolType
	colors.Map[able] = color.CyanString
	able.Type = ir.IntType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Type = ir.FloatType
	colors.Map[able] = color.RGB(128, 196, 236).SprintfFunc()
	able.Type = ir.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}

// encode writes v token by token through es.Color, visiting the tree in
// the same order as size and the writer.
func encode(v ir.Value, w io.Writer, es *EncState) error {
	switch x := v.(type) {
	case ir.NullValue:
		return writeLeaf(w, es, ir.NullType, format.Null)
	case ir.BoolValue:
		return writeLeaf(w, es, ir.BoolType, format.Bool(x.Bool()))
	case ir.IntValue:
		return writeLeaf(w, es, ir.IntType, string(format.AppendInt(nil, x.Int64())))
	case ir.FloatValue:
		return writeLeaf(w, es, ir.FloatType, string(format.AppendFloat(nil, x.Float64())))
	case ir.StringValue:
		return writeLeaf(w, es, ir.StringType, `"`+x.Text()+`"`)
	case ir.ArrayValue:
		return encodeArray(x, w, es)
	case ir.ObjectValue:
		return encodeObject(x, w, es)
	case nil:
		panic(malformed("in encode"))
	default:
		panic(unknown(v))
	}
}

func writeLeaf(w io.Writer, es *EncState, t ir.Type, s string) error {
	return writeString(w, applyColor(es, t, ValueColor, s))
}

func writeSep(w io.Writer, es *EncState, t ir.Type, sep string) error {
	return writeString(w, applyColor(es, t, SepColor, sep))
}

func encodeArray(a ir.ArrayValue, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	for i, c := range a.All() {
		if i != 0 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
		if err := encode(c, w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func encodeObject(o ir.ObjectValue, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	for i, p := range o.All() {
		if i != 0 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
		field := applyColor(es, ir.ObjectType, FieldColor, `"`+p.Key+`"`)
		if err := writeString(w, field); err != nil {
			return err
		}
		if err := writeSep(w, es, ir.ObjectType, ":"); err != nil {
			return err
		}
		if err := encode(p.Value, w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, ir.ObjectType, "}")
}
