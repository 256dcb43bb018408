package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/signadot/jbuild/ir"
)

// Value renders a value tree summary for log arguments.
type Value struct{ ir.Value }

func (v Value) String() string {
	if v.Value == nil {
		return "<nil value>"
	}
	return fmt.Sprintf("%s(count=%d depth=%d)", v.Type(), ir.Count(v.Value), ir.Depth(v.Value))
}

var out io.Writer = os.Stderr

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case ir.Value:
			args[i] = Value{x}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
