package debug

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-json"
)

type debug struct {
	Size  bool
	Write bool
	Alloc bool
}

var d *debug

func init() {
	d = &debug{}
	d.Size = boolEnv("JB_DEBUG_SIZE")
	d.Write = boolEnv("JB_DEBUG_WRITE")
	d.Alloc = boolEnv("JB_DEBUG_ALLOC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Size() bool {
	return d.Size
}
func Write() bool {
	return d.Write
}
func Alloc() bool {
	return d.Alloc
}

// LogAny writes v as a line of json, falling back to %v.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append(d, '\n'))
}
