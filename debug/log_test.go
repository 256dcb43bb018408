package debug

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/jbuild/ir"
)

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := out
	out = buf
	defer func() { out = old }()

	v := ir.Object(ir.P("a", ir.Array(ir.FromInt(1), ir.Null())))
	Logf("%s %s %d\n", v, map[string]any{"k": 1}, 3)

	got := buf.String()
	for _, want := range []string{"Object(count=4 depth=3)", `"k": 1`, " 3\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("Logf() = %q, missing %q", got, want)
		}
	}
}

func TestLogAny(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := out
	out = buf
	defer func() { out = old }()

	LogAny(map[string]any{"alloc": 5, "maxSize": 0})
	LogAny(make(chan int))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("LogAny() wrote %q, want 2 lines", buf.String())
	}
	if lines[0] != `{"alloc":5,"maxSize":0}` {
		t.Errorf("LogAny(map) = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "0x") {
		t.Errorf("LogAny(chan) = %q, want %%v fallback", lines[1])
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("JB_TEST_FLAG", "true")
	if !boolEnv("JB_TEST_FLAG") {
		t.Error("boolEnv(true) = false")
	}
	t.Setenv("JB_TEST_FLAG", "nope")
	if boolEnv("JB_TEST_FLAG") {
		t.Error("boolEnv(nope) = true")
	}
	if boolEnv("JB_TEST_UNSET_FLAG") {
		t.Error("boolEnv(unset) = true")
	}
}
