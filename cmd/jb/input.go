package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/jbuild/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

// readArg reads all documents of a file argument, "-" being stdin.
func readArg(arg string) ([]ir.Value, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	docs, err := decodeDocs(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return docs, nil
}

// decodeDocs decodes a yaml or json stream keeping mapping key order.
func decodeDocs(d []byte) ([]ir.Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(d), yaml.UseOrderedMap())
	res := []ir.Value{}
	for {
		var x any
		err := dec.Decode(&x)
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		v, err := fromYAML(x)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(res), err)
		}
		res = append(res, v)
	}
}

func fromYAML(x any) (ir.Value, error) {
	switch v := x.(type) {
	case yaml.MapSlice:
		ps := make([]ir.Prop, len(v))
		for i, item := range v {
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			ps[i] = ir.P(keyString(item.Key), val)
		}
		return ir.FromProps(ps), nil
	case []any:
		vs := make([]ir.Value, len(v))
		for i, e := range v {
			val, err := fromYAML(e)
			if err != nil {
				return nil, err
			}
			vs[i] = val
		}
		return ir.FromSlice(vs), nil
	default:
		return ir.FromAny(x)
	}
}

func keyString(k any) string {
	if k == nil {
		return "null"
	}
	return fmt.Sprint(k)
}

func argsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q is not an object in %q", cli.ErrUsage, part, key)
		}
		tmpEnv = nextEnv
	}
	return nil
}
