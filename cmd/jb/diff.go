package main

import (
	"fmt"
	"io"

	"github.com/signadot/jbuild/encode"
	"github.com/signadot/jbuild/ir"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	from, err := readOne(args[0])
	if err != nil {
		return err
	}
	to, err := readOne(args[1])
	if err != nil {
		return err
	}
	pretty := cfg.Color || cfg.isTerminal(cc.Out)
	return writeDiff(cc.Out, from, to, pretty, cfg.encOpts(io.Discard)...)
}

func readOne(arg string) (ir.Value, error) {
	docs, err := readArg(arg)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("%s: expected 1 document, got %d", arg, len(docs))
	}
	return docs[0], nil
}

// writeDiff writes a character diff of the serializations of from and
// to. Deletions are shown as [-x-] and insertions as {+x+} unless pretty.
func writeDiff(w io.Writer, from, to ir.Value, pretty bool, opts ...encode.EncodeOption) error {
	a, err := encode.Stringify(from, opts...)
	if err != nil {
		return err
	}
	b, err := encode.Stringify(to, opts...)
	if err != nil {
		return err
	}
	if string(a) == string(b) {
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(string(a), string(b), false))
	if pretty {
		_, err := fmt.Fprintln(w, dmp.DiffPrettyText(diffs))
		return err
	}
	for _, d := range diffs {
		var s string
		switch d.Type {
		case diffpatch.DiffDelete:
			s = "[-" + d.Text + "-]"
		case diffpatch.DiffInsert:
			s = "{+" + d.Text + "+}"
		default:
			s = d.Text
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	_, err = io.WriteString(w, "\n")
	return err
}
