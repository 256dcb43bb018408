package main

import (
	"fmt"
	"os"

	"github.com/signadot/jbuild/encode"
	"github.com/signadot/jbuild/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.PatchCmd.Parse(cc, args)
	if err != nil {
		cfg.PatchCmd.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Patch == "" {
		return fmt.Errorf("%w: patch requires -p <patchfile>", cli.ErrUsage)
	}
	d, err := os.ReadFile(cfg.Patch)
	if err != nil {
		return err
	}
	ops, err := loadPatch(d)
	if err != nil {
		return fmt.Errorf("error loading patch %s: %w", cfg.Patch, err)
	}
	for _, arg := range argsOrStdin(args) {
		docs, err := readArg(arg)
		if err != nil {
			return err
		}
		for i, doc := range docs {
			res, err := applyPatch(ops, doc, cfg.encOpts(cc.Out)...)
			if err != nil {
				return fmt.Errorf("error patching document %d of %s: %w", i, arg, err)
			}
			if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return err
			}
		}
	}
	return nil
}

// loadPatch reads a json or yaml patch document. The patch is
// stringified so that yaml patches reach jsonpatch as json.
func loadPatch(d []byte) (jsonpatch.Patch, error) {
	docs, err := decodeDocs(d)
	if err != nil {
		return nil, err
	}
	if len(docs) != 1 {
		return nil, fmt.Errorf("expected 1 patch document, got %d", len(docs))
	}
	j, err := encode.Stringify(docs[0])
	if err != nil {
		return nil, err
	}
	return jsonpatch.DecodePatch(j)
}

func applyPatch(ops jsonpatch.Patch, doc ir.Value, opts ...encode.EncodeOption) (ir.Value, error) {
	j, err := encode.Stringify(doc, opts...)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(j)
	if err != nil {
		return nil, err
	}
	res, err := decodeDocs(out)
	if err != nil {
		return nil, err
	}
	if len(res) != 1 {
		return nil, fmt.Errorf("patch produced %d documents", len(res))
	}
	return res[0], nil
}
