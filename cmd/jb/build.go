package main

import (
	"fmt"

	"github.com/signadot/jbuild/encode"

	"github.com/scott-cotton/cli"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		cfg.Build.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range argsOrStdin(args) {
		docs, err := readArg(arg)
		if err != nil {
			return err
		}
		for i, doc := range docs {
			if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return fmt.Errorf("error encoding document %d of %s: %w", i, arg, err)
			}
		}
	}
	return nil
}

func size(cfg *SizeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Size.Parse(cc, args)
	if err != nil {
		cfg.Size.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range argsOrStdin(args) {
		docs, err := readArg(arg)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			n := encode.SerializedSize(doc)
			if cfg.Content {
				n = encode.Size(doc)
			}
			if _, err := fmt.Fprintln(cc.Out, n); err != nil {
				return err
			}
		}
	}
	return nil
}
