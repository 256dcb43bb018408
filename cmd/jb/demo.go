package main

import (
	"fmt"

	"github.com/signadot/jbuild/encode"
	"github.com/signadot/jbuild/ir"

	"github.com/scott-cotton/cli"
)

type demoDoc struct {
	name string
	v    ir.Value
}

func demoDocs() []demoDoc {
	return []demoDoc{
		{
			name: "entries",
			v: ir.Object(
				ir.P("entries", ir.Array(
					ir.Null(),
					ir.FromBool(true),
					ir.FromInt(1),
					ir.FromFloat(1.1),
					ir.FromString("string"),
				)),
			),
		},
		{
			name: "numbered",
			v: ir.Array(
				ir.Object(
					ir.P("1", ir.FromInt(4)),
					ir.P("2", ir.FromInt(4)),
					ir.P("3", ir.Array(
						ir.FromInt(1),
						ir.Null(),
						ir.FromBool(false),
						ir.FromString("string"),
						ir.FromFloat(3.14),
					)),
				),
			),
		},
	}
}

func demo(cfg *DemoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Demo.Parse(cc, args)
	if err != nil {
		cfg.Demo.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: demo takes no arguments", cli.ErrUsage)
	}
	for _, doc := range demoDocs() {
		if cfg.Names {
			if _, err := fmt.Fprintf(cc.Out, "%s: ", doc.name); err != nil {
				return err
			}
		}
		if err := encode.Encode(doc.v, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", doc.name, err)
		}
	}
	return nil
}
