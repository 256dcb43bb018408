package main

import (
	"fmt"
	"strings"

	"github.com/signadot/jbuild/encode"
	"github.com/signadot/jbuild/ir"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func exprCmd(cfg *ExprConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expr.Parse(cc, args)
	if err != nil {
		cfg.Expr.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: expr requires an expression", cli.ErrUsage)
	}
	v, err := evalExpr(strings.Join(args, " "), cfg.Env)
	if err != nil {
		return err
	}
	return encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...)
}

// evalExpr evaluates src and builds a value tree from its result.
func evalExpr(src string, env map[string]any) (ir.Value, error) {
	prg, err := expr.Compile(src, expr.Env(env))
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", src, err)
	}
	v, err := ir.FromAny(res)
	if err != nil {
		return nil, fmt.Errorf("result of %q: %w", src, err)
	}
	return v, nil
}
