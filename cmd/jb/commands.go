package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "jb").
		WithSynopsis("jb [opts] command [opts]").
		WithDescription("jb builds value trees and writes them as compact JSON.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jbMain(cfg, cc, args)
		}).
		WithSubs(
			DemoCommand(cfg),
			BuildCommand(cfg),
			SizeCommand(cfg),
			ExprCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func DemoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DemoConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Demo, "demo").
		WithAliases("de").
		WithSynopsis("demo [-names]").
		WithDescription("stringify the built in example documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return demo(cfg, cc, args)
		})
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Build, "build").
		WithAliases("b").
		WithSynopsis("build [files]").
		WithDescription("build yaml or json documents and stringify them").
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
}

func SizeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SizeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Size, "size").
		WithAliases("s").
		WithSynopsis("size [-c] [files]").
		WithDescription("print the buffer size needed to stringify documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return size(cfg, cc, args)
		})
}

func ExprCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExprConfig{MainConfig: mainCfg, Env: map[string]any{}}
	opts := []*cli.Opt{
		&cli.Opt{
			Name:        "e",
			Description: "set an expression variable, the value is yaml",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(path=val)"),
		},
	}
	return cli.NewCommandAt(&cfg.Expr, "expr").
		WithAliases("x", "ex").
		WithSynopsis("expr [-e path=val [ -e path2=val2 ]...] <expression>").
		WithDescription("evaluate a literal expression and stringify the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return exprCmd(cfg, cc, args)
		})
}

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := envFunc(env, a); err != nil {
			return nil, err
		}
		return 0, nil
	}
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("diff the stringified forms of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.PatchCmd, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch -p <patchfile> [files]").
		WithDescription("apply a json patch to documents and stringify the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}
