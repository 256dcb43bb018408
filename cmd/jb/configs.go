package main

import (
	"io"
	"os"

	"github.com/signadot/jbuild/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`
	NoNL  bool `cli:"name=n desc='do not end documents with a newline'"`
	Max   int  `cli:"name=max desc='maximum output buffer size in bytes, 0 for none'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeNL(!cfg.NoNL),
		encode.MaxSize(cfg.Max),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	if cfg.isTerminal(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type DemoConfig struct {
	*MainConfig
	Names bool `cli:"name=names desc='print the name of each document'"`

	Demo *cli.Command
}

type BuildConfig struct {
	*MainConfig

	Build *cli.Command
}

type SizeConfig struct {
	*MainConfig
	Content bool `cli:"name=c desc='exclude the terminating sentinel byte'"`

	Size *cli.Command
}

type ExprConfig struct {
	*MainConfig
	Env map[string]any

	Expr *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch string `cli:"name=p desc='RFC 6902 patch file, json or yaml'"`

	PatchCmd *cli.Command
}
