package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/go-inspect/render"
)

// maxIndent bounds -indent.
const maxIndent = 16

type MainConfig struct {
	Color   bool `cli:"name=color desc='render with color'"`
	NoHints bool `cli:"name=nohints desc='do not render value hints'"`
	Indent  int  `cli:"name=indent desc='spaces per tree level (default 2)'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) screenOpts(w io.Writer) []render.Option {
	res := []render.Option{render.Hints(!cfg.NoHints)}
	if cfg.Indent > 0 {
		res = append(res, render.Indent(cfg.Indent))
	}
	if cfg.Color {
		return append(res, render.WithColors(render.NewColors()))
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, render.WithColors(render.NewColors()))
	}
	return res
}

// outOpt sends output to the file a, or stdout for "-".
func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.Create(a)
	if err != nil {
		return nil, fmt.Errorf("could not open output %q: %w", a, err)
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) closeOut() {
	if cfg.CloseOut == nil {
		return
	}
	cfg.CloseOut()
	cfg.CloseOut = nil
}

type ViewConfig struct {
	*MainConfig

	P     string `cli:"name=p aliases=path desc='navigate to path after loading'"`
	F     bool   `cli:"name=f aliases=filter desc='filter each level of -p by its segment'"`
	E     string `cli:"name=e aliases=expr desc='inspect the result of an expression over doc'"`
	Patch string `cli:"name=patch desc='apply a json patch file to each document'"`
	N     string `cli:"name=n aliases=name desc='name of the inspected root'"`
	All   bool   `cli:"name=all desc='expand everything'"`

	View *cli.Command
}

type RuntimeConfig struct {
	*MainConfig

	P string `cli:"name=p aliases=path desc='navigate to path'"`
	F bool   `cli:"name=f aliases=filter desc='filter each level of -p by its segment'"`

	Runtime *cli.Command
}

type BrowseConfig struct {
	*MainConfig

	Patch string `cli:"name=patch desc='apply a json patch file to each document'"`

	Browse *cli.Command
}

type TypesConfig struct {
	*MainConfig

	Types *cli.Command
}
