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

	return cli.NewCommandAt(&cfg.Main, "oi").
		WithSynopsis("oi [opts] command [opts]").
		WithDescription("oi is an interactive inspector for documents and the running process.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return oiMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			RuntimeCommand(cfg),
			BrowseCommand(cfg),
			TypesCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [-p path] [-f] [-e expr] [-patch file] [-n name] [-all] [files]").
		WithDescription("inspect yaml or json documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func RuntimeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RuntimeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Runtime, "runtime").
		WithAliases("r", "rt").
		WithSynopsis("runtime [-p path] [-f]").
		WithDescription("inspect the running process").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runtimeCmd(cfg, cc, args)
		})
}

func BrowseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BrowseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Browse, "browse").
		WithAliases("b").
		WithSynopsis("browse [files]").
		WithDescription("browse documents with commands read from stdin").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return browse(cfg, cc, args)
		})
}

func TypesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Types, "types").
		WithAliases("t").
		WithSynopsis("types").
		WithDescription("list value categories in resolution order").
		WithRun(func(cc *cli.Context, args []string) error {
			return types(cfg, cc, args)
		})
}
