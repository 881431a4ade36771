package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func oiMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer cfg.closeOut()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found, try types, view, runtime or browse", cli.ErrNoSuchCommand, args[0])
	}
	if err = sub.Run(cc, args[1:]); !errors.Is(err, cli.ErrUsage) {
		return err
	}
	sub.Usage(cc, err)
	cfg.closeOut()
	os.Exit(sub.Exit(cc, err))
	return nil
}

// validate checks options which depend on each other.
func (cfg *MainConfig) validate() error {
	if cfg.Indent < 0 || cfg.Indent > maxIndent {
		return fmt.Errorf("%w: -indent must be between 0 and %d, got %d", cli.ErrUsage, maxIndent, cfg.Indent)
	}
	if cfg.Color && cfg.Out != "" && cfg.Out != "-" {
		return fmt.Errorf("%w: -color writes escape codes, not to be used with -o %s", cli.ErrUsage, cfg.Out)
	}
	return nil
}
