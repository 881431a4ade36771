package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/tony-format/go-inspect/classify"
)

func types(cfg *TypesConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Types.Parse(cc, args); err != nil {
		return err
	}
	for _, c := range classify.Categories() {
		if _, err := fmt.Fprintln(cc.Out, c); err != nil {
			return err
		}
	}
	return nil
}
