package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func format(cfg *MainConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := readArg(cfg, arg)
		if err != nil {
			return err
		}
		cfg.apply(node)
		if err := emit(cfg, cc.Out, node); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
