package main

import (
	"fmt"

	"github.com/jsondoc/go-jsondoc/schema"

	"github.com/scott-cotton/cli"
)

func describe(cfg *DescribeConfig, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := readArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		desc, err := schema.Describe(node)
		if err != nil {
			return fmt.Errorf("error describing %s: %w", arg, err)
		}
		if err := emit(cfg.MainConfig, cc.Out, desc); err != nil {
			return err
		}
	}
	return nil
}
