package main

import (
	"fmt"

	jsondoc "github.com/jsondoc/go-jsondoc"
	"github.com/jsondoc/go-jsondoc/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	p, err := readArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := readArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		var res *ir.Node
		if cfg.Ops {
			res, err = jsondoc.ApplyPatch(doc, p)
		} else {
			res, err = jsondoc.MergePatch(doc, p)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := emit(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}
