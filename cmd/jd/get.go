package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsondoc/go-jsondoc/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a document path", cli.ErrUsage)
	}
	path := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := readArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res, err := walk(node, path)
		if err != nil {
			return fmt.Errorf("error walking %s in %s: %w", path, arg, err)
		}
		if err := emit(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

// walk resolves a slash-separated path against node. Each step is a
// field name for objects and a decimal index for arrays.
func walk(node *ir.Node, path string) (*ir.Node, error) {
	for _, step := range strings.Split(strings.Trim(path, "/"), "/") {
		if step == "" {
			continue
		}
		switch node.Type {
		case ir.ObjectType:
			next, err := node.Field(step)
			if err != nil {
				return nil, err
			}
			node = next
		case ir.ArrayType:
			i, err := strconv.Atoi(step)
			if err != nil {
				return nil, fmt.Errorf("bad array index %q", step)
			}
			next, err := node.Elem(i)
			if err != nil {
				return nil, err
			}
			node = next
		default:
			return nil, fmt.Errorf("cannot descend into %s at %q", node.Type, step)
		}
	}
	return node, nil
}
