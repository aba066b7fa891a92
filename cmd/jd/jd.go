package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	jsondoc "github.com/jsondoc/go-jsondoc"
	"github.com/jsondoc/go-jsondoc/ir"

	"github.com/scott-cotton/cli"
)

func jdMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readArg parses a document from a file path, or from stdin for "-".
func readArg(cfg *MainConfig, arg string) (*ir.Node, error) {
	if arg == "-" {
		d, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		node, err := jsondoc.Parse(d, cfg.parseOpts()...)
		if err != nil {
			return nil, fmt.Errorf("error decoding stdin: %w", err)
		}
		return node, nil
	}
	node, err := jsondoc.Read(arg, cfg.parseOpts()...)
	if err != nil {
		return nil, err
	}
	return node, nil
}

// emit writes node followed by a newline to the command output.
func emit(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	s, err := jsondoc.Compile(node, cfg.encOpts(w)...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}
