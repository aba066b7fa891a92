package main

import (
	"fmt"
	"io"
	"os"

	jsondoc "github.com/jsondoc/go-jsondoc"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := readArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := readArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	diffs, err := jsondoc.Diff(from, to)
	if err != nil {
		return err
	}
	if !jsondoc.Changed(diffs) {
		return nil
	}
	if !cfg.Quiet {
		if err := writeDiffs(cfg.MainConfig, cc.Out, diffs); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

func writeDiffs(cfg *MainConfig, w io.Writer, diffs []diffpatch.Diff) error {
	f, ok := w.(*os.File)
	if cfg.Color || (ok && isatty.IsTerminal(f.Fd())) {
		_, err := io.WriteString(w, jsondoc.DiffText(diffs)+"\n")
		return err
	}
	for _, d := range diffs {
		var err error
		switch d.Type {
		case diffpatch.DiffDelete:
			_, err = fmt.Fprintf(w, "-%s", d.Text)
		case diffpatch.DiffInsert:
			_, err = fmt.Fprintf(w, "+%s", d.Text)
		default:
			_, err = io.WriteString(w, d.Text)
		}
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
