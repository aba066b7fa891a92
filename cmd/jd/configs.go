package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	jsondoc "github.com/jsondoc/go-jsondoc"
	"github.com/jsondoc/go-jsondoc/encode"
	"github.com/jsondoc/go-jsondoc/ir"
	"github.com/jsondoc/go-jsondoc/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Inline bool `cli:"name=inline desc='render containers on one line'"`
	Color  bool `cli:"name=color desc='encode with color'"`
	Strict bool `cli:"name=strict desc='reject trailing content after the document'"`

	Indent   int
	SortExpr string
	Sort     func(a, b *ir.Node) int

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) indentOpt(_ *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: bad indent %q", cli.ErrUsage, a)
	}
	cfg.Indent = n
	return n, nil
}

func (cfg *MainConfig) sortOpt(_ *cli.Context, a string) (any, error) {
	cmpFn, err := jsondoc.ExprComparator(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	cfg.SortExpr = a
	cfg.Sort = cmpFn
	return a, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Strict {
		res = append(res, parse.Strict())
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// apply rewrites layout metadata per the main flags before encoding.
func (cfg *MainConfig) apply(node *ir.Node) {
	node.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		if cfg.Inline {
			n.Wrap = false
		}
		if cfg.Sort != nil && n.Type == ir.ObjectType {
			n.Comparator = cfg.Sort
		}
		return true, nil
	})
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='suppress output, only set the exit status'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Ops bool `cli:"name=ops desc='treat the patch as an operation list instead of a merge patch'"`

	Patch *cli.Command
}

type DescribeConfig struct {
	*MainConfig

	Describe *cli.Command
}
