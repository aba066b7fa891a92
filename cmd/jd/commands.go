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
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "indent",
			Description: "spaces per nesting level (default 2)",
			Type:        cli.NamedFuncOpt(cfg.indentOpt, "(n)"),
		},
		&cli.Opt{
			Name:        "sort-by",
			Description: "sort object fields by an expression over key and value",
			Type:        cli.NamedFuncOpt(cfg.sortOpt, "(expr)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jd").
		WithSynopsis("jd [opts] command [opts]").
		WithDescription("jd is a tool for working with json documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jdMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			GetCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			DescribeCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [files]").
		WithDescription("reformat documents, applying -inline, -indent and -sort-by").
		WithRun(func(cc *cli.Context, args []string) error {
			return format(mainCfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get document elements by slash-separated path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("diff the compiled forms of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch [opts] <patchfile> [files]").
		WithDescription("apply a merge patch (or -ops operation list) to documents").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func DescribeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DescribeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("describe").
		WithAliases("desc").
		WithSynopsis("describe [files]").
		WithDescription("derive structural descriptors for documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return describe(cfg, cc, args)
		})
	cfg.Describe = cmd
	return cmd
}
