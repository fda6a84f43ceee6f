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
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "jread").
		WithSynopsis("jread [opts] command [opts]").
		WithDescription("jread is a tool for working with janet source text.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jreadMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			DumpCommand(cfg),
			FmtCommand(cfg),
			ExportCommand(cfg))
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("read files and report the first syntax error in each").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [files]").
		WithDescription("dump the value tree with source positions").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg, Indent: 2}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-d] [-w] [files]").
		WithDescription("reformat files to the canonical layout").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtFiles(cfg, cc, args)
		})
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Export, "export").
		WithAliases("x").
		WithSynopsis("export [-O json|yaml] [files]").
		WithDescription("convert values to json or yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
}
