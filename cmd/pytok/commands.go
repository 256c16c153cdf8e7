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
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "pytok").
		WithSynopsis("pytok [opts] [<path>]").
		WithDescription("pytok prints the normalized token stream of a Python-like source file.\n" +
			"With no path (or with -), it tokenizes standard input.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return pytokMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg))
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a b").
		WithDescription("diff compares the token streams of two files, ignoring comments,\n" +
			"blank lines and literal formatting; it exits 1 when they differ.").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
