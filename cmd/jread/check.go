package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	args = stdinIfEmpty(args)
	failed := false
	for _, arg := range args {
		_, err := parseArg(cc, arg)
		if err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", arg)
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
