package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xificurC/janet-lang.org/parse"
	"github.com/xificurC/janet-lang.org/value"

	"github.com/scott-cotton/cli"
)

func jreadMain(cfg *MainConfig, cc *cli.Context, args []string) error {
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

// readArg loads a file argument ("-" for stdin) and returns its bytes.
func readArg(cc *cli.Context, arg string) ([]byte, error) {
	var r io.Reader
	if arg == "-" {
		r = cc.In
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// parseArg reads and parses every top-level value in a file argument.
func parseArg(cc *cli.Context, arg string, opts ...parse.ParseOption) ([]*value.Value, error) {
	d, err := readArg(cc, arg)
	if err != nil {
		return nil, err
	}
	vs, err := parse.All(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	return vs, nil
}

// stdinIfEmpty makes bare invocations read stdin.
func stdinIfEmpty(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
