package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/xificurC/janet-lang.org/encode"
	"github.com/xificurC/janet-lang.org/parse"
	"github.com/xificurC/janet-lang.org/value"

	"github.com/scott-cotton/cli"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func fmtFiles(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	args = stdinIfEmpty(args)
	for _, arg := range args {
		if err := fmtArg(cfg, cc, arg); err != nil {
			return err
		}
	}
	return nil
}

func fmtArg(cfg *FmtConfig, cc *cli.Context, arg string) error {
	d, err := readArg(cc, arg)
	if err != nil {
		return err
	}
	vs, err := parse.All(d)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", arg, err)
	}
	formatted, err := render(cfg, vs, nil)
	if err != nil {
		return err
	}
	switch {
	case cfg.Diff:
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(string(d), string(formatted), false)
		_, err := cc.Out.Write([]byte(dmp.DiffPrettyText(diffs)))
		return err
	case cfg.Write:
		if arg == "-" {
			return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
		}
		return os.WriteFile(arg, formatted, 0644)
	default:
		out, err := render(cfg, vs, cfg.encOpts(cc.Out))
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(out)
		return err
	}
}

// render lays out every top-level value, one per line.
func render(cfg *FmtConfig, vs []*value.Value, extra []encode.EncodeOption) ([]byte, error) {
	opts := append([]encode.EncodeOption{encode.EncodeIndent(cfg.Indent)}, extra...)
	buf := bytes.NewBuffer(nil)
	for _, v := range vs {
		if err := encode.Encode(v, buf, opts...); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
