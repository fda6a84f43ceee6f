package main

import (
	"fmt"
	"io"
	"os"

	"github.com/xificurC/janet-lang.org/encode"
	"github.com/xificurC/janet-lang.org/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return format.TextFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='suppress per-file results, use the exit code'"`

	Check *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Diff   bool `cli:"name=d desc='print a diff instead of the result'"`
	Write  bool `cli:"name=w desc='write the result back to the file'"`
	Indent int  `cli:"name=indent desc='spaces per nesting level'"`

	Fmt *cli.Command
}

type ExportConfig struct {
	*MainConfig
	Export *cli.Command
}
