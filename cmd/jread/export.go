package main

import (
	"encoding/json"
	"fmt"

	"github.com/xificurC/janet-lang.org/encode"
	"github.com/xificurC/janet-lang.org/format"
	"github.com/xificurC/janet-lang.org/value"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args = stdinIfEmpty(args)
	for _, arg := range args {
		vs, err := parseArg(cc, arg)
		if err != nil {
			return err
		}
		for i, v := range vs {
			if err := exportValue(cfg, cc, v, i); err != nil {
				return fmt.Errorf("error exporting %s: %w", arg, err)
			}
		}
	}
	return nil
}

func exportValue(cfg *ExportConfig, cc *cli.Context, v *value.Value, i int) error {
	switch cfg.outFormat() {
	case format.JSONFormat:
		d, err := json.MarshalIndent(v.Interface(), "", "  ")
		if err != nil {
			return err
		}
		d = append(d, '\n')
		_, err = cc.Out.Write(d)
		return err
	case format.YAMLFormat:
		// one document per top-level value
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		d, err := yaml.Marshal(v.Interface())
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	default:
		if err := encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		_, err := cc.Out.Write([]byte("\n"))
		return err
	}
}
