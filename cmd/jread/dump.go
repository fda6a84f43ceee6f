package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/xificurC/janet-lang.org/encode"
	"github.com/xificurC/janet-lang.org/parse"
	"github.com/xificurC/janet-lang.org/token"
	"github.com/xificurC/janet-lang.org/value"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args = stdinIfEmpty(args)
	for _, arg := range args {
		positions := map[*value.Value]*token.Pos{}
		vs, err := parseArg(cc, arg, parse.ParsePositions(positions))
		if err != nil {
			return err
		}
		for _, v := range vs {
			dumpValue(cc.Out, v, positions, 0)
		}
	}
	return nil
}

func dumpValue(w io.Writer, v *value.Value, positions map[*value.Value]*token.Pos, depth int) {
	indent := strings.Repeat("  ", depth)
	at := ""
	if pos := positions[v]; pos != nil {
		line, col := pos.LineCol()
		at = fmt.Sprintf(" @%d:%d", line, col)
	}
	if v.Type.IsLeaf() {
		fmt.Fprintf(w, "%s%s %s%s\n", indent, v.Type, encode.MustString(v), at)
		return
	}
	fmt.Fprintf(w, "%s%s%s\n", indent, v.Type, at)
	if v.Type.IsPairs() {
		for i := range v.Fields {
			dumpValue(w, v.Fields[i], positions, depth+1)
			dumpValue(w, v.Values[i], positions, depth+2)
		}
		return
	}
	for _, item := range v.Values {
		dumpValue(w, item, positions, depth+1)
	}
}
