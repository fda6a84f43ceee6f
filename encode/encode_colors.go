package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/xificurC/janet-lang.org/value"
)

type Colorable struct {
	Type value.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	FieldColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range value.Types() {
		able := Colorable{
			Type: t,
			Attr: SepColor,
		}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = value.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = value.NilType
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Type = value.BoolType
	colors.Map[able] = color.CyanString

	able.Type = value.SymbolType
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	able.Type = value.KeywordType
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()

	able.Type = value.StringType
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Type = value.BufferType
	colors.Map[able] = color.RGB(88, 158, 86).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t value.Type, a ColorAttr, s string) string {
	res := c.Get(t, a)(s)
	return res
}

func (c *Colors) Get(t value.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
