package encode

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/xificurC/janet-lang.org/parse"
	"github.com/xificurC/janet-lang.org/value"
)

type encodeTest struct {
	in   string
	want string
}

func TestEncodeCanonical(t *testing.T) {
	ets := []encodeTest{
		{in: `nil`, want: `nil`},
		{in: `true`, want: `true`},
		{in: `42`, want: `42`},
		{in: `-1.5`, want: `-1.5`},
		{in: `0x10`, want: `16`},
		{in: `1_000`, want: `1000`},
		{in: `foo`, want: `foo`},
		{in: `:kw`, want: `:kw`},
		{in: `"a\nb"`, want: `"a\nb"`},
		{in: "`raw`", want: `"raw"`},
		{in: `@"buf"`, want: `@"buf"`},
		{in: `( 1   2 )`, want: `(1 2)`},
		{in: `[1 2]`, want: `[1 2]`},
		{in: `@(1 2)`, want: `@[1 2]`},
		{in: `@[1 2]`, want: `@[1 2]`},
		{in: `{:a 1 :b (2 3)}`, want: `{:a 1 :b (2 3)}`},
		{in: `@{:a 1}`, want: `@{:a 1}`},
		{in: `'x`, want: `(quote x)`},
		{in: `,;x`, want: `(unquote (splice x))`},
		{in: "# comment\n(1)", want: `(1)`},
	}
	for _, et := range ets {
		v, err := parse.Parse([]byte(et.in))
		if err != nil {
			t.Errorf("Parse(%q) error = %v", et.in, err)
			continue
		}
		got := MustString(v)
		if got != et.want {
			t.Errorf("MustString(Parse(%q)) = %q, want %q", et.in, got, et.want)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	srcs := []string{
		`nil`,
		`(a [b {:c @"d"}] @[1 2] @{:e 3.5})`,
		`"quotes \" and \\ and \x01 controls"`,
		`'(quasi ~(quoted ,forms))`,
		`{:nested {:deep [1 2 (3)]}}`,
		`16r10&2`,
	}
	for _, src := range srcs {
		v, err := parse.Parse([]byte(src))
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", src, err)
		}
		again, err := parse.Parse([]byte(MustString(v)))
		if err != nil {
			t.Fatalf("reparse of %q (%q) error = %v", src, MustString(v), err)
		}
		if diff := cmp.Diff(v, again); diff != "" {
			t.Errorf("round trip of %q mismatch (-want +got):\n%s", src, diff)
		}
	}
}

func TestEncodeIndent(t *testing.T) {
	v, err := parse.Parse([]byte(`{:a (1 2) :b [3]}`))
	if err != nil {
		t.Fatal(err)
	}
	got := MustString(v, EncodeIndent(2))
	want := "{:a (1\n    2)\n  :b [3]}"
	if got != want {
		t.Errorf("indented = %q, want %q", got, want)
	}
}

func TestEncodeColorsPassThrough(t *testing.T) {
	// a color function must see every token exactly once with no layout bytes
	var seen []string
	v := value.Tuple(value.RoundBracket,
		value.FromSymbol("print"), value.FromString("hi"))
	got := MustString(v, EncodeColors(&Colors{
		Default: func(s string, _ ...any) string {
			seen = append(seen, s)
			return s
		},
		Map: map[Colorable]func(string, ...any) string{},
	}))
	if got != `(print "hi")` {
		t.Errorf("colored output = %q", got)
	}
	want := []string{"(", "print", `"hi"`, ")"}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("color calls mismatch (-want +got):\n%s", diff)
	}
}
