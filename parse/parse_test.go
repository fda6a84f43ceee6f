package parse

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/xificurC/janet-lang.org/token"
	"github.com/xificurC/janet-lang.org/value"
)

func sym(s string) *value.Value            { return value.FromSymbol(s) }
func kw(s string) *value.Value             { return value.FromKeyword(s) }
func num(f float64) *value.Value           { return value.FromNumber(f) }
func tup(vs ...*value.Value) *value.Value  { return value.Tuple(value.RoundBracket, vs...) }
func btup(vs ...*value.Value) *value.Value { return value.Tuple(value.SquareBracket, vs...) }
func kv(k, v *value.Value) value.KeyVal    { return value.KeyVal{Key: k, Val: v} }

type parseTest struct {
	in   string
	want *value.Value
	e    error
}

func TestParseValues(t *testing.T) {
	pts := []parseTest{
		{in: `nil`, want: value.Nil()},
		{in: `true`, want: value.FromBool(true)},
		{in: `false`, want: value.FromBool(false)},
		{in: `42`, want: num(42)},
		{in: `-1.5`, want: num(-1.5)},
		{in: `0x10`, want: num(16)},
		{in: `16r10`, want: num(16)},
		{in: `1_000`, want: num(1000)},
		{in: `1e3`, want: num(1000)},
		{in: `foo`, want: sym("foo")},
		{in: `foo-bar?`, want: sym("foo-bar?")},
		{in: `-`, want: sym("-")},
		{in: `-abc`, want: sym("-abc")},
		{in: `+`, want: sym("+")},
		{in: `a~b`, want: sym("a~b")},
		{in: `@sym`, want: sym("@sym")},
		{in: `nil?`, want: sym("nil?")},
		{in: `truer`, want: sym("truer")},
		{in: `:a`, want: kw("a")},
		{in: `:`, want: kw("")},
		{in: `::`, want: kw(":")},
		{in: `:keyword/path`, want: kw("keyword/path")},
		{in: `"hello"`, want: value.FromString("hello")},
		{in: `"a\nb"`, want: value.FromString("a\nb")},
		{in: `@"hello"`, want: value.FromBuffer([]byte("hello"))},
		{in: "`raw \\n text`", want: value.FromString(`raw \n text`)},
		{in: "``has ` tick``", want: value.FromString("has ` tick")},
		{in: "@`buf`", want: value.FromBuffer([]byte("buf"))},
		{in: `()`, want: tup()},
		{in: `(1 2 3)`, want: tup(num(1), num(2), num(3))},
		{in: `[1 2 3]`, want: btup(num(1), num(2), num(3))},
		{in: `@(1 2)`, want: value.Array(num(1), num(2))},
		{in: `@[1 2]`, want: value.Array(num(1), num(2))},
		{in: `(foo [bar @{}])`, want: tup(sym("foo"), btup(sym("bar"), value.Table()))},
		{in: `{}`, want: value.Struct()},
		{in: `{:a 1}`, want: value.Struct(kv(kw("a"), num(1)))},
		{in: `@{:a 1}`, want: value.Table(kv(kw("a"), num(1)))},
		{in: `{:a {:b 2}}`, want: value.Struct(kv(kw("a"), value.Struct(kv(kw("b"), num(2)))))},
		{in: "# comment\n1", want: num(1)},
		{in: "(1 # two would go here\n 3)", want: tup(num(1), num(3))},
		{in: `'x`, want: tup(sym("quote"), sym("x"))},
		{in: `' x`, want: tup(sym("quote"), sym("x"))},
		{in: `;x`, want: tup(sym("splice"), sym("x"))},
		{in: `~x`, want: tup(sym("quasiquote"), sym("x"))},
		{in: `,x`, want: tup(sym("unquote"), sym("x"))},
		{in: `,;x`, want: tup(sym("unquote"), tup(sym("splice"), sym("x")))},
		{in: `''x`, want: tup(sym("quote"), tup(sym("quote"), sym("x")))},
		{in: "'\n# comment\nx", want: tup(sym("quote"), sym("x"))},
		{in: `'(1 2)`, want: tup(sym("quote"), tup(num(1), num(2)))},
		{in: `~(a ,b)`, want: tup(sym("quasiquote"), tup(sym("a"), tup(sym("unquote"), sym("b"))))},
		{in: `12abc`, e: token.ErrNumber},
		{in: `1.2.3`, e: token.ErrNumber},
		{in: `)`, e: ErrUnexpected},
		{in: `]`, e: ErrUnexpected},
		{in: `(1`, e: token.ErrUnterminated},
		{in: `"abc`, e: token.ErrUnterminated},
		{in: "`abc", e: token.ErrUnterminatedLong},
		{in: `'`, e: token.ErrUnterminated},
		{in: `{:a}`, e: ErrOddPairs},
		{in: `{1 2 3}`, e: ErrOddPairs},
		{in: `{:a 1 :b}`, e: ErrOddPairs},
		{in: `"\q"`, e: token.ErrBadEscape},
	}
	for _, pt := range pts {
		got, err := Parse([]byte(pt.in))
		if pt.e != nil {
			if !errors.Is(err, pt.e) {
				t.Errorf("Parse(%q) error = %v, want %v", pt.in, err, pt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) error = %v", pt.in, err)
			continue
		}
		if diff := cmp.Diff(pt.want, got); diff != "" {
			t.Errorf("Parse(%q) mismatch (-want +got):\n%s", pt.in, diff)
		}
	}
}

func TestParsePairRules(t *testing.T) {
	// nil keys, NaN keys and nil values drop; duplicate keys keep the last
	// value at the first key's slot
	for _, tc := range []struct {
		in, equiv string
	}{
		{in: `{nil 1 :a nil :b 2}`, equiv: `{:b 2}`},
		{in: `{:a 1 :a 2}`, equiv: `{:a 2}`},
		{in: `{:a 1 :b 9 :a 2}`, equiv: `{:a 2 :b 9}`},
		{in: `@{:a nil}`, equiv: `@{}`},
	} {
		got, err := Parse([]byte(tc.in))
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tc.in, err)
		}
		want, err := Parse([]byte(tc.equiv))
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", tc.equiv, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Parse(%q) != Parse(%q) (-want +got):\n%s", tc.in, tc.equiv, diff)
		}
	}
}

func TestWhitespaceAndCommentTransparency(t *testing.T) {
	variants := []string{
		"(a 1 :b \"c\")",
		"  (\ta\n 1\f :b \"c\" )  ",
		"# head\n(a # mid\n 1 :b \"c\") # tail",
		"(a 1 :b \"c\")\n# only a comment after",
	}
	want, err := All([]byte(variants[0]))
	if err != nil {
		t.Fatal(err)
	}
	for _, in := range variants[1:] {
		got, err := All([]byte(in))
		if err != nil {
			t.Fatalf("All(%q) error = %v", in, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("All(%q) mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestNaNKeyDrop(t *testing.T) {
	// NaN keys have no literal form; construct the pair list directly
	got := value.Struct(
		kv(num(math.NaN()), num(1)),
		kv(kw("b"), num(2)),
	)
	want := value.Struct(kv(kw("b"), num(2)))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NaN key drop mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBracketKinds(t *testing.T) {
	round, err := Parse([]byte(`(1 2)`))
	if err != nil {
		t.Fatal(err)
	}
	square, err := Parse([]byte(`[1 2]`))
	if err != nil {
		t.Fatal(err)
	}
	if round.Bracket != value.RoundBracket {
		t.Errorf("round.Bracket = %v", round.Bracket)
	}
	if square.Bracket != value.SquareBracket {
		t.Errorf("square.Bracket = %v", square.Bracket)
	}
	if value.Equal(round, square) {
		t.Error("tuples with different brackets compare equal")
	}
}

func TestAll(t *testing.T) {
	vs, err := All([]byte("1 :two \"three\"\n(4)"))
	if err != nil {
		t.Fatal(err)
	}
	want := []*value.Value{
		num(1), kw("two"), value.FromString("three"), tup(num(4)),
	}
	if diff := cmp.Diff(want, vs); diff != "" {
		t.Errorf("All mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTrailingInput(t *testing.T) {
	if _, err := Parse([]byte("1 2")); err == nil {
		t.Error("Parse accepted trailing input")
	}
	if _, err := Parse([]byte("1 # trailing comment ok")); err != nil {
		t.Errorf("trailing comment rejected: %v", err)
	}
}

func TestParsePositions(t *testing.T) {
	positions := map[*value.Value]*token.Pos{}
	v, err := Parse([]byte("(foo\n  bar)"), ParsePositions(positions))
	if err != nil {
		t.Fatal(err)
	}
	pos := positions[v]
	if pos == nil {
		t.Fatal("no position for the tuple")
	}
	if line, col := pos.LineCol(); line != 0 || col != 0 {
		t.Errorf("tuple at %d:%d, want 0:0", line, col)
	}
	bar := v.Values[1]
	pos = positions[bar]
	if pos == nil {
		t.Fatal("no position for bar")
	}
	if line, col := pos.LineCol(); line != 1 || col != 2 {
		t.Errorf("bar at %d:%d, want 1:2", line, col)
	}
}
