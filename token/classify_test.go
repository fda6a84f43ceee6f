package token

import "testing"

func TestClassify(t *testing.T) {
	for _, c := range []byte(" \t\r\n\f\x00") {
		if !IsWhitespace(c) {
			t.Errorf("IsWhitespace(%q) = false", c)
		}
	}
	for _, c := range []byte("aZ09!$%^&*-_+=|~:<>.?/\\@\x80\xff") {
		if !IsSymbolChar(c) {
			t.Errorf("IsSymbolChar(%q) = false", c)
		}
	}
	for _, c := range []byte("()[]{}\"`'#, ") {
		if IsSymbolChar(c) {
			t.Errorf("IsSymbolChar(%q) = true", c)
		}
	}
	for c, want := range map[byte]string{
		'\'': "quote",
		';':  "splice",
		'~':  "quasiquote",
		',':  "unquote",
	} {
		if !IsMacroPrefix(c) {
			t.Errorf("IsMacroPrefix(%q) = false", c)
		}
		if got := MacroName(c); got != want {
			t.Errorf("MacroName(%q) = %q, want %q", c, got, want)
		}
	}
	for open, clos := range map[byte]byte{'(': ')', '[': ']', '{': '}'} {
		if !IsOpener(open) || !IsCloser(clos) {
			t.Errorf("opener/closer classification broken for %q %q", open, clos)
		}
		if CloserFor(open) != clos {
			t.Errorf("CloserFor(%q) = %q, want %q", open, CloserFor(open), clos)
		}
	}
	if n := Symbol([]byte("foo-bar? baz")); n != 8 {
		t.Errorf("Symbol = %d, want 8", n)
	}
}
