package token

import (
	"errors"
	"testing"
)

type longStringTest struct {
	in    string
	final bool
	want  string
	n     int
	e     error
}

func TestLongString(t *testing.T) {
	lts := []longStringTest{
		{in: "`abc`", final: true, want: "abc", n: 5},
		{in: "`abc` x", final: false, want: "abc", n: 5},
		{in: "``abc``", final: true, want: "abc", n: 7},
		{in: "``a`b``", final: true, want: "a`b", n: 7},
		{in: "`a\nb`", final: true, want: "a\nb", n: 5},
		{in: "``", final: true, e: ErrUnterminatedLong},
		{in: "`abc", final: true, e: ErrUnterminatedLong},
		{in: "```a``", final: true, e: ErrUnterminatedLong},
		// a run longer than the opener is content, not a closer
		{in: "```a````b```", final: true, want: "a````b", n: 12},
		// a candidate closer at the buffer end may still grow
		{in: "`a`", final: false, e: ErrUnterminatedLong},
		{in: "`a`", final: true, want: "a", n: 3},
		{in: "``a``b", final: false, want: "a", n: 5},
		{in: "``a`", final: false, e: ErrUnterminatedLong},
	}
	for _, lt := range lts {
		got, n, err := LongString([]byte(lt.in), lt.final)
		if lt.e != nil {
			if !errors.Is(err, lt.e) {
				t.Errorf("LongString(%q, %v) error = %v, want %v", lt.in, lt.final, err, lt.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("LongString(%q, %v) error = %v", lt.in, lt.final, err)
			continue
		}
		if string(got) != lt.want || n != lt.n {
			t.Errorf("LongString(%q, %v) = %q, %d, want %q, %d", lt.in, lt.final, got, n, lt.want, lt.n)
		}
	}
}
