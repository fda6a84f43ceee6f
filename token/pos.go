package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc accumulates the source bytes fed to a parser instance and the
// offsets of newline bytes, so that positions can be resolved to line and
// column lazily.
type PosDoc struct {
	d []byte
	n []int
}

// Write appends a chunk of source bytes, recording newline offsets.
func (p *PosDoc) Write(d []byte) {
	base := len(p.d)
	p.d = append(p.d, d...)
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, base+i)
		}
	}
}

func (p *PosDoc) Len() int {
	return len(p.d)
}

func (p *PosDoc) Bytes() []byte {
	return p.d
}

// LineCol resolves a byte offset to zero-based line and column.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{I: i, D: p}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := "?"
	if p.D != nil && len(p.D.d) > 0 {
		lo := max(0, p.I-5)
		hi := min(p.I+5, len(p.D.d))
		if lo < hi {
			sample = string(p.D.d[lo:hi])
		}
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
