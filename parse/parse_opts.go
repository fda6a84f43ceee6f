package parse

import (
	"github.com/xificurC/janet-lang.org/token"
	"github.com/xificurC/janet-lang.org/value"
)

type parseOpts struct {
	positions map[*value.Value]*token.Pos
}

type ParseOption func(*parseOpts)

// ParsePositions records the source position of every produced value,
// including nested ones, into m.
func ParsePositions(m map[*value.Value]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*value.Value]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
