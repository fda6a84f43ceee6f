package parse

import (
	"errors"
	"fmt"
	"io"

	"github.com/xificurC/janet-lang.org/value"
)

// Parse reads a single value from d.  Input after the value, other than
// whitespace and comments, is an error.
func Parse(d []byte, opts ...ParseOption) (*value.Value, error) {
	p := New(opts...)
	p.Consume(d)
	p.Eof()
	v, _, err := p.Next()
	if err != nil {
		return nil, err
	}
	if _, _, err := p.Next(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: trailing input after value", ErrParse)
	}
	return v, nil
}

// All reads every top-level value in d.
func All(d []byte, opts ...ParseOption) ([]*value.Value, error) {
	p := New(opts...)
	p.Consume(d)
	p.Eof()
	var vs []*value.Value
	for {
		v, _, err := p.Next()
		if errors.Is(err, io.EOF) {
			return vs, nil
		}
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
}
