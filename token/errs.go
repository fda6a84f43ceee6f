package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated     = errors.New("unterminated")
	ErrUnterminatedLong = errors.New("unterminated long string")
	ErrBadEscape        = errors.New("bad escape")
	ErrNumber           = errors.New("malformed number")
)

// ReadErr attaches a source position to a scanner error.
type ReadErr struct {
	Err error
	Pos Pos
}

func NewReadErr(e error, p *Pos) *ReadErr {
	return &ReadErr{Err: e, Pos: *p}
}

func (e *ReadErr) Unwrap() error {
	return e.Err
}

func (e *ReadErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewReadErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewReadErr(fmt.Errorf("unexpected %s", what), p)
}
