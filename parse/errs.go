package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("parse error")

	// ErrOddPairs reports a struct or table literal whose body holds an odd
	// number of values.
	ErrOddPairs = fmt.Errorf("%w: odd number of values in struct or table", ErrParse)

	// ErrUnexpected reports a byte that cannot begin any value, such as a
	// stray closing bracket.
	ErrUnexpected = fmt.Errorf("%w: unexpected character", ErrParse)

	// ErrIncomplete is reported by Next when the buffer ends inside an open
	// form and Eof has not been declared.  It is a request for more input,
	// not a parse failure, and never wraps ErrParse.
	ErrIncomplete = errors.New("incomplete input")
)

// pendingErr marks a condition that is ErrIncomplete while input may still
// arrive and becomes the wrapped error once Eof is declared.
type pendingErr struct {
	err error
}

func (p *pendingErr) Error() string {
	return p.err.Error()
}

func (p *pendingErr) Unwrap() error {
	return p.err
}
