package parse

import (
	"fmt"
	"io"
	"os"

	"github.com/xificurC/janet-lang.org/debug"
	"github.com/xificurC/janet-lang.org/token"
	"github.com/xificurC/janet-lang.org/value"
)

// Status describes where a Parser stands between calls to Next.
type Status int

const (
	// StatusRoot: between top-level forms, ready to read the next one.
	StatusRoot Status = iota
	// StatusPending: the buffer ends inside an open form.
	StatusPending
	// StatusDone: Eof was declared and all values have been emitted.
	StatusDone
	// StatusError: a parse error was reported; the parser stays in this
	// state until Reset.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusRoot:
		return "root"
	case StatusPending:
		return "pending"
	case StatusDone:
		return "done"
	case StatusError:
		return "error"
	default:
		return "<unknown status>"
	}
}

// Parser converts a byte stream into a sequence of values.  Input arrives
// in full or in chunks via Consume; Next emits values strictly in source
// order.  Each instance owns its buffer, cursor and position table
// exclusively; instances share nothing.
type Parser struct {
	doc    *token.PosDoc
	off    int
	eof    bool
	status Status
	err    error
	opts   *parseOpts
}

func New(opts ...ParseOption) *Parser {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return &Parser{
		doc:  &token.PosDoc{},
		opts: pOpts,
	}
}

// Consume appends a chunk of input.  It may be called any number of times
// before Eof.
func (p *Parser) Consume(d []byte) {
	p.doc.Write(d)
}

// Eof declares that no more input will arrive.  Forms still open at this
// point become hard errors on the next call to Next.
func (p *Parser) Eof() {
	p.eof = true
}

// Reset returns the parser to a fresh state, discarding buffered input and
// any sticky error.
func (p *Parser) Reset() {
	p.doc = &token.PosDoc{}
	p.off = 0
	p.eof = false
	p.status = StatusRoot
	p.err = nil
}

func (p *Parser) Status() Status {
	return p.status
}

// Next reads the next value.  It returns the value with the position of its
// first byte, io.EOF when the input is exhausted, ErrIncomplete when the
// buffer ends mid-form before Eof, or a positioned parse error.  A parse
// error is sticky: it aborts the current top-level form and repeats until
// Reset, but values already emitted remain valid.
func (p *Parser) Next() (*value.Value, *token.Pos, error) {
	if p.status == StatusError {
		return nil, nil, p.err
	}
	buf := p.doc.Bytes()

	start, ok := p.skip(buf, p.off)
	if !ok {
		p.status = StatusPending
		return nil, nil, ErrIncomplete
	}
	p.off = start
	if start == len(buf) {
		if p.eof {
			p.status = StatusDone
			return nil, nil, io.EOF
		}
		p.status = StatusRoot
		return nil, nil, ErrIncomplete
	}

	v, end, err := p.readOne(buf, start)
	if err != nil {
		if pe, isPending := err.(*pendingErr); isPending {
			if !p.eof {
				p.status = StatusPending
				return nil, nil, ErrIncomplete
			}
			err = pe.err
		}
		p.status = StatusError
		p.err = err
		return nil, nil, err
	}
	p.off = end
	p.status = StatusRoot
	pos := p.doc.Pos(start)
	if debug.Parse() {
		fmt.Fprintf(os.Stderr, "parse: %s at %s\n", v.Type, pos)
	}
	return v, pos, nil
}

// skip advances past whitespace and line comments.  It reports ok=false
// when the buffer ends inside a comment that may continue in the next
// chunk; the cursor is left at the comment start so it is re-scanned.
func (p *Parser) skip(buf []byte, i int) (int, bool) {
	for i < len(buf) {
		c := buf[i]
		if token.IsWhitespace(c) {
			i++
			continue
		}
		if c != '#' {
			return i, true
		}
		j := i
		for j < len(buf) && buf[j] != '\n' {
			j++
		}
		if j == len(buf) && !p.eof {
			return i, false
		}
		i = j
	}
	return i, true
}

func (p *Parser) pending(err error, pos *token.Pos) error {
	return &pendingErr{err: token.NewReadErr(err, pos)}
}

func (p *Parser) track(v *value.Value, at int) *value.Value {
	if p.opts.positions != nil {
		p.opts.positions[v] = p.doc.Pos(at)
	}
	return v
}
