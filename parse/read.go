package parse

import (
	"errors"
	"fmt"
	"os"

	"github.com/xificurC/janet-lang.org/debug"
	"github.com/xificurC/janet-lang.org/token"
	"github.com/xificurC/janet-lang.org/value"
)

// readOne reads exactly one value at i, including any run of shorthand
// prefixes in front of it, and returns the value and the cursor after it.
func (p *Parser) readOne(buf []byte, i int) (*value.Value, int, error) {
	formStart := i
	var prefixes []int
	for {
		if i == len(buf) {
			return nil, 0, p.pending(token.ErrUnterminated, p.doc.Pos(formStart))
		}
		if !token.IsMacroPrefix(buf[i]) {
			break
		}
		prefixes = append(prefixes, i)
		i++
		var ok bool
		i, ok = p.skip(buf, i)
		if !ok {
			return nil, 0, p.pending(token.ErrUnterminated, p.doc.Pos(formStart))
		}
	}

	v, end, err := p.readValue(buf, i)
	if err != nil {
		return nil, 0, err
	}
	// prefixes compose in the order written: leftmost is outermost
	for j := len(prefixes) - 1; j >= 0; j-- {
		at := prefixes[j]
		name := p.track(value.FromSymbol(token.MacroName(buf[at])), at)
		v = p.track(value.Tuple(value.RoundBracket, name, v), at)
	}
	return v, end, nil
}

// readValue dispatches on the first classified byte of a value.
func (p *Parser) readValue(buf []byte, i int) (*value.Value, int, error) {
	switch c := buf[i]; {
	case c == '(':
		return p.readSequence(buf, i, i, value.TupleType, value.RoundBracket)
	case c == '[':
		return p.readSequence(buf, i, i, value.TupleType, value.SquareBracket)
	case c == '{':
		return p.readPairs(buf, i, i, value.StructType)
	case c == '"':
		return p.readString(buf, i, i, false)
	case c == '`':
		return p.readLong(buf, i, i, false)
	case c == '@':
		if i+1 == len(buf) && !p.eof {
			// the next byte decides between buffer, array, table and
			// plain symbol
			return nil, 0, p.pending(token.ErrUnterminated, p.doc.Pos(i))
		}
		if i+1 < len(buf) {
			switch buf[i+1] {
			case '"':
				return p.readString(buf, i, i+1, true)
			case '`':
				return p.readLong(buf, i, i+1, true)
			case '(':
				return p.readSequence(buf, i, i+1, value.ArrayType, value.RoundBracket)
			case '[':
				return p.readSequence(buf, i, i+1, value.ArrayType, value.SquareBracket)
			case '{':
				return p.readPairs(buf, i, i+1, value.TableType)
			}
		}
		return p.readToken(buf, i)
	case token.IsCloser(c):
		return nil, 0, token.NewReadErr(fmt.Errorf("%w %q", ErrUnexpected, c), p.doc.Pos(i))
	case token.IsSymbolChar(c):
		return p.readToken(buf, i)
	default:
		return nil, 0, token.NewReadErr(fmt.Errorf("%w %q", ErrUnexpected, c), p.doc.Pos(i))
	}
}

// readSequence fills a tuple or array by reading values until the matching
// closer.  start is the first byte of the literal ('@' for arrays), oi the
// opening bracket.
func (p *Parser) readSequence(buf []byte, start, oi int, typ value.Type, br value.Bracket) (*value.Value, int, error) {
	closer := token.CloserFor(buf[oi])
	i := oi + 1
	var items []*value.Value
	for {
		var ok bool
		i, ok = p.skip(buf, i)
		if !ok || i == len(buf) {
			return nil, 0, p.pending(token.ErrUnterminated, p.doc.Pos(start))
		}
		if buf[i] == closer {
			i++
			break
		}
		v, end, err := p.readOne(buf, i)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, v)
		i = end
	}
	var v *value.Value
	if typ == value.TupleType {
		v = value.Tuple(br, items...)
	} else {
		v = value.Array(items...)
	}
	return p.track(v, start), i, nil
}

// readPairs fills a struct or table.  The literal body is a flat value
// sequence read two at a time; an odd count is an error at the closer.
func (p *Parser) readPairs(buf []byte, start, oi int, typ value.Type) (*value.Value, int, error) {
	i := oi + 1
	var items []*value.Value
	for {
		var ok bool
		i, ok = p.skip(buf, i)
		if !ok || i == len(buf) {
			return nil, 0, p.pending(token.ErrUnterminated, p.doc.Pos(start))
		}
		if buf[i] == '}' {
			if len(items)%2 != 0 {
				return nil, 0, token.NewReadErr(ErrOddPairs, p.doc.Pos(i))
			}
			i++
			break
		}
		v, end, err := p.readOne(buf, i)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, v)
		i = end
	}
	kvs := make([]value.KeyVal, 0, len(items)/2)
	for j := 0; j+1 < len(items); j += 2 {
		kvs = append(kvs, value.KeyVal{Key: items[j], Val: items[j+1]})
	}
	var v *value.Value
	if typ == value.StructType {
		v = value.Struct(kvs...)
	} else {
		v = value.Table(kvs...)
	}
	return p.track(v, start), i, nil
}

// readString reads a quoted literal at qi; start is '@' for buffers.
func (p *Parser) readString(buf []byte, start, qi int, mutable bool) (*value.Value, int, error) {
	content, n, err := token.Quoted(buf[qi:])
	if err != nil {
		if errors.Is(err, token.ErrUnterminated) {
			return nil, 0, p.pending(token.ErrUnterminated, p.doc.Pos(start))
		}
		// n locates the offending escape
		return nil, 0, token.NewReadErr(err, p.doc.Pos(qi+n))
	}
	var v *value.Value
	if mutable {
		v = value.FromBuffer(content)
	} else {
		v = value.FromString(string(content))
	}
	return p.track(v, start), qi + n, nil
}

// readLong reads a backquote-delimited literal at bi; start is '@' for
// buffers.  Content is taken verbatim.
func (p *Parser) readLong(buf []byte, start, bi int, mutable bool) (*value.Value, int, error) {
	content, n, err := token.LongString(buf[bi:], p.eof)
	if err != nil {
		return nil, 0, p.pending(token.ErrUnterminatedLong, p.doc.Pos(start))
	}
	var v *value.Value
	if mutable {
		v = value.FromBuffer(append([]byte(nil), content...))
	} else {
		v = value.FromString(string(content))
	}
	return p.track(v, start), bi + n, nil
}

// readToken reads a symbol-constituent run and classifies it: the exact
// tokens nil/true/false, keywords, numbers, and otherwise symbols.  A token
// that looks numeric but fails to parse is a hard error only when it begins
// with a digit; sign-led failures fall back to symbols.
func (p *Parser) readToken(buf []byte, i int) (*value.Value, int, error) {
	n := token.Symbol(buf[i:])
	if i+n == len(buf) && !p.eof {
		// the run may extend into the next chunk
		return nil, 0, p.pending(token.ErrUnterminated, p.doc.Pos(i))
	}
	tok := buf[i : i+n]
	if debug.Token() {
		fmt.Fprintf(os.Stderr, "token: %q at %s\n", tok, p.doc.Pos(i))
	}

	var v *value.Value
	switch string(tok) {
	case "nil":
		v = value.Nil()
	case "true":
		v = value.FromBool(true)
	case "false":
		v = value.FromBool(false)
	default:
		switch c := tok[0]; {
		case c == ':':
			// a bare ':' is a keyword with empty text
			v = value.FromKeyword(string(tok[1:]))
		case isDigit(c) || c == '+' || c == '-':
			f, err := token.Number(tok)
			switch {
			case err == nil:
				v = value.FromNumber(f)
			case isDigit(c):
				return nil, 0, token.NewReadErr(err, p.doc.Pos(i))
			default:
				v = value.FromSymbol(string(tok))
			}
		default:
			v = value.FromSymbol(string(tok))
		}
	}
	return p.track(v, i), i + n, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
