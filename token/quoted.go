package token

import "fmt"

// Quoted scans a double-quoted byte string literal at d[0] == '"'.  It
// returns the decoded content and the total bytes consumed including both
// quote delimiters.  Literal newline bytes inside the quotes pass through
// verbatim.  On a bad escape the returned offset locates the backslash
// within d; a missing closing quote returns ErrUnterminated, which streaming
// callers treat as a request for more input.
func Quoted(d []byte) ([]byte, int, error) {
	if len(d) == 0 || d[0] != '"' {
		return nil, 0, fmt.Errorf("%w: not a quoted string", ErrBadEscape)
	}
	var res []byte
	i := 1
	for i < len(d) {
		c := d[i]
		switch c {
		case '"':
			return res, i + 1, nil
		case '\\':
			b, n, err := escape(d[i:])
			if err != nil {
				return nil, i, err
			}
			res = append(res, b)
			i += n
		default:
			res = append(res, c)
			i++
		}
	}
	return nil, 0, ErrUnterminated
}

// escape decodes one backslash escape at d[0] == '\\' and returns the byte
// it denotes plus the bytes consumed.
func escape(d []byte) (byte, int, error) {
	if len(d) < 2 {
		return 0, 0, ErrUnterminated
	}
	switch d[1] {
	case 'n':
		return '\n', 2, nil
	case 't':
		return '\t', 2, nil
	case 'r':
		return '\r', 2, nil
	case '0', 'z':
		return 0, 2, nil
	case 'f':
		return '\f', 2, nil
	case 'e':
		return 0x1b, 2, nil
	case '"':
		return '"', 2, nil
	case '\\':
		return '\\', 2, nil
	case 'x':
		if len(d) < 4 {
			return 0, 0, ErrUnterminated
		}
		hi, ok1 := hexDigit(d[2])
		lo, ok2 := hexDigit(d[3])
		if !ok1 || !ok2 {
			return 0, 0, fmt.Errorf("%w: \\x needs two hex digits", ErrBadEscape)
		}
		return hi<<4 | lo, 4, nil
	default:
		return 0, 0, fmt.Errorf("%w: \\%c", ErrBadEscape, d[1])
	}
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Quote renders s as a double-quoted literal using the reader's escape
// forms.  Bytes outside the named escapes that are ASCII control characters
// are written as \xHH; everything else passes through.
func Quote(s string) string {
	d := make([]byte, 1, len(s)+2)
	d[0] = '"'
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\n':
			d = append(d, '\\', 'n')
		case '\t':
			d = append(d, '\\', 't')
		case '\r':
			d = append(d, '\\', 'r')
		case '\f':
			d = append(d, '\\', 'f')
		case 0x1b:
			d = append(d, '\\', 'e')
		case 0:
			d = append(d, '\\', '0')
		default:
			if c < 0x20 || c == 0x7f {
				d = append(d, '\\', 'x', hexChars[c>>4], hexChars[c&0xf])
			} else {
				d = append(d, c)
			}
		}
	}
	return string(append(d, '"'))
}

const hexChars = "0123456789abcdef"
