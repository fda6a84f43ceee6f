package token

import (
	"fmt"
	"math"
)

// Number interprets a full token as a numeric literal and returns its
// double-precision value.  Recognized shapes, with underscores ignored
// between digits:
//
//	[sign] digits ['.' digits] [('e'|'E'|'&') [sign] digits]
//	[sign] radix 'r' digits ['.' digits] ['&' [sign] digits]
//	[sign] '0x' hexdigits ['.' hexdigits] ['&' [sign] digits]
//
// The radix is given in base 10 and must lie in [2,36]; mantissa digits use
// 0-9 then case-insensitive a-z.  An explicit-radix exponent uses '&' (in
// bases above 14 'e' is a digit) and scales by radix^exp.  Errors wrap
// ErrNumber; deciding whether a failed token is a hard error or a symbol is
// the caller's concern.
func Number(tok []byte) (float64, error) {
	i := 0
	sign := 1.0
	if i < len(tok) && (tok[i] == '+' || tok[i] == '-') {
		if tok[i] == '-' {
			sign = -1.0
		}
		i++
	}
	if i >= len(tok) {
		return 0, fmt.Errorf("%w: no digits", ErrNumber)
	}

	radix := 10
	explicit := false
	if tok[i] == '0' && i+1 < len(tok) && tok[i+1] == 'x' {
		radix = 16
		explicit = true
		i += 2
	} else if j := radixSep(tok[i:]); j >= 0 {
		r := 0
		seen := false
		for _, c := range tok[i : i+j] {
			if c == '_' {
				continue
			}
			r = r*10 + int(c-'0')
			seen = true
			if r > 36 {
				break
			}
		}
		if !seen || r < 2 || r > 36 {
			return 0, fmt.Errorf("%w: radix %s out of range [2,36]", ErrNumber, tok[i:i+j])
		}
		radix = r
		explicit = true
		i += j + 1
	}

	mant, n, err := mantissa(tok[i:], radix)
	if err != nil {
		return 0, err
	}
	i += n

	scale := 0
	if i < len(tok) && expMarker(tok[i], radix, explicit) {
		scale, n, err = exponent(tok[i+1:], radix)
		if err != nil {
			return 0, err
		}
		i += 1 + n
	}
	if i != len(tok) {
		return 0, fmt.Errorf("%w: unexpected %q", ErrNumber, tok[i])
	}

	base := float64(radix)
	if !explicit {
		base = 10
	}
	return sign * mant * math.Pow(base, float64(scale)), nil
}

// radixSep finds the offset of an 'r' radix separator preceded only by
// decimal digits and underscores, or -1.
func radixSep(d []byte) int {
	for i, c := range d {
		if asciiDigit(c) || c == '_' {
			continue
		}
		if c == 'r' && i > 0 {
			return i
		}
		return -1
	}
	return -1
}

// expMarker reports whether c starts an exponent.  Explicit-radix literals
// use '&' only; plain decimal also accepts 'e' and 'E'.
func expMarker(c byte, radix int, explicit bool) bool {
	if c == '&' {
		return true
	}
	if explicit {
		return false
	}
	return c == 'e' || c == 'E'
}

// mantissa reads digits with an optional fractional point in the given
// radix.  Returns the value and bytes consumed.
func mantissa(d []byte, radix int) (float64, int, error) {
	var (
		v      float64
		fscale = 1.0
		frac   bool
		seen   bool
		i      int
	)
	for i < len(d) {
		c := d[i]
		if c == '_' {
			i++
			continue
		}
		if c == '.' {
			if frac {
				break
			}
			frac = true
			i++
			continue
		}
		dig, ok := digitValue(c)
		if !ok || dig >= radix {
			// out-of-radix letters end the mantissa; the caller rejects
			// them unless they begin a valid exponent
			break
		}
		if frac {
			fscale /= float64(radix)
			v += float64(dig) * fscale
		} else {
			v = v*float64(radix) + float64(dig)
		}
		seen = true
		i++
	}
	if !seen {
		return 0, 0, fmt.Errorf("%w: no digits", ErrNumber)
	}
	return v, i, nil
}

// exponent reads an optionally signed digit run in the given radix.
func exponent(d []byte, radix int) (int, int, error) {
	i := 0
	sign := 1
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		if d[i] == '-' {
			sign = -1
		}
		i++
	}
	v := 0
	seen := false
	for i < len(d) {
		c := d[i]
		if c == '_' {
			i++
			continue
		}
		dig, ok := digitValue(c)
		if !ok || dig >= radix {
			break
		}
		v = v*radix + dig
		seen = true
		i++
	}
	if !seen {
		return 0, 0, fmt.Errorf("%w: malformed exponent", ErrNumber)
	}
	return sign * v, i, nil
}

func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
