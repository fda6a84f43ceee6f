package token

// IsWhitespace reports bytes the reader skips between values: space, tab,
// CR, LF, form feed and NUL.
func IsWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', 0:
		return true
	default:
		return false
	}
}

// IsSymbolChar reports symbol-constituent bytes: ASCII alphanumerics, the
// punctuation set below, and any byte >= 0x80 (part of a multi-byte UTF-8
// sequence).  Note '~' is a constituent only after the first byte of a
// token; at value start it is a macro prefix.
func IsSymbolChar(c byte) bool {
	if c >= 0x80 {
		return true
	}
	if c >= '0' && c <= '9' {
		return true
	}
	if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
		return true
	}
	switch c {
	case '!', '@', '$', '%', '^', '&', '*', '-', '_', '+', '=',
		'|', '~', ':', '<', '>', '.', '?', '/', '\\':
		return true
	default:
		return false
	}
}

// IsMacroPrefix reports the shorthand prefix bytes that expand to wrapper
// forms around the following value.
func IsMacroPrefix(c byte) bool {
	switch c {
	case '\'', ';', '~', ',':
		return true
	default:
		return false
	}
}

// MacroName returns the symbol a shorthand prefix expands to.
func MacroName(c byte) string {
	switch c {
	case '\'':
		return "quote"
	case ';':
		return "splice"
	case '~':
		return "quasiquote"
	case ',':
		return "unquote"
	default:
		return ""
	}
}

func IsOpener(c byte) bool {
	switch c {
	case '(', '[', '{':
		return true
	default:
		return false
	}
}

func IsCloser(c byte) bool {
	switch c {
	case ')', ']', '}':
		return true
	default:
		return false
	}
}

// CloserFor returns the matching closing bracket for an opener.
func CloserFor(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	default:
		return 0
	}
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
