package encode

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xificurC/janet-lang.org/token"
	"github.com/xificurC/janet-lang.org/value"
)

// EncState carries layout and color state through one Encode call.
type EncState struct {
	col    int
	depth  int
	indent int

	Color func(value.Type, ColorAttr, string) string
}

// Encode writes the canonical text of v.  The default layout is a single
// line; EncodeIndent selects a multi-line layout for containers.  The
// output reads back to an equal value, except for NaN and infinities which
// have no literal syntax.
func Encode(v *value.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(v, w, es)
}

func encode(v *value.Value, w io.Writer, es *EncState) error {
	if s, ok := leafText(v); ok {
		return writeColored(w, es, v.Type, ValueColor, s)
	}
	switch v.Type {
	case value.TupleType:
		if v.Bracket == value.SquareBracket {
			return encodeSequence(v, w, es, "[", "]")
		}
		return encodeSequence(v, w, es, "(", ")")
	case value.ArrayType:
		return encodeSequence(v, w, es, "@[", "]")
	case value.StructType:
		return encodePairs(v, w, es, "{")
	case value.TableType:
		return encodePairs(v, w, es, "@{")
	default:
		panic("type")
	}
}

func leafText(v *value.Value) (string, bool) {
	switch v.Type {
	case value.NilType:
		return "nil", true
	case value.BoolType:
		return strconv.FormatBool(v.Bool), true
	case value.NumberType:
		return formatNumber(v.Number), true
	case value.SymbolType:
		return v.Str, true
	case value.KeywordType:
		return ":" + v.Str, true
	case value.StringType:
		return token.Quote(v.Str), true
	case value.BufferType:
		return "@" + token.Quote(string(v.Bytes)), true
	default:
		return "", false
	}
}

func formatNumber(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func encodeSequence(v *value.Value, w io.Writer, es *EncState, open, clos string) error {
	if err := writeColored(w, es, v.Type, SepColor, open); err != nil {
		return err
	}
	es.depth++
	for i, item := range v.Values {
		if err := writeItemPrefix(i, w, es); err != nil {
			return err
		}
		if err := encode(item, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeColored(w, es, v.Type, SepColor, clos)
}

func encodePairs(v *value.Value, w io.Writer, es *EncState, open string) error {
	if err := writeColored(w, es, v.Type, SepColor, open); err != nil {
		return err
	}
	es.depth++
	for i := range v.Fields {
		if err := writeItemPrefix(i, w, es); err != nil {
			return err
		}
		if err := encodeKey(v.Fields[i], w, es); err != nil {
			return err
		}
		if err := writeString(w, es, " "); err != nil {
			return err
		}
		if err := encode(v.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeColored(w, es, v.Type, SepColor, "}")
}

// encodeKey renders leaf keys with the field color; container keys encode
// like any value.
func encodeKey(k *value.Value, w io.Writer, es *EncState) error {
	if s, ok := leafText(k); ok {
		return writeColored(w, es, k.Type, FieldColor, s)
	}
	return encode(k, w, es)
}

// writeItemPrefix separates container items: single space on one line,
// newline plus indentation in indented mode.  The first item follows the
// opener directly.
func writeItemPrefix(i int, w io.Writer, es *EncState) error {
	if i == 0 {
		return nil
	}
	if es.indent > 0 {
		return writeNL(w, es)
	}
	return writeString(w, es, " ")
}

func writeNL(w io.Writer, es *EncState) error {
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	if err := writeString(w, es, "\n"+indentString); err != nil {
		return err
	}
	es.col = len(indentString)
	return nil
}

func writeString(w io.Writer, es *EncState, s string) error {
	es.col += len(s)
	_, err := w.Write([]byte(s))
	return err
}

func writeColored(w io.Writer, es *EncState, t value.Type, attr ColorAttr, s string) error {
	es.col += len(s)
	if es.Color != nil {
		s = es.Color(t, attr, s)
	}
	_, err := w.Write([]byte(s))
	return err
}
