package value

import (
	"bytes"
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Pair collections compare field by field in literal order.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NilType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NumberType:
		return cmp.Compare(a.Number, b.Number)
	case SymbolType, KeywordType, StringType:
		return strings.Compare(a.Str, b.Str)
	case BufferType:
		return bytes.Compare(a.Bytes, b.Bytes)
	case TupleType, ArrayType:
		return compareSequences(a, b)
	case StructType, TableType:
		return comparePairs(a, b)
	}
	return 0
}

// Equal reports structural equality.  Note NaN numbers are unequal to
// everything, including themselves, matching float semantics.
func Equal(a, b *Value) bool {
	if a != nil && b != nil && a.Type == NumberType && b.Type == NumberType {
		return a.Number == b.Number
	}
	return Compare(a, b) == 0
}

// rank orders types:
// Nil < Bool < Number < Symbol < Keyword < String < Buffer < Tuple < Array < Struct < Table
func rank(t Type) int {
	switch t {
	case NilType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case SymbolType:
		return 3
	case KeywordType:
		return 4
	case StringType:
		return 5
	case BufferType:
		return 6
	case TupleType:
		return 7
	case ArrayType:
		return 8
	case StructType:
		return 9
	case TableType:
		return 10
	}
	return 100
}

func compareSequences(a, b *Value) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(lenA, lenB); c != 0 {
		return c
	}
	if a.Type == TupleType {
		return cmp.Compare(int(a.Bracket), int(b.Bracket))
	}
	return 0
}

func comparePairs(a, b *Value) int {
	lenA := len(a.Fields)
	lenB := len(b.Fields)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
