package value

import "fmt"

type Type int

const (
	NilType Type = iota
	BoolType
	NumberType
	SymbolType
	KeywordType
	StringType
	BufferType
	TupleType
	ArrayType
	StructType
	TableType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NilType:     "Nil",
		BoolType:    "Bool",
		NumberType:  "Number",
		SymbolType:  "Symbol",
		KeywordType: "Keyword",
		StringType:  "String",
		BufferType:  "Buffer",
		TupleType:   "Tuple",
		ArrayType:   "Array",
		StructType:  "Struct",
		TableType:   "Table",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Nil":     NilType,
		"Bool":    BoolType,
		"Number":  NumberType,
		"Symbol":  SymbolType,
		"Keyword": KeywordType,
		"String":  StringType,
		"Buffer":  BufferType,
		"Tuple":   TupleType,
		"Array":   ArrayType,
		"Struct":  StructType,
		"Table":   TableType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NilType,
		BoolType,
		NumberType,
		SymbolType,
		KeywordType,
		StringType,
		BufferType,
		TupleType,
		ArrayType,
		StructType,
		TableType,
	}
}

// IsLeaf reports whether values of this type have no child values.
func (t Type) IsLeaf() bool {
	switch t {
	case TupleType, ArrayType, StructType, TableType:
		return false
	default:
		return true
	}
}

// IsSequence reports whether the type is an ordered sequence of values.
func (t Type) IsSequence() bool {
	return t == TupleType || t == ArrayType
}

// IsPairs reports whether the type is an ordered key/value pair collection.
func (t Type) IsPairs() bool {
	return t == StructType || t == TableType
}

// Bracket distinguishes round from square tuple literals.  The reader
// attaches the flag; its interpretation (call form vs constructor) is up to
// downstream consumers.
type Bracket int

const (
	RoundBracket Bracket = iota
	SquareBracket
)

func (b Bracket) String() string {
	if b == SquareBracket {
		return "square"
	}
	return "round"
}
