package value

import "math"

// Value is the tagged union produced by the reader.  Which fields are
// meaningful depends on Type:
//
//   - BoolType: Bool
//   - NumberType: Number
//   - SymbolType, KeywordType, StringType: Str
//   - BufferType: Bytes (mutable)
//   - TupleType, ArrayType: Values; tuples also carry Bracket
//   - StructType, TableType: Fields (keys) and Values in parallel
type Value struct {
	Type Type

	Bool   bool
	Number float64
	Str    string
	Bytes  []byte

	Fields []*Value
	Values []*Value

	Bracket Bracket
}

func Nil() *Value {
	return &Value{Type: NilType}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromNumber(f float64) *Value {
	return &Value{Type: NumberType, Number: f}
}

func FromSymbol(name string) *Value {
	return &Value{Type: SymbolType, Str: name}
}

func FromKeyword(name string) *Value {
	return &Value{Type: KeywordType, Str: name}
}

func FromString(v string) *Value {
	return &Value{Type: StringType, Str: v}
}

func FromBuffer(d []byte) *Value {
	return &Value{Type: BufferType, Bytes: d}
}

func Tuple(b Bracket, vs ...*Value) *Value {
	return &Value{Type: TupleType, Bracket: b, Values: vs}
}

func Array(vs ...*Value) *Value {
	return &Value{Type: ArrayType, Values: vs}
}

// KeyVal is one key/value pair of a struct or table literal body.
type KeyVal struct {
	Key *Value
	Val *Value
}

// Droppable reports whether the pair contributes no entry: a nil or NaN key,
// or a nil value, is silently dropped rather than erroring.
func (kv KeyVal) Droppable() bool {
	if kv.Key == nil || kv.Val == nil {
		return true
	}
	if kv.Key.Type == NilType || kv.Val.Type == NilType {
		return true
	}
	if kv.Key.Type == NumberType && math.IsNaN(kv.Key.Number) {
		return true
	}
	return false
}

// Struct assembles an immutable pair collection from kvs, applying the drop
// rules and last-write-wins key uniqueness.
func Struct(kvs ...KeyVal) *Value {
	return fromKeyVals(&Value{Type: StructType}, kvs)
}

// Table assembles a mutable pair collection from kvs, with the same drop and
// overwrite rules as Struct.
func Table(kvs ...KeyVal) *Value {
	return fromKeyVals(&Value{Type: TableType}, kvs)
}

func fromKeyVals(res *Value, kvs []KeyVal) *Value {
	res.Fields = make([]*Value, 0, len(kvs))
	res.Values = make([]*Value, 0, len(kvs))
	byHash := make(map[uint64]int, len(kvs))
	for _, kv := range kvs {
		if kv.Droppable() {
			continue
		}
		h := kv.Key.Hash()
		if at, ok := byHash[h]; ok && Compare(res.Fields[at], kv.Key) == 0 {
			res.Values[at] = kv.Val
			continue
		}
		// hash collision between distinct keys falls through to append;
		// the later index wins the bucket, lookups stay linear
		byHash[h] = len(res.Fields)
		res.Fields = append(res.Fields, kv.Key)
		res.Values = append(res.Values, kv.Val)
	}
	return res
}

// Get returns the value mapped by a key structurally equal to key, or nil.
func (v *Value) Get(key *Value) *Value {
	if v == nil || !v.Type.IsPairs() {
		return nil
	}
	for i := range v.Fields {
		if Compare(v.Fields[i], key) == 0 {
			return v.Values[i]
		}
	}
	return nil
}

// Len returns the element count of sequences, the pair count of structs and
// tables, and the byte length of strings and buffers.
func (v *Value) Len() int {
	switch v.Type {
	case TupleType, ArrayType:
		return len(v.Values)
	case StructType, TableType:
		return len(v.Fields)
	case StringType:
		return len(v.Str)
	case BufferType:
		return len(v.Bytes)
	default:
		return 0
	}
}

// Truthy reports the boolean interpretation: only nil and false are falsey.
func (v *Value) Truthy() bool {
	if v == nil || v.Type == NilType {
		return false
	}
	return v.Type != BoolType || v.Bool
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{
		Type:    v.Type,
		Bool:    v.Bool,
		Number:  v.Number,
		Str:     v.Str,
		Bracket: v.Bracket,
	}
	if v.Bytes != nil {
		res.Bytes = append([]byte(nil), v.Bytes...)
	}
	if v.Fields != nil {
		res.Fields = make([]*Value, len(v.Fields))
		for i, f := range v.Fields {
			res.Fields[i] = f.Clone()
		}
	}
	if v.Values != nil {
		res.Values = make([]*Value, len(v.Values))
		for i, vv := range v.Values {
			res.Values[i] = vv.Clone()
		}
	}
	return res
}

// Visit walks the value tree depth first, calling f before and after the
// children of each value.  Returning dive=false skips the children.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for _, k := range v.Fields {
			if err := k.Visit(f); err != nil {
				return err
			}
		}
		for _, vv := range v.Values {
			if err := vv.Visit(f); err != nil {
				return err
			}
		}
	}
	_, err = f(v, true)
	return err
}
