package value

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// hashSeed is shared so that structurally equal values hash alike for the
// lifetime of the process.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the value.
// It panics if v is nil.
func (v *Value) Hash() uint64 {
	if v == nil {
		panic("value: Hash called on nil value")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	v.hashInto(&h)
	return h.Sum64()
}

func (v *Value) hashInto(h *maphash.Hash) {
	h.WriteByte(byte(v.Type))

	switch v.Type {
	case NilType:
	case BoolType:
		if v.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v.Number))
		h.Write(b[:])
	case SymbolType, KeywordType, StringType:
		h.WriteString(v.Str)
	case BufferType:
		h.Write(v.Bytes)
	case TupleType, ArrayType:
		if v.Type == TupleType {
			h.WriteByte(byte(v.Bracket))
		}
		var b [8]byte
		for _, e := range v.Values {
			binary.LittleEndian.PutUint64(b[:], e.Hash())
			h.Write(b[:])
		}
	case StructType, TableType:
		var b [8]byte
		for i, field := range v.Fields {
			binary.LittleEndian.PutUint64(b[:], field.Hash())
			h.Write(b[:])
			binary.LittleEndian.PutUint64(b[:], v.Values[i].Hash())
			h.Write(b[:])
		}
	}
}
