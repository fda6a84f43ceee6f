package value

import "strconv"

// Interface converts the value to plain Go data for interchange encoders
// (JSON, YAML).  The conversion is lossy: symbols and keywords flatten to
// strings, buffers to strings, tuples and arrays both to slices, structs and
// tables both to maps with stringified keys.
func (v *Value) Interface() any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case NilType:
		return nil
	case BoolType:
		return v.Bool
	case NumberType:
		return v.Number
	case StringType:
		return v.Str
	case SymbolType:
		return v.Str
	case KeywordType:
		return ":" + v.Str
	case BufferType:
		return string(v.Bytes)
	case TupleType, ArrayType:
		res := make([]any, len(v.Values))
		for i, e := range v.Values {
			res[i] = e.Interface()
		}
		return res
	case StructType, TableType:
		res := make(map[string]any, len(v.Fields))
		for i, k := range v.Fields {
			res[k.mapKey()] = v.Values[i].Interface()
		}
		return res
	default:
		return nil
	}
}

func (v *Value) mapKey() string {
	switch v.Type {
	case StringType, SymbolType:
		return v.Str
	case KeywordType:
		return ":" + v.Str
	case NumberType:
		return strconv.FormatFloat(v.Number, 'g', -1, 64)
	case BoolType:
		return strconv.FormatBool(v.Bool)
	case BufferType:
		return string(v.Bytes)
	default:
		return v.Type.String()
	}
}
