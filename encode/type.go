package encode

import (
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
)

// encodeType is the Type Encoder (spec.md §4.1): a pure function of the
// type graph, exhaustive over the closed set of type kinds. Any other
// concrete types.Type (such as llir/llvm's x86_mmx type) has no case
// below and is fatal.
func (mc *ModuleContext) encodeType(t types.Type) Object {
	switch v := t.(type) {
	case *types.VoidType:
		return Object{"Void": nil}
	case *types.LabelType:
		return Object{"Label": nil}
	case *types.TokenType:
		return Object{"Token": nil}
	case *types.MetadataType:
		return Object{"Metadata": nil}
	case *types.IntType:
		return Object{"Int": Object{"width": v.BitSize}}
	case *types.FloatType:
		return Object{"Float": mc.encodeFloatType(v)}
	case *types.ArrayType:
		return Object{"Array": Object{
			"element": mc.encodeType(v.ElemType),
			"length":  v.Len,
		}}
	case *types.StructType:
		return Object{"Struct": mc.encodeStructType(v)}
	case *types.FuncType:
		params := make(Array, len(v.Params))
		for i, p := range v.Params {
			params[i] = mc.encodeType(p)
		}
		return Object{"Function": Object{
			"params":   params,
			"variadic": v.Variadic,
			"ret":      mc.encodeType(v.RetType),
		}}
	case *types.PointerType:
		if v.ElemType == nil {
			// opaque-pointer model: no pointee tracked.
			return Object{"Pointer": Object{"address_space": uint64(v.AddrSpace)}}
		}
		return Object{"TypedPointer": Object{
			"pointee":       mc.encodeType(v.ElemType),
			"address_space": uint64(v.AddrSpace),
		}}
	case *types.VectorType:
		return Object{"Vector": Object{
			"element": mc.encodeType(v.ElemType),
			"fixed":   !v.Scalable,
			"length":  v.Len,
		}}
	default:
		mc.logger.Fatal("unknown type kind: %s", t.String())
		return nil
	}
}

// encodeStructType encodes a struct or identified-struct type. fields is
// omitted iff the struct is opaque (spec.md's Type Encoder table).
func (mc *ModuleContext) encodeStructType(st *types.StructType) Object {
	result := Object{}
	if st.TypeName != "" {
		result["name"] = st.TypeName
	}
	if !st.Opaque {
		fields := make(Array, len(st.Fields))
		for i, f := range st.Fields {
			fields[i] = mc.encodeType(f)
		}
		result["fields"] = fields
	}
	return result
}

func (mc *ModuleContext) encodeFloatType(t *types.FloatType) Object {
	switch t.Kind {
	case enum.FloatKindHalf:
		return Object{"width": uint64(16), "name": "half"}
	case enum.FloatKindBFloat:
		return Object{"width": uint64(16), "name": "bfloat"}
	case enum.FloatKindFloat:
		return Object{"width": uint64(32), "name": "float"}
	case enum.FloatKindDouble:
		return Object{"width": uint64(64), "name": "double"}
	case enum.FloatKindX86_FP80:
		return Object{"width": uint64(80), "name": "x86_fp80"}
	case enum.FloatKindFP128:
		return Object{"width": uint64(128), "name": "fp128"}
	case enum.FloatKindPPC_FP128:
		return Object{"width": uint64(128), "name": "ppc_fp128"}
	default:
		mc.logger.Fatal("unknown float kind: %v", t.Kind)
		return nil
	}
}
