package encode

import (
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// gepResultType walks elemType through indices[1:] to find the pointee
// type produced by a getelementptr (spec.md's "dst_pointee_ty"). The
// first index only steps over repetitions of elemType itself and never
// changes the walked type, matching LLVM's GEP semantics; llir/llvm has
// no ready-made accessor for this so it is computed by hand.
func gepResultType(elemType types.Type, indices []value.Value) types.Type {
	cur := elemType
	for _, idx := range indices[1:] {
		switch t := cur.(type) {
		case *types.ArrayType:
			cur = t.ElemType
		case *types.VectorType:
			cur = t.ElemType
		case *types.StructType:
			ci, ok := idx.(*constant.Int)
			if !ok {
				return cur
			}
			i := int(ci.X.Int64())
			if i < 0 || i >= len(t.Fields) {
				return cur
			}
			cur = t.Fields[i]
		default:
			return cur
		}
	}
	return cur
}
