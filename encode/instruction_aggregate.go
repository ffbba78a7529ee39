package encode

import (
	llvmir "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
)

func (mc *ModuleContext) encodeGEP(inst *llvmir.InstGetElementPtr) Object {
	indices := make(Array, len(inst.Indices))
	for i, idx := range inst.Indices {
		indices[i] = mc.encodeValue(idx)
	}
	return Object{
		"pointer":        mc.encodeValue(inst.Src),
		"src_pointee_ty": mc.encodeType(inst.ElemType),
		"dst_pointee_ty": mc.encodeType(gepResultType(inst.ElemType, inst.Indices)),
		"indices":        indices,
		"address_space":  pointerAddressSpace(inst.Src),
	}
}

func (mc *ModuleContext) encodePhi(inst *llvmir.InstPhi) Object {
	options := make(Array, len(inst.Incs))
	for i, inc := range inst.Incs {
		options[i] = Object{
			"block": mc.blockIndex(inc.Pred),
			"value": mc.encodeValue(inc.X),
		}
	}
	return Object{"options": options}
}

func (mc *ModuleContext) encodeSelect(inst *llvmir.InstSelect) Object {
	return Object{
		"cond":       mc.encodeValue(inst.Cond),
		"then_value": mc.encodeValue(inst.X),
		"else_value": mc.encodeValue(inst.Y),
	}
}

func (mc *ModuleContext) encodeExtractValue(inst *llvmir.InstExtractValue) Object {
	indices := make(Array, len(inst.Indices))
	for i, idx := range inst.Indices {
		indices[i] = idx
	}
	return Object{
		"aggregate": mc.encodeValue(inst.X),
		"from_ty":   mc.encodeType(inst.X.Type()),
		"indices":   indices,
	}
}

func (mc *ModuleContext) encodeInsertValue(inst *llvmir.InstInsertValue) Object {
	indices := make(Array, len(inst.Indices))
	for i, idx := range inst.Indices {
		indices[i] = idx
	}
	return Object{
		"aggregate": mc.encodeValue(inst.X),
		"value":     mc.encodeValue(inst.Elem),
		"indices":   indices,
	}
}

func (mc *ModuleContext) encodeExtractElement(inst *llvmir.InstExtractElement) Object {
	return Object{
		"vec_ty": mc.encodeType(inst.X.Type()),
		"vector": mc.encodeValue(inst.X),
		"slot":   mc.encodeValue(inst.Index),
	}
}

func (mc *ModuleContext) encodeInsertElement(inst *llvmir.InstInsertElement) Object {
	return Object{
		"vector": mc.encodeValue(inst.X),
		"value":  mc.encodeValue(inst.Elem),
		"slot":   mc.encodeValue(inst.Index),
	}
}

// encodeShuffleVector folds the mask's undef lanes down to -1, since the
// wire format represents the mask as a flat array of signed indices
// rather than the richer {value} shape the other operands use.
func (mc *ModuleContext) encodeShuffleVector(inst *llvmir.InstShuffleVector) Object {
	mask := make(Array, len(inst.Mask.Elems))
	for i, e := range inst.Mask.Elems {
		if ci, ok := e.(*constant.Int); ok {
			mask[i] = ci.X.Int64()
		} else {
			mask[i] = int64(-1)
		}
	}
	return Object{
		"lhs":  mc.encodeValue(inst.X),
		"rhs":  mc.encodeValue(inst.Y),
		"mask": mask,
	}
}
