package encode

import (
	llvmir "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// encodeBinary handles the full arithmetic/logic binary family. llir/llvm
// gives each opcode its own Go type (no shared "Op" field), so the
// opcode string is recovered by a type switch here rather than threaded
// through from the instruction.go dispatch.
func (mc *ModuleContext) encodeBinary(inst value.Value) Object {
	switch v := inst.(type) {
	case *llvmir.InstAdd:
		return mc.binaryObj("add", v.X, v.Y)
	case *llvmir.InstFAdd:
		return mc.binaryObj("fadd", v.X, v.Y)
	case *llvmir.InstSub:
		return mc.binaryObj("sub", v.X, v.Y)
	case *llvmir.InstFSub:
		return mc.binaryObj("fsub", v.X, v.Y)
	case *llvmir.InstMul:
		return mc.binaryObj("mul", v.X, v.Y)
	case *llvmir.InstFMul:
		return mc.binaryObj("fmul", v.X, v.Y)
	case *llvmir.InstUDiv:
		return mc.binaryObj("udiv", v.X, v.Y)
	case *llvmir.InstSDiv:
		return mc.binaryObj("sdiv", v.X, v.Y)
	case *llvmir.InstFDiv:
		return mc.binaryObj("fdiv", v.X, v.Y)
	case *llvmir.InstURem:
		return mc.binaryObj("urem", v.X, v.Y)
	case *llvmir.InstSRem:
		return mc.binaryObj("srem", v.X, v.Y)
	case *llvmir.InstFRem:
		return mc.binaryObj("frem", v.X, v.Y)
	case *llvmir.InstShl:
		return mc.binaryObj("shl", v.X, v.Y)
	case *llvmir.InstLShr:
		return mc.binaryObj("lshr", v.X, v.Y)
	case *llvmir.InstAShr:
		return mc.binaryObj("ashr", v.X, v.Y)
	case *llvmir.InstAnd:
		return mc.binaryObj("and", v.X, v.Y)
	case *llvmir.InstOr:
		return mc.binaryObj("or", v.X, v.Y)
	case *llvmir.InstXor:
		return mc.binaryObj("xor", v.X, v.Y)
	default:
		mc.logger.Fatal("unknown binary instruction: %T", inst)
		return nil
	}
}

func (mc *ModuleContext) binaryObj(opcode string, x, y value.Value) Object {
	return Object{
		"opcode": opcode,
		"lhs":    mc.encodeValue(x),
		"rhs":    mc.encodeValue(y),
	}
}

// encodeICmp and encodeFCmp use the i_*/f_* predicate forms spec.md §4.3
// fixes: llir/llvm's Pred.String() already yields the bare LLVM-IR
// mnemonic ("eq", "sgt", "oeq", ...), so the family prefix is prepended
// here rather than looked up from a table.
func (mc *ModuleContext) encodeICmp(inst *llvmir.InstICmp) Object {
	return Object{
		"predicate":    "i_" + inst.Pred.String(),
		"operand_type": mc.encodeType(inst.X.Type()),
		"lhs":          mc.encodeValue(inst.X),
		"rhs":          mc.encodeValue(inst.Y),
	}
}

func (mc *ModuleContext) encodeFCmp(inst *llvmir.InstFCmp) Object {
	return Object{
		"predicate":    "f_" + inst.Pred.String(),
		"operand_type": mc.encodeType(inst.X.Type()),
		"lhs":          mc.encodeValue(inst.X),
		"rhs":          mc.encodeValue(inst.Y),
	}
}

// encodeCast handles the full conversion family: each opcode is a
// distinct llir/llvm type sharing the same (From, To) shape. Opcode
// strings use spec.md §4.3's underscore forms rather than LLVM-IR's
// own mnemonics.
func (mc *ModuleContext) encodeCast(inst value.Value) Object {
	switch v := inst.(type) {
	case *llvmir.InstTrunc:
		return mc.castObj("trunc", v.From, v.To)
	case *llvmir.InstZExt:
		return mc.castObj("zext", v.From, v.To)
	case *llvmir.InstSExt:
		return mc.castObj("sext", v.From, v.To)
	case *llvmir.InstFPTrunc:
		return mc.castObj("fp_trunc", v.From, v.To)
	case *llvmir.InstFPExt:
		return mc.castObj("fp_ext", v.From, v.To)
	case *llvmir.InstFPToUI:
		return mc.castObj("fp_to_ui", v.From, v.To)
	case *llvmir.InstFPToSI:
		return mc.castObj("fp_to_si", v.From, v.To)
	case *llvmir.InstUIToFP:
		return mc.castObj("ui_to_fp", v.From, v.To)
	case *llvmir.InstSIToFP:
		return mc.castObj("si_to_fp", v.From, v.To)
	case *llvmir.InstPtrToInt:
		return mc.castObj("ptr_to_int", v.From, v.To)
	case *llvmir.InstIntToPtr:
		return mc.castObj("int_to_ptr", v.From, v.To)
	case *llvmir.InstBitCast:
		return mc.castObj("bitcast", v.From, v.To)
	case *llvmir.InstAddrSpaceCast:
		return mc.castObj("address_space_cast", v.From, v.To)
	default:
		mc.logger.Fatal("unknown cast instruction: %T", inst)
		return nil
	}
}

// castObj encodes {opcode, src_ty, dst_ty, operand}, adding the optional
// address-space fields for the three opcodes that carry a pointer on
// one side: address_space_cast reports both sides, ptr_to_int reports
// only its pointer source, and int_to_ptr only its pointer destination.
func (mc *ModuleContext) castObj(opcode string, from value.Value, to types.Type) Object {
	result := Object{
		"opcode":  opcode,
		"src_ty":  mc.encodeType(from.Type()),
		"dst_ty":  mc.encodeType(to),
		"operand": mc.encodeValue(from),
	}
	switch opcode {
	case "address_space_cast":
		if pt, ok := from.Type().(*types.PointerType); ok {
			result["src_address_space"] = uint64(pt.AddrSpace)
		}
		if pt, ok := to.(*types.PointerType); ok {
			result["dst_address_space"] = uint64(pt.AddrSpace)
		}
	case "ptr_to_int":
		if pt, ok := from.Type().(*types.PointerType); ok {
			result["src_address_space"] = uint64(pt.AddrSpace)
		}
	case "int_to_ptr":
		if pt, ok := to.(*types.PointerType); ok {
			result["dst_address_space"] = uint64(pt.AddrSpace)
		}
	}
	return result
}
