package encode

import (
	llvmir "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

type namedValue interface {
	Name() string
}

func valueName(v interface{}) string {
	if nv, ok := v.(namedValue); ok {
		return nv.Name()
	}
	return ""
}

func encodeGlobalRef(g *llvmir.Global) Object {
	result := Object{}
	if g.GlobalName != "" {
		result["name"] = g.GlobalName
	}
	return result
}

func encodeFuncRef(f *llvmir.Func) Object {
	result := Object{}
	if f.GlobalName != "" {
		result["name"] = f.GlobalName
	}
	return result
}

func encodeAliasRef(a *llvmir.Alias) Object {
	result := Object{}
	if a.GlobalName != "" {
		result["name"] = a.GlobalName
	}
	return result
}

func encodeIFuncRef(ifn *llvmir.IFunc) Object {
	result := Object{}
	if ifn.GlobalName != "" {
		result["name"] = ifn.GlobalName
	}
	return result
}

// encodeValue is the Value wrapper from spec.md §4.3: a single-key
// object discriminating the kind of SSA value being referenced. Inline
// asm, bare operators, and memory-SSA nodes are rejected here; inline
// asm is only ever reached through the call/invoke-asm paths.
func (mc *ModuleContext) encodeValue(v value.Value) Object {
	switch val := v.(type) {
	case *llvmir.Param:
		fc, ok := mc.Current()
		if !ok {
			mc.logger.Fatal("argument referenced outside of any function context")
		}
		idx, ok := fc.Argument(val)
		if !ok {
			mc.logger.Fatal("argument not registered in function context")
		}
		return Object{"Argument": Object{
			"ty":    mc.encodeType(val.Type()),
			"index": idx,
		}}

	case *llvmir.Block:
		return Object{"Label": mc.encodeBlockRef(val)}

	case constant.Constant:
		return Object{"Constant": mc.encodeConstant(val)}

	default:
		if _, isMetadataTy := v.Type().(*types.MetadataType); isMetadataTy {
			// Metadata-as-value: full metadata encoding is out of scope
			// (spec.md §9); emitted as a typed placeholder.
			return Object{"Metadata": nil}
		}
		if inst, ok := v.(llvmir.Instruction); ok {
			return Object{"Instruction": mc.encodeInstructionRef(inst)}
		}
		if term, ok := v.(llvmir.Terminator); ok {
			return Object{"Instruction": mc.encodeInstructionRef(term)}
		}
		mc.logger.Fatal("unknown value kind: %T", v)
		return nil
	}
}

// encodeInstructionRef encodes a reference to an instruction's result
// (spec.md §4.3's Value wrapper's Instruction case): just its type and
// intra-function index, not its full body.
func (mc *ModuleContext) encodeInstructionRef(v value.Value) Object {
	fc, ok := mc.Current()
	if !ok {
		mc.logger.Fatal("instruction referenced outside of any function context")
	}
	idx, ok := fc.Instruction(v)
	if !ok {
		mc.logger.Fatal("instruction not registered in function context")
	}
	return Object{
		"ty":    mc.encodeType(v.Type()),
		"index": idx,
	}
}

// encodeBlockRef encodes a basic block used as a value (an operand of
// `blockaddress`, or the rare case of a block used directly as a Value).
func (mc *ModuleContext) encodeBlockRef(b *llvmir.Block) Object {
	fn := b.Parent
	if fn == nil || fn.GlobalName == "" {
		mc.logger.Fatal("block address referring to an unnamed function")
	}
	fc, ok := mc.Lookup(fn)
	if !ok {
		mc.logger.Fatal("function context not ready for %s", fn.GlobalName)
	}
	idx, ok := fc.Block(b)
	if !ok {
		mc.logger.Fatal("block not registered in function context")
	}
	return Object{"func": fn.GlobalName, "block": idx}
}
