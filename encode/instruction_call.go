package encode

import (
	llvmir "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/value"
)

// encodeInlineAsm is the inline-asm sub-schema shared by CallAsm and
// InvokeAsm (spec.md §6): the asm's own call signature, its source text,
// and its constraint string.
func (mc *ModuleContext) encodeInlineAsm(asm *llvmir.InlineAsm) Object {
	return Object{
		"signature":  mc.encodeType(asm.Typ),
		"asm":        asm.Asm,
		"constraint": asm.Constraints,
	}
}

// callArgs encodes an args list shared by both the call and invoke family.
func (mc *ModuleContext) callArgs(args []value.Value) Array {
	out := make(Array, len(args))
	for i, a := range args {
		out[i] = mc.encodeValue(a)
	}
	return out
}

// encodeCall dispatches Call into the four keyed InstBody variants
// spec.md §4.3 fixes: CallAsm, Intrinsic, CallDirect, CallIndirect. A
// callee resolves to Intrinsic only when it is a named function whose
// symbol carries the reserved llvm. prefix (debug intrinsics never
// reach here: they are filtered out before instruction numbering,
// invariant F3). The instruction's own result type is already carried
// by the enclosing Instruction wrapper (encodeInstructionFull), so repr
// itself only needs the callee's static signature.
func (mc *ModuleContext) encodeCall(inst *llvmir.InstCall) Object {
	args := mc.callArgs(inst.Args)
	targetType := mc.encodeType(inst.Sig)

	switch callee := inst.Callee.(type) {
	case *llvmir.InlineAsm:
		return Object{"CallAsm": Object{
			"asm":  mc.encodeInlineAsm(callee),
			"args": args,
		}}
	case *llvmir.Func:
		if isIntrinsicFunction(callee) {
			return Object{"Intrinsic": Object{
				"callee":      mc.encodeValue(callee),
				"target_type": targetType,
				"args":        args,
			}}
		}
		return Object{"CallDirect": Object{
			"callee":      mc.encodeValue(callee),
			"target_type": targetType,
			"args":        args,
		}}
	default:
		return Object{"CallIndirect": Object{
			"callee":      mc.encodeValue(inst.Callee),
			"target_type": targetType,
			"args":        args,
		}}
	}
}

// encodeInvoke mirrors encodeCall's keyed-variant dispatch for the
// terminator form: InvokeAsm, InvokeDirect, InvokeIndirect (spec.md
// §4.3 does not distinguish an intrinsic invoke from a direct one, so
// an invoked intrinsic still takes the InvokeDirect shape).
func (mc *ModuleContext) encodeInvoke(inst *llvmir.TermInvoke) Object {
	args := mc.callArgs(inst.Args)
	targetType := mc.encodeType(inst.Sig)
	normal := mc.blockIndex(inst.NormalRetTarget)
	unwind := mc.blockIndex(inst.ExceptionRetTarget)

	switch callee := inst.Invokee.(type) {
	case *llvmir.InlineAsm:
		return Object{"InvokeAsm": Object{
			"asm":    mc.encodeInlineAsm(callee),
			"args":   args,
			"normal": normal,
			"unwind": unwind,
		}}
	case *llvmir.Func:
		return Object{"InvokeDirect": Object{
			"callee":      mc.encodeValue(callee),
			"target_type": targetType,
			"args":        args,
			"normal":      normal,
			"unwind":      unwind,
		}}
	default:
		return Object{"InvokeIndirect": Object{
			"callee":      mc.encodeValue(inst.Invokee),
			"target_type": targetType,
			"args":        args,
			"normal":      normal,
			"unwind":      unwind,
		}}
	}
}
