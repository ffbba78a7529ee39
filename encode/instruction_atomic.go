package encode

import (
	llvmir "github.com/llir/llvm/ir"
)

// syncScope maps llir/llvm's SyncScope string (empty for the default
// cross-thread scope, "singlethread" for the thread-local one) onto
// spec.md's closed three-way enum. A named target-specific scope beyond
// those two falls into "unknown" rather than being passed through raw.
func syncScope(s string) string {
	switch s {
	case "":
		return "system"
	case "singlethread":
		return "thread"
	default:
		return "unknown"
	}
}

func (mc *ModuleContext) encodeFence(inst *llvmir.InstFence) Object {
	return Object{
		"ordering": inst.Ordering.String(),
		"scope":    syncScope(inst.SyncScope),
	}
}

// encodeCmpXchg follows DESIGN.md's AtomicCmpXchg decision:
// pointee_type is the operand's value type (the compared/new value),
// not the `{T, i1}` pair cmpxchg actually produces as its result.
func (mc *ModuleContext) encodeCmpXchg(inst *llvmir.InstCmpXchg) Object {
	return Object{
		"pointee_type":     mc.encodeType(inst.New.Type()),
		"pointer":          mc.encodeValue(inst.Ptr),
		"value_cmp":        mc.encodeValue(inst.Cmp),
		"value_xchg":       mc.encodeValue(inst.New),
		"ordering_success": inst.SuccessOrdering.String(),
		"ordering_failure": inst.FailureOrdering.String(),
		"weak":             inst.Weak,
		"address_space":    pointerAddressSpace(inst.Ptr),
		"scope":            syncScope(inst.SyncScope),
	}
}

// encodeAtomicRMW remaps the two LLVM 17 wrap-around opcodes onto their
// shorter wire names; every other opcode passes through unchanged.
func (mc *ModuleContext) encodeAtomicRMW(inst *llvmir.InstAtomicRMW) Object {
	opcode := inst.Op.String()
	switch opcode {
	case "uinc_wrap":
		opcode = "uinc"
	case "udec_wrap":
		opcode = "udec"
	}
	return Object{
		"opcode":        opcode,
		"pointee_type":  mc.encodeType(inst.X.Type()),
		"pointer":       mc.encodeValue(inst.Dst),
		"value":         mc.encodeValue(inst.X),
		"ordering":      inst.Ordering.String(),
		"address_space": pointerAddressSpace(inst.Dst),
		"scope":         syncScope(inst.SyncScope),
	}
}

// encodeLandingPad flattens clauses to the bare [Constant] list spec.md
// fixes: the catch/filter distinction is recoverable from each clause's
// own constant type (an array constant is a filter, anything else a
// catch) so no wrapper object is needed.
func (mc *ModuleContext) encodeLandingPad(inst *llvmir.InstLandingPad) Object {
	clauses := make(Array, len(inst.Clauses))
	for i, c := range inst.Clauses {
		clauses[i] = mc.encodeConstant(c.X)
	}
	return Object{
		"clauses":    clauses,
		"is_cleanup": inst.Cleanup,
	}
}
