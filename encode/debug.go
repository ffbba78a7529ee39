package encode

import (
	"strings"

	llvmir "github.com/llir/llvm/ir"
)

// debugIntrinsicPrefixes are the llvm.dbg.* intrinsics that exist purely
// to carry source-level debug info. llir/llvm (unlike the LLVM C++ API)
// has no Intrinsic::ID table, so the debug-info filter is name-based
// rather than ID-based; this is the single place that fact is encoded,
// per spec.md §9's call to centralize the predicate.
var debugIntrinsicPrefixes = []string{
	"llvm.dbg.declare",
	"llvm.dbg.value",
	"llvm.dbg.addr",
	"llvm.dbg.assign",
	"llvm.dbg.label",
}

// isDebugFunction reports whether fn exists solely to carry debug info
// (spec.md §4.4 "Debug-function filter"). Such functions are skipped
// entirely by the Module Coordinator and Function Serializer.
func isDebugFunction(fn *llvmir.Func) bool {
	for _, prefix := range debugIntrinsicPrefixes {
		if fn.GlobalName == prefix {
			return true
		}
	}
	return false
}

// isDebugInstruction reports whether inst is a call to a debug
// intrinsic. Debug instructions are excluded from both numbering and
// emission (invariant F3).
func isDebugInstruction(inst llvmir.Instruction) bool {
	call, ok := inst.(*llvmir.InstCall)
	if !ok {
		return false
	}
	callee, ok := call.Callee.(*llvmir.Func)
	if !ok {
		return false
	}
	return isDebugFunction(callee)
}

// isIntrinsicFunction is the "is_intrinsic_function" companion signal
// from spec.md §4.4: true for any function whose symbol begins with the
// reserved llvm. prefix, debug intrinsics included.
func isIntrinsicFunction(fn *llvmir.Func) bool {
	return strings.HasPrefix(fn.GlobalName, "llvm.")
}
