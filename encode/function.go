package encode

import (
	llvmir "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
)

// isExactLinkage reports whether a symbol with this linkage is
// guaranteed to resolve to exactly one definition at link time (spec.md's
// "is_exact"): weak, linkonce, and common linkages are interposable and
// therefore not exact.
func isExactLinkage(linkage enum.Linkage) bool {
	switch linkage {
	case enum.LinkageWeak, enum.LinkageWeakODR,
		enum.LinkageLinkOnce, enum.LinkageLinkOnceODR,
		enum.LinkageCommon, enum.LinkageExternWeak:
		return false
	default:
		return true
	}
}

// encodeParam emits a Param object (spec.md §4.4 step 5): its type, its
// optional name, and its type-carrying ABI attributes (byval, byref,
// preallocated, inalloca, sret) as top-level optional keys rather than
// a nested sub-object. llir/llvm represents these as structured
// attribute values rather than bare enums, so each is matched
// individually.
func (mc *ModuleContext) encodeParam(p *llvmir.Param) Object {
	result := Object{"ty": mc.encodeType(p.Type())}
	if p.LocalName != "" {
		result["name"] = p.LocalName
	}
	for _, attr := range p.Attrs {
		switch a := attr.(type) {
		case llvmir.Byval:
			result["by_val"] = mc.encodeType(a.Typ)
		case llvmir.ByRef:
			result["by_ref"] = mc.encodeType(a.Typ)
		case llvmir.Preallocated:
			result["pre_allocated"] = mc.encodeType(a.Typ)
		case llvmir.SRet:
			result["struct_ret"] = mc.encodeType(a.Typ)
		case llvmir.InAlloca:
			result["in_alloca"] = mc.encodeType(a.Typ)
		case llvmir.ElementType:
			result["element_type"] = mc.encodeType(a.Typ)
		}
	}
	return result
}

// encodeBlock emits a basic block's wire shape (spec.md §4.4 step 6):
// the numbered body with debug instructions skipped, and the
// terminator serialized through the same Instruction wrapper.
func (mc *ModuleContext) encodeBlock(b *llvmir.Block) Object {
	body := make(Array, 0, len(b.Insts))
	for _, inst := range b.Insts {
		if isDebugInstruction(inst) {
			continue
		}
		body = append(body, mc.encodeInstructionFull(inst))
	}

	result := Object{
		"label": mc.blockIndex(b),
		"body":  body,
	}
	if b.LocalName != "" {
		result["name"] = b.LocalName
	}
	if b.Term != nil {
		result["terminator"] = mc.encodeInstructionFull(b.Term)
	}
	return result
}

// encodeFunction is the Function Serializer (spec.md §4.4): it builds
// and registers this function's numbering table before emitting
// anything that might reference it, enters it as the current function
// for the duration of the body walk, and always exits on the way out
// (even on the fatal-error path, since that unwinds via panic/recover
// at the Module Coordinator boundary and never returns through here).
func (mc *ModuleContext) encodeFunction(fn *llvmir.Func) Object {
	// The Module Coordinator pre-registers every live function's context
	// before encoding any of them (invariant M1); fall back to building
	// one here so this method still works if called on its own.
	fc, ok := mc.Lookup(fn)
	if !ok {
		fc = newFunctionContext(fn)
		mc.register(fn, fc)
	}
	mc.Enter(fc)
	defer mc.Exit()

	params := make(Array, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = mc.encodeParam(p)
	}

	blocks := make(Array, len(fn.Blocks))
	for i, b := range fn.Blocks {
		blocks[i] = mc.encodeBlock(b)
	}

	result := Object{
		"ty":                    mc.encodeType(fn.Sig),
		"is_defined":            len(fn.Blocks) > 0,
		"is_exact":              len(fn.Blocks) > 0 && isExactLinkage(fn.Linkage),
		"is_intrinsic":          isIntrinsicFunction(fn),
		"is_intrinsic_function": isIntrinsicFunction(fn),
		"params":                params,
		"blocks":                blocks,
	}
	if fn.GlobalName != "" {
		result["name"] = fn.GlobalName
	} else {
		mc.logger.Warn("function with no symbol name encountered")
	}
	return result
}
