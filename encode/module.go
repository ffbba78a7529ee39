package encode

import (
	llvmir "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"libra/report"
)

// encodeGlobal is the global-variable sub-schema (spec.md §4.5): ty is
// the variable's pointee type, not the pointer type of a reference to
// it, matching how globals are typed elsewhere in the document.
func (mc *ModuleContext) encodeGlobal(g *llvmir.Global) Object {
	addrSpace := uint64(0)
	if pt, ok := g.Type().(*types.PointerType); ok {
		addrSpace = uint64(pt.AddrSpace)
	}

	result := Object{
		"ty":              mc.encodeType(g.ContentType),
		"is_extern":       g.Init == nil,
		"is_const":        g.Immutable,
		"is_defined":      g.Init != nil,
		"is_exact":        isExactLinkage(g.Linkage),
		"is_thread_local": g.TLSModel != enum.TLSModelNone,
		"address_space":   addrSpace,
	}
	if g.GlobalName != "" {
		result["name"] = g.GlobalName
	} else {
		mc.logger.Warn("global variable with no symbol name encountered")
	}
	if g.Init != nil {
		result["initializer"] = mc.encodeConstant(g.Init)
	}
	return result
}

// encodeModuleAsm flattens the module's top-level inline-asm lines into
// a single string, mirroring how `llvm-as`/`llc` round-trip `module asm`
// blocks as one newline-joined blob.
func encodeModuleAsm(m *llvmir.Module) string {
	asm := ""
	for i, line := range m.ModuleAsms {
		if i > 0 {
			asm += "\n"
		}
		asm += line
	}
	return asm
}

// Module is the Module Coordinator (spec.md §4.5), the package's sole
// entry point. It walks the type table and globals, pre-registers every
// live function's numbering table up front (invariant M1, so a
// blockaddress operand in one function's initializer can resolve a
// block in a function encoded later), and finally serializes each
// non-debug function in module order.
//
// A fatal encoder error aborts by panic(*report.FatalError); Module
// recovers it at this boundary and returns it as a plain error, per
// spec.md's fatal-vs-warning error model.
func Module(m *llvmir.Module, opts Options) (doc map[string]interface{}, err error) {
	defer report.Recover(&err)

	logger := report.NewLogger(opts.LogLevel)
	mc := newModuleContext(logger, opts)

	structs := Array{}
	for _, t := range m.TypeDefs {
		if st, ok := t.(*types.StructType); ok && st.TypeName != "" {
			structs = append(structs, mc.encodeStructType(st))
		}
	}

	globals := Array{}
	for _, g := range m.Globals {
		globals = append(globals, mc.encodeGlobal(g))
	}

	liveFuncs := make([]*llvmir.Func, 0, len(m.Funcs))
	for _, fn := range m.Funcs {
		if isDebugFunction(fn) {
			continue
		}
		fc := newFunctionContext(fn)
		mc.register(fn, fc)
		liveFuncs = append(liveFuncs, fn)
	}

	functions := make(Array, 0, len(liveFuncs))
	for _, fn := range liveFuncs {
		functions = append(functions, mc.encodeFunction(fn))
	}

	doc = map[string]interface{}{
		"name":             m.SourceFilename,
		"asm":              encodeModuleAsm(m),
		"structs":          structs,
		"global_variables": globals,
		"functions":        functions,
	}
	return doc, nil
}
