package encode

import (
	llvmir "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"libra/report"
)

// voidInstValue adapts an instruction or terminator that produces no
// result (e.g. store, fence, ret, br) into a value.Value so it can be
// numbered and enveloped the same way as value-producing instructions:
// its type is void and it has no identifier, matching spec.md's `Void`
// type (encoded as null, see encodeType) and its lack of a result name.
type voidInstValue struct {
	inst llvmir.LLStringer
}

func (v voidInstValue) String() string  { return v.inst.LLString() }
func (v voidInstValue) Type() types.Type { return types.Void }
func (v voidInstValue) Ident() string    { return "" }

// asValue returns x as a value.Value, wrapping it in voidInstValue if x
// is an instruction or terminator that does not itself produce a value.
func asValue(x interface{}) value.Value {
	if v, ok := x.(value.Value); ok {
		return v
	}
	return voidInstValue{inst: x.(llvmir.LLStringer)}
}

// FunctionContext is the per-function numbering table described in
// spec.md §3: three bijective tables assigning dense indices to blocks,
// instructions, and arguments. It is built once, before any encoding of
// the function's body begins, and never mutated afterward (invariant F2).
type FunctionContext struct {
	fn     *llvmir.Func
	blocks map[*llvmir.Block]uint64
	insts  map[value.Value]uint64
	args   map[*llvmir.Param]uint64
}

// newFunctionContext numbers a single function's arguments, blocks, and
// instructions in IR-declaration order (invariants F1, F2, F4/T4).
// Debug intrinsics are excluded from numbering (invariant F3, spec.md
// §4.4) since this implementation also excludes them from emission.
func newFunctionContext(fn *llvmir.Func) *FunctionContext {
	fc := &FunctionContext{
		fn:     fn,
		blocks: make(map[*llvmir.Block]uint64, len(fn.Blocks)),
		insts:  make(map[value.Value]uint64),
		args:   make(map[*llvmir.Param]uint64, len(fn.Params)),
	}

	for i, p := range fn.Params {
		fc.args[p] = uint64(i)
	}

	var instIdx uint64
	for _, block := range fn.Blocks {
		fc.blocks[block] = uint64(len(fc.blocks))

		for _, inst := range block.Insts {
			if isDebugInstruction(inst) {
				continue
			}
			fc.insts[asValue(inst)] = instIdx
			instIdx++
		}

		if block.Term != nil {
			fc.insts[asValue(block.Term)] = instIdx
			instIdx++
		}
	}

	return fc
}

// Block returns the dense index assigned to b.
func (fc *FunctionContext) Block(b *llvmir.Block) (uint64, bool) {
	idx, ok := fc.blocks[b]
	return idx, ok
}

// Instruction returns the dense index assigned to an instruction or
// terminator value v.
func (fc *FunctionContext) Instruction(v value.Value) (uint64, bool) {
	idx, ok := fc.insts[v]
	return idx, ok
}

// Argument returns the dense index assigned to parameter p.
func (fc *FunctionContext) Argument(p *llvmir.Param) (uint64, bool) {
	idx, ok := fc.args[p]
	return idx, ok
}

// ModuleContext is the process-wide (here: per-call) coordination table
// from spec.md §3: a mapping from function identity to FunctionContext,
// plus the single-slot "current function" cursor. It lives for exactly
// one encode.Module call.
type ModuleContext struct {
	logger  *report.Logger
	opts    Options
	funcs   map[*llvmir.Func]*FunctionContext
	current *FunctionContext
}

func newModuleContext(logger *report.Logger, opts Options) *ModuleContext {
	return &ModuleContext{
		logger: logger,
		opts:   opts,
		funcs:  make(map[*llvmir.Func]*FunctionContext),
	}
}

// register installs fn's FunctionContext. A second registration for the
// same function name (but a distinct *ir.Func, i.e. two function entries
// sharing a symbol) is a reportable warning, not fatal (spec.md §7.2).
func (mc *ModuleContext) register(fn *llvmir.Func, fc *FunctionContext) {
	for other := range mc.funcs {
		if other != fn && other.GlobalName == fn.GlobalName && fn.GlobalName != "" {
			mc.logger.Warn("duplicate function definition: %s", fn.GlobalName)
		}
	}
	mc.funcs[fn] = fc
}

// Lookup returns fn's FunctionContext. Invariant M1 guarantees this
// succeeds for every function referenced anywhere in the module once
// pre-registration (Module Coordinator step 4 / spec.md §4.5 step 4) has
// run. A miss is reported through the second result: the block-address
// encoders treat it as fatal, while encodeFunction builds and registers
// a context on the spot.
func (mc *ModuleContext) Lookup(fn *llvmir.Func) (*FunctionContext, bool) {
	fc, ok := mc.funcs[fn]
	return fc, ok
}

// Enter sets the current-function cursor. Re-entering while a cursor is
// already set is a programming error and is fatal (spec.md §5, invariant
// M2).
func (mc *ModuleContext) Enter(fc *FunctionContext) {
	if mc.current != nil {
		mc.logger.Fatal("re-entrant current-function cursor")
	}
	mc.current = fc
}

// Exit clears the current-function cursor.
func (mc *ModuleContext) Exit() {
	mc.current = nil
}

// Current returns the active FunctionContext, if any.
func (mc *ModuleContext) Current() (*FunctionContext, bool) {
	if mc.current == nil {
		return nil, false
	}
	return mc.current, true
}
