package encode

import (
	"testing"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildAddFunction constructs `define i32 @add(i32 %a, i32 %b) { %r = add
// i32 %a, %b; ret i32 %r }`, the smallest function exercising a binary
// instruction followed by a terminator referencing its result.
func buildAddFunction() *ir.Func {
	m := ir.NewModule()
	fn := m.NewFunc("add", types.I32, ir.NewParam("a", types.I32), ir.NewParam("b", types.I32))
	block := fn.NewBlock("entry")
	sum := block.NewAdd(fn.Params[0], fn.Params[1])
	block.NewRet(sum)
	return fn
}

func TestEncodeFunctionBody(t *testing.T) {
	mc := newTestModuleContext()
	fn := buildAddFunction()

	got := mc.encodeFunction(fn)

	require.Equal(t, "add", got["name"])
	require.Equal(t, true, got["is_defined"])

	blocks := got["blocks"].(Array)
	require.Len(t, blocks, 1)

	block := blocks[0].(Object)
	body := block["body"].(Array)
	require.Len(t, body, 1)

	addInst := body[0].(Object)
	repr := addInst["repr"].(Object)
	binop := repr["Binary"].(Object)
	assert.Equal(t, "add", binop["opcode"])

	terminator := block["terminator"].(Object)
	termRepr := terminator["repr"].(Object)
	retBody := termRepr["Return"].(Object)
	retVal := retBody["value"].(Object)
	assert.Equal(t, "Instruction", firstKey(retVal))
}

func TestEncodeFunctionSwitchDefault(t *testing.T) {
	mc := newTestModuleContext()

	m := ir.NewModule()
	fn := m.NewFunc("pick", types.Void, ir.NewParam("x", types.I32))
	entry := fn.NewBlock("entry")
	defBlock := fn.NewBlock("default")
	caseBlock := fn.NewBlock("case1")

	entry.NewSwitch(fn.Params[0], defBlock, ir.NewCase(constant.NewInt(types.I32, 1), caseBlock))
	defBlock.NewRet(nil)
	caseBlock.NewRet(nil)

	got := mc.encodeFunction(fn)
	blocks := got["blocks"].(Array)
	entryBlock := blocks[0].(Object)
	term := entryBlock["terminator"].(Object)
	sw := term["repr"].(Object)["Switch"].(Object)

	assert.Equal(t, uint64(1), sw["default"])
	require.Contains(t, sw, "cond_ty")
	require.Contains(t, sw, "cond")

	cases := sw["cases"].(Array)
	require.Len(t, cases, 1)
	first := cases[0].(Object)
	assert.Equal(t, uint64(2), first["block"])
	require.Contains(t, first, "value")
}
