package encode

import (
	"testing"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/stretchr/testify/require"
)

func TestModuleEncodesGlobalsAndFunctions(t *testing.T) {
	m := ir.NewModule()
	m.SourceFilename = "example.ll"

	m.NewGlobalDef("counter", constant.NewInt(types.I32, 0))

	fn := m.NewFunc("main", types.I32)
	block := fn.NewBlock("entry")
	block.NewRet(constant.NewInt(types.I32, 0))

	doc, err := Module(m, Options{LogLevel: 0})
	require.NoError(t, err)

	require.Equal(t, "example.ll", doc["name"])

	globals := doc["global_variables"].(Array)
	require.Len(t, globals, 1)
	require.Equal(t, "counter", globals[0].(Object)["name"])

	functions := doc["functions"].(Array)
	require.Len(t, functions, 1)
	require.Equal(t, "main", functions[0].(Object)["name"])
}

func TestModuleSkipsDebugIntrinsicFunctions(t *testing.T) {
	m := ir.NewModule()
	m.NewFunc("llvm.dbg.value", types.Void)
	m.NewFunc("real", types.Void).NewBlock("entry").NewRet(nil)

	doc, err := Module(m, Options{})
	require.NoError(t, err)

	functions := doc["functions"].(Array)
	require.Len(t, functions, 1)
	require.Equal(t, "real", functions[0].(Object)["name"])
}
