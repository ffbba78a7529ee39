package encode

import (
	"testing"

	"github.com/llir/llvm/ir/types"
	"github.com/stretchr/testify/assert"

	"libra/report"
)

func newTestModuleContext() *ModuleContext {
	return newModuleContext(report.NewLogger(report.LevelSilent), Options{})
}

func TestEncodeTypeScalarKinds(t *testing.T) {
	mc := newTestModuleContext()

	assert.Equal(t, Object{"Void": nil}, mc.encodeType(types.Void))
	assert.Equal(t, Object{"Label": nil}, mc.encodeType(types.Label))
	assert.Equal(t, Object{"Token": nil}, mc.encodeType(types.Token))
	assert.Equal(t, Object{"Metadata": nil}, mc.encodeType(types.Metadata))
	assert.Equal(t, Object{"Int": Object{"width": uint64(32)}}, mc.encodeType(types.I32))
}

func TestEncodeTypeFloatKinds(t *testing.T) {
	mc := newTestModuleContext()

	got := mc.encodeType(types.Double)
	assert.Equal(t, Object{"Float": Object{"width": uint64(64), "name": "double"}}, got)

	got = mc.encodeType(types.Float)
	assert.Equal(t, Object{"Float": Object{"width": uint64(32), "name": "float"}}, got)
}

func TestEncodeTypeArray(t *testing.T) {
	mc := newTestModuleContext()

	arr := types.NewArray(4, types.I8)
	got := mc.encodeType(arr)

	assert.Equal(t, Object{"Array": Object{
		"element": Object{"Int": Object{"width": uint64(8)}},
		"length":  uint64(4),
	}}, got)
}

func TestEncodeTypeOpaqueStruct(t *testing.T) {
	mc := newTestModuleContext()

	st := types.NewStruct()
	st.TypeName = "Opaque"
	st.Opaque = true

	got := mc.encodeType(st)
	assert.Equal(t, Object{"Struct": Object{"name": "Opaque"}}, got)
}

func TestEncodeTypeIdentifiedStruct(t *testing.T) {
	mc := newTestModuleContext()

	st := types.NewStruct(types.I32, types.I64)
	st.TypeName = "Pair"

	got := mc.encodeType(st)
	assert.Equal(t, Object{"Struct": Object{
		"name": "Pair",
		"fields": Array{
			Object{"Int": Object{"width": uint64(32)}},
			Object{"Int": Object{"width": uint64(64)}},
		},
	}}, got)
}

func TestEncodeTypeTypedPointer(t *testing.T) {
	mc := newTestModuleContext()

	pt := types.NewPointer(types.I32)
	got := mc.encodeType(pt)

	assert.Equal(t, Object{"TypedPointer": Object{
		"pointee":       Object{"Int": Object{"width": uint64(32)}},
		"address_space": uint64(0),
	}}, got)
}

func TestEncodeTypeVector(t *testing.T) {
	mc := newTestModuleContext()

	vt := types.NewVector(4, types.I32)
	got := mc.encodeType(vt)

	assert.Equal(t, Object{"Vector": Object{
		"element": Object{"Int": Object{"width": uint64(32)}},
		"fixed":   true,
		"length":  uint64(4),
	}}, got)
}
