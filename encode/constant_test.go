package encode

import (
	"testing"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/stretchr/testify/assert"
)

func TestEncodeConstantInt(t *testing.T) {
	mc := newTestModuleContext()

	c := constant.NewInt(types.I32, 42)
	got := mc.encodeConstant(c)

	assert.Equal(t, Object{
		"ty":   Object{"Int": Object{"width": uint64(32)}},
		"repr": Object{"Int": Object{"value": "42"}},
	}, got)
}

func TestEncodeConstantIntBitsLimitExceeded(t *testing.T) {
	mc := newTestModuleContext()
	mc.opts.IntBitsLimit = 16

	assert.Panics(t, func() {
		mc.encodeConstant(constant.NewInt(types.I32, 1))
	})
}

func TestEncodeConstantNull(t *testing.T) {
	mc := newTestModuleContext()

	c := constant.NewNull(types.NewPointer(types.I8))
	got := mc.encodeConstant(c)

	assert.Equal(t, "Null", firstKey(got["repr"].(Object)))
}

func TestEncodeConstantArray(t *testing.T) {
	mc := newTestModuleContext()

	c := constant.NewArray(types.NewArray(2, types.I32),
		constant.NewInt(types.I32, 1),
		constant.NewInt(types.I32, 2),
	)
	got := mc.encodeConstant(c)

	repr := got["repr"].(Object)
	elems := repr["Array"].(Object)["elements"].(Array)
	assert.Len(t, elems, 2)
	assert.Equal(t, "1", elems[0].(Object)["repr"].(Object)["Int"].(Object)["value"])
	assert.Equal(t, "2", elems[1].(Object)["repr"].(Object)["Int"].(Object)["value"])
}

func TestEncodeConstantZeroInitializer(t *testing.T) {
	mc := newTestModuleContext()

	c := constant.NewZeroInitializer(types.I32)
	got := mc.encodeConstant(c)
	assert.Equal(t, Object{"Default": nil}, got["repr"])
}

func firstKey(o Object) string {
	for k := range o {
		return k
	}
	return ""
}
