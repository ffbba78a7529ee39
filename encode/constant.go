package encode

import (
	"math/big"

	llvmir "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
)

// encodeConstant is the Constant Encoder's public wrapper (spec.md §4.2):
// it attaches the type to the tagged constant body.
func (mc *ModuleContext) encodeConstant(c constant.Constant) Object {
	return Object{
		"ty":   mc.encodeType(c.Type()),
		"repr": mc.encodeConstBody(c),
	}
}

// encodeConstBody is the tagged dispatch over every constant kind in
// spec.md's closed set. Constant expressions are handled last since
// llir/llvm models every expression opcode as a distinct Go type (see
// expr.go), same as instructions.
func (mc *ModuleContext) encodeConstBody(c constant.Constant) Object {
	switch v := c.(type) {
	case *constant.Int:
		return Object{"Int": Object{"value": mc.encodeIntValue(v)}}
	case *constant.Float:
		return Object{"Float": Object{"value": v.X.Text('g', -1)}}
	case *constant.Null:
		return Object{"Null": nil}
	case *constant.NoneToken:
		return Object{"None": nil}
	case *constant.Undef:
		return Object{"Undef": nil}
	case *constant.ZeroInitializer:
		return Object{"Default": nil}
	case *constant.CharArray:
		elems := make(Array, len(v.X))
		for i, b := range v.X {
			elems[i] = Object{"ty": mc.encodeType(v.Typ.ElemType), "repr": Object{"Int": Object{"value": uintToDecimal(uint64(b))}}}
		}
		return Object{"Array": Object{"elements": elems}}
	case *constant.Array:
		return Object{"Array": Object{"elements": mc.encodeConstantSlice(v.Elems)}}
	case *constant.Vector:
		return Object{"Vector": Object{"elements": mc.encodeConstantSlice(v.Elems)}}
	case *constant.Struct:
		return Object{"Struct": Object{"elements": mc.encodeConstantSlice(v.Fields)}}

	case *llvmir.Global:
		return Object{"Variable": encodeGlobalRef(v)}
	case *llvmir.Func:
		return Object{"Function": encodeFuncRef(v)}
	case *llvmir.Alias:
		return Object{"Alias": encodeAliasRef(v)}
	case *llvmir.IFunc:
		return Object{"Interface": encodeIFuncRef(v)}

	case *constant.DSOLocalEquivalent:
		return Object{"Marker": Object{"wrap": mc.encodeConstant(v.Func)}}

	case *constant.BlockAddress:
		return Object{"Label": mc.encodeBlockAddress(v)}

	default:
		if inst, ok := mc.materializeExpr(c); ok {
			return Object{"Expr": Object{"inst": mc.encodeDetachedInstruction(inst)}}
		}
		mc.logger.Fatal("unknown constant: %s", c.Ident())
		return nil
	}
}

func (mc *ModuleContext) encodeConstantSlice(elems []constant.Constant) Array {
	out := make(Array, len(elems))
	for i, e := range elems {
		out[i] = mc.encodeConstant(e)
	}
	return out
}

// encodeIntValue resolves spec.md §9's integer-width open question:
// unsigned decimal encoding of the APInt at full bit width, with no
// ceiling by default; Options.IntBitsLimit is an opt-in extra cap
// (SPEC_FULL.md §6). v.X is the signed two's-complement value llir/llvm
// stores it as, so a negative value is rebiased by 1<<BitSize before
// printing — an i8 -1 must read "255", not "-1".
func (mc *ModuleContext) encodeIntValue(v *constant.Int) string {
	if mc.opts.IntBitsLimit != 0 && v.Typ.BitSize > mc.opts.IntBitsLimit {
		mc.logger.Fatal("integer constant exceeds configured bit-width ceiling (%d > %d)", v.Typ.BitSize, mc.opts.IntBitsLimit)
	}
	if v.X.Sign() >= 0 {
		return v.X.Text(10)
	}
	unsigned := new(big.Int).Add(v.X, new(big.Int).Lsh(big.NewInt(1), uint(v.Typ.BitSize)))
	return unsigned.Text(10)
}

func uintToDecimal(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

func (mc *ModuleContext) encodeBlockAddress(ba *constant.BlockAddress) Object {
	fn, ok := ba.Func.(*llvmir.Func)
	if !ok {
		mc.logger.Fatal("block address referring to a non-function constant")
	}
	if fn.GlobalName == "" {
		mc.logger.Fatal("block address referring to an unnamed function")
	}
	fc, ok := mc.Lookup(fn)
	if !ok {
		mc.logger.Fatal("function context not ready for %s", fn.GlobalName)
	}
	block, ok := ba.Block.(*llvmir.Block)
	if !ok {
		mc.logger.Fatal("block address referring to a non-block value")
	}
	idx, ok := fc.Block(block)
	if !ok {
		mc.logger.Fatal("block not registered in function context: %s", fn.GlobalName)
	}
	return Object{"func": fn.GlobalName, "block": idx}
}
