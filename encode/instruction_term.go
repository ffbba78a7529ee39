package encode

import (
	llvmir "github.com/llir/llvm/ir"
)

func (mc *ModuleContext) encodeRet(inst *llvmir.TermRet) Object {
	if inst.X == nil {
		return Object{}
	}
	return Object{"value": mc.encodeValue(inst.X)}
}

func (mc *ModuleContext) encodeSwitch(inst *llvmir.TermSwitch) Object {
	cases := make(Array, len(inst.Cases))
	for i, c := range inst.Cases {
		cases[i] = Object{
			"block": mc.blockIndex(c.Target),
			"value": mc.encodeConstant(c.X),
		}
	}
	return Object{
		"cond_ty": mc.encodeType(inst.X.Type()),
		"cond":    mc.encodeValue(inst.X),
		"default": mc.blockIndex(inst.TargetDefault),
		"cases":   cases,
	}
}

func (mc *ModuleContext) encodeIndirectBr(inst *llvmir.TermIndirectBr) Object {
	targets := make(Array, len(inst.ValidTargets))
	for i, b := range inst.ValidTargets {
		targets[i] = mc.blockIndex(b)
	}
	return Object{
		"address": mc.encodeValue(inst.Addr),
		"targets": targets,
	}
}
