package encode

import (
	llvmir "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/value"
)

// materializeExpr resolves spec.md §9's ConstantExpr open question: a
// constant expression is re-emitted as a detached instruction (never
// appended to any block) and run back through the ordinary instruction
// encoder, so the Expr wire variant shares its repr shape with the
// instruction that would compute the same value at runtime. Every
// ConstantExpr operand is itself a Constant, never an Argument or
// instruction result, so no FunctionContext is required to encode the
// detached instruction's operands (see encodeDetachedInstruction).
func (mc *ModuleContext) materializeExpr(c constant.Constant) (value.Value, bool) {
	switch v := c.(type) {
	case *constant.ExprAdd:
		return llvmir.NewAdd(v.X, v.Y), true
	case *constant.ExprSub:
		return llvmir.NewSub(v.X, v.Y), true
	case *constant.ExprMul:
		return llvmir.NewMul(v.X, v.Y), true
	case *constant.ExprAnd:
		return llvmir.NewAnd(v.X, v.Y), true
	case *constant.ExprOr:
		return llvmir.NewOr(v.X, v.Y), true
	case *constant.ExprXor:
		return llvmir.NewXor(v.X, v.Y), true
	case *constant.ExprShl:
		return llvmir.NewShl(v.X, v.Y), true
	case *constant.ExprLShr:
		return llvmir.NewLShr(v.X, v.Y), true
	case *constant.ExprAShr:
		return llvmir.NewAShr(v.X, v.Y), true
	case *constant.ExprICmp:
		return llvmir.NewICmp(v.Pred, v.X, v.Y), true
	case *constant.ExprTrunc:
		return llvmir.NewTrunc(v.From, v.To), true
	case *constant.ExprZExt:
		return llvmir.NewZExt(v.From, v.To), true
	case *constant.ExprSExt:
		return llvmir.NewSExt(v.From, v.To), true
	case *constant.ExprBitCast:
		return llvmir.NewBitCast(v.From, v.To), true
	case *constant.ExprPtrToInt:
		return llvmir.NewPtrToInt(v.From, v.To), true
	case *constant.ExprIntToPtr:
		return llvmir.NewIntToPtr(v.From, v.To), true
	case *constant.ExprAddrSpaceCast:
		return llvmir.NewAddrSpaceCast(v.From, v.To), true
	case *constant.ExprGetElementPtr:
		indices := make([]value.Value, len(v.Indices))
		for i, idx := range v.Indices {
			indices[i] = idx
		}
		return llvmir.NewGetElementPtr(v.ElemType, v.Src, indices...), true
	case *constant.ExprSelect:
		return llvmir.NewSelect(v.Cond, v.X, v.Y), true
	case *constant.ExprExtractValue:
		return llvmir.NewExtractValue(v.X, v.Indices...), true
	case *constant.ExprInsertValue:
		return llvmir.NewInsertValue(v.X, v.Elem, v.Indices...), true
	default:
		return nil, false
	}
}
