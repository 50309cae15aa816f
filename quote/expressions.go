// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package quote

import (
	"fmt"
	"strconv"

	"github.com/gogpu/glslquote/glsl"
)

func unaryOpName(op glsl.UnaryOp) string {
	switch op {
	case glsl.UnaryInc:
		return "glsl.UnaryInc"
	case glsl.UnaryDec:
		return "glsl.UnaryDec"
	case glsl.UnaryAdd:
		return "glsl.UnaryAdd"
	case glsl.UnaryMinus:
		return "glsl.UnaryMinus"
	case glsl.UnaryNot:
		return "glsl.UnaryNot"
	case glsl.UnaryComplement:
		return "glsl.UnaryComplement"
	default:
		panic(fmt.Sprintf("quote: unknown unary operator %d", op))
	}
}

func binaryOpName(op glsl.BinaryOp) string {
	switch op {
	case glsl.BinaryOr:
		return "glsl.BinaryOr"
	case glsl.BinaryXor:
		return "glsl.BinaryXor"
	case glsl.BinaryAnd:
		return "glsl.BinaryAnd"
	case glsl.BinaryBitOr:
		return "glsl.BinaryBitOr"
	case glsl.BinaryBitXor:
		return "glsl.BinaryBitXor"
	case glsl.BinaryBitAnd:
		return "glsl.BinaryBitAnd"
	case glsl.BinaryEqual:
		return "glsl.BinaryEqual"
	case glsl.BinaryNonEqual:
		return "glsl.BinaryNonEqual"
	case glsl.BinaryLT:
		return "glsl.BinaryLT"
	case glsl.BinaryGT:
		return "glsl.BinaryGT"
	case glsl.BinaryLTE:
		return "glsl.BinaryLTE"
	case glsl.BinaryGTE:
		return "glsl.BinaryGTE"
	case glsl.BinaryLShift:
		return "glsl.BinaryLShift"
	case glsl.BinaryRShift:
		return "glsl.BinaryRShift"
	case glsl.BinaryAdd:
		return "glsl.BinaryAdd"
	case glsl.BinarySub:
		return "glsl.BinarySub"
	case glsl.BinaryMult:
		return "glsl.BinaryMult"
	case glsl.BinaryDiv:
		return "glsl.BinaryDiv"
	case glsl.BinaryMod:
		return "glsl.BinaryMod"
	default:
		panic(fmt.Sprintf("quote: unknown binary operator %d", op))
	}
}

func assignOpName(op glsl.AssignOp) string {
	switch op {
	case glsl.AssignEqual:
		return "glsl.AssignEqual"
	case glsl.AssignMult:
		return "glsl.AssignMult"
	case glsl.AssignDiv:
		return "glsl.AssignDiv"
	case glsl.AssignMod:
		return "glsl.AssignMod"
	case glsl.AssignAdd:
		return "glsl.AssignAdd"
	case glsl.AssignSub:
		return "glsl.AssignSub"
	case glsl.AssignLShift:
		return "glsl.AssignLShift"
	case glsl.AssignRShift:
		return "glsl.AssignRShift"
	case glsl.AssignAnd:
		return "glsl.AssignAnd"
	case glsl.AssignXor:
		return "glsl.AssignXor"
	case glsl.AssignOr:
		return "glsl.AssignOr"
	default:
		panic(fmt.Sprintf("quote: unknown assignment operator %d", op))
	}
}

func (w *writer) writeExpr(expr glsl.Expr) {
	switch e := expr.(type) {
	case *glsl.Variable:
		w.raw("&glsl.Variable{Name: ")
		w.raw(strconv.Quote(e.Name))
		w.raw("}")

	case *glsl.IntConst:
		w.raw("&glsl.IntConst{Value: ")
		w.raw(strconv.FormatInt(int64(e.Value), 10))
		w.raw("}")

	case *glsl.UIntConst:
		w.raw("&glsl.UIntConst{Value: ")
		w.raw(strconv.FormatUint(uint64(e.Value), 10))
		w.raw("}")

	case *glsl.BoolConst:
		w.raw("&glsl.BoolConst{Value: ")
		w.raw(strconv.FormatBool(e.Value))
		w.raw("}")

	case *glsl.FloatConst:
		w.raw("&glsl.FloatConst{Value: ")
		w.raw(strconv.FormatFloat(float64(e.Value), 'g', -1, 32))
		w.raw("}")

	case *glsl.DoubleConst:
		w.raw("&glsl.DoubleConst{Value: ")
		w.raw(strconv.FormatFloat(e.Value, 'g', -1, 64))
		w.raw("}")

	case *glsl.Unary:
		w.open("&glsl.Unary")
		w.fieldRaw("Op", unaryOpName(e.Op))
		w.fieldStart("Expr")
		w.writeExpr(e.Expr)
		w.fieldEnd()
		w.closeBrace()

	case *glsl.Binary:
		w.open("&glsl.Binary")
		w.fieldRaw("Op", binaryOpName(e.Op))
		w.fieldStart("Left")
		w.writeExpr(e.Left)
		w.fieldEnd()
		w.fieldStart("Right")
		w.writeExpr(e.Right)
		w.fieldEnd()
		w.closeBrace()

	case *glsl.Ternary:
		w.open("&glsl.Ternary")
		w.fieldStart("Cond")
		w.writeExpr(e.Cond)
		w.fieldEnd()
		w.fieldStart("Then")
		w.writeExpr(e.Then)
		w.fieldEnd()
		w.fieldStart("Else")
		w.writeExpr(e.Else)
		w.fieldEnd()
		w.closeBrace()

	case *glsl.Assignment:
		w.open("&glsl.Assignment")
		w.fieldStart("Target")
		w.writeExpr(e.Target)
		w.fieldEnd()
		w.fieldRaw("Op", assignOpName(e.Op))
		w.fieldStart("Value")
		w.writeExpr(e.Value)
		w.fieldEnd()
		w.closeBrace()

	case *glsl.Bracket:
		w.open("&glsl.Bracket")
		w.fieldStart("Expr")
		w.writeExpr(e.Expr)
		w.fieldEnd()
		w.fieldStart("Spec")
		w.writeArraySpecifier(e.Spec)
		w.fieldEnd()
		w.closeBrace()

	case *glsl.FunCall:
		w.open("&glsl.FunCall")
		w.fieldStart("Fun")
		w.writeFunIdentifier(e.Fun)
		w.fieldEnd()
		if len(e.Args) > 0 {
			w.fieldStart("Args")
			w.open("[]glsl.Expr")
			for _, arg := range e.Args {
				w.ind()
				w.writeExpr(arg)
				w.raw(",\n")
			}
			w.closeBrace()
			w.fieldEnd()
		}
		w.closeBrace()

	case *glsl.Dot:
		w.open("&glsl.Dot")
		w.fieldStart("Expr")
		w.writeExpr(e.Expr)
		w.fieldEnd()
		w.fieldString("Field", e.Field)
		w.closeBrace()

	case *glsl.PostInc:
		w.open("&glsl.PostInc")
		w.fieldStart("Expr")
		w.writeExpr(e.Expr)
		w.fieldEnd()
		w.closeBrace()

	case *glsl.PostDec:
		w.open("&glsl.PostDec")
		w.fieldStart("Expr")
		w.writeExpr(e.Expr)
		w.fieldEnd()
		w.closeBrace()

	case *glsl.Comma:
		w.open("&glsl.Comma")
		w.fieldStart("Left")
		w.writeExpr(e.Left)
		w.fieldEnd()
		w.fieldStart("Right")
		w.writeExpr(e.Right)
		w.fieldEnd()
		w.closeBrace()

	default:
		panic(fmt.Sprintf("quote: unknown expression %T", expr))
	}
}

func (w *writer) writeFunIdentifier(fun glsl.FunIdentifier) {
	switch fun := fun.(type) {
	case glsl.FunName:
		w.raw("glsl.FunName(")
		w.raw(strconv.Quote(string(fun)))
		w.raw(")")
	case *glsl.FunExpr:
		w.open("&glsl.FunExpr")
		w.fieldStart("Expr")
		w.writeExpr(fun.Expr)
		w.fieldEnd()
		w.closeBrace()
	default:
		panic(fmt.Sprintf("quote: unknown function identifier %T", fun))
	}
}
