package codegen

import (
	"github.com/n0tcnj1eck4h/akari/compiler/ir"
	"github.com/n0tcnj1eck4h/akari/compiler/semantic"
)

// typeOf maps a primitive to its emitted value type. Unsigned integers
// share the representation of the signed ones; signedness lives in the
// operations, not the types.
func typeOf(p semantic.Primitive) ir.Type {
	switch p {
	case semantic.None:
		return ir.Void
	case semantic.Bool:
		return ir.I1
	case semantic.I8, semantic.U8:
		return ir.I8
	case semantic.I16, semantic.U16:
		return ir.I16
	case semantic.I32, semantic.U32:
		return ir.I32
	case semantic.I64, semantic.U64:
		return ir.I64
	case semantic.F32:
		return ir.F32
	case semantic.F64:
		return ir.F64
	default:
		panic(p)
	}
}

// Integer operand semantics of the fixed operator table. Divide, Modulo
// and the ordering comparisons are signed; shifts right are logical.
// LogicAnd and LogicOr are eager, lowered as the bitwise instructions.
var intOps = map[semantic.BinaryOperator]ir.Op{
	semantic.Add:      ir.Add,
	semantic.Subtract: ir.Sub,
	semantic.Multiply: ir.Mul,
	semantic.Divide:   ir.SDiv,
	semantic.Modulo:   ir.SRem,
	semantic.BitAnd:   ir.And,
	semantic.BitOr:    ir.Or,
	semantic.BitXor:   ir.Xor,
	semantic.BitLeft:  ir.Shl,
	semantic.BitRight: ir.LShr,
	semantic.LogicAnd: ir.And,
	semantic.LogicOr:  ir.Or,
}

var intPreds = map[semantic.BinaryOperator]ir.Pred{
	semantic.Equal:          ir.EQ,
	semantic.NotEqual:       ir.NE,
	semantic.Greater:        ir.SGT,
	semantic.Less:           ir.SLT,
	semantic.GreaterOrEqual: ir.SGE,
	semantic.LessOrEqual:    ir.SLE,
}

// Float operands support arithmetic and comparisons only. Modulo,
// bitwise and the eager logical operators have no float rule.
var floatOps = map[semantic.BinaryOperator]ir.Op{
	semantic.Add:      ir.FAdd,
	semantic.Subtract: ir.FSub,
	semantic.Multiply: ir.FMul,
	semantic.Divide:   ir.FDiv,
}

var floatPreds = map[semantic.BinaryOperator]ir.Pred{
	semantic.Equal:          ir.FEQ,
	semantic.NotEqual:       ir.FNE,
	semantic.Greater:        ir.FGT,
	semantic.Less:           ir.FLT,
	semantic.GreaterOrEqual: ir.FGE,
	semantic.LessOrEqual:    ir.FLE,
}
