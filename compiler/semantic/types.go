package semantic

import "fmt"

type (
	// Primitive is the closed value type set of the language.
	// None marks the absence of a value (a void function result).
	Primitive int

	BinaryOperator int

	UnaryOperator int
)

const (
	None Primitive = iota
	Bool
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
	F32
	F64
)

const (
	Add BinaryOperator = iota
	Subtract
	Multiply
	Divide
	Modulo

	Equal
	NotEqual
	Greater
	Less
	GreaterOrEqual
	LessOrEqual

	BitAnd
	BitOr
	BitXor
	BitLeft
	BitRight

	LogicAnd
	LogicOr
)

const (
	Negate UnaryOperator = iota
	LogicNot
	BitNot
)

var primnames = [...]string{
	None: "none",
	Bool: "bool",
	I8:   "i8",
	I16:  "i16",
	I32:  "i32",
	I64:  "i64",
	U8:   "u8",
	U16:  "u16",
	U32:  "u32",
	U64:  "u64",
	F32:  "f32",
	F64:  "f64",
}

func (p Primitive) String() string {
	if int(p) < len(primnames) {
		return primnames[p]
	}

	return fmt.Sprintf("primitive(%d)", int(p))
}

func (p Primitive) Integer() bool {
	return p >= I8 && p <= U64
}

func (p Primitive) Float() bool {
	return p == F32 || p == F64
}

func (p Primitive) Signed() bool {
	return p >= I8 && p <= I64
}

var binnames = [...]string{
	Add:            "+",
	Subtract:       "-",
	Multiply:       "*",
	Divide:         "/",
	Modulo:         "%",
	Equal:          "==",
	NotEqual:       "!=",
	Greater:        ">",
	Less:           "<",
	GreaterOrEqual: ">=",
	LessOrEqual:    "<=",
	BitAnd:         "&",
	BitOr:          "|",
	BitXor:         "^",
	BitLeft:        "<<",
	BitRight:       ">>",
	LogicAnd:       "&&",
	LogicOr:        "||",
}

func (op BinaryOperator) String() string {
	if int(op) < len(binnames) {
		return binnames[op]
	}

	return fmt.Sprintf("binop(%d)", int(op))
}

func (op UnaryOperator) String() string {
	switch op {
	case Negate:
		return "-"
	case LogicNot:
		return "!"
	case BitNot:
		return "~"
	default:
		return fmt.Sprintf("unop(%d)", int(op))
	}
}
