package token

import "fmt"

type Operator int

const (
	Equal Operator = iota
	Assign

	Less
	Greater
	LessOrEqual
	GreaterOrEqual
	NotEqual

	Add
	Subtract
	Multiply
	Divide
	Power
	Modulo

	BinaryAnd
	BinaryOr
	BinaryXor
	BinaryNot
	BinaryLeft
	BinaryRight

	LogicAnd
	LogicOr
	LogicNot
)

var opnames = [...]string{
	Equal:          "==",
	Assign:         "=",
	Less:           "<",
	Greater:        ">",
	LessOrEqual:    "<=",
	GreaterOrEqual: ">=",
	NotEqual:       "!=",
	Add:            "+",
	Subtract:       "-",
	Multiply:       "*",
	Divide:         "/",
	Power:          "**",
	Modulo:         "%",
	BinaryAnd:      "&",
	BinaryOr:       "|",
	BinaryXor:      "^",
	BinaryNot:      "~",
	BinaryLeft:     "<<",
	BinaryRight:    ">>",
	LogicAnd:       "&&",
	LogicOr:        "||",
	LogicNot:       "!",
}

func (op Operator) String() string {
	if int(op) < len(opnames) {
		return opnames[op]
	}

	return fmt.Sprintf("op(%d)", int(op))
}

// Precedence orders binary operators for the parsing collaborator.
// Prefix-only operators have no binding power and return -1.
func (op Operator) Precedence() int {
	switch op {
	case Power:
		return 200
	case Multiply, Divide, Modulo:
		return 100
	case Add, Subtract:
		return 80
	case BinaryLeft, BinaryRight:
		return 60
	case Less, LessOrEqual, Greater, GreaterOrEqual:
		return 40
	case BinaryAnd:
		return 36
	case BinaryXor:
		return 33
	case BinaryOr:
		return 30
	case Equal, NotEqual:
		return 20
	case LogicAnd:
		return 15
	case LogicOr:
		return 10
	case Assign:
		return 5
	default:
		return -1
	}
}
