package codegen

import (
	"fmt"

	"github.com/n0tcnj1eck4h/akari/compiler/ir"
	"github.com/n0tcnj1eck4h/akari/compiler/semantic"
)

type (
	// VoidOperationError reports a void value used where an operand
	// carrying a value was required.
	VoidOperationError struct{}

	// TypeMismatchError reports an assignment or operand pairing whose
	// value type does not match the required type.
	TypeMismatchError struct {
		Expected ir.Type
		Actual   ir.Type
	}

	UndefinedSymbolError struct {
		Name string
	}

	UndeclaredFunctionError struct {
		Name string
	}

	// UnsupportedOperandsError reports a binary operand kind pairing the
	// lowering has no rule for.
	UnsupportedOperandsError struct {
		Op    semantic.BinaryOperator
		Left  ir.Type
		Right ir.Type
	}
)

func (VoidOperationError) Error() string {
	return "void value used as an operand"
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %v, got %v", e.Expected, e.Actual)
}

func (e UndefinedSymbolError) Error() string {
	return fmt.Sprintf("undefined symbol: %v", e.Name)
}

func (e UndeclaredFunctionError) Error() string {
	return fmt.Sprintf("undeclared function: %v", e.Name)
}

func (e UnsupportedOperandsError) Error() string {
	return fmt.Sprintf("unsupported operands: %v %v %v", e.Left, e.Op, e.Right)
}
