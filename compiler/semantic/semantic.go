// Package semantic defines the typed program tree produced by the
// resolution collaborator and consumed by codegen. Every expression and
// statement here is already classified: primitive types are resolved,
// operator kinds are fixed and lvalues are identified.
package semantic

type (
	Module struct {
		Imports      []Import
		Declarations []*FunctionDeclaration
		Functions    []*FunctionDefinition
		Types        []*Composite
		Globals      []*Global
	}

	FunctionDeclaration struct {
		Name     string
		Params   []Parameter
		Ret      Primitive // None when the function produces no value
		CallConv string    // external linkage tag, empty for local functions
	}

	FunctionDefinition struct {
		FunctionDeclaration
		Body []Statement
	}

	Parameter struct {
		Name string
		Type Primitive
	}

	Import struct {
		Path []string
	}

	Global struct {
		Name string
		Type Primitive
	}

	Composite struct {
		Name   string
		Fields []CompositeField
	}

	CompositeField struct {
		Name string
		Type Primitive
	}

	Statement  interface{}
	Expression interface{}
	LValue     interface{}

	// Statements.

	Block []Statement

	LocalVar struct {
		Name string
		Type Primitive
		Init Expression // nil when declared without initializer
	}

	Conditional struct {
		Cond Expression
		Then Statement
		Else Statement // nil when there is no else branch
	}

	Loop struct {
		Cond Expression
		Body Statement
	}

	Return struct {
		Value Expression // nil for a bare return
	}

	ExprStatement struct {
		Expr Expression
	}

	// Expressions. Ident doubles as the only LValue kind.

	Ident string

	IntLit   int64
	FloatLit float64
	BoolLit  bool
	StrLit   string

	Assign struct {
		Target LValue
		Value  Expression
	}

	BinOp struct {
		Left  Expression
		Op    BinaryOperator
		Right Expression
	}

	UnOp struct {
		Op   UnaryOperator
		Expr Expression
	}

	Call struct {
		Name string
		Args []Expression
	}
)
