// Package ir is the control-flow-graph representation handed to the
// backend. A function is an ordered list of basic blocks; the first
// block is the entry. Every block ends in exactly one terminator.
package ir

import "fmt"

type (
	Type int

	Pred int

	// Value is a typed virtual register. IDs are unique within a
	// function. The zero Value carries Void and denotes "no value".
	Value struct {
		ID   int
		Type Type
	}

	Instr interface{}

	Block struct {
		Label string
		Code  []Instr
		Term  Instr // Branch, BranchIf or Return
	}

	Prototype struct {
		Name     string
		Params   []Type
		Ret      Type // Void when the function produces no value
		CallConv string
		External bool
	}

	Func struct {
		*Prototype

		In     []Value // incoming parameter values, one per Params entry
		Blocks []*Block
	}

	Module struct {
		Name string

		Decls []*Prototype
		Funcs []*Func
	}

	// Instructions.

	Alloca struct {
		Dst  Value // always of type Ptr
		Elem Type
	}

	Store struct {
		Ptr Value
		Val Value
	}

	Load struct {
		Dst Value
		Ptr Value
	}

	ConstInt struct {
		Dst Value
		Val int64
	}

	ConstFloat struct {
		Dst Value
		Val float64
	}

	BinOp struct {
		Dst  Value
		Op   Op
		L, R Value
	}

	Cmp struct {
		Dst  Value // always I1
		Pred Pred
		L, R Value
	}

	SIToFP struct {
		Dst Value
		Src Value
	}

	Call struct {
		Dst  Value // Void-typed when the callee returns nothing
		Func string
		Args []Value
	}

	// Terminators.

	Branch struct {
		Block *Block
	}

	BranchIf struct {
		Cond Value
		Then *Block
		Else *Block
	}

	Return struct {
		Val Value // Void-typed for a bare return
	}

	Op int
)

const (
	Void Type = iota
	I1
	I8
	I16
	I32
	I64
	F32
	F64
	Ptr
)

const (
	Add Op = iota
	Sub
	Mul
	SDiv
	SRem
	And
	Or
	Xor
	Shl
	LShr

	FAdd
	FSub
	FMul
	FDiv
)

const (
	EQ Pred = iota
	NE
	SGT
	SLT
	SGE
	SLE

	FEQ
	FNE
	FGT
	FLT
	FGE
	FLE
)

var typenames = [...]string{
	Void: "void",
	I1:   "i1",
	I8:   "i8",
	I16:  "i16",
	I32:  "i32",
	I64:  "i64",
	F32:  "f32",
	F64:  "f64",
	Ptr:  "ptr",
}

func (t Type) String() string {
	if int(t) < len(typenames) {
		return typenames[t]
	}

	return fmt.Sprintf("type(%d)", int(t))
}

func (t Type) Integer() bool {
	return t >= I1 && t <= I64
}

func (t Type) Float() bool {
	return t == F32 || t == F64
}

var opnames = [...]string{
	Add:  "add",
	Sub:  "sub",
	Mul:  "mul",
	SDiv: "sdiv",
	SRem: "srem",
	And:  "and",
	Or:   "or",
	Xor:  "xor",
	Shl:  "shl",
	LShr: "lshr",
	FAdd: "fadd",
	FSub: "fsub",
	FMul: "fmul",
	FDiv: "fdiv",
}

func (op Op) String() string {
	if int(op) < len(opnames) {
		return opnames[op]
	}

	return fmt.Sprintf("op(%d)", int(op))
}

var prednames = [...]string{
	EQ:  "eq",
	NE:  "ne",
	SGT: "sgt",
	SLT: "slt",
	SGE: "sge",
	SLE: "sle",
	FEQ: "feq",
	FNE: "fne",
	FGT: "fgt",
	FLT: "flt",
	FGE: "fge",
	FLE: "fle",
}

func (p Pred) String() string {
	if int(p) < len(prednames) {
		return prednames[p]
	}

	return fmt.Sprintf("pred(%d)", int(p))
}

func (v Value) IsVoid() bool {
	return v.Type == Void
}

func (v Value) String() string {
	if v.IsVoid() {
		return "void"
	}

	return fmt.Sprintf("%%%d", v.ID)
}

// Entry is the designated entry block of the function.
func (f *Func) Entry() *Block {
	return f.Blocks[0]
}
