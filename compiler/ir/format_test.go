package ir

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	p := &Prototype{Name: "abs", Params: []Type{I32}, Ret: I32}

	entry := &Block{Label: "entry"}
	neg := &Block{Label: "neg1"}
	merge := &Block{Label: "merge2"}

	in := Value{ID: 0, Type: I32}
	ptr := Value{ID: 1, Type: Ptr}
	zero := Value{ID: 2, Type: I32}
	ld := Value{ID: 3, Type: I32}
	cmp := Value{ID: 4, Type: I1}

	entry.Code = []Instr{
		Alloca{Dst: ptr, Elem: I32},
		Store{Ptr: ptr, Val: in},
		ConstInt{Dst: zero, Val: 0},
		Load{Dst: ld, Ptr: ptr},
		Cmp{Dst: cmp, Pred: SLT, L: ld, R: zero},
	}
	entry.Term = BranchIf{Cond: cmp, Then: neg, Else: merge}

	sub := Value{ID: 5, Type: I32}
	neg.Code = []Instr{BinOp{Dst: sub, Op: Sub, L: zero, R: ld}}
	neg.Term = Return{Val: sub}

	merge.Term = Return{Val: ld}

	m := &Module{
		Name:  "test",
		Decls: []*Prototype{{Name: "print", Params: []Type{I32}, Ret: Void, CallConv: "C"}},
		Funcs: []*Func{{
			Prototype: p,
			In:        []Value{in},
			Blocks:    []*Block{entry, neg, merge},
		}},
	}

	b, err := Format(context.Background(), nil, m)
	require.NoError(t, err)

	exp := `declare print(i32) void "C"

func abs(%0 i32) i32 {
entry:
	%1 = alloca i32
	store %0, %1
	%2 = const i32 0
	%3 = load i32, %1
	%4 = cmp slt %3, %2
	br %4, neg1, merge2
neg1:
	%5 = sub i32 %2, %3
	ret %5
merge2:
	ret %3
}
`

	require.Equal(t, exp, string(b))
}

func TestFormatRejectsOpenBlock(t *testing.T) {
	m := &Module{
		Funcs: []*Func{{
			Prototype: &Prototype{Name: "broken"},
			Blocks:    []*Block{{Label: "entry"}},
		}},
	}

	_, err := Format(context.Background(), nil, m)
	require.Error(t, err)
}
