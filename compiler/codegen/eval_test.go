package codegen

import (
	"testing"

	"github.com/n0tcnj1eck4h/akari/compiler/ir"
)

// evalFunc executes a lowered function the way a backend would, with
// int64/float64 standing in for machine values. It returns the value of
// the final return and how many times each block was entered.
func evalFunc(t *testing.T, m *ir.Module, name string, args ...any) (any, map[string]int) {
	t.Helper()

	visits := make(map[string]int)

	v := eval(t, m, name, args, visits)

	return v, visits
}

func eval(t *testing.T, m *ir.Module, name string, args []any, visits map[string]int) any {
	t.Helper()

	var f *ir.Func

	for _, fn := range m.Funcs {
		if fn.Name == name {
			f = fn
			break
		}
	}

	if f == nil {
		t.Fatalf("no function %v in module", name)
	}

	regs := make(map[int]any)
	slots := make(map[int]*any)

	if len(args) != len(f.In) {
		t.Fatalf("%v takes %d args, got %d", name, len(f.In), len(args))
	}

	for i, in := range f.In {
		regs[in.ID] = args[i]
	}

	bb := f.Entry()

	for steps := 0; ; steps++ {
		if steps > 100000 {
			t.Fatalf("evaluation of %v did not terminate", name)
		}

		visits[bb.Label]++

		for _, ins := range bb.Code {
			switch x := ins.(type) {
			case ir.Alloca:
				slots[x.Dst.ID] = new(any)
			case ir.Store:
				*slots[x.Ptr.ID] = regs[x.Val.ID]
			case ir.Load:
				regs[x.Dst.ID] = *slots[x.Ptr.ID]
			case ir.ConstInt:
				regs[x.Dst.ID] = x.Val
			case ir.ConstFloat:
				regs[x.Dst.ID] = x.Val
			case ir.SIToFP:
				regs[x.Dst.ID] = float64(regs[x.Src.ID].(int64))
			case ir.BinOp:
				regs[x.Dst.ID] = evalBinOp(t, x.Op, regs[x.L.ID], regs[x.R.ID])
			case ir.Cmp:
				regs[x.Dst.ID] = evalCmp(t, x.Pred, regs[x.L.ID], regs[x.R.ID])
			case ir.Call:
				sub := make([]any, len(x.Args))
				for i, a := range x.Args {
					sub[i] = regs[a.ID]
				}

				v := eval(t, m, x.Func, sub, visits)
				if !x.Dst.IsVoid() {
					regs[x.Dst.ID] = v
				}
			default:
				t.Fatalf("unsupported instruction: %T", x)
			}
		}

		switch term := bb.Term.(type) {
		case ir.Branch:
			bb = term.Block
		case ir.BranchIf:
			if regs[term.Cond.ID].(int64) != 0 {
				bb = term.Then
			} else {
				bb = term.Else
			}
		case ir.Return:
			if term.Val.IsVoid() {
				return nil
			}

			return regs[term.Val.ID]
		default:
			t.Fatalf("unsupported terminator: %T", bb.Term)
		}
	}
}

func evalBinOp(t *testing.T, op ir.Op, l, r any) any {
	t.Helper()

	if li, ok := l.(int64); ok {
		ri := r.(int64)

		switch op {
		case ir.Add:
			return li + ri
		case ir.Sub:
			return li - ri
		case ir.Mul:
			return li * ri
		case ir.SDiv:
			return li / ri
		case ir.SRem:
			return li % ri
		case ir.And:
			return li & ri
		case ir.Or:
			return li | ri
		case ir.Xor:
			return li ^ ri
		case ir.Shl:
			return li << uint64(ri)
		case ir.LShr:
			return int64(uint64(li) >> uint64(ri))
		}
	}

	lf := l.(float64)
	rf := r.(float64)

	switch op {
	case ir.FAdd:
		return lf + rf
	case ir.FSub:
		return lf - rf
	case ir.FMul:
		return lf * rf
	case ir.FDiv:
		return lf / rf
	}

	t.Fatalf("unsupported binop: %v on %T", op, l)
	return nil
}

func evalCmp(t *testing.T, pred ir.Pred, l, r any) int64 {
	t.Helper()

	res := false

	if li, ok := l.(int64); ok {
		ri := r.(int64)

		switch pred {
		case ir.EQ:
			res = li == ri
		case ir.NE:
			res = li != ri
		case ir.SGT:
			res = li > ri
		case ir.SLT:
			res = li < ri
		case ir.SGE:
			res = li >= ri
		case ir.SLE:
			res = li <= ri
		}
	} else {
		lf := l.(float64)
		rf := r.(float64)

		switch pred {
		case ir.FEQ:
			res = lf == rf
		case ir.FNE:
			res = lf != rf
		case ir.FGT:
			res = lf > rf
		case ir.FLT:
			res = lf < rf
		case ir.FGE:
			res = lf >= rf
		case ir.FLE:
			res = lf <= rf
		}
	}

	if res {
		return 1
	}

	return 0
}
