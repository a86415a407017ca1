package codegen

import (
	"context"

	"tlog.app/go/errors"

	"github.com/n0tcnj1eck4h/akari/compiler/ir"
	"github.com/n0tcnj1eck4h/akari/compiler/semantic"
)

// expr lowers an expression into bb and returns the produced value.
// Expressions never create blocks, so the insertion point is not
// threaded back: logical operators are eager (no short circuit).
func (g *gen) expr(ctx context.Context, e semantic.Expression, bb *ir.Block) (_ ir.Value, err error) {
	switch e := e.(type) {
	case semantic.IntLit:
		// Wide literals are narrowed to 32 bits here. The lexer keeps
		// the full range; this is the documented truncation point.
		dst := g.value(ir.I32)
		bb.Code = append(bb.Code, ir.ConstInt{Dst: dst, Val: int64(int32(e))})

		return dst, nil
	case semantic.FloatLit:
		dst := g.value(ir.F32)
		bb.Code = append(bb.Code, ir.ConstFloat{Dst: dst, Val: float64(float32(e))})

		return dst, nil
	case semantic.BoolLit:
		dst := g.value(ir.I1)

		var v int64
		if e {
			v = 1
		}

		bb.Code = append(bb.Code, ir.ConstInt{Dst: dst, Val: v})

		return dst, nil
	case semantic.StrLit:
		return ir.Value{}, errors.New("string literals are not supported yet")
	case semantic.Ident:
		return g.load(string(e), bb)
	case semantic.Assign:
		return g.assign(ctx, e, bb)
	case semantic.BinOp:
		return g.binop(ctx, e, bb)
	case semantic.UnOp:
		// Passthrough: the operator is not applied yet.
		return g.expr(ctx, e.Expr, bb)
	case semantic.Call:
		return g.call(ctx, e, bb)
	default:
		return ir.Value{}, errors.New("unsupported expression: %T", e)
	}
}

func (g *gen) load(name string, bb *ir.Block) (_ ir.Value, err error) {
	sym, ok := g.tab.lookup(name)
	if !ok {
		return ir.Value{}, UndefinedSymbolError{Name: name}
	}

	dst := g.value(sym.Type)
	bb.Code = append(bb.Code, ir.Load{Dst: dst, Ptr: sym.Ptr})

	return dst, nil
}

// assign stores into the target slot and yields the freshly stored
// value, so assignments chain as expressions.
func (g *gen) assign(ctx context.Context, e semantic.Assign, bb *ir.Block) (_ ir.Value, err error) {
	v, err := g.expr(ctx, e.Value, bb)
	if err != nil {
		return ir.Value{}, err
	}

	v, err = voidCheck(v)
	if err != nil {
		return ir.Value{}, err
	}

	name, ok := e.Target.(semantic.Ident)
	if !ok {
		return ir.Value{}, errors.New("unsupported lvalue: %T", e.Target)
	}

	sym, ok := g.tab.lookup(string(name))
	if !ok {
		return ir.Value{}, UndefinedSymbolError{Name: string(name)}
	}

	if sym.Type != v.Type {
		return ir.Value{}, TypeMismatchError{Expected: sym.Type, Actual: v.Type}
	}

	bb.Code = append(bb.Code, ir.Store{Ptr: sym.Ptr, Val: v})

	return g.load(string(name), bb)
}

func (g *gen) binop(ctx context.Context, e semantic.BinOp, bb *ir.Block) (_ ir.Value, err error) {
	l, err := g.expr(ctx, e.Left, bb)
	if err != nil {
		return ir.Value{}, errors.Wrap(err, "left operand")
	}

	l, err = voidCheck(l)
	if err != nil {
		return ir.Value{}, errors.Wrap(err, "left operand")
	}

	r, err := g.expr(ctx, e.Right, bb)
	if err != nil {
		return ir.Value{}, errors.Wrap(err, "right operand")
	}

	r, err = voidCheck(r)
	if err != nil {
		return ir.Value{}, errors.Wrap(err, "right operand")
	}

	// The widening rule is directional: only an integer left operand
	// converts to match a floating right operand.
	if l.Type.Integer() && r.Type.Float() {
		dst := g.value(r.Type)
		bb.Code = append(bb.Code, ir.SIToFP{Dst: dst, Src: l})
		l = dst
	}

	switch {
	case l.Type.Integer() && r.Type.Integer():
		if op, ok := intOps[e.Op]; ok {
			dst := g.value(l.Type)
			bb.Code = append(bb.Code, ir.BinOp{Dst: dst, Op: op, L: l, R: r})

			return dst, nil
		}

		if pred, ok := intPreds[e.Op]; ok {
			dst := g.value(ir.I1)
			bb.Code = append(bb.Code, ir.Cmp{Dst: dst, Pred: pred, L: l, R: r})

			return dst, nil
		}
	case l.Type.Float() && r.Type.Float():
		if op, ok := floatOps[e.Op]; ok {
			dst := g.value(l.Type)
			bb.Code = append(bb.Code, ir.BinOp{Dst: dst, Op: op, L: l, R: r})

			return dst, nil
		}

		if pred, ok := floatPreds[e.Op]; ok {
			dst := g.value(ir.I1)
			bb.Code = append(bb.Code, ir.Cmp{Dst: dst, Pred: pred, L: l, R: r})

			return dst, nil
		}
	}

	return ir.Value{}, UnsupportedOperandsError{Op: e.Op, Left: l.Type, Right: r.Type}
}

func (g *gen) call(ctx context.Context, e semantic.Call, bb *ir.Block) (_ ir.Value, err error) {
	p, ok := g.tab.resolveFunc(e.Name)
	if !ok {
		return ir.Value{}, UndeclaredFunctionError{Name: e.Name}
	}

	args := make([]ir.Value, len(e.Args))

	for i, a := range e.Args {
		v, err := g.expr(ctx, a, bb)
		if err != nil {
			return ir.Value{}, errors.Wrap(err, "argument %d of %v", i, e.Name)
		}

		v, err = voidCheck(v)
		if err != nil {
			return ir.Value{}, errors.Wrap(err, "argument %d of %v", i, e.Name)
		}

		args[i] = v
	}

	dst := ir.Value{}
	if p.Ret != ir.Void {
		dst = g.value(p.Ret)
	}

	bb.Code = append(bb.Code, ir.Call{Dst: dst, Func: e.Name, Args: args})

	return dst, nil
}
