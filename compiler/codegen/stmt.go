package codegen

import (
	"context"

	"tlog.app/go/errors"

	"github.com/n0tcnj1eck4h/akari/compiler/ir"
	"github.com/n0tcnj1eck4h/akari/compiler/semantic"
)

// stmt lowers a single statement into bb and returns the block
// subsequent statements should be appended to.
func (g *gen) stmt(ctx context.Context, s semantic.Statement, bb *ir.Block) (_ *ir.Block, err error) {
	switch s := s.(type) {
	case semantic.LocalVar:
		return bb, g.localVar(ctx, s, bb)
	case semantic.Block:
		return g.blockStmt(ctx, s, bb)
	case semantic.Conditional:
		return g.conditional(ctx, s, bb)
	case semantic.Loop:
		return g.loop(ctx, s, bb)
	case semantic.Return:
		return bb, g.ret(ctx, s, bb)
	case semantic.ExprStatement:
		// Lowered for effect, the value is discarded whether void or not.
		_, err = g.expr(ctx, s.Expr, bb)
		return bb, errors.Wrap(err, "expression statement")
	default:
		return nil, errors.New("unsupported statement: %T", s)
	}
}

func (g *gen) localVar(ctx context.Context, s semantic.LocalVar, bb *ir.Block) (err error) {
	elem := typeOf(s.Type)

	ptr := g.value(ir.Ptr)
	bb.Code = append(bb.Code, ir.Alloca{Dst: ptr, Elem: elem})

	if s.Init != nil {
		v, err := g.expr(ctx, s.Init, bb)
		if err != nil {
			return errors.Wrap(err, "init of %v", s.Name)
		}

		v, err = voidCheck(v)
		if err != nil {
			return errors.Wrap(err, "init of %v", s.Name)
		}

		bb.Code = append(bb.Code, ir.Store{Ptr: ptr, Val: v})
	}

	// Bound after the initializer is lowered, so it can read a
	// shadowed outer binding of the same name.
	g.tab.bind(s.Name, Symbol{Ptr: ptr, Type: elem})

	return nil
}

func (g *gen) blockStmt(ctx context.Context, s semantic.Block, bb *ir.Block) (_ *ir.Block, err error) {
	g.tab.pushScope()
	defer g.tab.popScope()

	for _, sub := range s {
		bb, err = g.stmt(ctx, sub, bb)
		if err != nil {
			return nil, err
		}
	}

	return bb, nil
}

func (g *gen) conditional(ctx context.Context, s semantic.Conditional, bb *ir.Block) (_ *ir.Block, err error) {
	cond, err := g.expr(ctx, s.Cond, bb)
	if err != nil {
		return nil, errors.Wrap(err, "condition")
	}

	cond, err = voidCheck(cond)
	if err != nil {
		return nil, errors.Wrap(err, "condition")
	}

	then := g.block("then")
	els := g.block("else")
	merge := g.block("merge")

	terminate(bb, ir.BranchIf{Cond: cond, Then: then, Else: els})

	end, err := g.stmt(ctx, s.Then, then)
	if err != nil {
		return nil, errors.Wrap(err, "then branch")
	}

	terminate(end, ir.Branch{Block: merge})

	// Both arms terminate into merge even without an else branch, so
	// following statements have a single well defined continuation.
	end = els

	if s.Else != nil {
		end, err = g.stmt(ctx, s.Else, els)
		if err != nil {
			return nil, errors.Wrap(err, "else branch")
		}
	}

	terminate(end, ir.Branch{Block: merge})

	return merge, nil
}

// loop lowers a pretest loop. The condition is re-evaluated in the
// header block before every iteration; the only edge out of the loop is
// the condition-false edge from header to exit.
func (g *gen) loop(ctx context.Context, s semantic.Loop, bb *ir.Block) (_ *ir.Block, err error) {
	header := g.block("loop")
	body := g.block("body")
	exit := g.block("continue")

	terminate(bb, ir.Branch{Block: header})

	cond, err := g.expr(ctx, s.Cond, header)
	if err != nil {
		return nil, errors.Wrap(err, "condition")
	}

	cond, err = voidCheck(cond)
	if err != nil {
		return nil, errors.Wrap(err, "condition")
	}

	terminate(header, ir.BranchIf{Cond: cond, Then: body, Else: exit})

	end, err := g.stmt(ctx, s.Body, body)
	if err != nil {
		return nil, errors.Wrap(err, "body")
	}

	terminate(end, ir.Branch{Block: header})

	return exit, nil
}

// ret does not check the returned value against the declared return
// type; the resolution collaborator owns that check.
func (g *gen) ret(ctx context.Context, s semantic.Return, bb *ir.Block) (err error) {
	if s.Value == nil {
		terminate(bb, ir.Return{})
		return nil
	}

	v, err := g.expr(ctx, s.Value, bb)
	if err != nil {
		return errors.Wrap(err, "return value")
	}

	v, err = voidCheck(v)
	if err != nil {
		return errors.Wrap(err, "return value")
	}

	terminate(bb, ir.Return{Val: v})

	return nil
}
