// Package codegen lowers a typed module into its control-flow-graph
// form. Prototypes of all declarations and definitions are registered
// before any body is lowered, so calls resolve regardless of textual
// order. Statement lowering threads the active insertion point through
// every call instead of keeping it as ambient state.
package codegen

import (
	"context"
	"fmt"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/n0tcnj1eck4h/akari/compiler/ir"
	"github.com/n0tcnj1eck4h/akari/compiler/semantic"
)

type gen struct {
	mod *ir.Module
	tab *symtab

	fn  *ir.Func
	ids int
}

func Lower(ctx context.Context, name string, m *semantic.Module) (_ *ir.Module, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "codegen: lower module", "name", name)
	defer tr.Finish("err", &err)

	g := &gen{
		mod: &ir.Module{Name: name},
		tab: newSymtab(),
	}

	for _, d := range m.Declarations {
		p := prototype(d)
		p.External = true

		err = g.tab.registerFunc(d.Name, p)
		if err != nil {
			return nil, errors.Wrap(err, "declare %v", d.Name)
		}

		g.mod.Decls = append(g.mod.Decls, p)
	}

	for _, f := range m.Functions {
		err = g.tab.registerFunc(f.Name, prototype(&f.FunctionDeclaration))
		if err != nil {
			return nil, errors.Wrap(err, "define %v", f.Name)
		}
	}

	for _, f := range m.Functions {
		var fn *ir.Func

		fn, err = g.fun(ctx, f)
		if err != nil {
			return nil, errors.Wrap(err, "%v", f.Name)
		}

		g.mod.Funcs = append(g.mod.Funcs, fn)
	}

	return g.mod, nil
}

func prototype(d *semantic.FunctionDeclaration) *ir.Prototype {
	p := &ir.Prototype{
		Name:     d.Name,
		Ret:      typeOf(d.Ret),
		CallConv: d.CallConv,
	}

	for _, param := range d.Params {
		p.Params = append(p.Params, typeOf(param.Type))
	}

	return p
}

func (g *gen) fun(ctx context.Context, d *semantic.FunctionDefinition) (_ *ir.Func, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "codegen: lower function", "name", d.Name)
	defer tr.Finish("err", &err)

	p, _ := g.tab.resolveFunc(d.Name)

	g.fn = &ir.Func{Prototype: p}
	g.ids = 0

	g.tab.pushScope()
	defer g.tab.popScope()

	bb := g.block("entry")

	// Parameters arrive as plain values but get addressable slots like
	// locals, so later lowering treats every name the same way.
	for i, param := range d.Params {
		in := g.value(p.Params[i])
		g.fn.In = append(g.fn.In, in)

		ptr := g.value(ir.Ptr)
		bb.Code = append(bb.Code, ir.Alloca{Dst: ptr, Elem: in.Type})
		bb.Code = append(bb.Code, ir.Store{Ptr: ptr, Val: in})

		g.tab.bind(param.Name, Symbol{Ptr: ptr, Type: in.Type})
	}

	for _, s := range d.Body {
		bb, err = g.stmt(ctx, s, bb)
		if err != nil {
			return nil, err
		}
	}

	if bb.Term == nil {
		bb.Term = ir.Return{}
	}

	return g.fn, nil
}

func (g *gen) value(t ir.Type) ir.Value {
	v := ir.Value{ID: g.ids, Type: t}
	g.ids++

	return v
}

func (g *gen) block(kind string) *ir.Block {
	label := kind
	if len(g.fn.Blocks) != 0 {
		label = fmt.Sprintf("%s%d", kind, len(g.fn.Blocks))
	}

	b := &ir.Block{Label: label}
	g.fn.Blocks = append(g.fn.Blocks, b)

	return b
}

// terminate seals a block unless an earlier statement, a return most
// likely, already did.
func terminate(b *ir.Block, t ir.Instr) {
	if b.Term == nil {
		b.Term = t
	}
}

func voidCheck(v ir.Value) (ir.Value, error) {
	if v.IsVoid() {
		return v, VoidOperationError{}
	}

	return v, nil
}
