package codegen

import (
	"tlog.app/go/errors"
	"tlog.app/go/loc"

	"github.com/n0tcnj1eck4h/akari/compiler/ir"
)

type (
	// Symbol binds a name to an addressable slot and its value type.
	// The slot is owned by the enclosing function; popping the scope
	// only makes the binding unreachable.
	Symbol struct {
		Ptr  ir.Value // address of the slot, always ir.Ptr typed
		Type ir.Type
	}

	scope struct {
		syms map[string]Symbol
		from loc.PC
	}

	// symtab holds the lexical scope stack, innermost last, and the
	// flat function table. Functions do not nest.
	symtab struct {
		stack []scope
		funcs map[string]*ir.Prototype
	}
)

func newSymtab() *symtab {
	return &symtab{
		funcs: make(map[string]*ir.Prototype),
	}
}

func (t *symtab) pushScope() {
	t.stack = append(t.stack, scope{
		syms: make(map[string]Symbol),
		from: loc.Caller(1),
	})
}

func (t *symtab) popScope() {
	t.stack = t.stack[:len(t.stack)-1]
}

// bind inserts into the innermost scope. Every lowering entry point
// opens a scope first; calling bind without one is a bug in the caller.
func (t *symtab) bind(name string, sym Symbol) {
	if len(t.stack) == 0 {
		panic("bind without an open scope")
	}

	t.stack[len(t.stack)-1].syms[name] = sym
}

func (t *symtab) lookup(name string) (Symbol, bool) {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if sym, ok := t.stack[i].syms[name]; ok {
			return sym, true
		}
	}

	return Symbol{}, false
}

func (t *symtab) registerFunc(name string, p *ir.Prototype) error {
	if _, ok := t.funcs[name]; ok {
		return errors.New("name redefined: %v", name)
	}

	t.funcs[name] = p

	return nil
}

func (t *symtab) resolveFunc(name string) (*ir.Prototype, bool) {
	p, ok := t.funcs[name]
	return p, ok
}
