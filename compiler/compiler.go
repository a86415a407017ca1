package compiler

import (
	"context"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/n0tcnj1eck4h/akari/compiler/codegen"
	"github.com/n0tcnj1eck4h/akari/compiler/ir"
	"github.com/n0tcnj1eck4h/akari/compiler/lexer"
	"github.com/n0tcnj1eck4h/akari/compiler/semantic"
	"github.com/n0tcnj1eck4h/akari/compiler/token"
)

func LexFile(ctx context.Context, name string) ([]token.Token, error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return lexer.Tokens(text), nil
}

// Lower turns a typed module into its control-flow-graph form, ready
// for an instruction emitting backend. Parsing and type resolution
// happen upstream; text goes in on the token side only.
func Lower(ctx context.Context, name string, m *semantic.Module) (*ir.Module, error) {
	mod, err := codegen.Lower(ctx, name, m)
	if err != nil {
		return nil, errors.Wrap(err, "lower module")
	}

	return mod, nil
}

// Dump renders a lowered module as text.
func Dump(ctx context.Context, m *ir.Module) ([]byte, error) {
	b, err := ir.Format(ctx, nil, m)
	if err != nil {
		return nil, errors.Wrap(err, "format module")
	}

	return b, nil
}
