package main

import (
	"context"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/n0tcnj1eck4h/akari/compiler"
	"github.com/n0tcnj1eck4h/akari/compiler/token"
)

func main() {
	lexCmd := &cli.Command{
		Name:   "lex",
		Action: lexAct,
		Args:   cli.Args{},
	}

	app := &cli.Command{
		Name:        "akari",
		Description: "akari is a tool for working with akari source code",
		Commands: []*cli.Command{
			lexCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func lexAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		toks, err := compiler.LexFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "lex %v", a)
		}

		for _, tok := range toks {
			if tok.Kind == token.EOF {
				break
			}

			fmt.Printf("%d:%d\t%v\n", tok.Pos.Line, tok.Pos.Col, tok)
		}
	}

	return nil
}
