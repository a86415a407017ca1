package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/n0tcnj1eck4h/akari/compiler/token"
)

func TestKeywordsAndIdents(t *testing.T) {
	toks := Tokens([]byte("fn main if else while let x_1 true false"))

	kinds := []token.Kind{
		token.KeywordTok, token.Identifier,
		token.KeywordTok, token.KeywordTok, token.KeywordTok, token.KeywordTok,
		token.Identifier,
		token.KeywordTok, token.KeywordTok,
		token.EOF,
	}

	require.Len(t, toks, len(kinds))

	for i, k := range kinds {
		require.Equal(t, k, toks[i].Kind, "token %d: %v", i, toks[i])
	}

	require.Equal(t, token.FN, toks[0].Word)
	require.Equal(t, "main", toks[1].Text)
	require.Equal(t, "x_1", toks[6].Text)
}

func TestOperators(t *testing.T) {
	src := "= == * ** < <= << > >= >> ! != & && | || + - / ^ ~ %"

	want := []token.Operator{
		token.Assign, token.Equal,
		token.Multiply, token.Power,
		token.Less, token.LessOrEqual, token.BinaryLeft,
		token.Greater, token.GreaterOrEqual, token.BinaryRight,
		token.LogicNot, token.NotEqual,
		token.BinaryAnd, token.LogicAnd,
		token.BinaryOr, token.LogicOr,
		token.Add, token.Subtract, token.Divide,
		token.BinaryXor, token.BinaryNot, token.Modulo,
	}

	toks := Tokens([]byte(src))
	require.Len(t, toks, len(want)+1)

	for i, op := range want {
		require.Equal(t, token.OperatorTok, toks[i].Kind, "token %d", i)
		require.Equal(t, op, toks[i].Op, "token %d", i)
	}
}

func TestNumbers(t *testing.T) {
	toks := Tokens([]byte("0 42 12345678901 2.5 10.25"))

	require.Equal(t, int64(0), toks[0].Int)
	require.Equal(t, int64(42), toks[1].Int)
	require.Equal(t, int64(12345678901), toks[2].Int, "wide literals survive lexing")
	require.Equal(t, token.FloatLiteral, toks[3].Kind)
	require.Equal(t, 2.5, toks[3].Flt)
	require.Equal(t, 10.25, toks[4].Flt)
}

func TestCommentsAndAtoms(t *testing.T) {
	toks := Tokens([]byte("a # the rest is gone\n(b)"))

	require.Equal(t, "a", toks[0].Text)
	require.Equal(t, token.AtomTok, toks[1].Kind)
	require.Equal(t, byte('('), toks[1].Atom)
	require.Equal(t, "b", toks[2].Text)
	require.Equal(t, byte(')'), toks[3].Atom)
	require.Equal(t, token.EOF, toks[4].Kind)
}

func TestStringLiteral(t *testing.T) {
	toks := Tokens([]byte(`print "hello there"`))

	require.Equal(t, token.PRINT, toks[0].Word)
	require.Equal(t, token.StringLiteral, toks[1].Kind)
	require.Equal(t, "hello there", toks[1].Str)
}

func TestPositions(t *testing.T) {
	toks := Tokens([]byte("a\n  b"))

	require.Equal(t, token.Pos{Line: 1, Col: 1}, toks[0].Pos)
	require.Equal(t, token.Pos{Line: 2, Col: 3}, toks[1].Pos)
}

func TestDotWithoutFraction(t *testing.T) {
	toks := Tokens([]byte("1."))

	require.Equal(t, token.IntegerLiteral, toks[0].Kind)
	require.Equal(t, int64(1), toks[0].Int)
	require.Equal(t, token.AtomTok, toks[1].Kind)
	require.Equal(t, byte('.'), toks[1].Atom)
}
