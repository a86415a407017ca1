package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/n0tcnj1eck4h/akari/compiler/token"
)

type Lexer struct {
	src []byte
	i   int

	ch  rune // current rune, utf8.RuneError past the end
	w   int  // its width

	line, col int
}

func New(src []byte) *Lexer {
	l := &Lexer{
		src:  src,
		line: 1,
		col:  1,
	}

	l.ch, l.w = utf8.DecodeRune(src)

	return l
}

// Tokens drains the lexer. The returned slice always ends with an EOF token.
func Tokens(src []byte) []token.Token {
	l := New(src)

	var res []token.Token

	for {
		tok := l.Next()
		res = append(res, tok)

		if tok.Kind == token.EOF {
			return res
		}
	}
}

func (l *Lexer) advance() bool {
	if l.i >= len(l.src) {
		return false
	}

	if l.ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	l.i += l.w
	l.ch, l.w = utf8.DecodeRune(l.src[l.i:])

	return l.i < len(l.src)
}

func (l *Lexer) check(f func(rune) bool) bool {
	return l.i < len(l.src) && f(l.ch)
}

func (l *Lexer) accept(c rune) bool {
	if l.i < len(l.src) && l.ch == c {
		l.advance()
		return true
	}

	return false
}

func (l *Lexer) pos() token.Pos {
	return token.Pos{Line: l.line, Col: l.col}
}

func (l *Lexer) Next() token.Token {
	for l.check(unicode.IsSpace) {
		l.advance()
	}

	if l.check(func(c rune) bool { return c == '#' }) {
		for l.check(func(c rune) bool { return c != '\n' }) {
			l.advance()
		}

		return l.Next()
	}

	pos := l.pos()

	if l.check(unicode.IsLetter) {
		st := l.i

		for l.check(func(c rune) bool { return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' }) {
			l.advance()
		}

		word := string(l.src[st:l.i])

		if kw, ok := token.LookupKeyword(word); ok {
			return token.Token{Kind: token.KeywordTok, Word: kw, Pos: pos}
		}

		return token.Token{Kind: token.Identifier, Text: word, Pos: pos}
	}

	if l.check(unicode.IsDigit) {
		return l.number(pos)
	}

	if l.check(func(c rune) bool { return c == '"' }) {
		return l.str(pos)
	}

	if l.i >= len(l.src) {
		return token.Token{Kind: token.EOF, Pos: pos}
	}

	ch := l.ch
	l.advance()

	var op token.Operator = -1

	switch ch {
	case '=':
		op = token.Assign
		if l.accept('=') {
			op = token.Equal
		}
	case '*':
		op = token.Multiply
		if l.accept('*') {
			op = token.Power
		}
	case '<':
		op = token.Less
		if l.accept('=') {
			op = token.LessOrEqual
		} else if l.accept('<') {
			op = token.BinaryLeft
		}
	case '>':
		op = token.Greater
		if l.accept('=') {
			op = token.GreaterOrEqual
		} else if l.accept('>') {
			op = token.BinaryRight
		}
	case '!':
		op = token.LogicNot
		if l.accept('=') {
			op = token.NotEqual
		}
	case '&':
		op = token.BinaryAnd
		if l.accept('&') {
			op = token.LogicAnd
		}
	case '|':
		op = token.BinaryOr
		if l.accept('|') {
			op = token.LogicOr
		}
	case '+':
		op = token.Add
	case '-':
		op = token.Subtract
	case '/':
		op = token.Divide
	case '^':
		op = token.BinaryXor
	case '~':
		op = token.BinaryNot
	case '%':
		op = token.Modulo
	}

	if op >= 0 {
		return token.Token{Kind: token.OperatorTok, Op: op, Pos: pos}
	}

	return token.Token{Kind: token.AtomTok, Atom: byte(ch), Pos: pos}
}

func (l *Lexer) number(pos token.Pos) token.Token {
	st := l.i

	for l.check(unicode.IsDigit) {
		l.advance()
	}

	dot := false

	if l.i < len(l.src) && l.ch == '.' && l.i+l.w < len(l.src) {
		if c, _ := utf8.DecodeRune(l.src[l.i+l.w:]); unicode.IsDigit(c) {
			dot = true
			l.advance()

			for l.check(unicode.IsDigit) {
				l.advance()
			}
		}
	}

	text := string(l.src[st:l.i])

	if dot {
		f, _ := strconv.ParseFloat(text, 64)

		return token.Token{Kind: token.FloatLiteral, Flt: f, Pos: pos}
	}

	// Literals keep full int64 range here. Lowering narrows them later.
	var n int64
	for _, c := range text {
		n = n*10 + int64(c-'0')
	}

	return token.Token{Kind: token.IntegerLiteral, Int: n, Pos: pos}
}

func (l *Lexer) str(pos token.Pos) token.Token {
	l.advance() // opening quote

	st := l.i

	for l.check(func(c rune) bool { return c != '"' }) {
		l.advance()
	}

	text := string(l.src[st:l.i])

	l.accept('"')

	return token.Token{Kind: token.StringLiteral, Str: text, Pos: pos}
}
