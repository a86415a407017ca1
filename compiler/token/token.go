package token

import "fmt"

type (
	Kind int

	Keyword int

	Pos struct {
		Line int
		Col  int
	}

	Token struct {
		Kind Kind
		Pos  Pos

		Word Keyword // Kind == KeywordTok
		Text string  // Kind == Identifier
		Int  int64   // Kind == IntegerLiteral
		Flt  float64 // Kind == FloatLiteral
		Str  string  // Kind == StringLiteral
		Op   Operator
		Atom byte
	}
)

const (
	EOF Kind = iota
	KeywordTok
	Identifier
	IntegerLiteral
	FloatLiteral
	StringLiteral
	OperatorTok
	AtomTok
)

const (
	IMPORT Keyword = iota
	EXTERN
	FN
	RETURN
	IF
	ELSE
	WHILE
	LET
	TRUE
	FALSE
	PRINT
)

var keywords = map[string]Keyword{
	"import": IMPORT,
	"extern": EXTERN,
	"fn":     FN,
	"return": RETURN,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"print":  PRINT,
}

// LookupKeyword maps an identifier-shaped word to its keyword, if it is one.
func LookupKeyword(word string) (Keyword, bool) {
	kw, ok := keywords[word]
	return kw, ok
}

func (k Keyword) String() string {
	for s, kw := range keywords {
		if kw == k {
			return s
		}
	}

	return fmt.Sprintf("keyword(%d)", int(k))
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "eof"
	case KeywordTok:
		return t.Word.String()
	case Identifier:
		return t.Text
	case IntegerLiteral:
		return fmt.Sprintf("%d", t.Int)
	case FloatLiteral:
		return fmt.Sprintf("%g", t.Flt)
	case StringLiteral:
		return fmt.Sprintf("%q", t.Str)
	case OperatorTok:
		return t.Op.String()
	case AtomTok:
		return string(t.Atom)
	default:
		return fmt.Sprintf("token(%d)", int(t.Kind))
	}
}
