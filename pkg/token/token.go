package token

import "fmt"

// Kind classifies a lexeme.
type Kind int

const (
	EOF Kind = iota
	Identifier
	Integer
	KeywordLet
	KeywordExit
	Plus
	Minus
	Star
	Colon
	Equal
	LeftParen
	RightParen
	Semicolon
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "end of input"
	case Identifier:
		return "identifier"
	case Integer:
		return "integer"
	case KeywordLet:
		return "let"
	case KeywordExit:
		return "exit"
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Colon:
		return ":"
	case Equal:
		return "="
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	case Semicolon:
		return ";"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// MarshalText renders the kind name in token dumps.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Position locates a token in the source buffer. Line and Column are 1-based;
// Offset is the byte offset of the first character.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a classified lexeme. Immutable once produced by the lexer.
type Token struct {
	Kind Kind     `json:"kind"`
	Text string   `json:"text"`
	Pos  Position `json:"pos"`
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", t.Text)
}
