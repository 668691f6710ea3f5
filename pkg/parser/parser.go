package parser

import (
	"fmt"
	"strconv"

	"ghl/interpreter-go/pkg/ast"
	"ghl/interpreter-go/pkg/token"
)

// ErrorKind names the parsing failure category.
type ErrorKind string

const (
	UnexpectedToken       ErrorKind = "unexpected token"
	UnexpectedEndOfInput  ErrorKind = "unexpected end of input"
	InvalidIntegerLiteral ErrorKind = "invalid integer literal"
)

// SyntaxError is a positioned grammar violation. Token holds the offending
// token unless the kind is UnexpectedEndOfInput.
type SyntaxError struct {
	Kind     ErrorKind
	Expected string
	Token    token.Token
	Pos      token.Position
}

func (e *SyntaxError) Error() string {
	switch e.Kind {
	case UnexpectedEndOfInput:
		return fmt.Sprintf("%s: syntax error: unexpected end of input, expected %s", e.Pos, e.Expected)
	case InvalidIntegerLiteral:
		return fmt.Sprintf("%s: syntax error: invalid integer literal %s", e.Pos, e.Token)
	default:
		return fmt.Sprintf("%s: syntax error: unexpected token %s, expected %s", e.Pos, e.Token, e.Expected)
	}
}

// Parser consumes a token stream and produces the ghl AST. The stream must
// be terminated by an end-of-input token, as lexer.Tokenize produces.
type Parser struct {
	tokens []token.Token
	pos    int
}

func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseProgram parses statements until end of input.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	start := p.peek().Pos
	var statements []ast.Statement
	for p.peek().Kind != token.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	program := ast.NewProgram(statements)
	program.SetSpan(spanBetween(start, p.peek().Pos))
	return program, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.peek().Kind {
	case token.KeywordLet:
		return p.parseLetStatement()
	case token.KeywordExit:
		return p.parseExitStatement()
	default:
		return nil, p.unexpected("`let` or `exit`")
	}
}

// parseLetStatement parses `let <name> : <type> = <expression> ;` with the
// leading keyword already verified.
func (p *Parser) parseLetStatement() (ast.Statement, error) {
	keyword := p.next()

	nameTok, err := p.expect(token.Identifier, "binding name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon, "`:`"); err != nil {
		return nil, err
	}
	typeTok, err := p.expect(token.Identifier, "type name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Equal, "`=`"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	end, err := p.expect(token.Semicolon, "`;`")
	if err != nil {
		return nil, err
	}

	stmt := ast.NewLetStatement(identifierAt(nameTok), identifierAt(typeTok), value)
	stmt.SetSpan(spanBetween(keyword.Pos, positionAfter(end)))
	return stmt, nil
}

// parseExitStatement parses `exit ( <expression> ) ;` with the leading
// keyword already verified.
func (p *Parser) parseExitStatement() (ast.Statement, error) {
	keyword := p.next()

	if _, err := p.expect(token.LeftParen, "`(`"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RightParen, "`)`"); err != nil {
		return nil, err
	}
	end, err := p.expect(token.Semicolon, "`;`")
	if err != nil {
		return nil, err
	}

	stmt := ast.NewExitStatement(value)
	stmt.SetSpan(spanBetween(keyword.Pos, positionAfter(end)))
	return stmt, nil
}

var binaryOperators = map[token.Kind]ast.Operator{
	token.Plus:  ast.OperatorPlus,
	token.Minus: ast.OperatorMinus,
	token.Star:  ast.OperatorStar,
}

// parseExpression parses a chain of binary operators by left-folding primary
// expressions. The grammar defines a single precedence level, so all three
// operators group flat from the left: `2 + 3 * 4` is `(2 + 3) * 4`.
func (p *Parser) parseExpression() (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := binaryOperators[p.peek().Kind]
		if !ok {
			return left, nil
		}
		p.next()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		expr := ast.NewBinaryExpression(op, left, right)
		expr.SetSpan(ast.Span{Start: left.Span().Start, End: right.Span().End})
		left = expr
	}
}

// parsePrimary parses an integer literal, an identifier reference, or a
// parenthesized sub-expression. Parentheses are accepted, never required,
// and add no node of their own.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch tok := p.peek(); tok.Kind {
	case token.Integer:
		p.next()
		value, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Kind: InvalidIntegerLiteral, Token: tok, Pos: tok.Pos}
		}
		lit := ast.NewIntegerLiteral(value)
		lit.SetSpan(spanBetween(tok.Pos, positionAfter(tok)))
		return lit, nil
	case token.Identifier:
		p.next()
		return identifierAt(tok), nil
	case token.LeftParen:
		p.next()
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RightParen, "`)`"); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, p.unexpected("expression")
	}
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.pos]
}

func (p *Parser) next() token.Token {
	tok := p.tokens[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(kind token.Kind, expected string) (token.Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return token.Token{}, p.unexpected(expected)
	}
	return p.next(), nil
}

func (p *Parser) unexpected(expected string) error {
	tok := p.peek()
	kind := UnexpectedToken
	if tok.Kind == token.EOF {
		kind = UnexpectedEndOfInput
	}
	return &SyntaxError{Kind: kind, Expected: expected, Token: tok, Pos: tok.Pos}
}

func identifierAt(tok token.Token) *ast.Identifier {
	id := ast.NewIdentifier(tok.Text)
	id.SetSpan(spanBetween(tok.Pos, positionAfter(tok)))
	return id
}

func spanBetween(start, end token.Position) ast.Span {
	return ast.Span{
		Start: ast.Position{Line: start.Line, Column: start.Column},
		End:   ast.Position{Line: end.Line, Column: end.Column},
	}
}

// positionAfter is the position one past the end of a single-line token.
func positionAfter(tok token.Token) token.Position {
	return token.Position{
		Line:   tok.Pos.Line,
		Column: tok.Pos.Column + len(tok.Text),
		Offset: tok.Pos.Offset + len(tok.Text),
	}
}
