package lexer

import (
	"fmt"

	"ghl/interpreter-go/pkg/token"
)

// ErrorKind names the lexing failure category.
type ErrorKind string

// UnrecognizedCharacter reports source text no token rule matches.
const UnrecognizedCharacter ErrorKind = "unrecognized character"

// Error is a positioned lexing failure.
type Error struct {
	Kind ErrorKind
	Char rune
	Pos  token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: lex error: %s %q", e.Pos, e.Kind, e.Char)
}

// Lexer produces tokens from a ghl source buffer on demand. A lexer is
// single-use; construct a new one to rescan the same source.
type Lexer struct {
	source string
	offset int
	line   int
	column int
}

// New returns a lexer positioned at the start of source.
func New(source string) *Lexer {
	return &Lexer{source: source, line: 1, column: 1}
}

// Next scans and returns the next token, skipping whitespace. At the end of
// the source it returns a token of kind token.EOF positioned one past the
// last character, and keeps returning it on subsequent calls.
func (l *Lexer) Next() (token.Token, error) {
	l.skipWhitespace()
	start := l.position()

	c, ok := l.peek()
	if !ok {
		return token.Token{Kind: token.EOF, Pos: start}, nil
	}

	switch {
	case isDigit(c):
		return l.scanInteger(start), nil
	case isLetter(c):
		return l.scanWord(start), nil
	}

	if kind, ok := punctuation[c]; ok {
		l.consume()
		return token.Token{Kind: kind, Text: string(c), Pos: start}, nil
	}

	return token.Token{}, &Error{Kind: UnrecognizedCharacter, Char: rune(c), Pos: start}
}

// Tokenize drains the lexer into a slice terminated by the end-of-input
// token.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

var punctuation = map[byte]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	':': token.Colon,
	'=': token.Equal,
	'(': token.LeftParen,
	')': token.RightParen,
	';': token.Semicolon,
}

var keywords = map[string]token.Kind{
	"let":  token.KeywordLet,
	"exit": token.KeywordExit,
}

// scanInteger consumes a maximal run of decimal digits. Leading zeros are
// allowed; the grammar places no restriction on them.
func (l *Lexer) scanInteger(start token.Position) token.Token {
	text := l.consumeWhile(isDigit)
	return token.Token{Kind: token.Integer, Text: text, Pos: start}
}

// scanWord consumes a letter-started run and classifies it as a keyword on an
// exact, case-sensitive match, otherwise as an identifier.
func (l *Lexer) scanWord(start token.Position) token.Token {
	text := l.consumeWhile(isWordChar)
	if kind, ok := keywords[text]; ok {
		return token.Token{Kind: kind, Text: text, Pos: start}
	}
	return token.Token{Kind: token.Identifier, Text: text, Pos: start}
}

func (l *Lexer) position() token.Position {
	return token.Position{Line: l.line, Column: l.column, Offset: l.offset}
}

func (l *Lexer) peek() (byte, bool) {
	if l.offset >= len(l.source) {
		return 0, false
	}
	return l.source[l.offset], true
}

func (l *Lexer) consume() byte {
	c := l.source[l.offset]
	l.offset++
	if c == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return c
}

func (l *Lexer) consumeWhile(match func(byte) bool) string {
	start := l.offset
	for {
		c, ok := l.peek()
		if !ok || !match(c) {
			return l.source[start:l.offset]
		}
		l.consume()
	}
}

func (l *Lexer) skipWhitespace() {
	for {
		c, ok := l.peek()
		if !ok || !isWhitespace(c) {
			return
		}
		l.consume()
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isWordChar(c byte) bool {
	return isLetter(c) || isDigit(c)
}
