package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "end of input"},
		{Identifier, "identifier"},
		{Integer, "integer"},
		{KeywordLet, "let"},
		{KeywordExit, "exit"},
		{Plus, "+"},
		{Minus, "-"},
		{Star, "*"},
		{Colon, ":"},
		{Equal, "="},
		{LeftParen, "("},
		{RightParen, ")"},
		{Semicolon, ";"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Fatalf("got %q, want %q", got, tt.want)
		}
	}
}

func TestPositionString(t *testing.T) {
	pos := Position{Line: 3, Column: 14, Offset: 42}
	if got := pos.String(); got != "3:14" {
		t.Fatalf("got %q, want %q", got, "3:14")
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: Integer, Text: "42"}
	if got := tok.String(); got != `"42"` {
		t.Fatalf("got %q, want %q", got, `"42"`)
	}
	eof := Token{Kind: EOF}
	if got := eof.String(); got != "end of input" {
		t.Fatalf("got %q, want %q", got, "end of input")
	}
}
