package driver

import (
	"fmt"
	"os"

	"ghl/interpreter-go/pkg/ast"
	"ghl/interpreter-go/pkg/lexer"
	"ghl/interpreter-go/pkg/parser"
	"ghl/interpreter-go/pkg/token"
	"ghl/interpreter-go/pkg/typechecker"
)

// Program bundles a checked AST with the source and tokens it came from, so
// callers can dump intermediate stages.
type Program struct {
	Path        string
	Source      string
	Tokens      []token.Token
	AST         *ast.Program
	Diagnostics []typechecker.Diagnostic
}

// Load reads a ghl source file and runs the front half of the pipeline:
// lex, parse, check. Lex and parse failures return an error; checker
// diagnostics come back on the program so callers can render all of them.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("driver: read %s: %w", path, err)
	}
	return LoadSource(path, string(data))
}

// LoadSource is Load for source text already in memory. Path is used only
// for reporting.
func LoadSource(path, source string) (*Program, error) {
	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		return nil, err
	}

	program, err := parser.New(tokens).ParseProgram()
	if err != nil {
		return nil, err
	}

	diagnostics, err := typechecker.New().CheckProgram(program)
	if err != nil {
		return nil, err
	}

	return &Program{
		Path:        path,
		Source:      source,
		Tokens:      tokens,
		AST:         program,
		Diagnostics: diagnostics,
	}, nil
}
