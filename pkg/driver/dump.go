package driver

import (
	"encoding/json"
	"fmt"
	"os"

	"ghl/interpreter-go/pkg/ast"
	"ghl/interpreter-go/pkg/token"
)

// WriteTokens writes the token stream to path as indented JSON.
func WriteTokens(path string, tokens []token.Token) error {
	data, err := json.MarshalIndent(tokens, "", "  ")
	if err != nil {
		return fmt.Errorf("driver: encode tokens: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("driver: dump tokens to %s: %w", path, err)
	}
	return nil
}

// WriteAST writes the program AST to path as indented JSON.
func WriteAST(path string, program *ast.Program) error {
	data, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		return fmt.Errorf("driver: encode ast: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("driver: dump ast to %s: %w", path, err)
	}
	return nil
}
