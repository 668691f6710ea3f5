package driver

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ghl/interpreter-go/pkg/token"
	"ghl/interpreter-go/pkg/typechecker"
)

func TestLoadSource(t *testing.T) {
	program, err := LoadSource("main.ghl", "let x: int = 1 + 2;\nexit(x);\n")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if program.Path != "main.ghl" {
		t.Fatalf("got path %q, want %q", program.Path, "main.ghl")
	}
	if len(program.AST.Statements) != 2 {
		t.Fatalf("got %d statements, want 2", len(program.AST.Statements))
	}
	if len(program.Diagnostics) != 0 {
		t.Fatalf("expected no diagnostics, got %v", program.Diagnostics)
	}
	last := program.Tokens[len(program.Tokens)-1]
	if last.Kind != token.EOF {
		t.Fatalf("token stream not terminated, last token %v", last)
	}
}

func TestLoadSourceReportsDiagnostics(t *testing.T) {
	program, err := LoadSource("main.ghl", "let x: bool = 5;")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(program.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", program.Diagnostics)
	}
	if program.Diagnostics[0].Kind != typechecker.TypeMismatch {
		t.Fatalf("got kind %q, want %q", program.Diagnostics[0].Kind, typechecker.TypeMismatch)
	}
}

func TestLoadSourceSyntaxError(t *testing.T) {
	if _, err := LoadSource("main.ghl", "exit(2 +);"); err == nil {
		t.Fatalf("expected syntax error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.ghl")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadFromDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.ghl")
	if err := os.WriteFile(path, []byte("exit(9);\n"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	program, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(program.AST.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(program.AST.Statements))
	}
}

func writeManifest(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestFileName)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "name: demo\nentry: main.ghl\ndump:\n  tokens: tokens.json\n  ast: ast.json\n")

	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if manifest.Name != "demo" {
		t.Fatalf("got name %q, want %q", manifest.Name, "demo")
	}
	if manifest.Entry != "main.ghl" {
		t.Fatalf("got entry %q, want %q", manifest.Entry, "main.ghl")
	}
	if manifest.Dump.TokensPath != "tokens.json" || manifest.Dump.ASTPath != "ast.json" {
		t.Fatalf("got dump config %+v", manifest.Dump)
	}
	if got, want := manifest.EntryPath(), filepath.Join(dir, "main.ghl"); got != want {
		t.Fatalf("got entry path %q, want %q", got, want)
	}
}

func TestLoadManifestRequiresEntry(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "name: demo\n")
	_, err := LoadManifest(path)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("got %v, want *driver.ValidationError", err)
	}
}

func TestLoadManifestRejectsUnknownFields(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "entry: main.ghl\ntargets: {}\n")
	if _, err := LoadManifest(path); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	err := func() error {
		_, err := LoadManifest(filepath.Join(t.TempDir(), ManifestFileName))
		return err
	}()
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v, want wrapped os.ErrNotExist", err)
	}
}

func TestWriteDumps(t *testing.T) {
	program, err := LoadSource("main.ghl", "exit(1 + 2);\n")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	dir := t.TempDir()
	tokensPath := filepath.Join(dir, DefaultTokensDumpName)
	astPath := filepath.Join(dir, DefaultASTDumpName)
	if err := WriteTokens(tokensPath, program.Tokens); err != nil {
		t.Fatalf("write tokens: %v", err)
	}
	if err := WriteAST(astPath, program.AST); err != nil {
		t.Fatalf("write ast: %v", err)
	}

	tokensData, err := os.ReadFile(tokensPath)
	if err != nil {
		t.Fatalf("read token dump: %v", err)
	}
	var tokens []map[string]any
	if err := json.Unmarshal(tokensData, &tokens); err != nil {
		t.Fatalf("token dump is not valid JSON: %v", err)
	}
	if len(tokens) != len(program.Tokens) {
		t.Fatalf("token dump has %d entries, want %d", len(tokens), len(program.Tokens))
	}

	astData, err := os.ReadFile(astPath)
	if err != nil {
		t.Fatalf("read ast dump: %v", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(astData, &tree); err != nil {
		t.Fatalf("ast dump is not valid JSON: %v", err)
	}
	if tree["type"] != "Program" {
		t.Fatalf("got root type %v, want Program", tree["type"])
	}
}
