package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the project manifest looked up next to ghl sources.
const ManifestFileName = "ghl.yml"

// Default dump file names, used when a dump is requested without a path.
const (
	DefaultTokensDumpName = "out.ghl_tokens"
	DefaultASTDumpName    = "out.ghl_ast"
)

// Manifest represents the parsed contents of ghl.yml.
type Manifest struct {
	Path  string
	Name  string
	Entry string
	Dump  DumpConfig
}

// DumpConfig selects which intermediate stages get written to disk on every
// run. An empty path disables that dump.
type DumpConfig struct {
	TokensPath string
	ASTPath    string
}

type manifestFile struct {
	Name  string `yaml:"name"`
	Entry string `yaml:"entry"`
	Dump  struct {
		Tokens string `yaml:"tokens"`
		AST    string `yaml:"ast"`
	} `yaml:"dump"`
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// LoadManifest parses ghl.yml from disk, returning a validated manifest.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw manifestFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("manifest: %s is empty", absPath)
		}
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	manifest := raw.toManifest(absPath)
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (raw manifestFile) toManifest(absPath string) *Manifest {
	return &Manifest{
		Path:  absPath,
		Name:  strings.TrimSpace(raw.Name),
		Entry: strings.TrimSpace(raw.Entry),
		Dump: DumpConfig{
			TokensPath: strings.TrimSpace(raw.Dump.Tokens),
			ASTPath:    strings.TrimSpace(raw.Dump.AST),
		},
	}
}

func (m *Manifest) validate() error {
	var errs ValidationError
	if m.Entry == "" {
		errs.Issues = append(errs.Issues, "entry must name a source file")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// EntryPath resolves the manifest's entry file relative to the manifest
// location.
func (m *Manifest) EntryPath() string {
	if filepath.IsAbs(m.Entry) {
		return m.Entry
	}
	return filepath.Join(filepath.Dir(m.Path), m.Entry)
}
