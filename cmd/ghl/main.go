package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"ghl/interpreter-go/pkg/driver"
	"ghl/interpreter-go/pkg/interpreter"
	"ghl/interpreter-go/pkg/lexer"
	"ghl/interpreter-go/pkg/parser"
)

const cliToolVersion = "ghl-cli 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runEntry(args[1:])
	default:
		return runEntry(args)
	}
}

type options struct {
	file       string
	tokensPath string
	astPath    string
}

// parseOptions splits flags from the optional positional source file. Dump
// flags default their output paths to the conventional dump file names.
func parseOptions(args []string) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--dump-tokens":
			if opts.tokensPath == "" {
				opts.tokensPath = driver.DefaultTokensDumpName
			}
		case arg == "--dump-ast":
			if opts.astPath == "" {
				opts.astPath = driver.DefaultASTDumpName
			}
		case strings.HasPrefix(arg, "--tokens-out="):
			opts.tokensPath = strings.TrimPrefix(arg, "--tokens-out=")
		case strings.HasPrefix(arg, "--ast-out="):
			opts.astPath = strings.TrimPrefix(arg, "--ast-out=")
		case strings.HasPrefix(arg, "-"):
			return options{}, fmt.Errorf("unknown flag %q", arg)
		default:
			if opts.file != "" {
				return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(args[i:], " "))
			}
			opts.file = arg
		}
	}
	return opts, nil
}

func runEntry(args []string) int {
	opts, err := parseOptions(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		printUsage()
		return 1
	}

	entry := opts.file
	if entry == "" {
		manifest, err := driver.LoadManifest(driver.ManifestFileName)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				fmt.Fprintf(os.Stderr, "ghl run requires a source file (%s not found)\n", driver.ManifestFileName)
			} else {
				fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", err)
			}
			return 1
		}
		entry = manifest.EntryPath()
		if opts.tokensPath == "" {
			opts.tokensPath = manifest.Dump.TokensPath
		}
		if opts.astPath == "" {
			opts.astPath = manifest.Dump.ASTPath
		}
	}

	program, err := driver.Load(entry)
	if err != nil {
		fmt.Fprintln(os.Stderr, describeLoadError(entry, err))
		return 1
	}

	if opts.tokensPath != "" {
		if err := driver.WriteTokens(opts.tokensPath, program.Tokens); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
	}
	if opts.astPath != "" {
		if err := driver.WriteAST(opts.astPath, program.AST); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
	}

	if len(program.Diagnostics) > 0 {
		for _, diag := range program.Diagnostics {
			fmt.Fprintf(os.Stderr, "%s:%s\n", entry, diag)
		}
		return 1
	}

	status, err := interpreter.New().EvaluateProgram(program.AST)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s:%v\n", entry, err)
		return 1
	}
	return exitStatus(status)
}

// describeLoadError prefixes positioned pipeline errors with the source file
// path; other failures already carry their own context.
func describeLoadError(entry string, err error) string {
	var lexErr *lexer.Error
	var synErr *parser.SyntaxError
	if errors.As(err, &lexErr) || errors.As(err, &synErr) {
		return fmt.Sprintf("%s:%v", entry, err)
	}
	return err.Error()
}

// exitStatus truncates a program result to the low eight bits, matching what
// the C exit() the language models would report.
func exitStatus(status int64) int {
	return int(uint8(status))
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  ghl run <file.ghl>")
	fmt.Fprintln(os.Stderr, "  ghl <file.ghl>")
	fmt.Fprintln(os.Stderr, "  ghl run            (entry taken from ghl.yml)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  --dump-tokens         write the token stream to "+driver.DefaultTokensDumpName)
	fmt.Fprintln(os.Stderr, "  --tokens-out=<path>   override the token dump path")
	fmt.Fprintln(os.Stderr, "  --dump-ast            write the parsed AST to "+driver.DefaultASTDumpName)
	fmt.Fprintln(os.Stderr, "  --ast-out=<path>      override the AST dump path")
	fmt.Fprintln(os.Stderr, "  --help, -h            show this help")
	fmt.Fprintln(os.Stderr, "  --version, -V         print the CLI version")
}
