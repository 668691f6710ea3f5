package typechecker

import (
	"fmt"

	"ghl/interpreter-go/pkg/ast"
)

// Type is a compile-time ghl type. The grammar's only expression terminal is
// numeric, so int is the only type an expression can have.
type Type string

const TypeInt Type = "int"

// DiagnosticKind names the checking failure category.
type DiagnosticKind string

const (
	TypeMismatch  DiagnosticKind = "type mismatch"
	UndeclaredUse DiagnosticKind = "undeclared name"
)

// Diagnostic represents a checking error at a node.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
	Node    ast.Node
}

func (d Diagnostic) String() string {
	pos := d.Node.Span().Start
	return fmt.Sprintf("%d:%d: %s: %s", pos.Line, pos.Column, d.Kind, d.Message)
}

// Checker walks a ghl program and records diagnostics. ghl scope is
// whole-program flat: every let is visible to all later statements, and a
// second let for the same name rebinds it.
type Checker struct {
	global *Environment
}

// New returns a checker with an empty symbol table.
func New() *Checker {
	return &Checker{global: NewEnvironment()}
}

// CheckProgram verifies every statement in order and returns all diagnostics
// found. A non-empty result means the program must not be evaluated.
func (c *Checker) CheckProgram(program *ast.Program) ([]Diagnostic, error) {
	if program == nil {
		return nil, fmt.Errorf("typechecker: program is nil")
	}
	// Reset the symbol table between runs.
	c.global = NewEnvironment()

	var diagnostics []Diagnostic
	for _, stmt := range program.Statements {
		diagnostics = append(diagnostics, c.checkStatement(stmt)...)
	}
	return diagnostics, nil
}

func (c *Checker) checkStatement(stmt ast.Statement) []Diagnostic {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		return c.checkLetStatement(s)
	case *ast.ExitStatement:
		return c.checkExpression(s.Value)
	default:
		return []Diagnostic{{
			Kind:    TypeMismatch,
			Message: fmt.Sprintf("unsupported statement type %s", stmt.NodeType()),
			Node:    stmt,
		}}
	}
}

func (c *Checker) checkLetStatement(stmt *ast.LetStatement) []Diagnostic {
	diagnostics := c.checkExpression(stmt.Value)

	declared := Type(stmt.DeclaredType.Name)
	if declared != TypeInt {
		diagnostics = append(diagnostics, Diagnostic{
			Kind:    TypeMismatch,
			Message: fmt.Sprintf("binding %q declares type %q, initializer has type %q", stmt.Name.Name, declared, TypeInt),
			Node:    stmt.DeclaredType,
		})
	}

	c.global.Define(stmt.Name.Name, TypeInt)
	return diagnostics
}

// checkExpression infers an expression's type, reporting identifier reads
// that resolve to nothing. Every well-formed expression is int.
func (c *Checker) checkExpression(expr ast.Expression) []Diagnostic {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return nil
	case *ast.Identifier:
		if _, ok := c.global.Lookup(e.Name); !ok {
			return []Diagnostic{{
				Kind:    UndeclaredUse,
				Message: fmt.Sprintf("name %q has not been declared", e.Name),
				Node:    e,
			}}
		}
		return nil
	case *ast.BinaryExpression:
		diagnostics := c.checkExpression(e.Left)
		return append(diagnostics, c.checkExpression(e.Right)...)
	default:
		return []Diagnostic{{
			Kind:    TypeMismatch,
			Message: fmt.Sprintf("unsupported expression type %s", expr.NodeType()),
			Node:    expr,
		}}
	}
}
