package interpreter

import (
	"fmt"
	"math"

	"ghl/interpreter-go/pkg/ast"
	"ghl/interpreter-go/pkg/runtime"
)

// ErrorKind names the evaluation failure category.
type ErrorKind string

const (
	ArithmeticOverflow ErrorKind = "arithmetic overflow"
	UndefinedName      ErrorKind = "undefined name"
)

// RuntimeError is a positioned evaluation failure.
type RuntimeError struct {
	Kind    ErrorKind
	Message string
	Pos     ast.Position
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%d:%d: runtime error: %s: %s", e.Pos.Line, e.Pos.Column, e.Kind, e.Message)
}

// exitSignal carries the value of an executed exit statement out of
// statement evaluation.
type exitSignal struct {
	status int64
}

func (s exitSignal) Error() string {
	return fmt.Sprintf("exit(%d)", s.status)
}

// Interpreter drives evaluation of checked ghl programs.
type Interpreter struct {
	global *runtime.Environment
}

// New returns an interpreter with an empty global environment.
func New() *Interpreter {
	return &Interpreter{global: runtime.NewEnvironment()}
}

// GlobalEnvironment returns the interpreter's global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// EvaluateProgram executes statements in order and returns the program
// result: the argument of the first exit statement reached, or 0 when the
// program ends without one.
func (i *Interpreter) EvaluateProgram(program *ast.Program) (int64, error) {
	if program == nil {
		return 0, fmt.Errorf("interpreter: program is nil")
	}
	for _, stmt := range program.Statements {
		if err := i.evaluateStatement(stmt, i.global); err != nil {
			if sig, ok := err.(exitSignal); ok {
				return sig.status, nil
			}
			return 0, err
		}
	}
	return 0, nil
}

func (i *Interpreter) evaluateStatement(stmt ast.Statement, env *runtime.Environment) error {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		value, err := i.evaluateExpression(s.Value, env)
		if err != nil {
			return err
		}
		env.Define(s.Name.Name, value)
		return nil
	case *ast.ExitStatement:
		value, err := i.evaluateExpression(s.Value, env)
		if err != nil {
			return err
		}
		return exitSignal{status: value.Value}
	default:
		return fmt.Errorf("interpreter: unsupported statement type: %s", stmt.NodeType())
	}
}

func (i *Interpreter) evaluateExpression(expr ast.Expression, env *runtime.Environment) (runtime.IntegerValue, error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return runtime.IntegerValue{Value: e.Value}, nil
	case *ast.Identifier:
		value, ok := env.Get(e.Name)
		if !ok {
			return runtime.IntegerValue{}, &RuntimeError{
				Kind:    UndefinedName,
				Message: fmt.Sprintf("name %q has not been bound", e.Name),
				Pos:     e.Span().Start,
			}
		}
		integer, ok := value.(runtime.IntegerValue)
		if !ok {
			return runtime.IntegerValue{}, fmt.Errorf("interpreter: %q is bound to a %s value", e.Name, value.Kind())
		}
		return integer, nil
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(e, env)
	default:
		return runtime.IntegerValue{}, fmt.Errorf("interpreter: unsupported expression type: %s", expr.NodeType())
	}
}

// evaluateBinaryExpression evaluates left before right, so the leftmost
// error in an expression is the one reported.
func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.IntegerValue, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return runtime.IntegerValue{}, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return runtime.IntegerValue{}, err
	}
	result, ok := applyOperator(expr.Operator, left.Value, right.Value)
	if !ok {
		return runtime.IntegerValue{}, &RuntimeError{
			Kind:    ArithmeticOverflow,
			Message: fmt.Sprintf("%d %s %d overflows int64", left.Value, expr.Operator, right.Value),
			Pos:     expr.Span().Start,
		}
	}
	return runtime.IntegerValue{Value: result}, nil
}

// applyOperator computes left <op> right with int64 overflow detection. The
// second result is false when the mathematical result does not fit.
func applyOperator(op ast.Operator, left, right int64) (int64, bool) {
	switch op {
	case ast.OperatorPlus:
		if right > 0 && left > math.MaxInt64-right {
			return 0, false
		}
		if right < 0 && left < math.MinInt64-right {
			return 0, false
		}
		return left + right, true
	case ast.OperatorMinus:
		if right < 0 && left > math.MaxInt64+right {
			return 0, false
		}
		if right > 0 && left < math.MinInt64+right {
			return 0, false
		}
		return left - right, true
	case ast.OperatorStar:
		if left == 0 || right == 0 {
			return 0, true
		}
		if (left == math.MinInt64 && right == -1) || (right == math.MinInt64 && left == -1) {
			return 0, false
		}
		result := left * right
		if result/right != left {
			return 0, false
		}
		return result, true
	default:
		return 0, false
	}
}
