package evaluator

import (
	"fmt"

	"github.com/yolklang/yolk/pkg/ast"
	"github.com/yolklang/yolk/pkg/diagnostics"
)

// Evaluate computes the value of expr in env. Errors are diagnostics
// that unwind with no local recovery; callers render them once at the
// boundary.
func Evaluate(expr ast.Expr, env *Env) (Value, error) {
	switch e := expr.(type) {
	case *ast.NumberLit:
		return NewNumber(e.Value), nil

	case *ast.StringLit:
		return NewString(e.Value), nil

	case *ast.BoolLit:
		return NewBool(e.Value), nil

	case *ast.Word:
		val, ok := env.Get(e.Name)
		if !ok {
			return nil, diagnostics.Reference(fmt.Sprintf("Undefined variable: %s", e.Name), &e.Pos)
		}
		return val, nil

	case *ast.Apply:
		return evalApply(e, env)

	default:
		pos := expr.ExprPos()
		return nil, diagnostics.Type(fmt.Sprintf("unsupported expression type %T", expr), &pos)
	}
}

func evalApply(e *ast.Apply, env *Env) (Value, error) {
	// Special forms dispatch on the operator name before any lookup or
	// evaluation; their handlers see the raw argument expressions and
	// control evaluation order themselves.
	if word, ok := e.Operator.(*ast.Word); ok {
		if form, ok := specialForms[word.Name]; ok {
			return form(e, env)
		}
	}

	// Ordinary application: operator first, then arguments left to right.
	fn, err := Evaluate(e.Operator, env)
	if err != nil {
		return nil, err
	}
	// The callability check precedes argument evaluation, so argument
	// side effects never fire and argument errors never mask the
	// TypeError when the operator is not a function.
	switch fn.(type) {
	case *Closure, *Builtin:
	default:
		return nil, diagnostics.Type("Applying a non-function.", &e.Pos)
	}
	args := make([]Value, len(e.Args))
	for i, argExpr := range e.Args {
		arg, err := Evaluate(argExpr, env)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	return Apply(fn, args, e.Pos)
}

// Apply invokes a callable value with already-evaluated arguments.
func Apply(fn Value, args []Value, pos ast.Pos) (Value, error) {
	switch f := fn.(type) {
	case *Closure:
		if len(args) != len(f.Params) {
			return nil, diagnostics.Type(fmt.Sprintf("Wrong number of arguments: expected %d, got %d", len(f.Params), len(args)), &pos)
		}
		local := f.Env.Child()
		for i, param := range f.Params {
			local.Set(param, args[i])
		}
		return Evaluate(f.Body, local)

	case *Builtin:
		if len(args) != f.Arity {
			return nil, diagnostics.Type(fmt.Sprintf("Wrong number of arguments: expected %d, got %d", f.Arity, len(args)), &pos)
		}
		return f.Fn(args)

	default:
		return nil, diagnostics.Type("Applying a non-function.", &pos)
	}
}
