package stdlib

import (
	"fmt"

	"github.com/yolklang/yolk/pkg/diagnostics"
	"github.com/yolklang/yolk/pkg/evaluator"
)

// Sink receives each value passed to print. The host supplies it; the
// core never writes anywhere else.
type Sink func(evaluator.Value)

// RegisterDefaults installs the boolean constants, the operator table
// and print. Operators are a fixed mapping of name to a statically
// defined two-argument function; nothing is generated from name
// strings.
func RegisterDefaults(r *Registry, sink Sink) {
	r.Register("true", evaluator.True)
	r.Register("false", evaluator.False)

	for name, op := range operators {
		op := op
		r.Register(name, &evaluator.Builtin{
			Name:  name,
			Arity: 2,
			Fn: func(args []evaluator.Value) (evaluator.Value, error) {
				return op(args[0], args[1])
			},
		})
	}

	r.Register("print", &evaluator.Builtin{
		Name:  "print",
		Arity: 1,
		Fn: func(args []evaluator.Value) (evaluator.Value, error) {
			if sink != nil {
				sink(args[0])
			}
			// Identity pass-through.
			return args[0], nil
		},
	})
}

type binaryOp func(a, b evaluator.Value) (evaluator.Value, error)

var operators = map[string]binaryOp{
	"+":  opAdd,
	"-":  numericOp("-", func(a, b float64) float64 { return a - b }),
	"*":  numericOp("*", func(a, b float64) float64 { return a * b }),
	"/":  numericOp("/", func(a, b float64) float64 { return a / b }),
	"==": opEq,
	"<":  comparisonOp("<", func(a, b float64) bool { return a < b }, func(a, b string) bool { return a < b }),
	">":  comparisonOp(">", func(a, b float64) bool { return a > b }, func(a, b string) bool { return a > b }),
}

func opAdd(a, b evaluator.Value) (evaluator.Value, error) {
	if an, ok := a.(evaluator.Number); ok {
		if bn, ok := b.(evaluator.Number); ok {
			return evaluator.NewNumber(an.Value + bn.Value), nil
		}
	}
	if as, ok := a.(evaluator.String); ok {
		if bs, ok := b.(evaluator.String); ok {
			return evaluator.NewString(as.Value + bs.Value), nil
		}
	}
	return nil, opTypeError("+", "two numbers or two strings", a, b)
}

func opEq(a, b evaluator.Value) (evaluator.Value, error) {
	return evaluator.NewBool(evaluator.Equal(a, b)), nil
}

// numericOp builds a number-only operator. Division follows host
// float64 semantics, so dividing by zero yields an infinity rather
// than an error.
func numericOp(name string, fn func(a, b float64) float64) binaryOp {
	return func(a, b evaluator.Value) (evaluator.Value, error) {
		an, aok := a.(evaluator.Number)
		bn, bok := b.(evaluator.Number)
		if !aok || !bok {
			return nil, opTypeError(name, "two numbers", a, b)
		}
		return evaluator.NewNumber(fn(an.Value, bn.Value)), nil
	}
}

// comparisonOp builds an ordering operator over two numbers or two
// strings; mixed operands are a type error, never coerced.
func comparisonOp(name string, numFn func(a, b float64) bool, strFn func(a, b string) bool) binaryOp {
	return func(a, b evaluator.Value) (evaluator.Value, error) {
		if an, ok := a.(evaluator.Number); ok {
			if bn, ok := b.(evaluator.Number); ok {
				return evaluator.NewBool(numFn(an.Value, bn.Value)), nil
			}
		}
		if as, ok := a.(evaluator.String); ok {
			if bs, ok := b.(evaluator.String); ok {
				return evaluator.NewBool(strFn(as.Value, bs.Value)), nil
			}
		}
		return nil, opTypeError(name, "two numbers or two strings", a, b)
	}
}

func opTypeError(name, want string, a, b evaluator.Value) error {
	return diagnostics.Type(
		fmt.Sprintf("Operator '%s' requires %s, got %s and %s.", name, want, evaluator.TypeName(a), evaluator.TypeName(b)),
		nil,
	)
}
