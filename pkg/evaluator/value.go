// Package evaluator implements the Yolk runtime evaluator.
package evaluator

import (
	"strconv"
	"strings"

	"github.com/yolklang/yolk/pkg/ast"
)

// Value is the interface for all Yolk runtime values.
// Use the sealed marker method to restrict implementations to this package.
type Value interface {
	value() // sealed marker
}

// Number is a numeric value.
type Number struct {
	Value float64
}

func (Number) value() {}

// String is a string value.
type String struct {
	Value string
}

func (String) value() {}

// Boolean is a boolean value.
type Boolean struct {
	Value bool
}

func (Boolean) value() {}

// Closure is a user-defined function: parameter names, a body and the
// environment captured at its definition site. The captured reference
// must outlive every future invocation.
type Closure struct {
	Params []string
	Body   ast.Expr
	Env    *Env
}

func (*Closure) value() {}

// Builtin is a host-implemented callable installed in the global
// environment. Arity is checked before Fn is invoked.
type Builtin struct {
	Name  string
	Arity int
	Fn    func(args []Value) (Value, error)
}

func (*Builtin) value() {}

// NewNumber creates a numeric value.
func NewNumber(n float64) Value {
	return Number{Value: n}
}

// NewString creates a string value.
func NewString(s string) Value {
	return String{Value: s}
}

// NewBool creates a boolean value.
func NewBool(b bool) Value {
	return Boolean{Value: b}
}

// False is the canonical falsy value; while loops and empty do blocks
// return it.
var False Value = Boolean{Value: false}

// True is the canonical truthy boolean.
var True Value = Boolean{Value: true}

// Truthy reports the boolean interpretation of a value. Only the
// boolean false is falsy; 0 and "" are truthy.
func Truthy(v Value) bool {
	if b, ok := v.(Boolean); ok {
		return b.Value
	}
	return true
}

// Equal compares two values. Primitives compare by kind and content;
// closures and builtins compare by identity.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av.Value == bv.Value
	case String:
		bv, ok := b.(String)
		return ok && av.Value == bv.Value
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av.Value == bv.Value
	case *Closure:
		bv, ok := b.(*Closure)
		return ok && av == bv
	case *Builtin:
		bv, ok := b.(*Builtin)
		return ok && av == bv
	}
	return false
}

// TypeName returns the Yolk type name for error messages.
func TypeName(v Value) string {
	switch v.(type) {
	case Number:
		return "number"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case *Closure, *Builtin:
		return "function"
	default:
		return "unknown"
	}
}

// Show renders a value for the print sink and the CLI. Numbers drop a
// trailing .0, strings render without quotes.
func Show(v Value) string {
	switch val := v.(type) {
	case Number:
		return strconv.FormatFloat(val.Value, 'g', -1, 64)
	case String:
		return val.Value
	case Boolean:
		if val.Value {
			return "true"
		}
		return "false"
	case *Closure:
		return "fun(" + strings.Join(val.Params, ", ") + ")"
	case *Builtin:
		return "builtin " + val.Name
	default:
		return "unknown"
	}
}
