package evaluator

import (
	"github.com/yolklang/yolk/pkg/ast"
	"github.com/yolklang/yolk/pkg/diagnostics"
)

// Form is a special-form handler. It receives the Apply node with its
// argument expressions unevaluated and may skip evaluating some of
// them entirely.
type Form func(e *ast.Apply, env *Env) (Value, error)

// specialForms maps reserved operator names to handlers. The table is
// populated once in init and never mutated afterwards; the evaluator
// only reads it, so concurrent program runs need no coordination.
// The handlers call Evaluate, which reads the table, so a composite
// literal here would be an initialization cycle.
var specialForms = make(map[string]Form)

func init() {
	specialForms["if"] = evalIf
	specialForms["while"] = evalWhile
	specialForms["do"] = evalDo
	specialForms["define"] = evalDefine
	specialForms["fun"] = evalFun
}

// IsSpecialForm reports whether name is a reserved operator. Variables
// may shadow these names, but call sites always dispatch to the form.
func IsSpecialForm(name string) bool {
	_, ok := specialForms[name]
	return ok
}

func evalIf(e *ast.Apply, env *Env) (Value, error) {
	if len(e.Args) != 3 {
		return nil, diagnostics.Syntax("Wrong number of args to if", &e.Pos)
	}
	cond, err := Evaluate(e.Args[0], env)
	if err != nil {
		return nil, err
	}
	if Truthy(cond) {
		return Evaluate(e.Args[1], env)
	}
	return Evaluate(e.Args[2], env)
}

func evalWhile(e *ast.Apply, env *Env) (Value, error) {
	if len(e.Args) != 2 {
		return nil, diagnostics.Syntax("Wrong number of args to while", &e.Pos)
	}
	for {
		cond, err := Evaluate(e.Args[0], env)
		if err != nil {
			return nil, err
		}
		if !Truthy(cond) {
			break
		}
		if _, err := Evaluate(e.Args[1], env); err != nil {
			return nil, err
		}
	}
	// The language has no undefined value, so while yields false.
	return False, nil
}

func evalDo(e *ast.Apply, env *Env) (Value, error) {
	result := False
	for _, arg := range e.Args {
		val, err := Evaluate(arg, env)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}

func evalDefine(e *ast.Apply, env *Env) (Value, error) {
	if len(e.Args) != 2 {
		return nil, diagnostics.Syntax("Bad use of define", &e.Pos)
	}
	word, ok := e.Args[0].(*ast.Word)
	if !ok {
		return nil, diagnostics.Syntax("Bad use of define", &e.Pos)
	}
	val, err := Evaluate(e.Args[1], env)
	if err != nil {
		return nil, err
	}
	// Local write only: a same-named outer binding is shadowed, never
	// reassigned.
	env.Set(word.Name, val)
	return val, nil
}

func evalFun(e *ast.Apply, env *Env) (Value, error) {
	if len(e.Args) == 0 {
		return nil, diagnostics.Syntax("Functions need a body", &e.Pos)
	}
	params := make([]string, len(e.Args)-1)
	for i, arg := range e.Args[:len(e.Args)-1] {
		word, ok := arg.(*ast.Word)
		if !ok {
			pos := arg.ExprPos()
			return nil, diagnostics.Syntax("Arg names must be words", &pos)
		}
		params[i] = word.Name
	}
	return &Closure{
		Params: params,
		Body:   e.Args[len(e.Args)-1],
		Env:    env, // captured, not copied
	}, nil
}
