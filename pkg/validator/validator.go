// Package validator implements static well-formedness checks for Yolk trees.
//
// The checks mirror the shape rules the special forms enforce at run
// time, so `yolk check` can flag them without evaluating anything.
// Evaluation semantics are unaffected.
package validator

import (
	"github.com/yolklang/yolk/pkg/ast"
	"github.com/yolklang/yolk/pkg/diagnostics"
)

// Validate walks the tree and reports every special-form shape error
// it can find, not just the first.
func Validate(expr ast.Expr) []*diagnostics.Diagnostic {
	var diags []*diagnostics.Diagnostic
	walk(expr, &diags)
	return diags
}

func walk(expr ast.Expr, diags *[]*diagnostics.Diagnostic) {
	apply, ok := expr.(*ast.Apply)
	if !ok {
		return
	}
	if word, ok := apply.Operator.(*ast.Word); ok {
		checkForm(word.Name, apply, diags)
	} else {
		walk(apply.Operator, diags)
	}
	for _, arg := range apply.Args {
		walk(arg, diags)
	}
}

func checkForm(name string, apply *ast.Apply, diags *[]*diagnostics.Diagnostic) {
	switch name {
	case "if":
		if len(apply.Args) != 3 {
			*diags = append(*diags, diagnostics.Syntax("Wrong number of args to if", &apply.Pos))
		}
	case "while":
		if len(apply.Args) != 2 {
			*diags = append(*diags, diagnostics.Syntax("Wrong number of args to while", &apply.Pos))
		}
	case "define":
		if len(apply.Args) != 2 {
			*diags = append(*diags, diagnostics.Syntax("Bad use of define", &apply.Pos))
			return
		}
		if _, ok := apply.Args[0].(*ast.Word); !ok {
			*diags = append(*diags, diagnostics.Syntax("Bad use of define", &apply.Pos))
		}
	case "fun":
		if len(apply.Args) == 0 {
			*diags = append(*diags, diagnostics.Syntax("Functions need a body", &apply.Pos))
			return
		}
		for _, param := range apply.Args[:len(apply.Args)-1] {
			if _, ok := param.(*ast.Word); !ok {
				pos := param.ExprPos()
				*diags = append(*diags, diagnostics.Syntax("Arg names must be words", &pos))
			}
		}
	}
}
