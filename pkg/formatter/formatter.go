// Package formatter implements the canonical Yolk source printer.
package formatter

import (
	"strconv"
	"strings"

	"github.com/yolklang/yolk/pkg/ast"
)

const indent = "  "

// Format pretty-prints a Yolk tree back to source. Applications print
// inline except for do blocks with more than one argument, which get
// one argument per line.
func Format(expr ast.Expr) string {
	return formatExpr(expr, 0) + "\n"
}

func formatExpr(expr ast.Expr, depth int) string {
	switch e := expr.(type) {
	case *ast.NumberLit:
		return strconv.FormatFloat(e.Value, 'g', -1, 64)

	case *ast.StringLit:
		return `"` + e.Value + `"`

	case *ast.BoolLit:
		if e.Value {
			return "true"
		}
		return "false"

	case *ast.Word:
		return e.Name

	case *ast.Apply:
		op := formatExpr(e.Operator, depth)
		if word, ok := e.Operator.(*ast.Word); ok && word.Name == "do" && len(e.Args) > 1 {
			return formatBlock(op, e.Args, depth)
		}
		parts := make([]string, len(e.Args))
		for i, arg := range e.Args {
			parts[i] = formatExpr(arg, depth)
		}
		return op + "(" + strings.Join(parts, ", ") + ")"

	default:
		return ""
	}
}

func formatBlock(op string, args []ast.Expr, depth int) string {
	var sb strings.Builder
	sb.WriteString(op)
	sb.WriteString("(\n")
	inner := strings.Repeat(indent, depth+1)
	for i, arg := range args {
		sb.WriteString(inner)
		sb.WriteString(formatExpr(arg, depth+1))
		if i < len(args)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat(indent, depth))
	sb.WriteString(")")
	return sb.String()
}
