// Package diagnostics defines Yolk error values for parse and runtime failures.
package diagnostics

import (
	"fmt"

	"github.com/yolklang/yolk/pkg/ast"
)

// Error kind constants. These are the only kinds the language produces.
const (
	KindSyntax    = "SyntaxError"
	KindReference = "ReferenceError"
	KindType      = "TypeError"
)

// Diagnostic is a structured error: a kind, a message and an optional
// source position. It implements error; Error() is the boundary
// string mandated by the evaluation contract ("<Kind>: <Message>").
type Diagnostic struct {
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Pos     *ast.Pos `json:"pos,omitempty"`
}

func (d *Diagnostic) Error() string {
	return d.Kind + ": " + d.Message
}

// Syntax creates a SyntaxError diagnostic.
func Syntax(message string, pos *ast.Pos) *Diagnostic {
	return &Diagnostic{Kind: KindSyntax, Message: message, Pos: pos}
}

// Reference creates a ReferenceError diagnostic.
func Reference(message string, pos *ast.Pos) *Diagnostic {
	return &Diagnostic{Kind: KindReference, Message: message, Pos: pos}
}

// Type creates a TypeError diagnostic.
func Type(message string, pos *ast.Pos) *Diagnostic {
	return &Diagnostic{Kind: KindType, Message: message, Pos: pos}
}

// FormatDiagnostic renders a diagnostic for display. The plain form is
// the single boundary string; the pretty form adds the source location
// for CLI output.
func FormatDiagnostic(d *Diagnostic, pretty bool) string {
	if !pretty {
		return d.Error()
	}
	loc := "<unknown>"
	if d.Pos != nil {
		loc = d.Pos.String()
	}
	return fmt.Sprintf("error[%s]: %s\n  --> %s", d.Kind, d.Message, loc)
}

// FormatDiagnostics renders a slice of diagnostics, one per line (two
// in pretty mode).
func FormatDiagnostics(diags []*Diagnostic, pretty bool) string {
	out := ""
	for i, d := range diags {
		if i > 0 {
			if pretty {
				out += "\n\n"
			} else {
				out += "\n"
			}
		}
		out += FormatDiagnostic(d, pretty)
	}
	return out
}
