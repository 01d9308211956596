// Package ast defines the Yolk expression tree.
package ast

import "fmt"

// Pos is a source location: file, 1-based line and column.
type Pos struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Col  int    `json:"col"`
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// Expr is the interface implemented by all expression nodes.
// A Yolk program is a single Expr; there are no statements.
type Expr interface {
	Kind() string
	ExprPos() Pos
	exprNode() // sealed marker
}

// NumberLit is an unsigned integer literal. Values are carried as
// float64, the runtime number representation.
type NumberLit struct {
	Pos   Pos
	Value float64
}

func (n *NumberLit) Kind() string { return "NumberLit" }
func (n *NumberLit) ExprPos() Pos { return n.Pos }
func (n *NumberLit) exprNode()    {}

// StringLit is a quoted string literal. The grammar has no escape
// sequences, so Value is the raw text between the quotes.
type StringLit struct {
	Pos   Pos
	Value string
}

func (n *StringLit) Kind() string { return "StringLit" }
func (n *StringLit) ExprPos() Pos { return n.Pos }
func (n *StringLit) exprNode()    {}

// BoolLit is a boolean literal. The parser never produces one (true
// and false are global bindings), but pre-built trees may carry them.
type BoolLit struct {
	Pos   Pos
	Value bool
}

func (n *BoolLit) Kind() string { return "BoolLit" }
func (n *BoolLit) ExprPos() Pos { return n.Pos }
func (n *BoolLit) exprNode()    {}

// Word is a variable reference.
type Word struct {
	Pos  Pos
	Name string
}

func (n *Word) Kind() string { return "Word" }
func (n *Word) ExprPos() Pos { return n.Pos }
func (n *Word) exprNode()    {}

// Apply is a function or special-form invocation: an operator
// expression and an ordered argument list.
type Apply struct {
	Pos      Pos
	Operator Expr
	Args     []Expr
}

func (n *Apply) Kind() string { return "Apply" }
func (n *Apply) ExprPos() Pos { return n.Pos }
func (n *Apply) exprNode()    {}
