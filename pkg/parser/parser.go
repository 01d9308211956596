// Package parser implements the Yolk parser.
//
// The grammar is small enough that there is no separate lexer:
// tokenization and structure recognition are interleaved in a single
// pass over the source text.
package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yolklang/yolk/pkg/ast"
	"github.com/yolklang/yolk/pkg/diagnostics"
)

type parser struct {
	src  string
	file string
	off  int // byte offset into src
	line int
	col  int
}

// Parse reads source as a single expression followed only by
// whitespace and returns its tree.
func Parse(source, filename string) (ast.Expr, error) {
	p := &parser{src: source, file: filename, line: 1, col: 1}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		pos := p.pos()
		return nil, diagnostics.Syntax("Unexpected text after program", &pos)
	}
	return expr, nil
}

func (p *parser) eof() bool {
	return p.off >= len(p.src)
}

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(p.src[p.off:])
	return r
}

func (p *parser) advance() rune {
	r, size := utf8.DecodeRuneInString(p.src[p.off:])
	p.off += size
	if r == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return r
}

func (p *parser) pos() ast.Pos {
	return ast.Pos{File: p.file, Line: p.line, Col: p.col}
}

// skipSpace runs before every token.
func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.advance()
	}
}

// isWordRune reports whether r may appear in a word. Words are runs of
// anything except whitespace and the four structural characters.
func isWordRune(r rune) bool {
	switch r {
	case '(', ')', ',', '"':
		return false
	}
	return !unicode.IsSpace(r)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// unexpected is the catch-all token failure: nothing at the remainder
// matches a string, number or word.
func (p *parser) unexpected(pos ast.Pos, startOff int) error {
	rest := p.src[startOff:]
	if len(rest) > 20 {
		rest = rest[:20]
	}
	return diagnostics.Syntax(fmt.Sprintf("Unexpected syntax: %q", rest), &pos)
}

// parseExpression parses one primary token (string, number or word)
// and then hands off to parseApply for any argument lists.
func (p *parser) parseExpression() (ast.Expr, error) {
	p.skipSpace()
	start := p.pos()
	startOff := p.off

	if p.peek() == '"' {
		p.advance()
		var sb strings.Builder
		for !p.eof() && p.peek() != '"' {
			sb.WriteRune(p.advance())
		}
		if p.eof() {
			// No closing quote: the literal never matches.
			return nil, p.unexpected(start, startOff)
		}
		p.advance()
		return p.parseApply(&ast.StringLit{Pos: start, Value: sb.String()})
	}

	var sb strings.Builder
	for !p.eof() && isWordRune(p.peek()) {
		sb.WriteRune(p.advance())
	}
	word := sb.String()
	if word == "" {
		return nil, p.unexpected(start, startOff)
	}
	if isDigits(word) {
		val, err := strconv.ParseFloat(word, 64)
		if err != nil {
			return nil, p.unexpected(start, startOff)
		}
		return p.parseApply(&ast.NumberLit{Pos: start, Value: val})
	}
	return p.parseApply(&ast.Word{Pos: start, Name: word})
}

// parseApply consumes zero or more parenthesized argument lists after
// expr. A call followed immediately by another list applies the result
// again, so f(x)(y) parses as Apply(Apply(f, x), y).
func (p *parser) parseApply(expr ast.Expr) (ast.Expr, error) {
	p.skipSpace()
	if p.peek() != '(' {
		return expr, nil
	}
	p.advance()
	p.skipSpace()

	var args []ast.Expr
	for p.peek() != ')' {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.advance()
			p.skipSpace()
		case ')':
			// loop exits
		default:
			pos := p.pos()
			return nil, diagnostics.Syntax("Expected ',' or ')'", &pos)
		}
	}
	p.advance()

	return p.parseApply(&ast.Apply{
		Pos:      expr.ExprPos(),
		Operator: expr,
		Args:     args,
	})
}
