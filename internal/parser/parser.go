// Package parser implements quart's recursive-descent, operator-precedence
// parser: it turns a borrowed token list into an ordered list of top-level
// Expr trees (spec.md §4.2).
package parser

import (
	"fmt"

	"github.com/blanketsucks/language/internal/ast"
	"github.com/blanketsucks/language/internal/diag"
	"github.com/blanketsucks/language/internal/token"
)

// Parser is single-pass with bounded look-ahead via peek (at most two tokens
// past current, for struct-literal detection); it never backtracks. The four context flags are saved and restored
// around nested declaration bodies exactly where the grammar requires it
// (spec.md §4.2's "State" paragraph).
type Parser struct {
	tokens  []token.Token
	index   int // index of the token after current
	current token.Token

	insideFunction bool
	insideLoop     bool
	insideStruct   bool
	insideImpl     bool

	sink diag.Sink
}

// New constructs a parser over a completed, EOF-terminated token list.
func New(tokens []token.Token, sink diag.Sink) *Parser {
	p := &Parser{tokens: tokens, index: 1, sink: sink}
	if len(tokens) > 0 {
		p.current = tokens[0]
	}
	return p
}

// abortParse unwinds ParseFile after a fatal diagnostic has already been
// reported, mirroring internal/lexer's panic/recover convention so that
// diag.Recorder-backed tests observe "fatal means stop" without a process
// exit.
type abortParse struct{}

func (p *Parser) fatal(span token.Span, format string, args ...any) {
	p.sink.Error(span, fmt.Sprintf(format, args...))
	panic(abortParse{})
}

func (p *Parser) note(span token.Span, message string) {
	p.sink.Note(span, message)
}

func (p *Parser) advance() {
	if p.index < len(p.tokens) {
		p.current = p.tokens[p.index]
		p.index++
	}
}

// peek returns the token n positions ahead of current; peek(1) is the token
// immediately after current.
func (p *Parser) peek(n int) token.Token {
	i := p.index + n - 1
	if i < 0 {
		i = 0
	}
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) expect(kind token.Kind, what string) token.Token {
	if p.current.Kind != kind {
		p.fatal(p.current.Span, "Expected %s", what)
	}
	tok := p.current
	p.advance()
	return tok
}

func (p *Parser) expectIdentifier() (string, token.Span) {
	if p.current.Kind != token.Identifier {
		p.fatal(p.current.Span, "Expected identifier")
	}
	name, span := p.current.Lexeme, p.current.Span
	p.advance()
	return name, span
}

// ParseFile consumes the entire token list and returns the top-level
// expression list. Every parser error is fatal (spec.md §4.2.6): there is
// no recovery and no partial result on error.
func ParseFile(tokens []token.Token, sink diag.Sink) (exprs []ast.Expr) {
	p := New(tokens, sink)

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(abortParse); ok {
				exprs = nil
				return
			}
			panic(r)
		}
	}()

	return p.Parse()
}

// Parse implements the entry point described in spec.md §4.2: read
// top-level statements until EOF.
func (p *Parser) Parse() []ast.Expr {
	var exprs []ast.Expr
	for p.current.Kind != token.EOF {
		exprs = append(exprs, p.stmt())
	}
	return exprs
}

func (p *Parser) parsePath(name string, start token.Span) *ast.Path {
	if name == "" {
		name, start = p.expectIdentifier()
	}

	var segments []string
	end := start
	for p.current.Kind == token.DoubleColon {
		p.advance()
		seg, segSpan := p.expectIdentifier()
		segments = append(segments, seg)
		end = segSpan
	}

	return ast.NewPath(name, segments, token.Merge(start, end))
}

func (p *Parser) parseBlock() *ast.BlockExpr {
	start := p.current.Span
	var stmts []ast.Expr
	for p.current.Kind != token.RBrace {
		stmts = append(stmts, p.stmt())
	}
	end := p.expect(token.RBrace, "'}'")
	return ast.NewBlockExpr(stmts, token.Merge(start, end.Span))
}
