package parser

import (
	"github.com/blanketsucks/language/internal/ast"
	"github.com/blanketsucks/language/internal/token"
)

// parseImport implements "import path [as alias | {items} | *] ;"
// (spec.md §4.2.4). The three trailing forms are mutually exclusive.
func (p *Parser) parseImport() ast.Expr {
	start := p.current.Span
	p.advance()

	path := p.parsePath("", token.Span{})

	var alias string
	var items []string
	wildcard := false

	switch p.current.Kind {
	case token.As:
		p.advance()
		alias, _ = p.expectIdentifier()

	case token.LBrace:
		p.advance()
		for p.current.Kind != token.RBrace {
			name, _ := p.expectIdentifier()
			items = append(items, name)
			if p.current.Kind != token.Comma {
				break
			}
			p.advance()
		}
		p.expect(token.RBrace, "'}'")

	case token.Star:
		p.advance()
		wildcard = true
	}

	end := p.expect(token.Semicolon, "';'")
	return ast.NewImportExpr(path, alias, items, wildcard, token.Merge(start, end.Span))
}
