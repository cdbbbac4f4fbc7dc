package parser

import (
	"github.com/blanketsucks/language/internal/ast"
	"github.com/blanketsucks/language/internal/token"
)

// parseType implements the type grammar (spec.md §4.2.5).
func (p *Parser) parseType() ast.TypeExpr {
	start := p.current.Span

	switch p.current.Kind {
	case token.Identifier:
		name := p.current.Lexeme
		p.advance()
		path := p.parsePath(name, start)
		return ast.NewNamedType(path, token.Merge(start, path.Span()))

	case token.LParen:
		p.advance()
		var elements []ast.TypeExpr
		for p.current.Kind != token.RParen {
			elements = append(elements, p.parseType())
			if p.current.Kind != token.Comma {
				break
			}
			p.advance()
		}
		end := p.expect(token.RParen, "')'")
		return ast.NewTupleType(elements, token.Merge(start, end.Span))

	case token.LBracket:
		p.advance()
		element := p.parseType()
		p.expect(token.Semicolon, "';'")
		size := p.expr(false)
		end := p.expect(token.RBracket, "']'")
		return ast.NewArrayType(element, size, token.Merge(start, end.Span))

	case token.Amp:
		p.advance()
		isMutable := false
		if p.current.Kind == token.Mut {
			p.advance()
			isMutable = true
		}
		referent := p.parseType()
		return ast.NewRefType(referent, isMutable, token.Merge(start, referent.Span()))

	case token.Star:
		p.advance()
		isMutable := false
		if p.current.Kind == token.Mut {
			p.advance()
			isMutable = true
		}
		pointee := p.parseType()
		if _, ok := pointee.(*ast.RefType); ok {
			p.fatal(pointee.Span(), "Cannot have a pointer to a reference")
		}
		return ast.NewPtrType(pointee, isMutable, token.Merge(start, pointee.Span()))

	case token.Func:
		p.advance()
		p.expect(token.LParen, "'('")
		var params []ast.TypeExpr
		for p.current.Kind != token.RParen {
			params = append(params, p.parseType())
			if p.current.Kind != token.Comma {
				break
			}
			p.advance()
		}
		end := p.expect(token.RParen, "')'")
		endSpan := end.Span

		var ret ast.TypeExpr
		if p.current.Kind == token.Arrow {
			p.advance()
			ret = p.parseType()
			endSpan = ret.Span()
		}
		return ast.NewFuncType(params, ret, token.Merge(start, endSpan))

	default:
		p.fatal(p.current.Span, "Expected type")
		return nil
	}
}
