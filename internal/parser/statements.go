package parser

import (
	"github.com/blanketsucks/language/internal/ast"
	"github.com/blanketsucks/language/internal/token"
)

// stmt dispatches on the current token's kind (spec.md §4.2's "Statement
// dispatch" table).
func (p *Parser) stmt() ast.Expr {
	switch p.current.Kind {
	case token.Import:
		return p.parseImport()
	case token.While:
		return p.parseWhile()
	case token.If:
		return p.parseIf()
	case token.Return:
		return p.parseReturn()
	case token.Break:
		return p.parseBreak()
	case token.Continue:
		return p.parseContinue()
	case token.Struct:
		return p.parseStruct()
	case token.Impl:
		return p.parseImpl()
	case token.Enum:
		return p.parseEnum()
	case token.For:
		return p.parseFor()
	case token.Let:
		return p.parseVarAssign(false)
	case token.Const:
		return p.parseVarAssign(true)
	case token.Func:
		return p.parseFunction(ast.LinkageNone)
	default:
		e := p.expr(false)
		p.expect(token.Semicolon, "';'")
		return e
	}
}

func (p *Parser) parseWhile() ast.Expr {
	start := p.current.Span
	p.advance()

	cond := p.expr(false)

	outer := p.insideLoop
	p.insideLoop = true

	p.expect(token.LBrace, "'{'")
	body := p.parseBlock()

	p.insideLoop = outer
	return ast.NewWhileExpr(cond, body, token.Merge(start, body.Span()))
}

func (p *Parser) parseIf() ast.Expr {
	start := p.current.Span
	p.advance()

	cond := p.expr(false)

	p.expect(token.LBrace, "'{'")
	then := p.parseBlock()

	var els ast.Expr
	if p.current.Kind == token.Else {
		p.advance()
		if p.current.Kind == token.If {
			els = p.parseIf()
		} else {
			p.expect(token.LBrace, "'{'")
			els = p.parseBlock()
		}
	}

	end := then.Span()
	if els != nil {
		end = els.Span()
	}
	return ast.NewIfExpr(cond, then, els, token.Merge(start, end))
}

func (p *Parser) parseReturn() ast.Expr {
	start := p.current.Span
	p.advance()

	if !p.insideFunction {
		p.fatal(start, "Cannot return outside of a function")
	}

	if p.current.Kind == token.Semicolon {
		end := p.current.Span
		p.advance()
		return ast.NewRetExpr(nil, token.Merge(start, end))
	}

	value := p.expr(true)
	return ast.NewRetExpr(value, token.Merge(start, value.Span()))
}

func (p *Parser) parseBreak() ast.Expr {
	start := p.current.Span
	if !p.insideLoop {
		p.fatal(start, "Cannot break outside of a loop")
	}
	p.advance()
	end := p.expect(token.Semicolon, "';'")
	return ast.NewBreakExpr(token.Merge(start, end.Span))
}

func (p *Parser) parseContinue() ast.Expr {
	start := p.current.Span
	if !p.insideLoop {
		p.fatal(start, "Cannot continue outside of a loop")
	}
	p.advance()
	end := p.expect(token.Semicolon, "';'")
	return ast.NewContinueExpr(token.Merge(start, end.Span))
}

// parseFor implements "for binders in iterable { body }" (spec.md §3's
// For(binders, iterable, body) variant; quart's "foreach" keyword is
// reserved and not surfaced as separate syntax).
func (p *Parser) parseFor() ast.Expr {
	start := p.current.Span
	p.advance()

	var binders []*ast.Identifier
	name, nameSpan := p.expectIdentifier()
	binders = append(binders, ast.NewIdentifier(name, false, nameSpan))
	for p.current.Kind == token.Comma {
		p.advance()
		name, nameSpan := p.expectIdentifier()
		binders = append(binders, ast.NewIdentifier(name, false, nameSpan))
	}

	p.expect(token.In, "'in'")
	iterable := p.expr(false)

	outer := p.insideLoop
	p.insideLoop = true

	p.expect(token.LBrace, "'{'")
	body := p.parseBlock()

	p.insideLoop = outer
	return ast.NewForExpr(binders, iterable, body, token.Merge(start, body.Span()))
}
