package parser

import (
	"github.com/blanketsucks/language/internal/ast"
	"github.com/blanketsucks/language/internal/token"
)

// parseVarAssign implements "let|const [mut] ident|(binders) [: Type]
// [= expr] ;" (spec.md §4.2.2).
func (p *Parser) parseVarAssign(isConst bool) ast.Expr {
	start := p.current.Span
	p.advance()

	isMutable := false
	if p.current.Kind == token.Mut {
		isMutable = true
		p.advance()
	}

	var idents []*ast.Identifier
	isTupleUnpack := false

	switch p.current.Kind {
	case token.Identifier:
		name, span := p.current.Lexeme, p.current.Span
		p.advance()
		idents = append(idents, ast.NewIdentifier(name, isMutable, span))

	case token.LParen:
		p.advance()
		isTupleUnpack = true

		for p.current.Kind != token.RParen {
			isLocalMutable := false
			if p.current.Kind == token.Mut {
				if isMutable {
					p.note(p.current.Span, "Redundant 'mut'")
				}
				isLocalMutable = true
				p.advance()
			}

			name, span := p.expectIdentifier()
			idents = append(idents, ast.NewIdentifier(name, isMutable || isLocalMutable, span))

			if p.current.Kind != token.Comma {
				break
			}
			p.advance()
		}
		p.expect(token.RParen, "')'")

	default:
		p.fatal(p.current.Span, "Expected an identifier or '('")
	}

	var ty ast.TypeExpr
	if p.current.Kind == token.Colon {
		p.advance()
		ty = p.parseType()
	}

	var value ast.Expr
	if p.current.Kind == token.Assign {
		p.advance()
		value = p.expr(false)
	}

	end := p.expect(token.Semicolon, "';'")
	assign := &ast.VarAssign{Idents: idents, Type: ty, Value: value, IsTupleUnpack: isTupleUnpack}
	span := token.Merge(start, end.Span)

	if isConst {
		return ast.NewConstExpr(assign, span)
	}
	return ast.NewLetExpr(assign, span)
}

func (p *Parser) parseTypeAlias() ast.Expr {
	start := p.current.Span
	p.advance()

	name, _ := p.expectIdentifier()
	p.expect(token.Assign, "'='")
	ty := p.parseType()
	end := p.expect(token.Semicolon, "';'")

	return ast.NewTypeAliasExpr(name, ty, token.Merge(start, end.Span))
}

// parseStruct implements "struct Name [(Parent), ...] { members }"
// (spec.md §4.2.3). Each parent is individually parenthesized per the
// grammar table; within the body the insideStruct flag is set.
func (p *Parser) parseStruct() ast.Expr {
	start := p.current.Span
	p.advance()

	name, _ := p.expectIdentifier()

	var parents []*ast.Path
	for p.current.Kind == token.LParen {
		p.advance()
		parents = append(parents, p.parsePath("", token.Span{}))
		p.expect(token.RParen, "')'")

		if p.current.Kind != token.Comma {
			break
		}
		p.advance()
	}

	p.expect(token.LBrace, "'{'")
	outer := p.insideStruct
	p.insideStruct = true

	var fields []*ast.StructField
	var body []ast.Expr
	index := 0

	for p.current.Kind != token.RBrace {
		isPrivate, isReadonly := false, false
		switch p.current.Kind {
		case token.Private:
			isPrivate = true
			p.advance()
		case token.Readonly:
			isReadonly = true
			p.advance()
		}

		switch p.current.Kind {
		case token.Identifier:
			fieldName := p.current.Lexeme
			p.advance()
			p.expect(token.Colon, "':'")
			ty := p.parseType()

			fields = append(fields, &ast.StructField{
				Name: fieldName, Type: ty, Index: index,
				IsReadonly: isReadonly, IsPrivate: isPrivate,
			})
			index++
			p.expect(token.Semicolon, "';'")
		case token.Const:
			body = append(body, p.parseVarAssign(true))
		case token.Type:
			body = append(body, p.parseTypeAlias())
		case token.Func:
			body = append(body, p.parseFunction(ast.LinkageNone))
		default:
			p.fatal(p.current.Span, "Expected an identifier, function definition, or type alias")
		}
	}

	end := p.expect(token.RBrace, "'}'")
	p.insideStruct = outer

	decl := &ast.StructDecl{Name: name, Opaque: false, Fields: fields, Parents: parents, Body: body}
	return ast.NewStructExpr(decl, token.Merge(start, end.Span))
}

// parseImpl implements "impl Type { members }" (spec.md §4.2.3).
func (p *Parser) parseImpl() ast.Expr {
	start := p.current.Span
	p.advance()

	ty := p.parseType()
	p.expect(token.LBrace, "'{'")

	outer := p.insideImpl
	p.insideImpl = true

	var body []ast.Expr
	for p.current.Kind != token.RBrace {
		switch p.current.Kind {
		case token.Const:
			body = append(body, p.parseVarAssign(true))
		case token.Type:
			body = append(body, p.parseTypeAlias())
		case token.Func:
			body = append(body, p.parseFunction(ast.LinkageNone))
		default:
			p.fatal(p.current.Span, "Expected an identifier, function definition, or type alias")
		}
	}

	p.insideImpl = outer
	end := p.expect(token.RBrace, "'}'")
	return ast.NewImplExpr(ty, body, token.Merge(start, end.Span))
}

// parseEnum implements "enum Name { Variant [= expr], ... }".
func (p *Parser) parseEnum() ast.Expr {
	start := p.current.Span
	p.advance()

	name, _ := p.expectIdentifier()
	p.expect(token.LBrace, "'{'")

	var enumerators []*ast.Enumerator
	for p.current.Kind != token.RBrace {
		fieldName, _ := p.expectIdentifier()

		var value ast.Expr
		if p.current.Kind == token.Assign {
			p.advance()
			value = p.expr(false)
		}
		enumerators = append(enumerators, &ast.Enumerator{Name: fieldName, Value: value})

		if p.current.Kind != token.Comma {
			break
		}
		p.advance()
	}

	end := p.expect(token.RBrace, "'}'")
	return ast.NewEnumExpr(name, enumerators, token.Merge(start, end.Span))
}

// parseFunctionArguments implements the argument list grammar: a bare "*,"
// introduces the keyword-only separator, "self" is type-less only inside an
// impl/struct body, and once any argument carries a default every following
// argument must too (spec.md §4.2.3's "Function prototype and body").
func (p *Parser) parseFunctionArguments() []*ast.Argument {
	var args []*ast.Argument
	hasKwargs := false
	hasDefaults := false

	for p.current.Kind != token.RParen {
		span := p.current.Span
		isMutable := false
		if p.current.Kind == token.Mut {
			isMutable = true
			p.advance()
		}

		if p.current.Kind == token.Star {
			p.advance()
			p.expect(token.Comma, "','")
			hasKwargs = true
			continue
		}

		name, nameSpan := p.expectIdentifier()
		span = token.Merge(span, nameSpan)

		var ty ast.TypeExpr
		isSelf := false
		switch {
		case name != "self":
			p.expect(token.Colon, "':'")
			ty = p.parseType()
		case p.insideImpl || p.insideStruct:
			isSelf = true
		default:
			p.expect(token.Colon, "':'")
			ty = p.parseType()
		}

		var def ast.Expr
		if p.current.Kind == token.Assign {
			p.advance()
			def = p.expr(false)
			hasDefaults = true
		} else if hasDefaults {
			p.fatal(p.current.Span, "Expected default value")
		}

		if p.current.Kind == token.Comma {
			p.advance()
		}

		args = append(args, ast.NewArgument(name, ty, def, isSelf, hasKwargs, isMutable, span))
	}

	return args
}

func (p *Parser) parseFunctionPrototype(linkage ast.Linkage) *ast.ProtoDecl {
	start := p.current.Span
	name, _ := p.expectIdentifier()

	p.expect(token.LParen, "'('")
	args := p.parseFunctionArguments()
	end := p.expect(token.RParen, "')'")
	endSpan := end.Span

	var ret ast.TypeExpr
	if p.current.Kind == token.Arrow {
		p.advance()
		ret = p.parseType()
		endSpan = ret.Span()
	}

	return ast.NewProtoDecl(name, args, ret, linkage, token.Merge(start, endSpan))
}

// parseFunction implements "func Name(args) [-> Ret] (';' | block)"; a
// trailing ';' yields a Prototype, otherwise a braced body yields Func.
func (p *Parser) parseFunction(linkage ast.Linkage) ast.Expr {
	start := p.current.Span
	p.advance()

	proto := p.parseFunctionPrototype(linkage)

	if p.current.Kind == token.Semicolon {
		end := p.current.Span
		p.advance()
		return ast.NewPrototypeExpr(proto, token.Merge(start, end))
	}

	outer := p.insideFunction
	p.insideFunction = true

	p.expect(token.LBrace, "'{'")
	body := p.parseBlock()

	p.insideFunction = outer
	return ast.NewFuncExpr(proto, body, token.Merge(start, body.Span()))
}
