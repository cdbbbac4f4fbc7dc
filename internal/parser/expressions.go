package parser

import (
	"github.com/blanketsucks/language/internal/ast"
	"github.com/blanketsucks/language/internal/token"
)

// expr implements "unary() followed by binary(lhs, 0)" (spec.md §4.2.1). If
// end is set, a trailing ';' is required.
func (p *Parser) expr(end bool) ast.Expr {
	left := p.unary()
	result := p.binary(left, token.PrecLowest)
	if end {
		p.expect(token.Semicolon, "';'")
	}
	return result
}

// binary implements operator-precedence climbing: consume operators whose
// precedence is >= min, recursing into a tighter-binding right-hand side
// only when the following operator binds tighter than the one just
// consumed. Left-associative at equal precedence (spec.md §4.2.1).
func (p *Parser) binary(left ast.Expr, min int) ast.Expr {
	for {
		if token.Precedence(p.current.Kind) < min {
			return left
		}

		opKind := p.current.Kind
		opPrec := token.Precedence(opKind)
		p.advance()

		right := p.unary()
		if token.Precedence(p.current.Kind) > opPrec {
			right = p.binary(right, opPrec+1)
		}

		op := binaryOpFor(opKind)
		span := token.Merge(left.Span(), right.Span())
		if token.IsInplace(opKind) {
			left = ast.NewInplaceBinOpExpr(op, left, right, span)
		} else {
			left = ast.NewBinaryOpExpr(op, left, right, span)
		}
	}
}

func binaryOpFor(k token.Kind) ast.BinaryOp {
	switch k {
	case token.Plus, token.PlusEq:
		return ast.BinAdd
	case token.Minus, token.MinusEq:
		return ast.BinSub
	case token.Star, token.StarEq:
		return ast.BinMul
	case token.Slash, token.SlashEq:
		return ast.BinDiv
	case token.Percent:
		return ast.BinMod
	case token.AmpAmp:
		return ast.BinAnd
	case token.PipePipe:
		return ast.BinOr
	case token.Caret:
		return ast.BinXor
	case token.ShiftL:
		return ast.BinShl
	case token.ShiftR:
		return ast.BinShr
	case token.Amp:
		return ast.BinBitAnd
	case token.Pipe:
		return ast.BinBitOr
	case token.EqEq:
		return ast.BinEq
	case token.BangEq:
		return ast.BinNeq
	case token.Lt:
		return ast.BinLt
	case token.Gt:
		return ast.BinGt
	case token.LtEq:
		return ast.BinLte
	case token.GtEq:
		return ast.BinGte
	case token.Assign:
		return ast.BinAssign
	default:
		panic("unreachable: non-operator token reached binaryOpFor")
	}
}

// unary implements the prefix operators; everything else falls through to
// call(). No postfix "++"/"--" exists.
func (p *Parser) unary() ast.Expr {
	start := p.current.Span

	var op ast.UnaryOp
	switch p.current.Kind {
	case token.Minus:
		op = ast.UnaryNeg
	case token.Bang:
		op = ast.UnaryNot
	case token.Tilde:
		op = ast.UnaryBinaryNot
	case token.Amp:
		op = ast.UnaryRef
	case token.Star:
		op = ast.UnaryDeref
	case token.PlusPlus:
		op = ast.UnaryInc
	case token.MinusMinus:
		op = ast.UnaryDec
	default:
		return p.call()
	}

	p.advance()
	operand := p.unary()
	return ast.NewUnaryOpExpr(op, operand, token.Merge(start, operand.Span()))
}

// call extends a primary with call arguments or a struct literal
// immediately following it, then with chained attribute/index access, then
// with at most one trailing "as Type" cast or postfix ternary (spec.md
// §4.2.1's "Postfix / primary" paragraph).
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	switch {
	case p.current.Kind == token.LParen:
		p.advance()
		expr = p.parseCallArgs(expr)
	case p.current.Kind == token.LBrace && p.peek(2).Kind == token.Colon:
		p.advance()
		expr = p.parseStructLiteral(expr)
	}

	switch p.current.Kind {
	case token.Dot:
		expr = p.attr(expr)
	case token.LBracket:
		expr = p.element(expr)
	}

	switch p.current.Kind {
	case token.As:
		p.advance()
		ty := p.parseType()
		return ast.NewCastExpr(expr, ty, token.Merge(expr.Span(), ty.Span()))
	case token.If:
		p.advance()
		cond := p.expr(false)
		p.expect(token.Else, "else")
		other := p.expr(false)
		return ast.NewTernaryExpr(expr, cond, other, token.Merge(expr.Span(), other.Span()))
	default:
		return expr
	}
}

// element and attr are mutually chaining so "a[i].b[j]" and "a.b[i].c" both
// fold left-to-right in textual order (spec.md §9).
func (p *Parser) element(expr ast.Expr) ast.Expr {
	for p.current.Kind == token.LBracket {
		p.advance()
		index := p.expr(false)
		end := p.expect(token.RBracket, "']'")
		expr = ast.NewIndexExpr(expr, index, token.Merge(expr.Span(), end.Span))
	}
	if p.current.Kind == token.Dot {
		return p.attr(expr)
	}
	return expr
}

func (p *Parser) attr(expr ast.Expr) ast.Expr {
	for p.current.Kind == token.Dot {
		p.advance()
		name, nameSpan := p.expectIdentifier()
		expr = ast.NewAttrExpr(expr, name, token.Merge(expr.Span(), nameSpan))
	}
	if p.current.Kind == token.LBracket {
		return p.element(expr)
	}
	return expr
}

func (p *Parser) primary() ast.Expr {
	var expr ast.Expr

	switch p.current.Kind {
	case token.Number:
		lit := p.current
		p.advance()
		expr = ast.NewIntegerLit(lit.Lexeme, lit.Span)
	case token.String:
		lit := p.current
		p.advance()
		expr = ast.NewStringLit(lit.Lexeme, lit.Span)
	case token.Identifier:
		name, span := p.current.Lexeme, p.current.Span
		p.advance()
		if p.current.Kind == token.DoubleColon {
			expr = p.parsePath(name, span)
		} else {
			expr = ast.NewIdentifier(name, false, span)
		}
	case token.LParen:
		expr = p.parseParenOrTuple()
	case token.LBracket:
		expr = p.parseArrayLit()
	case token.Sizeof:
		expr = p.parseSizeof()
	default:
		p.fatal(p.current.Span, "Expected an expression")
		return nil
	}

	switch p.current.Kind {
	case token.Dot:
		return p.attr(expr)
	case token.LBracket:
		return p.element(expr)
	default:
		return expr
	}
}

func (p *Parser) parseParenOrTuple() ast.Expr {
	start := p.current.Span
	p.advance()

	first := p.expr(false)
	if p.current.Kind != token.Comma {
		end := p.expect(token.RParen, "')'")
		_ = end
		return first
	}

	items := []ast.Expr{first}
	p.advance()
	for p.current.Kind != token.RParen {
		items = append(items, p.expr(false))
		if p.current.Kind != token.Comma {
			break
		}
		p.advance()
	}
	end := p.expect(token.RParen, "')'")
	return ast.NewTupleLit(items, token.Merge(start, end.Span))
}

func (p *Parser) parseArrayLit() ast.Expr {
	start := p.current.Span
	p.advance()

	var elements []ast.Expr
	for p.current.Kind != token.RBracket {
		elements = append(elements, p.expr(false))
		if p.current.Kind != token.Comma {
			break
		}
		p.advance()
	}
	end := p.expect(token.RBracket, "']'")
	return ast.NewArrayLit(elements, token.Merge(start, end.Span))
}

func (p *Parser) parseSizeof() ast.Expr {
	start := p.current.Span
	p.advance()
	p.expect(token.LParen, "'('")
	ty := p.parseType()
	end := p.expect(token.RParen, "')'")
	return ast.NewSizeofExpr(ty, token.Merge(start, end.Span))
}

// parseCallArgs implements the comma-separated argument list: an
// "identifier =" pair is a keyword argument; once any keyword argument has
// been seen, a subsequent positional argument is fatal (spec.md §4.2.1's
// "Call arguments" paragraph).
func (p *Parser) parseCallArgs(callee ast.Expr) ast.Expr {
	start := callee.Span()

	var args []ast.Expr
	kwargs := map[string]ast.Expr{}
	var kwOrder []string
	hasKwargs := false

	for p.current.Kind != token.RParen {
		if p.current.Kind == token.Identifier && p.peek(1).Kind == token.Assign {
			name, nameSpan := p.current.Lexeme, p.current.Span
			if _, ok := kwargs[name]; ok {
				p.fatal(nameSpan, "Duplicate keyword argument '%s'", name)
			}
			p.advance() // identifier
			p.advance() // '='
			kwargs[name] = p.expr(false)
			kwOrder = append(kwOrder, name)
			hasKwargs = true
		} else {
			if hasKwargs {
				p.fatal(p.current.Span, "Expected an identifier")
			}
			args = append(args, p.expr(false))
		}

		if p.current.Kind != token.Comma {
			break
		}
		p.advance()
	}

	end := p.expect(token.RParen, "')'")
	return ast.NewCallExpr(callee, args, kwargs, kwOrder, token.Merge(start, end.Span))
}

// parseStructLiteral implements "{ name: expr, ... }"; duplicate field
// names are fatal.
func (p *Parser) parseStructLiteral(structExpr ast.Expr) ast.Expr {
	start := structExpr.Span()

	fields := map[string]ast.Expr{}
	var order []string

	for p.current.Kind != token.RBrace {
		name, nameSpan := p.expectIdentifier()
		if _, ok := fields[name]; ok {
			p.fatal(nameSpan, "Duplicate field '%s'", name)
		}
		p.expect(token.Colon, "':'")
		fields[name] = p.expr(false)
		order = append(order, name)

		if p.current.Kind != token.Comma {
			break
		}
		p.advance()
	}

	end := p.expect(token.RBrace, "'}'")
	return ast.NewStructLiteralExpr(structExpr, fields, order, token.Merge(start, end.Span))
}
