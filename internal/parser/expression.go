package parser

import (
	"errors"
	"strconv"

	"oxygen/internal/ast"
	"oxygen/internal/diag"
	"oxygen/internal/lexer"
	"oxygen/internal/token"
)

// parseExpr - точка входа для разбора выражений.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	prev := p.state
	p.state = stateInExpression
	defer func() { p.state = prev }()
	return p.parseBinaryExpr(1)
}

// parseBinaryExpr - precedence climbing: сворачиваем операторы с приоритетом >= minPrec.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.ExprID, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for {
		opTok := p.lx.Peek()
		prec, rightAssoc := getBinaryOperatorPrec(opTok.Kind)
		if prec == 0 || prec < minPrec {
			break
		}
		p.advance()

		next := prec + 1
		if rightAssoc {
			next = prec
		}
		right, ok := p.parseBinaryExpr(next)
		if !ok {
			return ast.NoExprID, false
		}
		span := p.exprSpan(left).Cover(p.exprSpan(right))
		left = p.arenas.Exprs.NewBinary(span, binaryOps[opTok.Kind].op, left, right)
	}
	return left, true
}

// parseUnaryExpr - префиксные операторы применяются справа налево: -!x == -(!x).
func (p *Parser) parseUnaryExpr() (ast.ExprID, bool) {
	var ops []token.Token
	for {
		if _, ok := unaryOpFor(p.lx.Peek().Kind); !ok {
			break
		}
		ops = append(ops, p.advance())
	}

	operand, ok := p.parsePostfixExpr()
	if !ok {
		return ast.NoExprID, false
	}
	for i := len(ops) - 1; i >= 0; i-- {
		op, _ := unaryOpFor(ops[i].Kind)
		span := ops[i].Span.Cover(p.exprSpan(operand))
		operand = p.arenas.Exprs.NewUnary(span, op, operand)
	}
	return operand, true
}

// parsePostfixExpr - primary и цепочка вызовов f(a)(b).
func (p *Parser) parsePostfixExpr() (ast.ExprID, bool) {
	expr, ok := p.parsePrimaryExpr()
	if !ok {
		return ast.NoExprID, false
	}

	for p.at(token.LParen) {
		open := p.advance()
		var args []ast.ExprID
		if !p.at(token.RParen) {
			for {
				arg, ok := p.parseExpr()
				if !ok {
					return ast.NoExprID, false
				}
				args = append(args, arg)
				if !p.at(token.Comma) {
					break
				}
				p.advance()
			}
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "')' to close argument list",
			withNote(open.Span, "argument list starts here")); !ok {
			return ast.NoExprID, false
		}
		expr = p.arenas.Exprs.NewCall(p.spanFrom(p.exprSpan(expr)), expr, args)
	}
	return expr, true
}

func (p *Parser) parsePrimaryExpr() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		return p.intLiteral(tok), true

	case token.StringLit:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitExpr{
			Kind: ast.LitString,
			Raw:  tok.Text,
			Str:  lexer.UnquoteString(tok.Text),
		}), true

	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitExpr{
			Kind: ast.LitBool,
			Raw:  tok.Text,
			Bool: tok.Kind == token.KwTrue,
		}), true

	case token.Ident:
		p.advance()
		return p.arenas.Exprs.NewIdent(tok.Span, p.arenas.StringsInterner.Intern(tok.Text)), true

	case token.LParen:
		open := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "')' to close parenthesized expression",
			withNote(open.Span, "opening '(' is here")); !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewGroup(p.spanFrom(open.Span), inner), true

	case token.Invalid:
		// лексер уже отчитался, просто заменяем операнд заглушкой
		p.advance()
		return p.arenas.Exprs.NewBad(tok.Span), true

	default:
		p.errExpected(diag.SynExpectExpression, "expression")
		return ast.NoExprID, false
	}
}

// intLiteral декодирует целое (0x/0b/0o, '_'); переполнение int64 - ошибка,
// но узел всё равно строится.
func (p *Parser) intLiteral(tok token.Token) ast.ExprID {
	data := ast.LitExpr{Kind: ast.LitInt, Raw: tok.Text}
	value, err := strconv.ParseInt(tok.Text, 0, 64)
	switch {
	case err == nil:
		data.Int = value
	case errors.Is(err, strconv.ErrRange):
		p.report(diag.SynIntOutOfRange, diag.SevError, tok.Span,
			"integer literal "+tok.Text+" does not fit in 64 bits")
	default:
		p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span,
			"cannot decode integer literal "+tok.Text)
	}
	return p.arenas.Exprs.NewLiteral(tok.Span, data)
}
