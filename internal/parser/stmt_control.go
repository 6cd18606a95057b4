package parser

import (
	"fmt"

	"oxygen/internal/ast"
	"oxygen/internal/diag"
	"oxygen/internal/token"
)

// parseCondition - `( expr )` после if/while. Если ')' потерялась,
// но дальше '{', продолжаем с телом.
func (p *Parser) parseCondition(keyword string) (ast.ExprID, bool) {
	open, ok := p.expect(token.LParen, diag.SynExpectLParen, fmt.Sprintf("'(' after '%s'", keyword))
	if !ok {
		return ast.NoExprID, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	if p.at(token.RParen) {
		p.advance()
		return cond, true
	}
	p.errExpected(diag.SynUnclosedParen, "')' after condition", withNote(open.Span, "condition starts here"))
	if p.at(token.LBrace) {
		return cond, true
	}
	return ast.NoExprID, false
}

func (p *Parser) parseIfStmt() (ast.StmtID, bool) {
	kw := p.advance()
	cond, ok := p.parseCondition(kw.Text)
	if !ok {
		return ast.NoStmtID, false
	}
	then := p.parseStmt(false)
	els := ast.NoStmtID
	if p.at(token.KwElse) {
		p.advance()
		els = p.parseStmt(false)
	}
	return p.arenas.Stmts.NewIf(p.spanFrom(kw.Span), cond, then, els), true
}

func (p *Parser) parseWhileStmt() (ast.StmtID, bool) {
	kw := p.advance()
	cond, ok := p.parseCondition(kw.Text)
	if !ok {
		return ast.NoStmtID, false
	}
	body := p.parseLoopBody()
	return p.arenas.Stmts.NewWhile(p.spanFrom(kw.Span), cond, body), true
}

// parseForStmt - for ( [init] ; [cond] ; [post] ) stmt.
func (p *Parser) parseForStmt() (ast.StmtID, bool) {
	kw := p.advance()
	open, ok := p.expect(token.LParen, diag.SynExpectLParen, "'(' after 'for'")
	if !ok {
		return ast.NoStmtID, false
	}

	var data ast.ForStmt
	if !p.at(token.Semicolon) {
		if token.IsTypeKeyword(p.lx.Peek().Kind) {
			typ := p.parseType()
			nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "identifier after type "+quoteName(typ.Kind.String()))
			if !ok {
				return ast.NoStmtID, false
			}
			data.Init, ok = p.parseDeclRest(typ, nameTok)
			if !ok {
				return ast.NoStmtID, false
			}
		} else {
			data.Init, ok = p.parseSimpleStmt()
			if !ok {
				return ast.NoStmtID, false
			}
		}
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "';' after for-loop initializer"); !ok {
		return ast.NoStmtID, false
	}

	if !p.at(token.Semicolon) {
		data.Cond, ok = p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "';' after for-loop condition"); !ok {
		return ast.NoStmtID, false
	}

	if !p.at(token.RParen) {
		data.Post, ok = p.parseSimpleStmt()
		if !ok {
			return ast.NoStmtID, false
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "')' to close for-loop header",
		withNote(open.Span, "header starts here")); !ok {
		return ast.NoStmtID, false
	}

	data.Body = p.parseLoopBody()
	return p.arenas.Stmts.NewFor(p.spanFrom(kw.Span), data), true
}

func (p *Parser) parseLoopBody() ast.StmtID {
	p.loopDepth++
	defer func() { p.loopDepth-- }()
	return p.parseStmt(false)
}

// parseReturnStmt - return [expr] ;
func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	kw := p.advance()
	value := ast.NoExprID
	if !p.atOr(token.Semicolon, token.EOF) && !isSyncKind(p.lx.Peek().Kind) {
		v, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		value = v
	}
	stmt := p.arenas.Stmts.NewReturn(p.spanFrom(kw.Span), value)
	ok := p.expectSemicolon()
	p.coverLast(stmt)
	return stmt, ok
}

// parseLoopControl - break/continue. Вне цикла это ошибка, но узел строится.
func (p *Parser) parseLoopControl() (ast.StmtID, bool) {
	kw := p.advance()
	if p.loopDepth == 0 {
		p.report(diag.SynBreakOutsideLoop, diag.SevError, kw.Span,
			fmt.Sprintf("'%s' outside of a loop", kw.Text))
	}
	var stmt ast.StmtID
	if kw.Kind == token.KwBreak {
		stmt = p.arenas.Stmts.NewBreak(kw.Span)
	} else {
		stmt = p.arenas.Stmts.NewContinue(kw.Span)
	}
	ok := p.expectSemicolon()
	p.coverLast(stmt)
	return stmt, ok
}
