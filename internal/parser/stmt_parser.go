package parser

import (
	"fmt"

	"oxygen/internal/ast"
	"oxygen/internal/diag"
	"oxygen/internal/source"
	"oxygen/internal/token"
)

// parseStmt разбирает один оператор. Всегда возвращает узел: если разбор
// не удался, после восстановления строится StmtBad над пропущенным текстом.
func (p *Parser) parseStmt(topLevel bool) ast.StmtID {
	p.beginStatement()
	start, before := p.lx.Peek().Span, p.consumed
	// Invalid-токены в начале оператора уже описаны лексером
	for p.at(token.Invalid) {
		p.advance()
	}

	var (
		stmt ast.StmtID
		ok   bool
	)
	switch tok := p.lx.Peek(); {
	case token.IsTypeKeyword(tok.Kind):
		stmt, ok = p.parseDeclOrFn(topLevel)
	case tok.Kind == token.LBrace:
		stmt, ok = p.parseBlock(), true
	case tok.Kind == token.KwIf:
		stmt, ok = p.parseIfStmt()
	case tok.Kind == token.KwWhile:
		stmt, ok = p.parseWhileStmt()
	case tok.Kind == token.KwFor:
		stmt, ok = p.parseForStmt()
	case tok.Kind == token.KwReturn:
		stmt, ok = p.parseReturnStmt()
	case tok.Kind == token.KwBreak, tok.Kind == token.KwContinue:
		stmt, ok = p.parseLoopControl()
	default:
		stmt, ok = p.parseSimpleStmt()
		if ok {
			ok = p.expectSemicolon()
			p.coverLast(stmt)
		}
	}

	if !ok {
		p.recoverStatement()
		return p.arenas.Stmts.NewBad(p.badSpan(start, before))
	}
	return stmt
}

// badSpan - span заглушки. Если оператор не съел ни одного токена, она
// пустая и стоит сразу за последним съеденным токеном, внутри span родителя.
func (p *Parser) badSpan(start source.Span, before uint64) source.Span {
	if p.consumed == before {
		return p.lastSpan.After()
	}
	return p.spanFrom(start)
}

// parseBlock - '{' { stmt } '}'. Незакрытый блок на EOF репортится, но узел остаётся.
func (p *Parser) parseBlock() ast.StmtID {
	open := p.advance()
	var stmts []ast.StmtID

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.consumed
		p.state = stateInBlock
		if stmt := p.parseStmt(false); stmt.IsValid() {
			stmts = append(stmts, stmt)
		}
		if p.consumed == before {
			p.advance()
		}
	}

	if p.at(token.RBrace) {
		p.advance()
	} else {
		p.muted = false
		p.errExpected(diag.SynUnclosedBrace, "'}' to close block", withNote(open.Span, "block starts here"))
	}
	return p.arenas.Stmts.NewBlock(p.spanFrom(open.Span), stmts)
}

// parseDeclOrFn - общий префикс `type IDENT`; '(' после имени означает функцию.
func (p *Parser) parseDeclOrFn(topLevel bool) (ast.StmtID, bool) {
	typ := p.parseType()
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "identifier after type "+quoteName(typ.Kind.String()))
	if !ok {
		return ast.NoStmtID, false
	}
	if p.at(token.LParen) {
		return p.parseFnDecl(typ, nameTok, topLevel)
	}

	stmt, ok := p.parseDeclRest(typ, nameTok)
	if !ok {
		return ast.NoStmtID, false
	}
	ok = p.expectSemicolon()
	p.coverLast(stmt)
	return stmt, ok
}

// parseDeclRest - `[= expr]` после `type IDENT`, без ';' (нужно для заголовка for).
func (p *Parser) parseDeclRest(typ ast.TypeRef, nameTok token.Token) (ast.StmtID, bool) {
	if typ.Kind == ast.TypeVoid {
		p.report(diag.SynVoidNotAllowed, diag.SevError, typ.Span,
			fmt.Sprintf("variable %s cannot have type 'void'", quoteName(nameTok.Text)))
	}
	value := ast.NoExprID
	if p.at(token.Assign) {
		p.advance()
		v, ok := p.parseExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		value = v
	}
	return p.arenas.Stmts.NewDecl(p.spanFrom(typ.Span), ast.DeclStmt{
		Type:     typ,
		Name:     p.arenas.StringsInterner.Intern(nameTok.Text),
		NameSpan: nameTok.Span,
		Value:    value,
	}), true
}

// parseType съедает ключевое слово типа; вызывается только когда оно под курсором.
func (p *Parser) parseType() ast.TypeRef {
	tok := p.advance()
	kind, _ := ast.TypeFromToken(tok.Kind)
	return ast.TypeRef{Kind: kind, Span: tok.Span}
}

// parseSimpleStmt - `expr [assignOp expr]` без ';'.
func (p *Parser) parseSimpleStmt() (ast.StmtID, bool) {
	start := p.lx.Peek().Span
	target, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	op, isAssign := assignOpFor(p.lx.Peek().Kind)
	if !isAssign {
		return p.arenas.Stmts.NewExpr(p.spanFrom(start), target), true
	}
	opTok := p.advance()

	if e := p.arenas.Exprs.Get(target); e != nil && e.Kind != ast.ExprIdent && e.Kind != ast.ExprBad {
		p.report(diag.SynInvalidAssignTarget, diag.SevError, e.Span,
			fmt.Sprintf("cannot assign to %s expression with '%s'", e.Kind, opTok.Text))
	}
	value, ok := p.parseExpr()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewAssign(p.spanFrom(start), op, target, value), true
}

// expectSemicolon требует ';'. Если его нет, но следующий токен начинается
// с новой строки, является точкой синхронизации или может начать новый
// оператор, ошибка репортится, а оператор сохраняется без пропуска токенов.
func (p *Parser) expectSemicolon() bool {
	// мусор перед ';' уже описан лексером
	for p.at(token.Invalid) {
		p.advance()
	}
	if p.at(token.Semicolon) {
		p.advance()
		return true
	}
	at := p.lastSpan.After()
	p.errExpectedAt(at, diag.SynExpectSemicolon, "';'", withInsert("insert ';'", at, ";"))

	tok := p.lx.Peek()
	return tok.Kind == token.EOF || isSyncKind(tok.Kind) || startsExpr(tok.Kind) || startsNewLine(tok)
}
