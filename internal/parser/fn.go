package parser

import (
	"fmt"

	"oxygen/internal/ast"
	"oxygen/internal/diag"
	"oxygen/internal/token"
)

// parseFnDecl - `type IDENT ( params ) block`; тип и имя уже съедены.
// Функции допустимы только на верхнем уровне, но узел строится всегда.
func (p *Parser) parseFnDecl(ret ast.TypeRef, nameTok token.Token, topLevel bool) (ast.StmtID, bool) {
	if !topLevel {
		p.report(diag.SynFnNotAllowed, diag.SevError, nameTok.Span,
			fmt.Sprintf("function %s must be declared at program level", quoteName(nameTok.Text)))
	}

	open := p.advance()
	var params []ast.FnParam
	if !p.at(token.RParen) {
		for {
			param, ok := p.parseFnParam()
			if !ok {
				return ast.NoStmtID, false
			}
			params = append(params, param)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "')' to close parameter list",
		withNote(open.Span, "parameter list starts here")); !ok {
		return ast.NoStmtID, false
	}

	if !p.at(token.LBrace) {
		p.errExpected(diag.SynExpectBlock, "'{' to start function body")
		return ast.NoStmtID, false
	}
	// break/continue не пересекают границу функции
	savedLoop := p.loopDepth
	p.loopDepth = 0
	body := p.parseBlock()
	p.loopDepth = savedLoop

	stmt := p.arenas.Stmts.NewFn(p.spanFrom(ret.Span), ast.FnStmt{
		ReturnType: ret,
		Name:       p.arenas.StringsInterner.Intern(nameTok.Text),
		NameSpan:   nameTok.Span,
		Params:     params,
		Body:       body,
	})

	if ret.Kind != ast.TypeVoid && !p.alwaysReturns(body) {
		p.report(diag.SynMissingReturn, diag.SevWarning, nameTok.Span,
			fmt.Sprintf("function %s returns %s but its body does not end in 'return'", quoteName(nameTok.Text), ret.Kind))
	}
	return stmt, true
}

func (p *Parser) parseFnParam() (ast.FnParam, bool) {
	if !token.IsTypeKeyword(p.lx.Peek().Kind) {
		p.errExpected(diag.SynExpectType, "parameter type")
		return ast.FnParam{}, false
	}
	typ := p.parseType()
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "parameter name")
	if !ok {
		return ast.FnParam{}, false
	}
	if typ.Kind == ast.TypeVoid {
		p.report(diag.SynVoidNotAllowed, diag.SevError, typ.Span,
			fmt.Sprintf("parameter %s cannot have type 'void'", quoteName(nameTok.Text)))
	}
	return ast.FnParam{
		Type: typ,
		Name: p.arenas.StringsInterner.Intern(nameTok.Text),
		Span: typ.Span.Cover(nameTok.Span),
	}, true
}

// alwaysReturns - тело заканчивается return; if/else годится, если обе ветки возвращают.
// StmtBad считается возвращающим, чтобы не шуметь поверх синтаксической ошибки.
func (p *Parser) alwaysReturns(id ast.StmtID) bool {
	st := p.arenas.Stmts.Get(id)
	if st == nil {
		return false
	}
	switch st.Kind {
	case ast.StmtReturn, ast.StmtBad:
		return true
	case ast.StmtBlock:
		block := p.arenas.Stmts.Block(id)
		if block == nil || len(block.Stmts) == 0 {
			return false
		}
		return p.alwaysReturns(block.Stmts[len(block.Stmts)-1])
	case ast.StmtIf:
		ifStmt := p.arenas.Stmts.If(id)
		return ifStmt != nil && ifStmt.Else.IsValid() &&
			p.alwaysReturns(ifStmt.Then) && p.alwaysReturns(ifStmt.Else)
	default:
		return false
	}
}
