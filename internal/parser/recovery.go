package parser

import (
	"oxygen/internal/token"
	"oxygen/internal/trace"
)

// isSyncKind - токены, на которых останавливается panic-mode.
func isSyncKind(k token.Kind) bool {
	switch k {
	case token.KwInt, token.KwBool, token.KwString, token.KwVoid,
		token.KwIf, token.KwWhile, token.KwFor, token.KwReturn,
		token.KwBreak, token.KwContinue,
		token.LBrace, token.RBrace:
		return true
	default:
		return false
	}
}

// startsExpr - токен может начинать выражение (а значит и простой оператор).
func startsExpr(k token.Kind) bool {
	switch k {
	case token.Ident, token.IntLit, token.StringLit, token.KwTrue, token.KwFalse, token.LParen:
		return true
	}
	_, unary := unaryOpFor(k)
	return unary
}

// recoverStatement пропускает токены до точки синхронизации.
// ';' съедается, остальные точки остаются для следующего оператора.
func (p *Parser) recoverStatement() {
	prev := p.state
	p.state = stateRecovering
	defer func() { p.state = prev }()

	skipped := 0
	for {
		if p.at(token.EOF) || isSyncKind(p.lx.Peek().Kind) {
			break
		}
		tok := p.advance()
		if tok.Kind == token.Semicolon {
			break
		}
		skipped++
	}

	p.span.Point(trace.ScopeNode, "recover", p.lastSpan.String(), trace.Int("skipped", skipped), trace.String("state", p.state.String()))
}
