package parser

import (
	"fmt"
	"strings"

	"oxygen/internal/ast"
	"oxygen/internal/diag"
	"oxygen/internal/source"
	"oxygen/internal/token"
	"oxygen/internal/trace"
)

// advance - съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
		p.consumed++
	}
	p.lastInvalid = tok.Kind == token.Invalid
	return tok
}

// beginStatement сбрасывает ограничение "одна ошибка на оператор".
func (p *Parser) beginStatement() {
	p.state = stateAtStatementStart
	p.muted = false
}

// spanFrom - от начала start до конца последнего съеденного токена.
// Если ничего не съели, span пустой и стоит в start.
func (p *Parser) spanFrom(start source.Span) source.Span {
	sp := start
	if p.lastSpan.File == sp.File && p.lastSpan.End > sp.Start {
		sp.End = p.lastSpan.End
	} else {
		sp.End = sp.Start
	}
	return sp
}

// coverLast растягивает span оператора до последнего съеденного токена (обычно ';').
func (p *Parser) coverLast(id ast.StmtID) {
	if st := p.arenas.Stmts.Get(id); st != nil {
		st.Span = p.spanFrom(st.Span)
	}
}

func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	if e := p.arenas.Exprs.Get(id); e != nil {
		return e.Span
	}
	return p.lastSpan
}

// diagSpan - span для "got X": у EOF это позиция сразу после последнего токена.
func (p *Parser) diagSpan(tok token.Token) source.Span {
	if tok.Kind == token.EOF && p.lastSpan.End > 0 {
		return p.lastSpan.After()
	}
	return tok.Span
}

// expect - ожидаем конкретный токен. Если нет - репортим и возвращаем (zero,false).
func (p *Parser) expect(k token.Kind, code diag.Code, what string, opts ...func(*diag.ReportBuilder)) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.errExpected(code, what, opts...)
	return token.Token{}, false
}

func (p *Parser) errExpected(code diag.Code, what string, opts ...func(*diag.ReportBuilder)) {
	p.errExpectedAt(p.diagSpan(p.lx.Peek()), code, what, opts...)
}

// errExpectedAt репортит "expected X, got Y". Если Y - следствие лексической
// ошибки, лексер уже отчитался, и парсер молчит до конца оператора.
func (p *Parser) errExpectedAt(sp source.Span, code diag.Code, what string, opts ...func(*diag.ReportBuilder)) {
	tok := p.lx.Peek()
	if tok.Kind == token.Invalid || p.lastInvalid || brokenTrivia(tok) {
		p.muted = true
		return
	}
	p.report(code, diag.SevError, sp, fmt.Sprintf("expected %s, got %s", what, tok.Describe()), opts...)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, opts ...func(*diag.ReportBuilder)) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		if p.muted || p.opts.Enough() {
			return false
		}
		p.opts.CurrentErrors++
		p.muted = true
	}
	b := diag.Build(p.opts.Reporter, sev, code, sp, msg)
	for _, opt := range opts {
		opt(b)
	}
	b.Emit()
	p.span.Error("diag", code.ID(), trace.String("state", p.state.String()), trace.String("at", sp.String()))
	return true
}

func withNote(sp source.Span, msg string) func(*diag.ReportBuilder) {
	return func(b *diag.ReportBuilder) { b.Note(sp, msg) }
}

func withInsert(title string, at source.Span, text string) func(*diag.ReportBuilder) {
	return func(b *diag.ReportBuilder) { b.Fix(diag.InsertFix(title, at, text)) }
}

// startsNewLine - между предыдущим токеном и tok есть перевод строки.
func startsNewLine(tok token.Token) bool {
	for _, tr := range tok.Leading {
		switch tr.Kind {
		case token.TriviaNewline:
			return true
		case token.TriviaBlockComment:
			if strings.Contains(tr.Text, "\n") {
				return true
			}
		}
	}
	return false
}

// brokenTrivia - перед tok стоит незакрытый блочный комментарий (о нём уже сообщил лексер).
func brokenTrivia(tok token.Token) bool {
	n := len(tok.Leading)
	if n == 0 {
		return false
	}
	last := tok.Leading[n-1]
	return last.Kind == token.TriviaBlockComment &&
		(len(last.Text) < 4 || !strings.HasSuffix(last.Text, "*/"))
}

func quoteName(name string) string {
	return "'" + name + "'"
}
