package parser

import (
	"context"
	"fmt"
	"slices"

	"fortio.org/safecast"

	"oxygen/internal/ast"
	"oxygen/internal/diag"
	"oxygen/internal/lexer"
	"oxygen/internal/source"
	"oxygen/internal/token"
	"oxygen/internal/trace"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result of ParseFile. Bag is the bag behind Options.Reporter as resolved
// by diag.BagOf: set for a BagReporter (possibly wrapped in a
// UniqueReporter), nil for any other reporter or when there is none.
type Result struct {
	Program ast.ProgramID
	Bag     *diag.Bag
}

type parseState uint8

const (
	stateAtStatementStart parseState = iota
	stateInExpression
	stateInBlock
	stateRecovering
)

func (s parseState) String() string {
	switch s {
	case stateAtStatementStart:
		return "statement-start"
	case stateInExpression:
		return "expression"
	case stateInBlock:
		return "block"
	case stateRecovering:
		return "recovering"
	default:
		return "unknown"
	}
}

// Parser - состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer    // поток токенов (Peek/Next)
	arenas   *ast.Builder    // построитель аренных узлов
	prog     ast.ProgramID   // корень текущего файла
	fs       *source.FileSet // нужен только для путей в трейсе
	opts     Options
	span     *trace.Span // parse span; точки recover/diag вешаются на него
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики

	state       parseState
	muted       bool // в текущем операторе уже была синтаксическая ошибка
	lastInvalid bool // последний съеденный токен был Invalid
	loopDepth   int
	consumed    uint64 // счётчик съеденных токенов, для защиты от зацикливания
}

// ParseFile - входная точка для разбора одного файла.
// Требует уже созданный lexer (на основе source.File).
func ParseFile(
	ctx context.Context,
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	file := lx.File()
	span := trace.Begin(ctx, trace.ScopePass, "parse", file.Path)

	p := Parser{
		lx:       lx,
		arenas:   arenas,
		prog:     arenas.NewProgram(wholeFile(file)),
		fs:       fs,
		opts:     opts,
		span:     span,
		lastSpan: lx.EmptySpan(),
	}

	p.parseProgram()

	span.Set(
		trace.Int("stmts", len(arenas.Programs.Get(p.prog).Stmts)),
		trace.Int("errors", int(p.opts.CurrentErrors)), //nolint:gosec // ограничено MaxErrors
	).End()

	return Result{
		Program: p.prog,
		Bag:     diag.BagOf(opts.Reporter),
	}
}

// wholeFile - span программы покрывает весь буфер, включая хвостовые trivia.
func wholeFile(file *source.File) source.Span {
	end, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		panic(fmt.Errorf("file %s too large: %w", file.Path, err))
	}
	return source.Span{File: file.ID, Start: 0, End: end, Line: 1, Col: 1}
}

func (p *Parser) parseProgram() {
	for !p.at(token.EOF) {
		before := p.consumed
		if p.at(token.RBrace) {
			p.beginStatement()
			tok := p.advance()
			p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span, "unexpected '}' outside of a block")
			continue
		}
		stmt := p.parseStmt(true)
		if stmt.IsValid() {
			p.arenas.PushStmt(p.prog, stmt)
		}
		if p.consumed == before {
			p.advance()
		}
	}
	// EOF несёт хвостовые trivia; съедаем его, чтобы лексер дошёл до конца
	p.lx.Next()
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// IsError reports whether any syntax error was recorded.
func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}
