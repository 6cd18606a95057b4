package lexer

import (
	"fmt"

	"oxygen/internal/diag"
	"oxygen/internal/source"
	"oxygen/internal/token"
)

// maxTokenLength bounds a single lexeme; a longer one becomes an Invalid
// token and scanning goes on after it.
const maxTokenLength = 64 * 1024

// Lexer turns one file into significant tokens, attaching comments and
// whitespace to the token that follows them.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options

	ahead    token.Token
	hasAhead bool
	hold     []token.Trivia // trivia ждущие своего токена
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{file: file, cursor: NewCursor(file), opts: opts}
}

func (lx *Lexer) File() *source.File { return lx.file }

// Next returns the next significant token with its leading trivia.
// Once input is exhausted it keeps returning EOF; trailing trivia ride on
// the first EOF only.
func (lx *Lexer) Next() token.Token {
	if lx.hasAhead {
		lx.hasAhead = false
		return lx.ahead
	}
	lx.collectLeadingTrivia()
	tok := lx.scanToken()
	tok.Leading, lx.hold = lx.hold, nil
	return tok
}

// Peek returns the token Next would return without consuming it.
func (lx *Lexer) Peek() token.Token {
	if !lx.hasAhead {
		lx.ahead = lx.Next()
		lx.hasAhead = true
	}
	return lx.ahead
}

func (lx *Lexer) scanToken() token.Token {
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}
	start := lx.cursor.Mark()
	var tok token.Token
	switch ch := lx.cursor.Peek(); {
	case ch == '"':
		tok = lx.scanString()
	case isDec(ch):
		tok = lx.scanNumber()
	case ch >= utf8RuneSelf || isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()
	default:
		tok = lx.scanOperatorOrPunct()
	}
	if tok.Kind != token.Invalid && tok.Span.Len() > maxTokenLength {
		return lx.tooLong(start)
	}
	return tok
}

// EmptySpan returns a zero-length span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	return lx.cursor.SpanFrom(lx.cursor.Mark())
}

// tooLong reports the oversized lexeme that ends at the cursor.
func (lx *Lexer) tooLong(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexTokenTooLong, sp, fmt.Sprintf("token exceeds %d bytes", maxTokenLength))
	return lx.emit(token.Invalid, sp)
}

func (lx *Lexer) emit(k token.Kind, sp source.Span) token.Token {
	return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
