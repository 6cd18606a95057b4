package lexer

import (
	"oxygen/internal/diag"
	"oxygen/internal/token"
)

// collectLeadingTrivia fills hold with the trivia before the next
// significant token. Runs of ' ', '\t' and lone '\r' become one Space;
// runs of "\n" / "\r\n" become one Newline. Block comments do not nest.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = nil
	for {
		start := lx.cursor.Mark()
		kind, ok := lx.scanTrivia()
		if !ok {
			return
		}
		sp := lx.cursor.SpanFrom(start)
		lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])})
	}
}

// scanTrivia consumes one trivia run; false (cursor untouched) when the
// next byte starts a token.
func (lx *Lexer) scanTrivia() (token.TriviaKind, bool) {
	switch {
	case lx.cursor.EOF():
		return 0, false
	case lx.atSpace():
		for lx.atSpace() {
			lx.cursor.Bump()
		}
		return token.TriviaSpace, true
	case lx.atNewline():
		for lx.atNewline() {
			if !lx.cursor.Eat('\n') {
				lx.cursor.Advance(2)
			}
		}
		return token.TriviaNewline, true
	case lx.cursor.HasPrefix("//"):
		for !lx.cursor.EOF() && !lx.atNewline() {
			lx.cursor.Bump()
		}
		return token.TriviaLineComment, true
	case lx.cursor.HasPrefix("/*"):
		lx.scanBlockComment()
		return token.TriviaBlockComment, true
	}
	return 0, false
}

func (lx *Lexer) scanBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.Advance(2)
	for !lx.cursor.Skip("*/") {
		if lx.cursor.EOF() {
			lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
			return
		}
		lx.cursor.Bump()
	}
}

// atSpace: '\r' считается пробелом, только если за ним нет '\n'.
func (lx *Lexer) atSpace() bool {
	switch lx.cursor.Peek() {
	case ' ', '\t':
		return true
	case '\r':
		return lx.cursor.PeekAt(1) != '\n'
	}
	return false
}

func (lx *Lexer) atNewline() bool {
	return lx.cursor.Peek() == '\n' || lx.cursor.HasPrefix("\r\n")
}
