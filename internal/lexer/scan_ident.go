package lexer

import (
	"fmt"

	"oxygen/internal/diag"
	"oxygen/internal/token"
)

// scanIdentOrKeyword сканирует [Ident] и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые (только lowercase). Token.Text - ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, _ := lx.peekRune()
	if r < utf8RuneSelf {
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			return lx.scanUnknown()
		}
		lx.bumpRune()
	}
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r2, _ := lx.peekRune()
		if !isIdentContinueRune(r2) {
			break
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	tok := lx.emit(token.Ident, sp)
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
	}
	return tok
}

// scanUnknown consumes exactly one rune (one byte if the input is not valid
// UTF-8) and reports it.
func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	r, _ := lx.peekRune()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	msg := fmt.Sprintf("unknown character %q", r)
	if sp.Len() == 1 && lx.file.Content[sp.Start] >= utf8RuneSelf {
		msg = fmt.Sprintf("invalid UTF-8 byte 0x%02x", lx.file.Content[sp.Start])
	}
	lx.errLex(diag.LexUnknownChar, sp, msg)
	return lx.emit(token.Invalid, sp)
}
