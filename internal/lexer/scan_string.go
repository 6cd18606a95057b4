package lexer

import (
	"oxygen/internal/diag"
	"oxygen/internal/token"
)

// scanString: "..." с escape \n \t \r \0 \\ \" \'.
// Неизвестный escape - LexBadEscape (один раз на литерал), токен Invalid.
// Перевод строки или EOF до закрывающей кавычки - LexUnterminatedString;
// перевод строки не поглощается.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	badEscape := false
	var escapeMark Mark
	for !lx.cursor.EOF() && !lx.atNewline() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			if badEscape {
				lx.reportBadEscape(escapeMark)
				return lx.emit(token.Invalid, sp)
			}
			return lx.emit(token.StringLit, sp)
		}
		if b == '\\' {
			m := lx.cursor.Mark()
			lx.cursor.Bump()
			if lx.cursor.EOF() || lx.atNewline() {
				break
			}
			if !isEscapeByte(lx.cursor.Peek()) && !badEscape {
				badEscape = true
				escapeMark = m
			}
			lx.bumpRune()
			continue
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	msg := "unterminated string literal"
	if !lx.cursor.EOF() {
		msg = "newline in string literal"
	}
	lx.errLex(diag.LexUnterminatedString, sp, msg)
	return lx.emit(token.Invalid, sp)
}

func (lx *Lexer) reportBadEscape(m Mark) {
	cur := lx.cursor.Mark()
	lx.cursor.Reset(m)
	lx.cursor.Bump() // '\'
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(m)
	lx.cursor.Reset(cur)
	lx.errLex(diag.LexBadEscape, sp, "unknown escape sequence '"+string(lx.file.Content[sp.Start:sp.End])+"'")
}

func isEscapeByte(b byte) bool {
	switch b {
	case 'n', 't', 'r', '0', '\\', '"', '\'':
		return true
	}
	return false
}

// UnquoteString decodes the body of a well-formed string literal token text
// (including quotes). Unknown escapes are kept verbatim.
func UnquoteString(text string) string {
	if len(text) < 2 {
		return ""
	}
	body := text[1 : len(text)-1]
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			out = append(out, c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case '0':
			out = append(out, 0)
		default:
			out = append(out, body[i])
		}
	}
	return string(out)
}
