package lexer

import (
	"oxygen/internal/diag"
	"oxygen/internal/token"
)

// scanNumber жадно забирает прогон [0-9A-Za-z_.] и затем проверяет форму:
//
//	decimal  [0-9][0-9_]*          (без ведущих нулей, кроме самого "0")
//	hex      0x[0-9a-fA-F_]+
//	binary   0b[01_]+
//	octal    0o[0-7_]+
//
// '_' допускается только между цифрами (или сразу после префикса).
// Всё остальное - один LexBadNumber и Invalid-токен на весь прогон.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for numberRunByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	tok := lx.emit(token.IntLit, sp)
	if msg := validateIntLiteral(tok.Text); msg != "" {
		lx.errLex(diag.LexBadNumber, sp, msg+" in '"+tok.Text+"'")
		tok.Kind = token.Invalid
	}
	return tok
}

// validateIntLiteral returns "" for a well-formed literal, otherwise a short
// description of the first problem.
func validateIntLiteral(text string) string {
	digits := text
	isDigit := isDec
	prefixed := false
	if len(text) >= 2 && text[0] == '0' {
		switch text[1] {
		case 'x', 'X':
			isDigit = isHexDigit
			prefixed = true
		case 'b', 'B':
			isDigit = func(b byte) bool { return b == '0' || b == '1' }
			prefixed = true
		case 'o', 'O':
			isDigit = func(b byte) bool { return b >= '0' && b <= '7' }
			prefixed = true
		}
	}
	if prefixed {
		digits = text[2:]
		if digits == "" {
			return "missing digits after base prefix"
		}
	}

	prevDigit := prefixed // "0x_1" допустимо, как в Go
	sawDigit := false
	for i := 0; i < len(digits); i++ {
		b := digits[i]
		switch {
		case b == '_':
			if !prevDigit {
				return "misplaced '_'"
			}
			prevDigit = false
		case b == '.':
			return "unexpected '.' (only integer literals are supported)"
		case isDigit(b):
			prevDigit = true
			sawDigit = true
		default:
			return "invalid digit '" + string(b) + "'"
		}
	}
	if !sawDigit {
		return "missing digits"
	}
	if !prevDigit {
		return "trailing '_'"
	}
	if !prefixed && len(digits) > 1 && digits[0] == '0' {
		return "leading zero in decimal literal"
	}
	return ""
}

func isHexDigit(b byte) bool {
	return isDec(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
