package lexer

import (
	"unicode"
	"unicode/utf8"
)

const utf8RuneSelf = utf8.RuneSelf

// peekRune decodes the rune under the cursor; a bad byte yields (RuneError, 1).
func (lx *Lexer) peekRune() (rune, int) {
	switch b := lx.cursor.Peek(); {
	case lx.cursor.EOF():
		return utf8.RuneError, 0
	case b < utf8RuneSelf:
		return rune(b), 1
	}
	return utf8.DecodeRune(lx.cursor.Rest())
}

// bumpRune steps over the rune under the cursor.
func (lx *Lexer) bumpRune() {
	_, n := lx.peekRune()
	for range n {
		lx.cursor.Bump()
	}
}

// ASCII fast path; the rune variants handle the rest of Unicode.
func isIdentStartByte(b byte) bool {
	return b == '_' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func isIdentContinueByte(b byte) bool { return isIdentStartByte(b) || isDec(b) }

func isIdentStartRune(r rune) bool { return r == '_' || unicode.IsLetter(r) }

func isIdentContinueRune(r rune) bool {
	return isIdentStartRune(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return '0' <= b && b <= '9' }

// numberRunByte - всё, что жадно забирает сканер числа.
func numberRunByte(b byte) bool { return b == '.' || isIdentContinueByte(b) }
