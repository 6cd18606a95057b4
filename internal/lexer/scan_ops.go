package lexer

import (
	"oxygen/internal/token"
)

// twoByteOps is tried before singleByteOps so "<=" never lexes as "<" "=".
var twoByteOps = [...]struct {
	text string
	kind token.Kind
}{
	{"&&", token.AndAnd},
	{"||", token.OrOr},
	{"==", token.EqEq},
	{"!=", token.BangEq},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{"<<", token.Shl},
	{">>", token.Shr},
	{"+=", token.PlusAssign},
	{"-=", token.MinusAssign},
	{"*=", token.StarAssign},
	{"/=", token.SlashAssign},
	{"%=", token.PercentAssign},
}

var singleByteOps = map[byte]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'=': token.Assign,
	'!': token.Bang,
	'<': token.Lt,
	'>': token.Gt,
	'&': token.Amp,
	'|': token.Pipe,
	'^': token.Caret,
	'~': token.Tilde,
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	',': token.Comma,
	';': token.Semicolon,
}

// scanOperatorOrPunct takes the longest operator at the cursor.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	for _, op := range twoByteOps {
		if lx.cursor.Skip(op.text) {
			return lx.emit(op.kind, lx.cursor.SpanFrom(start))
		}
	}
	k, ok := singleByteOps[lx.cursor.Peek()]
	if !ok {
		return lx.scanUnknown()
	}
	lx.cursor.Bump()
	return lx.emit(k, lx.cursor.SpanFrom(start))
}
