package token

var keywords = map[string]Kind{
	"int":      KwInt,
	"bool":     KwBool,
	"string":   KwString,
	"void":     KwVoid,
	"if":       KwIf,
	"else":     KwElse,
	"while":    KwWhile,
	"for":      KwFor,
	"return":   KwReturn,
	"break":    KwBreak,
	"continue": KwContinue,
	"true":     KwTrue,
	"false":    KwFalse,
}

// LookupKeyword reports the keyword kind for ident. Keywords are
// case-sensitive: only the lowercase spelling is recognised.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
