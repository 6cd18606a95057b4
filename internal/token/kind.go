package token

// Kind is the lexical class of a token.
type Kind uint8

const (
	Invalid Kind = iota // malformed input, already reported
	EOF
	Ident

	// keywords; KwInt..KwFalse must stay contiguous
	KwInt
	KwBool
	KwString
	KwVoid
	KwIf
	KwElse
	KwWhile
	KwFor
	KwReturn
	KwBreak
	KwContinue
	KwTrue
	KwFalse

	IntLit
	StringLit

	Plus          // +
	Minus         // -
	Star          // *
	Slash         // /
	Percent       // %
	Assign        // =
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	EqEq          // ==
	Bang          // !
	BangEq        // !=
	Lt            // <
	LtEq          // <=
	Gt            // >
	GtEq          // >=
	Shl           // <<
	Shr           // >>
	Amp           // &
	Pipe          // |
	Caret         // ^
	Tilde         // ~
	AndAnd        // &&
	OrOr          // ||

	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	Comma     // ,
	Semicolon // ;

	kindCount
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	KwInt:         "KwInt",
	KwBool:        "KwBool",
	KwString:      "KwString",
	KwVoid:        "KwVoid",
	KwIf:          "KwIf",
	KwElse:        "KwElse",
	KwWhile:       "KwWhile",
	KwFor:         "KwFor",
	KwReturn:      "KwReturn",
	KwBreak:       "KwBreak",
	KwContinue:    "KwContinue",
	KwTrue:        "KwTrue",
	KwFalse:       "KwFalse",
	IntLit:        "IntLit",
	StringLit:     "StringLit",
	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	Assign:        "Assign",
	PlusAssign:    "PlusAssign",
	MinusAssign:   "MinusAssign",
	StarAssign:    "StarAssign",
	SlashAssign:   "SlashAssign",
	PercentAssign: "PercentAssign",
	EqEq:          "EqEq",
	Bang:          "Bang",
	BangEq:        "BangEq",
	Lt:            "Lt",
	LtEq:          "LtEq",
	Gt:            "Gt",
	GtEq:          "GtEq",
	Shl:           "Shl",
	Shr:           "Shr",
	Amp:           "Amp",
	Pipe:          "Pipe",
	Caret:         "Caret",
	Tilde:         "Tilde",
	AndAnd:        "AndAnd",
	OrOr:          "OrOr",
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	Comma:         "Comma",
	Semicolon:     "Semicolon",
}

var kindSymbols = [...]string{
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	Assign:        "=",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	EqEq:          "==",
	Bang:          "!",
	BangEq:        "!=",
	Lt:            "<",
	LtEq:          "<=",
	Gt:            ">",
	GtEq:          ">=",
	Shl:           "<<",
	Shr:           ">>",
	Amp:           "&",
	Pipe:          "|",
	Caret:         "^",
	Tilde:         "~",
	AndAnd:        "&&",
	OrOr:          "||",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	Comma:         ",",
	Semicolon:     ";",
	kindCount:     "",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// Symbol returns the fixed spelling of an operator, punctuation or keyword
// kind, or "" for kinds whose text varies (identifiers, literals).
func (k Kind) Symbol() string {
	if k >= KwInt && k <= KwFalse {
		for text, kw := range keywords {
			if kw == k {
				return text
			}
		}
	}
	if k < kindCount {
		return kindSymbols[k]
	}
	return ""
}

// Category is the coarse token classification exposed to tools.
type Category uint8

const (
	CatInvalid Category = iota
	CatEOF
	CatIdent
	CatKeyword
	CatIntLit
	CatStringLit
	CatOperator
	CatPunct
)

var categoryNames = [...]string{
	CatInvalid:   "invalid",
	CatEOF:       "eof",
	CatIdent:     "identifier",
	CatKeyword:   "keyword",
	CatIntLit:    "integer",
	CatStringLit: "string",
	CatOperator:  "operator",
	CatPunct:     "punctuation",
}

func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return categoryNames[CatInvalid]
}

// Category maps k onto its coarse classification.
func (k Kind) Category() Category {
	switch {
	case k == EOF:
		return CatEOF
	case k == Ident:
		return CatIdent
	case k >= KwInt && k <= KwFalse:
		return CatKeyword
	case k == IntLit:
		return CatIntLit
	case k == StringLit:
		return CatStringLit
	case k >= Plus && k <= OrOr:
		return CatOperator
	case k >= LParen && k <= Semicolon:
		return CatPunct
	default:
		return CatInvalid
	}
}
