package token

import (
	"oxygen/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// Category returns the coarse classification of the token.
func (t Token) Category() Category { return t.Kind.Category() }

// IsLiteral reports whether the token is an integer, boolean, or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	c := t.Kind.Category()
	return c == CatOperator || c == CatPunct
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.Category() == CatKeyword }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsTypeKeyword reports whether k names a builtin type.
func IsTypeKeyword(k Kind) bool {
	switch k {
	case KwInt, KwBool, KwString, KwVoid:
		return true
	default:
		return false
	}
}

// Describe renders the token for "got X" parts of diagnostics.
func (t Token) Describe() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case Invalid:
		if t.Text == "" {
			return "invalid token"
		}
	}
	return "'" + t.Text + "'"
}
