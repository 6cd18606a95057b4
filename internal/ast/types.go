package ast

import (
	"oxygen/internal/source"
	"oxygen/internal/token"
)

// TypeKind enumerates the builtin types; they are all keywords.
type TypeKind uint8

const (
	TypeInvalid TypeKind = iota
	TypeInt
	TypeBool
	TypeString
	TypeVoid
)

func (k TypeKind) String() string {
	switch k {
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeVoid:
		return "void"
	default:
		return "<invalid>"
	}
}

// TypeFromToken maps a type keyword onto its TypeKind.
func TypeFromToken(k token.Kind) (TypeKind, bool) {
	switch k {
	case token.KwInt:
		return TypeInt, true
	case token.KwBool:
		return TypeBool, true
	case token.KwString:
		return TypeString, true
	case token.KwVoid:
		return TypeVoid, true
	default:
		return TypeInvalid, false
	}
}

// TypeRef is a written type together with where it was written.
type TypeRef struct {
	Kind TypeKind
	Span source.Span
}
