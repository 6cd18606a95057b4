package ast

import (
	"oxygen/internal/source"
)

type ExprKind uint8

const (
	ExprBad ExprKind = iota // операнд, который не удалось разобрать
	ExprIdent
	ExprLit
	ExprCall
	ExprBinary
	ExprUnary
	ExprGroup // (inner)
)

var exprKindNames = [...]string{
	ExprBad:    "Bad",
	ExprIdent:  "Ident",
	ExprLit:    "Lit",
	ExprCall:   "Call",
	ExprBinary: "Binary",
	ExprUnary:  "Unary",
	ExprGroup:  "Group",
}

func (k ExprKind) String() string { return nameOf(exprKindNames[:], int(k), "Expr(?)") }

// Expr is the arena record for an expression; Payload points at the
// kind-specific data (IdentExpr, LitExpr, ...).
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// BinaryOp is a binary operator, grouped by precedence family.
type BinaryOp uint8

const (
	BinAdd BinaryOp = iota
	BinSub
	BinMul
	BinDiv
	BinMod

	BinAnd
	BinOr
	BinXor
	BinShl
	BinShr

	BinLogAnd
	BinLogOr

	BinEq
	BinNe
	BinLt
	BinLe
	BinGt
	BinGe
)

var binaryOpText = [...]string{
	BinAdd: "+", BinSub: "-", BinMul: "*", BinDiv: "/", BinMod: "%",
	BinAnd: "&", BinOr: "|", BinXor: "^", BinShl: "<<", BinShr: ">>",
	BinLogAnd: "&&", BinLogOr: "||",
	BinEq: "==", BinNe: "!=", BinLt: "<", BinLe: "<=", BinGt: ">", BinGe: ">=",
}

// String returns the operator as written in source.
func (op BinaryOp) String() string { return nameOf(binaryOpText[:], int(op), "?") }

type UnaryOp uint8

const (
	UnNeg   UnaryOp = iota // -x
	UnPlus                 // +x
	UnNot                  // !x
	UnCompl                // ~x
)

var unaryOpText = [...]string{UnNeg: "-", UnPlus: "+", UnNot: "!", UnCompl: "~"}

func (op UnaryOp) String() string { return nameOf(unaryOpText[:], int(op), "?") }

type LitKind uint8

const (
	LitInt LitKind = iota
	LitString
	LitBool
)

var litKindNames = [...]string{LitInt: "int", LitString: "string", LitBool: "bool"}

func (k LitKind) String() string { return nameOf(litKindNames[:], int(k), "?") }

func nameOf(names []string, i int, fallback string) string {
	if i < 0 || i >= len(names) {
		return fallback
	}
	return names[i]
}

type IdentExpr struct {
	Name source.StringID
}

// LitExpr keeps the raw source text and the decoded value; only the field
// matching Kind is set.
type LitExpr struct {
	Kind LitKind
	Raw  string
	Int  int64
	Str  string
	Bool bool
}

type BinaryExpr struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

type UnaryExpr struct {
	Op      UnaryOp
	Operand ExprID
}

type CallExpr struct {
	Callee ExprID
	Args   []ExprID
}

type GroupExpr struct {
	Inner ExprID
}
