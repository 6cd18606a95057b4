package ast

import (
	"oxygen/internal/source"
)

type StmtKind uint8

const (
	StmtBad StmtKind = iota
	StmtBlock
	StmtDecl
	StmtFn
	StmtAssign
	StmtIf
	StmtWhile
	StmtFor
	StmtReturn
	StmtBreak
	StmtContinue
	StmtExpr
)

var stmtKindNames = [...]string{
	StmtBad:      "Bad",
	StmtBlock:    "Block",
	StmtDecl:     "Decl",
	StmtFn:       "Fn",
	StmtAssign:   "Assign",
	StmtIf:       "If",
	StmtWhile:    "While",
	StmtFor:      "For",
	StmtReturn:   "Return",
	StmtBreak:    "Break",
	StmtContinue: "Continue",
	StmtExpr:     "Expr",
}

func (k StmtKind) String() string { return nameOf(stmtKindNames[:], int(k), "Stmt(?)") }

type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type BlockStmt struct {
	Stmts []StmtID
}

// DeclStmt is `type name [= value];`.
type DeclStmt struct {
	Type     TypeRef
	Name     source.StringID
	NameSpan source.Span
	Value    ExprID
}

type FnParam struct {
	Type TypeRef
	Name source.StringID
	Span source.Span
}

type FnStmt struct {
	ReturnType TypeRef
	Name       source.StringID
	NameSpan   source.Span
	Params     []FnParam
	Body       StmtID
}

// AssignOp enumerates `=` and the compound assignments.
type AssignOp uint8

const (
	AssignPlain AssignOp = iota // =
	AssignAdd                   // +=
	AssignSub                   // -=
	AssignMul                   // *=
	AssignDiv                   // /=
	AssignMod                   // %=
)

var assignOpText = [...]string{
	AssignPlain: "=", AssignAdd: "+=", AssignSub: "-=",
	AssignMul: "*=", AssignDiv: "/=", AssignMod: "%=",
}

func (op AssignOp) String() string { return nameOf(assignOpText[:], int(op), "?") }

// Binary returns the arithmetic operator a compound assignment applies;
// false for plain `=`.
func (op AssignOp) Binary() (BinaryOp, bool) {
	if op == AssignPlain || op > AssignMod {
		return 0, false
	}
	return BinAdd + BinaryOp(op-AssignAdd), true
}

type AssignStmt struct {
	Op     AssignOp
	Target ExprID
	Value  ExprID
}

type IfStmt struct {
	Cond ExprID
	Then StmtID
	Else StmtID
}

type WhileStmt struct {
	Cond ExprID
	Body StmtID
}

// ForStmt: Init is a Decl, Assign or Expr statement; Post is an Assign or
// Expr statement. All three header parts are optional.
type ForStmt struct {
	Init StmtID
	Cond ExprID
	Post StmtID
	Body StmtID
}

type ReturnStmt struct {
	Value ExprID
}

type ExprStmt struct {
	Expr ExprID
}
