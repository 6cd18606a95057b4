package ast

import (
	"oxygen/internal/source"
)

// Exprs holds expression headers and one payload arena per kind.
type Exprs struct {
	Arena    *Arena[Expr]
	Idents   *Arena[IdentExpr]
	Literals *Arena[LitExpr]
	Binaries *Arena[BinaryExpr]
	Unaries  *Arena[UnaryExpr]
	Calls    *Arena[CallExpr]
	Groups   *Arena[GroupExpr]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	// идентификаторы, литералы и бинарные операции встречаются чаще всего
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Idents:   NewArena[IdentExpr](capHint / 2),
		Literals: NewArena[LitExpr](capHint / 2),
		Binaries: NewArena[BinaryExpr](capHint / 4),
		Unaries:  NewArena[UnaryExpr](capHint / 8),
		Calls:    NewArena[CallExpr](capHint / 8),
		Groups:   NewArena[GroupExpr](capHint / 8),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload uint32) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: span, Payload: PayloadID(payload)}))
}

// Get returns nil for NoExprID and unknown ids.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func (e *Exprs) payload(id ExprID, kind ExprKind) (uint32, bool) {
	ex := e.Get(id)
	if ex == nil || ex.Kind != kind {
		return 0, false
	}
	return uint32(ex.Payload), true
}

// NewBad marks an operand that failed to parse; it has no payload.
func (e *Exprs) NewBad(span source.Span) ExprID {
	return e.new(ExprBad, span, uint32(NoPayloadID))
}

func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	return e.new(ExprIdent, span, e.Idents.Allocate(IdentExpr{Name: name}))
}

func (e *Exprs) Ident(id ExprID) (*IdentExpr, bool) {
	p, ok := e.payload(id, ExprIdent)
	return e.Idents.Get(p), ok
}

func (e *Exprs) NewLiteral(span source.Span, data LitExpr) ExprID {
	return e.new(ExprLit, span, e.Literals.Allocate(data))
}

func (e *Exprs) Literal(id ExprID) (*LitExpr, bool) {
	p, ok := e.payload(id, ExprLit)
	return e.Literals.Get(p), ok
}

func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	return e.new(ExprBinary, span, e.Binaries.Allocate(BinaryExpr{Op: op, Left: left, Right: right}))
}

func (e *Exprs) Binary(id ExprID) (*BinaryExpr, bool) {
	p, ok := e.payload(id, ExprBinary)
	return e.Binaries.Get(p), ok
}

func (e *Exprs) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	return e.new(ExprUnary, span, e.Unaries.Allocate(UnaryExpr{Op: op, Operand: operand}))
}

func (e *Exprs) Unary(id ExprID) (*UnaryExpr, bool) {
	p, ok := e.payload(id, ExprUnary)
	return e.Unaries.Get(p), ok
}

// NewCall copies args; the caller may reuse its slice.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	data := CallExpr{Callee: callee, Args: append([]ExprID(nil), args...)}
	return e.new(ExprCall, span, e.Calls.Allocate(data))
}

func (e *Exprs) Call(id ExprID) (*CallExpr, bool) {
	p, ok := e.payload(id, ExprCall)
	return e.Calls.Get(p), ok
}

// NewGroup keeps parentheses as a node so spans and dumps show them.
func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	return e.new(ExprGroup, span, e.Groups.Allocate(GroupExpr{Inner: inner}))
}

func (e *Exprs) Group(id ExprID) (*GroupExpr, bool) {
	p, ok := e.payload(id, ExprGroup)
	return e.Groups.Get(p), ok
}
