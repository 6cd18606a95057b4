package ast

import (
	"fmt"

	"oxygen/internal/source"
)

// Node is a reference to either a statement or an expression.
// Exactly one of Stmt/Expr is set; the Program root has neither.
type Node struct {
	Stmt StmtID
	Expr ExprID
}

func (n Node) IsRoot() bool { return !n.Stmt.IsValid() && !n.Expr.IsValid() }

// Span returns the source span of n.
func (b *Builder) Span(n Node, prog ProgramID) source.Span {
	switch {
	case n.Stmt.IsValid():
		return b.Stmts.Get(n.Stmt).Span
	case n.Expr.IsValid():
		return b.Exprs.Get(n.Expr).Span
	default:
		return b.Programs.Get(prog).Span
	}
}

// Children lists the direct children of n in source order.
func (b *Builder) Children(n Node, prog ProgramID) []Node {
	var out []Node
	stmt := func(id StmtID) {
		if id.IsValid() {
			out = append(out, Node{Stmt: id})
		}
	}
	expr := func(id ExprID) {
		if id.IsValid() {
			out = append(out, Node{Expr: id})
		}
	}

	switch {
	case n.IsRoot():
		for _, id := range b.Programs.Get(prog).Stmts {
			stmt(id)
		}

	case n.Stmt.IsValid():
		st := b.Stmts.Get(n.Stmt)
		switch st.Kind {
		case StmtBlock:
			for _, id := range b.Stmts.Block(n.Stmt).Stmts {
				stmt(id)
			}
		case StmtDecl:
			expr(b.Stmts.Decl(n.Stmt).Value)
		case StmtFn:
			stmt(b.Stmts.Fn(n.Stmt).Body)
		case StmtAssign:
			a := b.Stmts.Assign(n.Stmt)
			expr(a.Target)
			expr(a.Value)
		case StmtIf:
			s := b.Stmts.If(n.Stmt)
			expr(s.Cond)
			stmt(s.Then)
			stmt(s.Else)
		case StmtWhile:
			s := b.Stmts.While(n.Stmt)
			expr(s.Cond)
			stmt(s.Body)
		case StmtFor:
			s := b.Stmts.For(n.Stmt)
			stmt(s.Init)
			expr(s.Cond)
			stmt(s.Post)
			stmt(s.Body)
		case StmtReturn:
			expr(b.Stmts.Return(n.Stmt).Value)
		case StmtExpr:
			expr(b.Stmts.Expr(n.Stmt).Expr)
		}

	case n.Expr.IsValid():
		e := b.Exprs.Get(n.Expr)
		switch e.Kind {
		case ExprBinary:
			d, _ := b.Exprs.Binary(n.Expr)
			expr(d.Left)
			expr(d.Right)
		case ExprUnary:
			d, _ := b.Exprs.Unary(n.Expr)
			expr(d.Operand)
		case ExprCall:
			d, _ := b.Exprs.Call(n.Expr)
			expr(d.Callee)
			for _, a := range d.Args {
				expr(a)
			}
		case ExprGroup:
			d, _ := b.Exprs.Group(n.Expr)
			expr(d.Inner)
		}
	}
	return out
}

// Walk visits the tree rooted at prog depth first, parents before children.
// If fn returns false the children of that node are skipped.
func Walk(b *Builder, prog ProgramID, fn func(n Node, depth int) bool) {
	var visit func(n Node, depth int)
	visit = func(n Node, depth int) {
		if !fn(n, depth) {
			return
		}
		for _, c := range b.Children(n, prog) {
			visit(c, depth+1)
		}
	}
	visit(Node{}, 0)
}

// SpanViolation describes a child whose span escapes its parent.
type SpanViolation struct {
	Parent, Child Node
	ParentSpan    source.Span
	ChildSpan     source.Span
}

func (v SpanViolation) String() string {
	return fmt.Sprintf("child %v %s not within parent %v %s", v.Child, v.ChildSpan.Range(), v.Parent, v.ParentSpan.Range())
}

// CheckSpans verifies that every node's span contains its children's spans
// and that siblings appear in increasing source order.
func CheckSpans(b *Builder, prog ProgramID) []SpanViolation {
	var out []SpanViolation
	Walk(b, prog, func(n Node, _ int) bool {
		ps := b.Span(n, prog)
		var prevEnd uint32
		for _, c := range b.Children(n, prog) {
			cs := b.Span(c, prog)
			if !ps.Contains(cs) || cs.Start < prevEnd {
				out = append(out, SpanViolation{Parent: n, Child: c, ParentSpan: ps, ChildSpan: cs})
			}
			prevEnd = cs.End
		}
		return true
	})
	return out
}
