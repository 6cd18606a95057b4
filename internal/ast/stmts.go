package ast

import (
	"oxygen/internal/source"
)

// Stmts manages allocation of statements and their payloads.
type Stmts struct {
	Arena   *Arena[Stmt]
	Blocks  *Arena[BlockStmt]
	Decls   *Arena[DeclStmt]
	Fns     *Arena[FnStmt]
	Assigns *Arena[AssignStmt]
	Ifs     *Arena[IfStmt]
	Whiles  *Arena[WhileStmt]
	Fors    *Arena[ForStmt]
	Returns *Arena[ReturnStmt]
	Exprs   *Arena[ExprStmt]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint / 8
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Blocks:  NewArena[BlockStmt](small),
		Decls:   NewArena[DeclStmt](small),
		Fns:     NewArena[FnStmt](small),
		Assigns: NewArena[AssignStmt](small),
		Ifs:     NewArena[IfStmt](small),
		Whiles:  NewArena[WhileStmt](small),
		Fors:    NewArena[ForStmt](small),
		Returns: NewArena[ReturnStmt](small),
		Exprs:   NewArena[ExprStmt](small),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) payload(id StmtID, kind StmtKind) (uint32, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != kind {
		return 0, false
	}
	return uint32(st.Payload), true
}

func (s *Stmts) NewBad(span source.Span) StmtID {
	return s.new(StmtBad, span, NoPayloadID)
}

func (s *Stmts) NewBreak(span source.Span) StmtID {
	return s.new(StmtBreak, span, NoPayloadID)
}

func (s *Stmts) NewContinue(span source.Span) StmtID {
	return s.new(StmtContinue, span, NoPayloadID)
}

func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(BlockStmt{Stmts: append([]StmtID(nil), stmts...)})
	return s.new(StmtBlock, span, PayloadID(payload))
}

func (s *Stmts) Block(id StmtID) *BlockStmt {
	if p, ok := s.payload(id, StmtBlock); ok {
		return s.Blocks.Get(p)
	}
	return nil
}

func (s *Stmts) NewDecl(span source.Span, data DeclStmt) StmtID {
	payload := s.Decls.Allocate(data)
	return s.new(StmtDecl, span, PayloadID(payload))
}

func (s *Stmts) Decl(id StmtID) *DeclStmt {
	if p, ok := s.payload(id, StmtDecl); ok {
		return s.Decls.Get(p)
	}
	return nil
}

func (s *Stmts) NewFn(span source.Span, data FnStmt) StmtID {
	data.Params = append([]FnParam(nil), data.Params...)
	payload := s.Fns.Allocate(data)
	return s.new(StmtFn, span, PayloadID(payload))
}

func (s *Stmts) Fn(id StmtID) *FnStmt {
	if p, ok := s.payload(id, StmtFn); ok {
		return s.Fns.Get(p)
	}
	return nil
}

func (s *Stmts) NewAssign(span source.Span, op AssignOp, target, value ExprID) StmtID {
	payload := s.Assigns.Allocate(AssignStmt{Op: op, Target: target, Value: value})
	return s.new(StmtAssign, span, PayloadID(payload))
}

func (s *Stmts) Assign(id StmtID) *AssignStmt {
	if p, ok := s.payload(id, StmtAssign); ok {
		return s.Assigns.Get(p)
	}
	return nil
}

func (s *Stmts) NewIf(span source.Span, cond ExprID, then, els StmtID) StmtID {
	payload := s.Ifs.Allocate(IfStmt{Cond: cond, Then: then, Else: els})
	return s.new(StmtIf, span, PayloadID(payload))
}

func (s *Stmts) If(id StmtID) *IfStmt {
	if p, ok := s.payload(id, StmtIf); ok {
		return s.Ifs.Get(p)
	}
	return nil
}

func (s *Stmts) NewWhile(span source.Span, cond ExprID, body StmtID) StmtID {
	payload := s.Whiles.Allocate(WhileStmt{Cond: cond, Body: body})
	return s.new(StmtWhile, span, PayloadID(payload))
}

func (s *Stmts) While(id StmtID) *WhileStmt {
	if p, ok := s.payload(id, StmtWhile); ok {
		return s.Whiles.Get(p)
	}
	return nil
}

func (s *Stmts) NewFor(span source.Span, data ForStmt) StmtID {
	payload := s.Fors.Allocate(data)
	return s.new(StmtFor, span, PayloadID(payload))
}

func (s *Stmts) For(id StmtID) *ForStmt {
	if p, ok := s.payload(id, StmtFor); ok {
		return s.Fors.Get(p)
	}
	return nil
}

func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(ReturnStmt{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

func (s *Stmts) Return(id StmtID) *ReturnStmt {
	if p, ok := s.payload(id, StmtReturn); ok {
		return s.Returns.Get(p)
	}
	return nil
}

func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Allocate(ExprStmt{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

func (s *Stmts) Expr(id StmtID) *ExprStmt {
	if p, ok := s.payload(id, StmtExpr); ok {
		return s.Exprs.Get(p)
	}
	return nil
}
