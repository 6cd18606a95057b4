package ast

import (
	"oxygen/internal/source"
)

type Hints struct{ Programs, Stmts, Exprs uint }

// Builder owns every arena of a tree plus the identifier interner.
// One Builder per compilation unit; it is not safe for concurrent use.
type Builder struct {
	Programs        *Programs
	Stmts           *Stmts
	Exprs           *Exprs
	StringsInterner *source.Interner
}

func NewBuilder(hints Hints, interner *source.Interner) *Builder {
	if hints.Programs == 0 {
		hints.Programs = 1
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if interner == nil {
		interner = source.NewInterner()
	}
	return &Builder{
		Programs:        NewPrograms(hints.Programs),
		Stmts:           NewStmts(hints.Stmts),
		Exprs:           NewExprs(hints.Exprs),
		StringsInterner: interner,
	}
}

func (b *Builder) NewProgram(sp source.Span) ProgramID {
	return b.Programs.New(sp)
}

func (b *Builder) PushStmt(prog ProgramID, stmt StmtID) {
	p := b.Programs.Get(prog)
	p.Stmts = append(p.Stmts, stmt)
}

// Name returns the interned text of id ("" for NoStringID).
func (b *Builder) Name(id source.StringID) string {
	s, _ := b.StringsInterner.Lookup(id)
	return s
}
