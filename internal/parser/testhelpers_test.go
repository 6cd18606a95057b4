package parser

import (
	"context"
	"testing"

	"oxygen/internal/ast"
	"oxygen/internal/diag"
	"oxygen/internal/lexer"
	"oxygen/internal/source"
)

type parsed struct {
	builder *ast.Builder
	prog    ast.ProgramID
	bag     *diag.Bag
}

func parseSourceOpts(t *testing.T, ctx context.Context, input string, opts Options) parsed {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.o2", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{}, nil)

	opts.Reporter = reporter
	res := ParseFile(ctx, fs, lx, builder, opts)
	if res.Bag != bag {
		t.Fatalf("result bag is not the reporter's bag")
	}
	return parsed{builder: builder, prog: res.Program, bag: bag}
}

func parseSource(t *testing.T, input string) parsed {
	t.Helper()
	return parseSourceOpts(t, context.Background(), input, Options{})
}

func (p parsed) stmts() []ast.StmtID {
	return p.builder.Programs.Get(p.prog).Stmts
}

func (p parsed) kinds() []ast.StmtKind {
	var out []ast.StmtKind
	for _, id := range p.stmts() {
		out = append(out, p.builder.Stmts.Get(id).Kind)
	}
	return out
}

func (p parsed) codes() []diag.Code {
	var out []diag.Code
	for _, d := range p.bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func expectNoDiags(t *testing.T, p parsed) {
	t.Helper()
	for _, d := range p.bag.Items() {
		t.Errorf("unexpected diagnostic %s at %s: %s", d.Code.ID(), d.Primary, d.Message)
	}
}

func expectCodes(t *testing.T, p parsed, want ...diag.Code) {
	t.Helper()
	got := p.codes()
	if len(got) != len(want) {
		for _, d := range p.bag.Items() {
			t.Logf("  %s %s: %s", d.Code.ID(), d.Primary, d.Message)
		}
		t.Fatalf("got %d diagnostics %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("diagnostic %d: got %s, want %s", i, got[i].ID(), want[i].ID())
		}
	}
}

func expectKinds(t *testing.T, p parsed, want ...ast.StmtKind) {
	t.Helper()
	got := p.kinds()
	if len(got) != len(want) {
		t.Fatalf("got statements %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("statement %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// declValue returns the initializer of the i-th top-level declaration.
func (p parsed) declValue(t *testing.T, i int) ast.ExprID {
	t.Helper()
	decl := p.builder.Stmts.Decl(p.stmts()[i])
	if decl == nil {
		t.Fatalf("statement %d is not a declaration", i)
	}
	return decl.Value
}

func (p parsed) intLit(t *testing.T, id ast.ExprID) int64 {
	t.Helper()
	lit, ok := p.builder.Exprs.Literal(id)
	if !ok || lit.Kind != ast.LitInt {
		t.Fatalf("expr %d is not an int literal", id)
	}
	return lit.Int
}
