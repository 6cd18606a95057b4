package diagfmt

import (
	"context"
	"testing"

	"oxygen/internal/ast"
	"oxygen/internal/diag"
	"oxygen/internal/lexer"
	"oxygen/internal/parser"
	"oxygen/internal/source"
	"oxygen/internal/token"
)

type parsedFile struct {
	fs      *source.FileSet
	builder *ast.Builder
	prog    ast.ProgramID
	bag     *diag.Bag
}

func parseVirtual(t *testing.T, name, input string) parsedFile {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, []byte(input)))
	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}
	builder := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(context.Background(), fs, lexer.New(file, lexer.Options{Reporter: reporter}), builder, parser.Options{Reporter: reporter})
	bag.Sort()
	return parsedFile{fs: fs, builder: builder, prog: res.Program, bag: bag}
}

func lexVirtual(t *testing.T, input string) (*source.FileSet, []token.Token) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.o2", []byte(input)))
	lx := lexer.New(file, lexer.Options{Reporter: diag.NopReporter{}})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return fs, toks
		}
	}
}
