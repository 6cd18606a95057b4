package fuzztests

import (
	"context"
	"testing"
	"time"

	"oxygen/internal/ast"
	"oxygen/internal/diag"
	"oxygen/internal/lexer"
	"oxygen/internal/parser"
	"oxygen/internal/source"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func parseInput(input []byte) (*ast.Builder, ast.ProgramID, *diag.Bag) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fuzz.o2", input))
	bag := diag.NewBag(128)
	reporter := diag.BagReporter{Bag: bag}
	builder := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(context.Background(), fs, lexer.New(file, lexer.Options{Reporter: reporter}), builder, parser.Options{
		Reporter:  reporter,
		MaxErrors: 128,
	})
	bag.Sort()
	return builder, res.Program, bag
}

// FuzzParserSpans: на любом входе парсер завершается, а спаны детей лежат
// внутри спанов родителей.
func FuzzParserSpans(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input, maxFuzzInput)

		done := make(chan struct{})
		var (
			builder *ast.Builder
			prog    ast.ProgramID
		)
		go func() {
			defer close(done)
			builder, prog, _ = parseInput(input)
		}()
		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hangs on %q", input)
		}

		if !prog.IsValid() {
			t.Fatal("parser must always return a program")
		}
		if violations := ast.CheckSpans(builder, prog); len(violations) > 0 {
			t.Fatalf("span violations on %q: %v", input, violations[0])
		}
	})
}

// FuzzParserDeterministic: два прогона дают одинаковые диагностики.
func FuzzParserDeterministic(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input, maxFuzzInput)

		_, _, first := parseInput(input)
		_, _, second := parseInput(input)
		a, b := first.Items(), second.Items()
		if len(a) != len(b) {
			t.Fatalf("diagnostic count differs: %d vs %d", len(a), len(b))
		}
		for i := range a {
			if a[i].Code != b[i].Code || a[i].Primary != b[i].Primary || a[i].Message != b[i].Message {
				t.Fatalf("diagnostic %d differs: %+v vs %+v", i, a[i], b[i])
			}
		}
	})
}
