package driver

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"oxygen/internal/ast"
	"oxygen/internal/diag"
	"oxygen/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestTokenizeFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "main.o2", "int x = 1;\n")
	res, err := Tokenize(context.Background(), path, Options{Timings: true})
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []token.Kind{token.KwInt, token.Ident, token.Assign, token.IntLit, token.Semicolon, token.EOF}
	if len(res.Tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(res.Tokens), len(want))
	}
	for i, k := range want {
		if res.Tokens[i].Kind != k {
			t.Fatalf("token %d = %v, want %v", i, res.Tokens[i].Kind, k)
		}
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics")
	}
	if res.Timing == nil || len(res.Timing.Phases) != 2 || res.Timing.Phases[1].Name != "sort" {
		t.Fatalf("timings not recorded")
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	if _, err := Tokenize(context.Background(), filepath.Join(t.TempDir(), "nope.o2"), Options{}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseSortsDiagnostics(t *testing.T) {
	res := ParseSource(context.Background(), "bad.o2", []byte("int x = @;\nint 5;\nint y = 1.5;\n"), Options{})
	items := res.Bag.Items()
	want := []diag.Code{diag.LexUnknownChar, diag.SynExpectIdentifier, diag.LexBadNumber}
	if len(items) != len(want) {
		t.Fatalf("got %d diagnostics, want %d", len(items), len(want))
	}
	for i, code := range want {
		if items[i].Code != code {
			t.Fatalf("diagnostic %d = %s, want %s", i, items[i].Code.ID(), code.ID())
		}
	}
	if got := len(res.Builder.Programs.Get(res.Program).Stmts); got != 3 {
		t.Fatalf("got %d statements, want 3", got)
	}
}

func TestParseMaxDiagnostics(t *testing.T) {
	res := ParseSource(context.Background(), "many.o2", []byte("int 1; int 2; int 3; int 4;"), Options{MaxDiagnostics: 2})
	if res.Bag.Len() != 2 {
		t.Fatalf("got %d diagnostics, want 2", res.Bag.Len())
	}
}

func TestParseDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.o2", "int a = 1;\n")
	writeFile(t, dir, "nested/b.o2", "int b = ;\n")
	writeFile(t, dir, "c.o2", "void f() { return; }\n")
	writeFile(t, dir, "notes.txt", "not oxygen")

	var (
		mu     sync.Mutex
		events []ProgressEvent
	)
	opts := Options{Jobs: 2, Progress: func(ev ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, ev)
	}}

	fs, results, err := ParseDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("ParseDir: %v", err)
	}
	if len(results) != 3 || fs.Len() != 3 {
		t.Fatalf("got %d results over %d files, want 3", len(results), fs.Len())
	}
	if filepath.Base(results[1].Path) != "c.o2" || filepath.Base(results[2].Path) != "b.o2" {
		t.Fatalf("results not in sorted path order: %s, %s", results[1].Path, results[2].Path)
	}
	for _, r := range results {
		if r.Builder == nil || !r.Program.IsValid() {
			t.Fatalf("%s: missing AST", r.Path)
		}
		stmts := r.Builder.Programs.Get(r.Program).Stmts
		if len(stmts) != 1 {
			t.Fatalf("%s: got %d statements", r.Path, len(stmts))
		}
	}
	if k := results[2].Builder.Stmts.Get(results[2].Builder.Programs.Get(results[2].Program).Stmts[0]).Kind; k != ast.StmtBad {
		t.Fatalf("broken file should produce StmtBad, got %v", k)
	}

	total := MergeBags(results, 0)
	if total.Len() != 1 || total.Items()[0].Code != diag.SynExpectExpression {
		t.Fatalf("unexpected merged diagnostics: %+v", total.Items())
	}
	if len(events) != 6 || events[0].Total != 3 {
		t.Fatalf("unexpected progress events %+v", events)
	}
	finished, failed := 0, 0
	for _, ev := range events {
		if ev.Finished() {
			finished++
		}
		if ev.Status == StatusError {
			failed++
			if filepath.Base(ev.Path) != "b.o2" || ev.Errors != 1 {
				t.Errorf("unexpected error event %+v", ev)
			}
		}
	}
	if finished != 3 || failed != 1 {
		t.Fatalf("finished=%d failed=%d, want 3/1", finished, failed)
	}
}

func TestParseDirEmpty(t *testing.T) {
	_, results, err := ParseDir(context.Background(), t.TempDir(), Options{})
	if err != nil || len(results) != 0 {
		t.Fatalf("ParseDir(empty) = %v, %v", results, err)
	}
}
