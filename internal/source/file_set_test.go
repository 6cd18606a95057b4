package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.o2", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("test.o2", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists := fs.Lookup("test.o2")
	if !exists || latestID != id2 {
		t.Errorf("Lookup = %d, %v; want %d, true", latestID, exists, id2)
	}

	// старая версия остаётся доступной
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("first file content = %q", got)
	}
}

func TestResolveLF(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lf.o2", []byte("ab\ncd\n\nef"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // сам '\n' принадлежит первой строке
		{3, LineCol{2, 1}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
		{9, LineCol{4, 3}}, // конец файла
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestResolveCRLF(t *testing.T) {
	fs := NewFileSet()
	content := []byte("int x;\r\nint y;\r\n")
	id := fs.AddVirtual("crlf.o2", content)
	f := fs.Get(id)

	if f.Flags&FileHasCRLF == 0 {
		t.Fatalf("expected FileHasCRLF flag")
	}
	if string(f.Content) != string(content) {
		t.Fatalf("content must be preserved byte for byte")
	}

	start, _ := fs.Resolve(Span{File: id, Start: 8, End: 11})
	if start != (LineCol{Line: 2, Col: 1}) {
		t.Fatalf("offset 8 resolved to %+v, want 2:1", start)
	}
	if got := f.GetLine(1); got != "int x;" {
		t.Errorf("GetLine(1) = %q", got)
	}
	if got := f.GetLine(2); got != "int y;" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := f.GetLine(9); got != "" {
		t.Errorf("GetLine(9) = %q, want empty", got)
	}
}

func TestLoadStripsBOM(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.o2")
	if err := os.WriteFile(path, []byte("\xEF\xBB\xBFint x;\r\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "int x;\r\n" {
		t.Fatalf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 {
		t.Errorf("expected FileHadBOM")
	}
	if f.Flags&FileVirtual != 0 {
		t.Errorf("loaded file must not be virtual")
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.o2")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()
	baseDir := filepath.Join(tmp, "base")
	target := filepath.Join(tmp, "other", "file.o2")

	got, err := relativePath(target, baseDir)
	if err != nil {
		t.Fatalf("relativePath returned error: %v", err)
	}
	if want := normalizePath(target); got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "nested", "file.o2")

	got, err := relativePath(target, tmp)
	if err != nil {
		t.Fatalf("relativePath returned error: %v", err)
	}
	if want := "nested/file.o2"; got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}

func TestLineTable(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("t.o2", []byte("a\r\nbc\n")))

	if f.LineCount() != 3 {
		t.Fatalf("LineCount = %d, want 3", f.LineCount())
	}
	tests := []struct {
		line uint32
		want uint32
	}{
		{0, 0}, {1, 0}, {2, 3}, {3, 6}, {4, 6},
	}
	for _, tt := range tests {
		if got := f.LineStart(tt.line); got != tt.want {
			t.Errorf("LineStart(%d) = %d, want %d", tt.line, got, tt.want)
		}
	}
	if got := f.GetLine(3); got != "" {
		t.Errorf("last empty line = %q", got)
	}
}

func TestLoneCRIsNotALineBreak(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("cr.o2", []byte("a\rb\nc")))
	if f.Flags&FileHasCRLF != 0 {
		t.Fatal("lone CR must not set FileHasCRLF")
	}
	if pos := f.Position(2); pos != (LineCol{1, 3}) {
		t.Fatalf("Position(2) = %+v, want 1:3", pos)
	}
	if got := f.GetLine(1); got != "a\rb" {
		t.Fatalf("GetLine(1) = %q", got)
	}
}

func TestFormatPath(t *testing.T) {
	base := t.TempDir()
	fs := NewFileSetWithBase(base)
	f := fs.Get(fs.AddVirtual(filepath.Join(base, "src", "main.o2"), nil))

	tests := []struct {
		mode string
		want string
	}{
		{"relative", "src/main.o2"},
		{"basename", "main.o2"},
		{"absolute", filepath.ToSlash(filepath.Join(base, "src", "main.o2"))},
	}
	for _, tt := range tests {
		if got := f.FormatPath(tt.mode, fs.BaseDir()); got != tt.want {
			t.Errorf("FormatPath(%q) = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
