package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"oxygen/internal/diag"
	"oxygen/internal/source"
)

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("/home/user/project/src/test.o2", []byte("string s = \"unterminated\n"))
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 11, End: 24}, "unterminated string literal"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.o2:1:12"},
		{"Relative path", PathModeRelative, "src/test.o2:1:12"},
		{"Basename only", PathModeBasename, "test.o2:1:12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.contains, output)
			}
			for _, want := range []string{"ERROR", "LEX1002", "unterminated string literal"} {
				if !strings.Contains(output, want) {
					t.Errorf("expected %q in output:\n%s", want, output)
				}
			}
		})
	}
}

// TestPathModeAuto: короткие пути как есть, длинные абсолютные сокращаются до имени
func TestPathModeAuto(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
		absent   string
	}{
		{"Short path - as is", "test.o2", "test.o2:1:1", ""},
		{"Long absolute path - basename", "/very/long/absolute/path/to/some/nested/directory/file.o2", "file.o2:1:1", "/very/long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := source.NewFileSet()
			fileID := fs.AddVirtual(tt.path, []byte("@\n"))
			bag := diag.NewBag(10)
			bag.Add(diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{File: fileID, Start: 0, End: 1}, "test warning"))

			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAuto})
			output := buf.String()
			if !strings.Contains(output, tt.expected) {
				t.Errorf("expected %q in output:\n%s", tt.expected, output)
			}
			if tt.absent != "" && strings.Contains(output, tt.absent) {
				t.Errorf("did not expect %q in output:\n%s", tt.absent, output)
			}
		})
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	pf := parseVirtual(t, "test.o2", "int x = 1\n(1 + 2;\n")

	var buf bytes.Buffer
	Pretty(&buf, pf.bag, pf.fs, PrettyOpts{ShowNotes: true, ShowFixes: true, ShowPreview: true})
	output := buf.String()

	wants := []string{
		"test.o2:1:10: ERROR SYN2012:",
		"fix #1: insert ';'",
		`apply=";"`,
		"    preview:",
		"      - int x = 1",
		"      + int x = 1;",
		"SYN2006",
		"note: test.o2:2:1:",
	}
	for _, want := range wants {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestPrettyHidesNotesAndFixes(t *testing.T) {
	pf := parseVirtual(t, "test.o2", "int x = 1\n")

	var buf bytes.Buffer
	Pretty(&buf, pf.bag, pf.fs, PrettyOpts{})
	output := buf.String()
	for _, unwanted := range []string{"fix #1", "note:", "preview:"} {
		if strings.Contains(output, unwanted) {
			t.Errorf("unexpected %q in output:\n%s", unwanted, output)
		}
	}
}

func TestPrettyCaretUnderWideRunes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("wide.o2", []byte("s = \"日本\"; ?\n"))
	bag := diag.NewBag(1)
	bag.Add(diag.NewError(diag.LexUnknownChar, source.Span{File: fileID, Start: 14, End: 15}, "unknown character '?'"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	want := "    | " + strings.Repeat(" ", 12) + "^\n"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("caret line %q not found in:\n%s", want, buf.String())
	}
}

func TestCaretGeometry(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		start     source.LineCol
		end       source.LineCol
		pad, wide int
	}{
		{"ascii", "int x = 1", source.LineCol{Line: 1, Col: 5}, source.LineCol{Line: 1, Col: 6}, 4, 1},
		{"tab", "\tx", source.LineCol{Line: 1, Col: 2}, source.LineCol{Line: 1, Col: 3}, tabWidth, 1},
		{"empty span", "abc", source.LineCol{Line: 1, Col: 4}, source.LineCol{Line: 1, Col: 4}, 3, 1},
		{"multiline", "int x", source.LineCol{Line: 1, Col: 1}, source.LineCol{Line: 3, Col: 2}, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pad, width := caretGeometry(tt.line, tt.start, tt.end)
			if pad != tt.pad || width != tt.wide {
				t.Errorf("caretGeometry = (%d, %d), want (%d, %d)", pad, width, tt.pad, tt.wide)
			}
		})
	}
}

func TestParsePathMode(t *testing.T) {
	for _, s := range []string{"auto", "absolute", "relative", "basename"} {
		if _, err := ParsePathMode(s); err != nil {
			t.Errorf("ParsePathMode(%q): %v", s, err)
		}
	}
	if _, err := ParsePathMode("sideways"); err == nil {
		t.Error("expected error for unknown path mode")
	}
}
