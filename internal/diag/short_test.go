package diag

import (
	"testing"

	"oxygen/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	file := fs.Add("/workspace/testdata/sample.o2", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     SynMissingReturn,
			Message:  "another",
			Primary:  source.Span{File: file, Start: 2, End: 3},
		},
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: file, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: file, Start: 2, End: 3}, Msg: "note line"},
			},
		},
	}

	expected := "error SYN2001 testdata/sample.o2:1:1 first line second\n" +
		"warning SYN2210 testdata/sample.o2:2:1 another\n" +
		"note SYN2001 testdata/sample.o2:2:1 note line"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatShortDiagnosticsVirtual(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("<stdin>", []byte("x"))
	diags := []Diagnostic{NewError(LexUnknownChar, source.Span{File: file, Start: 0, End: 1, Line: 1, Col: 1}, "unknown character '@'")}
	want := "error LEX1001 <stdin>:1:1 unknown character '@'"
	if got := FormatShortDiagnostics(diags, fs, false); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
