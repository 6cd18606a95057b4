package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestJSONDiagnostics(t *testing.T) {
	pf := parseVirtual(t, "test.o2", "int x = 1\nreturn (2;\n")

	var buf bytes.Buffer
	if err := JSON(&buf, pf.bag, pf.fs, JSONOpts{IncludePositions: true, IncludeNotes: true, IncludeFixes: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticReport
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}

	if out.Count != 2 || out.Errors != 2 || out.Warnings != 0 || out.Dropped != 0 {
		t.Fatalf("count=%d errors=%d warnings=%d dropped=%d", out.Count, out.Errors, out.Warnings, out.Dropped)
	}
	first := out.Diagnostics[0]
	if first.Code != "SYN2012" || first.Severity != "ERROR" || first.Title != "Missing semicolon" || first.Phase != "syntax" {
		t.Errorf("unexpected first diagnostic: %+v", first)
	}
	if loc := first.Location; loc.File != "test.o2" || loc.Start != (Pos{Offset: 9, Line: 1, Col: 10}) {
		t.Errorf("unexpected location: %+v", loc)
	}
	if len(first.Fixes) != 1 || first.Fixes[0].Edits[0].NewText != ";" {
		t.Errorf("expected insert ';' fix, got %+v", first.Fixes)
	}
	second := out.Diagnostics[1]
	if second.Code != "SYN2006" || len(second.Notes) != 1 || second.Notes[0].Location.Start.Line != 2 {
		t.Errorf("unexpected second diagnostic: %+v", second)
	}
}

func TestJSONOptionsTrimOutput(t *testing.T) {
	pf := parseVirtual(t, "test.o2", "int x = 1\nreturn (2;\n")

	out := BuildReport(pf.bag, pf.fs, JSONOpts{Max: 1})
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %d", out.Count)
	}
	if out.Errors != 2 || out.Dropped != 1 {
		t.Errorf("totals must describe the whole bag: errors=%d dropped=%d", out.Errors, out.Dropped)
	}
	d := out.Diagnostics[0]
	if d.Location.Start.Line != 0 || d.Notes != nil || d.Fixes != nil {
		t.Errorf("positions, notes and fixes must be omitted: %+v", d)
	}
}

func TestJSONEmptyBag(t *testing.T) {
	pf := parseVirtual(t, "ok.o2", "int x = 1;\n")

	var buf bytes.Buffer
	if err := JSON(&buf, pf.bag, pf.fs, JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"diagnostics": []`)) {
		t.Errorf("expected empty diagnostics array, got:\n%s", buf.String())
	}
}
