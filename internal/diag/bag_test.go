package diag

import (
	"testing"

	"oxygen/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := range 3 {
		ok := b.Add(NewError(SynUnexpectedToken, span(0, uint32(i), uint32(i+1)), "x"))
		if want := i < 2; ok != want {
			t.Fatalf("Add #%d = %v, want %v", i, ok, want)
		}
	}
	if b.Len() != 2 || b.Dropped() != 1 {
		t.Fatalf("len = %d, dropped = %d, want 2 and 1", b.Len(), b.Dropped())
	}
}

func TestBagSortOrder(t *testing.T) {
	b := NewBag(10)
	b.Add(New(SevWarning, SynMissingReturn, span(0, 5, 6), "w"))
	b.Add(NewError(SynExpectSemicolon, span(0, 5, 6), "e2"))
	b.Add(NewError(SynUnexpectedToken, span(0, 5, 6), "e1"))
	b.Add(NewError(LexUnknownChar, span(0, 1, 2), "lex"))
	b.Add(NewError(LexUnknownChar, span(1, 0, 1), "other file"))
	b.Sort()

	want := []string{"lex", "e1", "e2", "w", "other file"}
	for i, d := range b.Items() {
		if d.Message != want[i] {
			t.Fatalf("item %d = %q, want %q", i, d.Message, want[i])
		}
	}
}

func TestBagCountsAndMerge(t *testing.T) {
	a := NewBag(5)
	a.Add(NewError(LexBadNumber, span(0, 0, 1), "bad"))
	other := NewBag(5)
	other.Add(New(SevWarning, SynMissingReturn, span(0, 2, 3), "warn"))
	other.Add(NewError(LexBadEscape, span(0, 4, 5), "esc"))

	a.Merge(other)
	if a.Len() != 3 {
		t.Fatalf("len after merge = %d", a.Len())
	}
	if got := a.ErrorCount(); got != 2 {
		t.Fatalf("ErrorCount = %d, want 2", got)
	}
	if !a.HasErrors() || a.Count(SevWarning) != 1 || a.Count(SevInfo) != 0 {
		t.Fatalf("unexpected counts: errors=%v warnings=%d", a.HasErrors(), a.Count(SevWarning))
	}

	small := NewBag(1)
	small.Merge(a)
	if small.Len() != 1 || small.Dropped() != 2 {
		t.Fatalf("merge into full bag: len=%d dropped=%d", small.Len(), small.Dropped())
	}

	a.Filter(func(d Diagnostic) bool { return d.Severity == SevError })
	if a.Len() != 2 || a.Count(SevWarning) != 0 {
		t.Fatalf("Filter kept %d diagnostics", a.Len())
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynExpectSemicolon, "SYN2012"},
		{IOLoadFileError, "IO4001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("%d.ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
	if !LexBadEscape.IsLexical() || LexBadEscape.IsSyntax() {
		t.Errorf("LexBadEscape classification wrong")
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(10)
	r := Unique(BagReporter{Bag: bag})
	b := Build(r, SevError, SynExpectSemicolon, span(0, 3, 3), "expected ';'").
		Note(span(0, 0, 3), "statement starts here").
		Fix(InsertFix("insert ';'", span(0, 3, 9), ";"))
	b.Emit()
	b.Emit()
	Build(r, SevError, SynExpectSemicolon, span(0, 3, 3), "expected ';'").Emit()
	Build(r, SevError, SynExpectSemicolon, span(0, 5, 5), "expected ';'").Emit()

	if bag.Len() != 2 {
		t.Fatalf("len = %d, want 2", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 || len(d.Fixes) != 1 {
		t.Fatalf("notes/fixes lost: %+v", d)
	}
	if e := d.Fixes[0].Edits[0]; e.Span.Start != 3 || e.Span.End != 3 || e.NewText != ";" {
		t.Fatalf("unexpected fix edit %+v", e)
	}
}

func TestBagOf(t *testing.T) {
	bag := NewBag(1)
	tests := []struct {
		name string
		r    Reporter
		want *Bag
	}{
		{"value", BagReporter{Bag: bag}, bag},
		{"pointer", &BagReporter{Bag: bag}, bag},
		{"unique", Unique(BagReporter{Bag: bag}), bag},
		{"nop", NopReporter{}, nil},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		if got := BagOf(tt.r); got != tt.want {
			t.Errorf("%s: BagOf = %p, want %p", tt.name, got, tt.want)
		}
	}
}
