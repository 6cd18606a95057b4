package diagfmt

import (
	"encoding/json"
	"io"

	"oxygen/internal/diag"
	"oxygen/internal/source"
)

// Pos is one end of a location. Line and Col are 0 unless
// JSONOpts.IncludePositions is set.
type Pos struct {
	Offset uint32 `json:"offset"`
	Line   uint32 `json:"line,omitempty"`
	Col    uint32 `json:"col,omitempty"`
}

type Location struct {
	File  string `json:"file"`
	Start Pos    `json:"start"`
	End   Pos    `json:"end"`
}

type NoteEntry struct {
	Message  string   `json:"message"`
	Location Location `json:"location"`
}

type EditEntry struct {
	Location Location `json:"location"`
	NewText  string   `json:"new_text"`
}

type FixEntry struct {
	Title string      `json:"title"`
	Edits []EditEntry `json:"edits"`
}

// DiagnosticEntry is the JSON form of one diagnostic.
type DiagnosticEntry struct {
	Severity string      `json:"severity"`
	Code     string      `json:"code"`
	Phase    string      `json:"phase"`
	Title    string      `json:"title"`
	Message  string      `json:"message"`
	Location Location    `json:"location"`
	Notes    []NoteEntry `json:"notes,omitempty"`
	Fixes    []FixEntry  `json:"fixes,omitempty"`
}

// DiagnosticReport is the document written by JSON. Errors and Warnings
// count the whole bag even when Max trims the list.
type DiagnosticReport struct {
	Diagnostics []DiagnosticEntry `json:"diagnostics"`
	Count       int               `json:"count"`
	Errors      int               `json:"errors"`
	Warnings    int               `json:"warnings"`
	Dropped     int               `json:"dropped,omitempty"`
}

type jsonBuilder struct {
	fs   *source.FileSet
	opts JSONOpts
}

func (b jsonBuilder) location(sp source.Span) Location {
	loc := Location{
		File:  formatPath(b.fs.Get(sp.File), b.fs, b.opts.PathMode),
		Start: Pos{Offset: sp.Start},
		End:   Pos{Offset: sp.End},
	}
	if b.opts.IncludePositions {
		start, end := b.fs.Resolve(sp)
		loc.Start.Line, loc.Start.Col = start.Line, start.Col
		loc.End.Line, loc.End.Col = end.Line, end.Col
	}
	return loc
}

func (b jsonBuilder) entry(d diag.Diagnostic) DiagnosticEntry {
	e := DiagnosticEntry{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Phase:    d.Code.Phase(),
		Title:    d.Code.Title(),
		Message:  d.Message,
		Location: b.location(d.Primary),
	}
	if b.opts.IncludeNotes {
		for _, n := range d.Notes {
			e.Notes = append(e.Notes, NoteEntry{Message: n.Msg, Location: b.location(n.Span)})
		}
	}
	if b.opts.IncludeFixes {
		for _, fix := range d.Fixes {
			fe := FixEntry{Title: fix.Title}
			for _, edit := range fix.Edits {
				fe.Edits = append(fe.Edits, EditEntry{Location: b.location(edit.Span), NewText: edit.NewText})
			}
			e.Fixes = append(e.Fixes, fe)
		}
	}
	return e
}

// BuildReport converts bag without serialising it.
func BuildReport(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticReport {
	items := bag.Items()
	dropped := bag.Dropped()
	if opts.Max > 0 && opts.Max < len(items) {
		dropped += len(items) - opts.Max
		items = items[:opts.Max]
	}

	b := jsonBuilder{fs: fs, opts: opts}
	rep := DiagnosticReport{
		Diagnostics: make([]DiagnosticEntry, 0, len(items)),
		Errors:      bag.ErrorCount(),
		Warnings:    bag.Count(diag.SevWarning),
		Dropped:     dropped,
	}
	for _, d := range items {
		rep.Diagnostics = append(rep.Diagnostics, b.entry(d))
	}
	rep.Count = len(rep.Diagnostics)
	return rep
}

// JSON writes the indented DiagnosticReport of bag.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildReport(bag, fs, opts))
}
