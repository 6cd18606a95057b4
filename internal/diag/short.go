package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"oxygen/internal/source"
)

type shortLine struct {
	label string
	code  string
	path  string
	pos   source.LineCol
	msg   string
}

// FormatShortDiagnostics renders one "severity CODE path:line:col message"
// line per diagnostic, ordered by position. With includeNotes every note
// gets its own "note" line under the parent's code. No trailing newline.
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil {
		return ""
	}
	var lines []shortLine
	add := func(label string, code Code, sp source.Span, msg string) {
		if int(sp.File) >= fs.Len() {
			return
		}
		pos, _ := fs.Resolve(sp)
		lines = append(lines, shortLine{label, code.ID(), displayPath(fs, sp.File), pos, oneLine(msg)})
	}
	for _, d := range diags {
		add(d.Severity.Label(), d.Code, d.Primary, d.Message)
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			add("note", d.Code, n.Span, n.Msg)
		}
	}

	slices.SortStableFunc(lines, func(a, b shortLine) int {
		return cmp.Or(
			strings.Compare(a.path, b.path),
			cmp.Compare(a.pos.Line, b.pos.Line),
			cmp.Compare(a.pos.Col, b.pos.Col),
		)
	})

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = fmt.Sprintf("%s %s %s:%d:%d %s", l.label, l.code, l.path, l.pos.Line, l.pos.Col, l.msg)
	}
	return strings.Join(out, "\n")
}

// displayPath: виртуальные файлы как есть, остальные - относительно base.
func displayPath(fs *source.FileSet, id source.FileID) string {
	f := fs.Get(id)
	if f.Flags&source.FileVirtual != 0 {
		return f.Path
	}
	p := filepath.ToSlash(f.FormatPath("relative", fs.BaseDir()))
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	return p
}

func oneLine(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
