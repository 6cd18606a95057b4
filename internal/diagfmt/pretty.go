package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"github.com/mattn/go-runewidth"

	"oxygen/internal/diag"
	"oxygen/internal/source"
)

const tabWidth = 4

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes и Fixes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	loc := fmt.Sprintf("%s:%d:%d", formatPath(file, fs, opts.PathMode), start.Line, start.Col)

	fmt.Fprintf(w, "%s: %s %s: %s\n",
		pal.location.Sprint(loc),
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		pal.severity(d.Severity).Sprint(d.Code.ID()),
		d.Message,
	)
	writeContext(w, file, start, end, int(opts.Context), pal)

	if opts.ShowNotes {
		for _, n := range d.Notes {
			ns, _ := fs.Resolve(n.Span)
			nf := fs.Get(n.Span.File)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
				pal.note.Sprint("note:"), formatPath(nf, fs, opts.PathMode), ns.Line, ns.Col, n.Msg)
		}
	}

	if opts.ShowFixes {
		for i, fix := range d.Fixes {
			fmt.Fprintf(w, "  %s %s\n", pal.fix.Sprintf("fix #%d:", i+1), fix.Title)
			for _, edit := range fix.Edits {
				fmt.Fprintf(w, "    edit %s apply=%s\n", formatSpan(edit.Span, fs), strconv.Quote(edit.NewText))
				if !opts.ShowPreview {
					continue
				}
				preview, err := previewEdit(fs, edit)
				if err != nil {
					continue
				}
				fmt.Fprintln(w, "    preview:")
				for _, line := range preview.before {
					fmt.Fprintf(w, "      - %s\n", line)
				}
				for _, line := range preview.after {
					fmt.Fprintf(w, "      + %s\n", line)
				}
			}
		}
	}
}

// writeContext печатает строки с номером и подчёркивание под основной строкой.
func writeContext(w io.Writer, f *source.File, start, end source.LineCol, ctxLines int, pal palette) {
	if start.Line == 0 {
		return
	}
	first := max(1, int(start.Line)-ctxLines)
	last := int(start.Line) + ctxLines
	lineCount := f.LineCount()
	last = min(last, lineCount)

	gutterWidth := len(strconv.Itoa(last))
	blank := strings.Repeat(" ", gutterWidth)

	for n := first; n <= last; n++ {
		ln, err := safecast.Conv[uint32](n)
		if err != nil {
			panic(fmt.Errorf("line number overflow: %w", err))
		}
		text := f.GetLine(ln)
		fmt.Fprintf(w, "  %s %s %s\n", pal.gutter.Sprintf("%*d", gutterWidth, n), pal.gutter.Sprint("|"), expandTabs(text))
		if n != int(start.Line) {
			continue
		}
		pad, width := caretGeometry(text, start, end)
		fmt.Fprintf(w, "  %s %s %s%s\n", blank, pal.gutter.Sprint("|"), strings.Repeat(" ", pad),
			pal.caret.Sprint("^"+strings.Repeat("~", width-1)))
	}
}

// caretGeometry возвращает отступ и ширину подчёркивания в колонках экрана.
// Широкие руны (CJK, emoji) занимают две колонки, таб - tabWidth.
func caretGeometry(line string, start, end source.LineCol) (pad, width int) {
	from := min(int(start.Col)-1, len(line))
	to := len(line)
	if end.Line == start.Line {
		to = min(int(end.Col)-1, len(line))
	}
	to = max(to, from)

	pad = displayWidth(line[:from])
	width = max(displayWidth(line[from:to]), 1)
	return pad, width
}

func displayWidth(s string) int {
	return runewidth.StringWidth(expandTabs(s))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
