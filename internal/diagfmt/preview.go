package diagfmt

import (
	"fmt"
	"strings"

	"oxygen/internal/diag"
	"oxygen/internal/source"
)

// editPreview - строки, которые затрагивает правка, до и после неё.
type editPreview struct {
	before []string
	after  []string
}

func previewEdit(fs *source.FileSet, edit diag.FixEdit) (editPreview, error) {
	sp := edit.Span
	if fs == nil || int(sp.File) >= fs.Len() {
		return editPreview{}, fmt.Errorf("file %d not found in FileSet", sp.File)
	}
	file := fs.Get(sp.File)
	if sp.End < sp.Start || int(sp.End) > len(file.Content) {
		return editPreview{}, fmt.Errorf("edit span %s out of range", sp.Range())
	}

	// блок целых строк от строки Start до строки End включительно
	from := file.LineStart(file.Position(sp.Start).Line)
	to := file.LineStart(file.Position(sp.End).Line + 1)
	block := file.Content[from:to]

	edited := make([]byte, 0, len(block)+len(edit.NewText))
	edited = append(edited, block[:sp.Start-from]...)
	edited = append(edited, edit.NewText...)
	edited = append(edited, block[sp.End-from:]...)

	return editPreview{before: previewLines(block), after: previewLines(edited)}, nil
}

func previewLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}
