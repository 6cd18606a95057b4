package diagfmt

import (
	"fmt"
	"strings"

	"oxygen/internal/source"
)

// PathMode selects how file names appear in rendered output.
type PathMode uint8

const (
	PathModeAuto PathMode = iota // относительный внутри base, иначе короткий
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

var pathModeNames = [...]string{
	PathModeAuto:     "auto",
	PathModeAbsolute: "absolute",
	PathModeRelative: "relative",
	PathModeBasename: "basename",
}

func (m PathMode) String() string {
	if int(m) < len(pathModeNames) {
		return pathModeNames[m]
	}
	return pathModeNames[PathModeAuto]
}

// ParsePathMode maps a --path-mode value; "" means auto.
func ParsePathMode(s string) (PathMode, error) {
	if s == "" {
		return PathModeAuto, nil
	}
	for i, name := range pathModeNames {
		if s == name {
			return PathMode(i), nil //nolint:gosec // i < len(pathModeNames)
		}
	}
	return PathModeAuto, fmt.Errorf("unknown path mode %q (expected %s)", s, strings.Join(pathModeNames[:], "|"))
}

// PrettyOpts drives the human-readable renderer.
type PrettyOpts struct {
	Color       bool
	Context     int8 // lines shown around the primary line
	PathMode    PathMode
	ShowNotes   bool
	ShowFixes   bool
	ShowPreview bool
}

// JSONOpts drives the machine-readable renderer.
type JSONOpts struct {
	IncludePositions bool
	PathMode         PathMode
	Max              int // caps the rendered list; the bag is untouched
	IncludeNotes     bool
	IncludeFixes     bool
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	base := fs.BaseDir()
	if mode == PathModeAbsolute || mode == PathModeBasename {
		base = ""
	}
	return f.FormatPath(mode.String(), base)
}

// formatSpan renders "line:col-line:col", or raw offsets without a FileSet.
func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs == nil {
		return fmt.Sprintf("span(%d-%d)", span.Start, span.End)
	}
	start, end := fs.Resolve(span)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}
