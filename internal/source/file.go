package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"fortio.org/safecast"
)

type (
	// FileID identifies a file inside its FileSet; ids start at 0.
	FileID uint32
	// FileFlags records how a file entered the set.
	FileFlags uint8
)

const (
	FileVirtual FileFlags = 1 << iota // stdin, тесты, сгенерированный текст
	FileHadBOM                        // ведущий UTF-8 BOM снят при загрузке
	FileHasCRLF                       // есть "\r\n"; Content при этом не меняется
)

// File is one compilation unit. Content is the buffer the lexer scans and
// every Span indexes into; it is never modified after Add.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Flags   FileFlags

	lineStarts []uint32 // offset первого байта каждой строки, lineStarts[0] == 0
}

// LineCol is a 1-based position; Col counts bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}

func newFile(id FileID, path string, content []byte, flags FileFlags) *File {
	size, err := safecast.Conv[uint32](len(content))
	if err != nil {
		panic(fmt.Errorf("file %s too large: %w", path, err))
	}
	starts := make([]uint32, 1, bytes.Count(content, []byte{'\n'})+1)
	for i := uint32(0); i < size; i++ {
		// "\r\n" - один перевод строки, одиночный '\r' - обычный символ
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	if bytes.Contains(content, []byte("\r\n")) {
		flags |= FileHasCRLF
	}
	return &File{ID: id, Path: path, Content: content, Flags: flags, lineStarts: starts}
}

// LineCount is the number of lines; a trailing '\n' opens an empty last line.
func (f *File) LineCount() int { return len(f.lineStarts) }

// LineStart returns the offset of the first byte of line (1-based). Lines
// past the end map to len(Content).
func (f *File) LineStart(line uint32) uint32 {
	switch {
	case line <= 1:
		return 0
	case int(line) <= len(f.lineStarts):
		return f.lineStarts[line-1]
	default:
		return f.size()
	}
}

// Position resolves a byte offset. The '\n' itself belongs to the line it
// terminates; the offset len(Content) is a valid end-of-file position.
func (f *File) Position(off uint32) LineCol {
	idx := sort.Search(len(f.lineStarts), func(i int) bool { return f.lineStarts[i] > off })
	line, err := safecast.Conv[uint32](idx)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return LineCol{Line: line, Col: off - f.lineStarts[idx-1] + 1}
}

// GetLine returns the text of a 1-based line without its "\n" or "\r\n".
// Out-of-range lines yield "".
func (f *File) GetLine(line uint32) string {
	if line == 0 || int(line) > len(f.lineStarts) {
		return ""
	}
	start := f.lineStarts[line-1]
	end := f.size()
	if int(line) < len(f.lineStarts) {
		end = f.lineStarts[line] - 1
		if end > start && f.Content[end-1] == '\r' {
			end--
		}
	}
	return string(f.Content[start:end])
}

func (f *File) size() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	return n
}

// FormatPath renders Path for diagnostics. Modes: "absolute", "relative"
// (to baseDir, or the working directory when empty), "basename", "auto"
// (short or relative paths as is, long absolute ones as basename).
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := filepath.Abs(f.Path); err == nil {
			return normalizePath(abs)
		}
	case "relative":
		if baseDir == "" {
			baseDir, _ = os.Getwd()
		}
		if rel, err := relativePath(f.Path, baseDir); err == nil {
			return rel
		}
	case "basename":
		return filepath.Base(f.Path)
	case "auto":
		if len(f.Path) >= 40 && filepath.IsAbs(f.Path) {
			return filepath.Base(f.Path)
		}
	}
	return f.Path
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// relativePath makes path relative to baseDir; paths escaping baseDir stay
// absolute.
func relativePath(path, baseDir string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil || rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator) {
		return normalizePath(absPath), nil //nolint:nilerr // вне base - абсолютный путь
	}
	return normalizePath(rel), nil
}
