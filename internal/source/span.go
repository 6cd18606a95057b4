package source

import "fmt"

// Span is the half-open byte range [Start, End) of one file plus the
// line/column of Start. Spans are plain values.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
	Line  uint32 // строка Start, с 1
	Col   uint32 // байтовая колонка Start, с 1
}

func (s Span) Empty() bool { return s.Start == s.End }

func (s Span) Len() uint32 { return s.End - s.Start }

// String is "line:col" of Start.
func (s Span) String() string { return fmt.Sprintf("%d:%d", s.Line, s.Col) }

// Range is "file:start-end" in bytes, for debugging output.
func (s Span) Range() string { return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End) }

// Cover extends s to include other; spans of different files are not merged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start, s.Line, s.Col = other.Start, other.Line, other.Col
	}
	s.End = max(s.End, other.End)
	return s
}

// Contains reports whether other lies within s.
func (s Span) Contains(other Span) bool {
	return s.File == other.File && s.Start <= other.Start && other.End <= s.End
}

// After is the empty span right behind s. Its column assumes s does not
// cross a line break, which holds for token spans.
func (s Span) After() Span {
	return Span{File: s.File, Start: s.End, End: s.End, Line: s.Line, Col: s.Col + s.Len()}
}
