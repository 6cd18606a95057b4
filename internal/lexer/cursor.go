package lexer

import (
	"fmt"

	"oxygen/internal/source"

	"fortio.org/safecast"
)

// Cursor walks the bytes of one file and keeps the current line and the
// offset where it starts, so spans get line/col without a lookup.
type Cursor struct {
	fileID source.FileID
	src    []byte
	off    uint32
	end    uint32

	line      uint32 // 1-based
	lineStart uint32
}

// NewCursor positions a cursor at the first byte of f.
func NewCursor(f *source.File) Cursor {
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("file %s is too large: %w", f.Path, err))
	}
	return Cursor{fileID: f.ID, src: f.Content, end: end, line: 1}
}

// Offset is the byte offset of the next unread byte.
func (c *Cursor) Offset() uint32 { return c.off }

func (c *Cursor) EOF() bool { return c.off >= c.end }

// Peek returns the next byte or 0 at EOF.
func (c *Cursor) Peek() byte { return c.PeekAt(0) }

// PeekAt looks i bytes ahead without consuming; 0 past the end.
func (c *Cursor) PeekAt(i uint32) byte {
	if c.off+i >= c.end {
		return 0
	}
	return c.src[c.off+i]
}

// Rest is the unread tail of the file.
func (c *Cursor) Rest() []byte { return c.src[c.off:c.end] }

// HasPrefix reports whether the unread input starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	rest := c.Rest()
	return len(rest) >= len(s) && string(rest[:len(s)]) == s
}

// Bump consumes one byte and returns it (0 at EOF).
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	if b == '\n' {
		c.line++
		c.lineStart = c.off
	}
	return b
}

// Advance consumes up to n bytes.
func (c *Cursor) Advance(n uint32) {
	for i := uint32(0); i < n && !c.EOF(); i++ {
		c.Bump()
	}
}

// Eat consumes b if it is next.
func (c *Cursor) Eat(b byte) bool {
	if c.EOF() || c.src[c.off] != b {
		return false
	}
	c.Bump()
	return true
}

// Skip consumes s if the input starts with it.
func (c *Cursor) Skip(s string) bool {
	if !c.HasPrefix(s) {
		return false
	}
	for range len(s) {
		c.Bump()
	}
	return true
}

func (c *Cursor) Line() uint32 { return c.line }
func (c *Cursor) Col() uint32  { return c.off - c.lineStart + 1 }

// Mark is a saved cursor position.
type Mark struct {
	off       uint32
	line      uint32
	lineStart uint32
}

func (c *Cursor) Mark() Mark {
	return Mark{off: c.off, line: c.line, lineStart: c.lineStart}
}

func (m Mark) Offset() uint32 { return m.off }

// SpanFrom covers the bytes consumed since m.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.fileID,
		Start: m.off,
		End:   c.off,
		Line:  m.line,
		Col:   m.off - m.lineStart + 1,
	}
}

// Reset rewinds to m.
func (c *Cursor) Reset(m Mark) {
	c.off, c.line, c.lineStart = m.off, m.line, m.lineStart
}
