package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/s0phia-le/Sloth/internal/source"
	"github.com/s0phia-le/Sloth/internal/token"
)

// Cursor is a position in a file with exactly one byte of lookahead:
// Peek is the unconsumed byte, Advance the sole position mutator.
// Line is 1-based; Col counts bytes consumed on the current line, so
// the lookahead byte of a fresh line sits at Col 0.
type Cursor struct {
	File *source.File
	Off  uint32
	Line uint32
	Col  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
}

// NewCursor creates a cursor at the start of the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		Line:  1,
		Col:   0,
		Limit: limit,
	}
}

func (c *Cursor) limit() uint32 {
	if c.Limit != 0 {
		return c.Limit
	}
	lenFileContent, err := safecast.Conv[uint32](len(c.File.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return lenFileContent
}

// EOF reports whether the lookahead holds the end sentinel.
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit()
}

// Peek returns the lookahead byte, or 0 once the input is exhausted.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Advance consumes the lookahead byte and maintains line/column
// bookkeeping: a consumed newline bumps Line and resets Col, anything
// else bumps Col. At EOF it is a no-op, so the cursor can never move
// past the sentinel.
func (c *Cursor) Advance() {
	if c.EOF() {
		return
	}
	b := c.File.Content[c.Off]
	c.Off++
	if b == '\n' {
		c.Line++
		c.Col = 0
	} else {
		c.Col++
	}
}

// Pos returns the position of the lookahead byte.
func (c *Cursor) Pos() token.Pos {
	return token.Pos{Line: c.Line, Col: c.Col}
}

// Mark is a saved offset for cheap Span capture.
type Mark uint32

// Mark saves the current cursor offset.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom builds the Span of the fragment consumed since the mark.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.File.ID,
		Start: uint32(m),
		End:   c.Off,
	}
}
