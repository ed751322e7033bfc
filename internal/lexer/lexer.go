// Package lexer turns Sloth source bytes into a stream of tokens.
// It is pull-based: the caller asks for one token at a time and stops
// at token.End. Next is total — any byte sequence yields a token, with
// unrecognized characters degrading to token.Invalid so error policy
// stays with the caller.
package lexer

import (
	"fmt"

	"github.com/s0phia-le/Sloth/internal/diag"
	"github.com/s0phia-le/Sloth/internal/source"
	"github.com/s0phia-le/Sloth/internal/token"
)

// maxLexemeLen caps the captured text of one token. Longer runs are
// still consumed in full (positions stay exact) but Text keeps only the
// first maxLexemeLen bytes; the truncation is reported as a warning.
const maxLexemeLen = 255

// Lexer scans one file. It owns its cursor exclusively and must not be
// shared across goroutines.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

// New creates a lexer over an already loaded file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next token. After the input is exhausted it returns
// token.End with the fixed placeholder text; calling it again keeps
// returning End without disturbing position state.
func (lx *Lexer) Next() token.Token {
	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.End,
			Text: token.EndText,
			Pos:  lx.cursor.Pos(),
			Span: lx.emptySpan(),
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case IsDigit(ch):
		return lx.scanNumber()
	default:
		return lx.scanOperatorOrInvalid()
	}
}

// skipWhitespace advances past spaces, tabs, carriage returns, and
// newlines so no token ever starts on whitespace.
func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() && IsWhitespace(lx.cursor.Peek()) {
		lx.cursor.Advance()
	}
}

// lexeme captures the text of sp, applying the cap. The span itself
// always covers the full consumed run.
func (lx *Lexer) lexeme(sp source.Span) string {
	if sp.Len() <= maxLexemeLen {
		return string(lx.file.Content[sp.Start:sp.End])
	}
	lx.report(diag.LexOverlongLexeme, diag.SevWarning, sp,
		fmt.Sprintf("lexeme is %d bytes, keeping the first %d", sp.Len(), maxLexemeLen))
	return string(lx.file.Content[sp.Start : sp.Start+maxLexemeLen])
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
