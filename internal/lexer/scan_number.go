package lexer

import (
	"github.com/s0phia-le/Sloth/internal/token"
)

// scanNumber scans a run of decimal digits. No floats, no signs, no
// base prefixes — the language defines only this form. A digit run can
// never match a keyword, so no lookup happens here.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	pos := lx.cursor.Pos()

	for !lx.cursor.EOF() && IsDigit(lx.cursor.Peek()) {
		lx.cursor.Advance()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Number, Text: lx.lexeme(sp), Pos: pos, Span: sp}
}
