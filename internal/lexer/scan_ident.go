package lexer

import (
	"github.com/s0phia-le/Sloth/internal/token"
)

// scanIdentOrKeyword scans [A-Za-z_][A-Za-z0-9_]* and classifies it
// against the keyword set. Keywords are exact, case-sensitive matches;
// a truncated over-long run can never be one.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	pos := lx.cursor.Pos()

	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Advance()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.lexeme(sp)

	kind := token.Ident
	if token.IsKeyword(text) {
		kind = token.Keyword
	}
	return token.Token{Kind: kind, Text: text, Pos: pos, Span: sp}
}
