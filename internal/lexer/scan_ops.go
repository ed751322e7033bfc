package lexer

import (
	"fmt"

	"github.com/s0phia-le/Sloth/internal/diag"
	"github.com/s0phia-le/Sloth/internal/token"
)

// scanOperatorOrInvalid consumes exactly one byte. Operator-set members
// become Operator tokens; everything else is the catch-all Invalid, so
// the scanner never refuses to produce a token.
func (lx *Lexer) scanOperatorOrInvalid() token.Token {
	start := lx.cursor.Mark()
	pos := lx.cursor.Pos()

	ch := lx.cursor.Peek()
	lx.cursor.Advance()
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if token.IsOperator(ch) {
		return token.Token{Kind: token.Operator, Text: text, Pos: pos, Span: sp}
	}

	lx.report(diag.LexUnknownChar, diag.SevError, sp,
		fmt.Sprintf("unknown character %q", ch))
	return token.Token{Kind: token.Invalid, Text: text, Pos: pos, Span: sp}
}
