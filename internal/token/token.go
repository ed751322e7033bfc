package token

import (
	"fmt"

	"github.com/s0phia-le/Sloth/internal/source"
)

// EndText is the fixed placeholder lexeme carried by End tokens.
const EndText = "<eof>"

// Pos is the position of a token's first byte.
// Line is 1-based; Col counts bytes consumed on the line, so the first
// byte of a line sits at Col 0.
type Pos struct {
	Line uint32
	Col  uint32
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Text string
	Pos  Pos
	Span source.Span
}

// IsEnd reports whether the token terminates the stream.
func (t Token) IsEnd() bool { return t.Kind == End }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

func (t Token) String() string {
	if t.Kind == End {
		return fmt.Sprintf("%s at %s", t.Kind, t.Pos)
	}
	return fmt.Sprintf("%s(%q) at %s", t.Kind, t.Text, t.Pos)
}
