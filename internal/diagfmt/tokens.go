package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/s0phia-le/Sloth/internal/token"
)

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// FormatTokensPretty writes tokens in a human-readable listing:
// index, kind, quoted text, line:col of the first byte.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		fmt.Fprintf(w, "%3d: %-9s", i+1, tok.Kind.String())

		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}

		fmt.Fprintf(w, " at %d:%d\n", tok.Pos.Line, tok.Pos.Col)

		if tok.Kind == token.End {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Line: tok.Pos.Line,
			Col:  tok.Pos.Col,
		})
		if tok.Kind == token.End {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
