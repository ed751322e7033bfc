// Package token defines the lexical token kinds of the Sloth language.
// Invariants:
//   - Token.Text is an independent string; it never aliases lexer state,
//     so a token may outlive the lexer that produced it.
//   - Token.Pos names the position of the token's FIRST byte
//     (Line 1-based, Col 0-based).
//   - Token.Span covers every consumed byte of the lexeme, even when
//     Text was truncated at the lexeme cap.
//   - String and Separator are reserved kinds: no scan path produces
//     them, but they stay declared for forward compatibility.
package token
