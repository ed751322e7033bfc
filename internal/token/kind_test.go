package token_test

import (
	"testing"

	"github.com/s0phia-le/Sloth/internal/token"
)

func TestKindStrings(t *testing.T) {
	cases := map[token.Kind]string{
		token.Invalid:   "Invalid",
		token.End:       "End",
		token.Ident:     "Ident",
		token.Number:    "Number",
		token.String:    "String",
		token.Keyword:   "Keyword",
		token.Operator:  "Operator",
		token.Separator: "Separator",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
	if got := token.Kind(200).String(); got != "Unknown" {
		t.Fatalf("out-of-range kind should stringify to Unknown, got %q", got)
	}
}

func TestIsEnd(t *testing.T) {
	if !(token.Token{Kind: token.End}).IsEnd() {
		t.Fatal("End should be end")
	}
	if (token.Token{Kind: token.Ident}).IsEnd() {
		t.Fatal("Ident must not be end")
	}
}

func TestIsIdent(t *testing.T) {
	if !(token.Token{Kind: token.Ident}).IsIdent() {
		t.Fatal("Ident should be ident")
	}
	if (token.Token{Kind: token.Keyword}).IsIdent() {
		t.Fatal("Keyword must not be ident")
	}
}

func TestTokenString(t *testing.T) {
	tok := token.Token{Kind: token.Keyword, Text: "while", Pos: token.Pos{Line: 3, Col: 4}}
	if got := tok.String(); got != `Keyword("while") at 3:4` {
		t.Fatalf("unexpected String(): %q", got)
	}
	end := token.Token{Kind: token.End, Text: token.EndText, Pos: token.Pos{Line: 1, Col: 0}}
	if got := end.String(); got != "End at 1:0" {
		t.Fatalf("unexpected End String(): %q", got)
	}
}
