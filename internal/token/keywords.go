package token

// The keyword set is closed and case-sensitive: only these six exact
// lowercase spellings lex as Keyword, everything else is Ident.
var keywords = map[string]struct{}{
	"if":     {},
	"else":   {},
	"while":  {},
	"return": {},
	"int":    {},
	"float":  {},
}

// IsKeyword reports whether the lexeme is one of the fixed keywords.
// The empty string is rejected by virtue of never matching.
func IsKeyword(lexeme string) bool {
	_, ok := keywords[lexeme]
	return ok
}

// operators is the fixed single-character operator set.
var operators = map[byte]struct{}{
	'+': {}, '-': {}, '*': {}, '/': {}, '=': {},
	'<': {}, '>': {}, '!': {}, '&': {}, '|': {},
}

// IsOperator reports whether b belongs to the operator set.
func IsOperator(b byte) bool {
	_, ok := operators[b]
	return ok
}
