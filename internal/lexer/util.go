package lexer

// Classification predicates. All are total and stateless; the language
// is ASCII-only, so no locale or Unicode awareness applies.

// IsWhitespace reports whether b separates tokens.
func IsWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsLetter reports whether b is an ASCII letter.
func IsLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentStart(b byte) bool {
	return b == '_' || IsLetter(b)
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || IsDigit(b)
}
