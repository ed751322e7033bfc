package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates a character no scanner recognized.
	Invalid Kind = iota
	// End marks the end of the source input.
	End
	// Ident represents an identifier token.
	Ident
	// Number represents a run of decimal digits.
	Number
	// String is reserved; the lexer does not scan string literals yet.
	String
	// Keyword represents one of the fixed keyword strings.
	Keyword
	// Operator represents a single-character operator.
	Operator
	// Separator is reserved; punctuation currently lexes as Invalid.
	Separator
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case End:
		return "End"
	case Ident:
		return "Ident"
	case Number:
		return "Number"
	case String:
		return "String"
	case Keyword:
		return "Keyword"
	case Operator:
		return "Operator"
	case Separator:
		return "Separator"
	}
	return "Unknown"
}
