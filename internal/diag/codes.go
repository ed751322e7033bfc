package diag

import (
	"fmt"
)

// Code is a compact, stable identifier for a diagnostic condition.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical conditions. The 1000 block stays reserved for the scanner.
	LexInfo           Code = 1000
	LexUnknownChar    Code = 1001
	LexOverlongLexeme Code = 1002

	// IO conditions raised by the driver, not the scanner.
	IOLoadFileError Code = 4000
)

var codeDescription = map[Code]string{
	UnknownCode:       "unknown condition",
	LexInfo:           "lexical note",
	LexUnknownChar:    "character is not part of any token class",
	LexOverlongLexeme: "lexeme exceeds the maximum length and was truncated",
	IOLoadFileError:   "source file could not be loaded",
}

// ID renders the stable textual form, e.g. LEX1001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the short description of the condition.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
