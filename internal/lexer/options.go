package lexer

import (
	"github.com/s0phia-le/Sloth/internal/diag"
	"github.com/s0phia-le/Sloth/internal/source"
)

// Options configures a Lexer.
type Options struct {
	// Reporter receives scan-time findings (unknown characters,
	// truncated lexemes). May be nil — findings are dropped and
	// scanning continues; Next never fails either way.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}
