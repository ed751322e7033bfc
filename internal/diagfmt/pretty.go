package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/s0phia-le/Sloth/internal/diag"
	"github.com/s0phia-le/Sloth/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan, color.Bold)
	posColor  = color.New(color.Bold)
)

// Pretty formats diagnostics for humans. It walks bag.Items() (call
// bag.Sort() beforehand) and prints, per diagnostic:
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//
// followed by the primary source line with a ^~~~ underline, then any
// notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printFinding(w, fs, d.Severity.String(), d.Code, d.Primary, d.Message, opts)
		for _, n := range d.Notes {
			printFinding(w, fs, "NOTE", 0, n.Span, n.Msg, opts)
		}
	}
}

func printFinding(w io.Writer, fs *source.FileSet, sev string, code diag.Code, sp source.Span, msg string, opts PrettyOpts) {
	file := fs.Get(sp.File)
	start, end := fs.Resolve(sp)

	head := sev
	if code != 0 {
		head = fmt.Sprintf("%s [%s]", sev, code.ID())
	}
	if opts.Color {
		head = severityColor(sev).Sprint(head)
	}

	pos := fmt.Sprintf("%s:%d:%d", file.Path, start.Line, start.Col)
	if opts.Color {
		pos = posColor.Sprint(pos)
	}
	fmt.Fprintf(w, "%s: %s: %s\n", pos, head, msg)

	printContext(w, file, start, end, opts)
}

func printContext(w io.Writer, file *source.File, start, end source.LineCol, opts PrettyOpts) {
	ctx := uint32(0)
	if opts.Context > 0 {
		ctx = uint32(opts.Context)
	}

	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	for line := first; line < start.Line; line++ {
		fmt.Fprintf(w, "%5d | %s\n", line, file.GetLine(line))
	}

	lineText := file.GetLine(start.Line)
	fmt.Fprintf(w, "%5d | %s\n", start.Line, lineText)

	// Underline: visual width of the prefix decides the caret column,
	// so wide runes in the line do not skew it.
	prefix := lineText
	if int(start.Col) <= len(lineText) {
		prefix = lineText[:start.Col]
	}
	pad := runewidth.StringWidth(prefix)

	span := uint32(1)
	if end.Line == start.Line && end.Col > start.Col {
		span = end.Col - start.Col
	}
	underline := "^"
	if span > 1 {
		underline += strings.Repeat("~", int(span-1))
	}
	if opts.Color {
		underline = errColor.Sprint(underline)
	}
	fmt.Fprintf(w, "      | %s%s\n", strings.Repeat(" ", pad), underline)

	for line := start.Line + 1; line <= start.Line+ctx; line++ {
		text := file.GetLine(line)
		if text == "" && line > uint32(len(file.LineIdx))+1 {
			break
		}
		fmt.Fprintf(w, "%5d | %s\n", line, text)
	}
}

func severityColor(sev string) *color.Color {
	switch sev {
	case "ERROR":
		return errColor
	case "WARNING":
		return warnColor
	default:
		return infoColor
	}
}
