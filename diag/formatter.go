package diag

import (
	"fmt"
	"io"
	"strings"
)

// Formatter renders diagnostics with source code snippets and caret
// underlines. The source text is supplied up front because this layer never
// performs file I/O of its own.
type Formatter struct {
	out    io.Writer
	source string
}

// NewFormatter creates a formatter that writes to out, underlining spans
// against the provided source text.
func NewFormatter(out io.Writer, source string) *Formatter {
	return &Formatter{
		out:    out,
		source: source,
	}
}

// Format renders a single diagnostic.
func (f *Formatter) Format(d Diagnostic) {
	f.printHeader(d)

	if !d.Span.IsValid() {
		f.printHelp(d)
		return
	}

	lines := strings.Split(f.source, "\n")
	if d.Span.Line > len(lines) {
		fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
		f.printHelp(d)
		return
	}

	lineContent := lines[d.Span.Line-1]
	lineNumStr := fmt.Sprintf("%d", d.Span.Line)
	pad := strings.Repeat(" ", len(lineNumStr))

	fmt.Fprintf(f.out, "  --> %s\n", d.Span.String())
	fmt.Fprintf(f.out, " %s |\n", pad)
	fmt.Fprintf(f.out, " %s | %s\n", lineNumStr, lineContent)
	fmt.Fprintf(f.out, " %s | %s\n", pad, f.underline(d.Span, lineContent))

	f.printHelp(d)
}

// underline builds the caret marker row for a span on its source line.
func (f *Formatter) underline(span Span, lineContent string) string {
	start := span.Column - 1
	if start > len(lineContent) {
		start = len(lineContent)
	}

	width := span.End - span.Start
	if width < 1 {
		width = 1
	}
	if start+width > len(lineContent)+1 {
		width = len(lineContent) + 1 - start
		if width < 1 {
			width = 1
		}
	}

	return strings.Repeat(" ", start) + strings.Repeat("^", width)
}

// printHeader prints the severity, code and message line.
func (f *Formatter) printHeader(d Diagnostic) {
	severity := string(d.Severity)
	if severity == "" {
		severity = "error"
	}

	if d.Code != "" {
		fmt.Fprintf(f.out, "%s[%s]: %s\n", severity, d.Code, d.Message)
	} else {
		fmt.Fprintf(f.out, "%s: %s\n", severity, d.Message)
	}
}

// printHelp prints notes and help text, if present.
func (f *Formatter) printHelp(d Diagnostic) {
	for _, note := range d.Notes {
		fmt.Fprintf(f.out, "  = note: %s\n", note)
	}

	if d.Help != "" {
		fmt.Fprintf(f.out, "help: %s\n", d.Help)
	}
}
