// Package diag turns any positioned error (internal/lexer.Error,
// internal/parser.SyntaxError, internal/runtime.RuntimeError) into the
// CLI's "Error: <msg> / At: <location> / snippet with caret" output.
package diag

import (
	"fmt"
	"strings"

	"github.com/cwbudde/logoscript/internal/lexer"
)

// PositionedError is implemented by every error kind the evaluator
// pipeline can produce.
type PositionedError interface {
	error
	Position() lexer.Position
}

// contextLines is how many preceding source lines accompany the
// offending line in a CLI report.
const contextLines = 5

// Format renders err against source (the full program text) as a
// three-part message: header, up to contextLines of preceding context
// plus the offending line, and a caret under the offending column.
func Format(err PositionedError, source string) string {
	pos := err.Position()
	var sb strings.Builder

	fmt.Fprintf(&sb, "Error: %s\n", err.Error())
	fmt.Fprintf(&sb, "At: line %d, column %d\n", pos.Line, pos.Column)

	lines := strings.Split(source, "\n")
	if pos.Line < 0 || pos.Line >= len(lines) {
		return sb.String()
	}

	start := pos.Line - contextLines
	if start < 0 {
		start = 0
	}
	for i := start; i <= pos.Line; i++ {
		fmt.Fprintf(&sb, "%4d | %s\n", i, lines[i])
		if i == pos.Line {
			sb.WriteString(strings.Repeat(" ", 7+pos.Column))
			sb.WriteString("^\n")
		}
	}
	return sb.String()
}

// Message is the HTTP embedding's equivalent to Format, reduced to a
// single line for the `error` JSON field (no source snippet, since the
// response already carries no request file context beyond the code
// string the caller sent).
func Message(err PositionedError) string {
	pos := err.Position()
	return fmt.Sprintf("%s at line %d, column %d", err.Error(), pos.Line, pos.Column)
}
