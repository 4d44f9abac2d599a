package parser

import (
	"fmt"

	"github.com/cwbudde/logoscript/internal/lexer"
)

// SyntaxError is raised for any grammar violation, including duplicate
// top-level procedure definitions. It implements diag.PositionedError.
type SyntaxError struct {
	Msg string
	At  lexer.Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("SyntaxError: %s", e.Msg)
}

// Position implements diag.PositionedError.
func (e *SyntaxError) Position() lexer.Position {
	return e.At
}

func newSyntaxError(pos lexer.Position, format string, args ...any) *SyntaxError {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), At: pos}
}
