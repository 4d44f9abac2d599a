package lexer

import "github.com/cwbudde/logoscript/internal/reader"

// Position identifies where a token begins in the source, zero-based.
// It is a re-export of reader.Position so callers outside this package
// never need to import reader directly just to report a location.
type Position = reader.Position

// TokenKind classifies a Token.
type TokenKind int

// Token kinds.
const (
	ASSIGN TokenKind = iota
	EOF
	FUN
	IF
	ELSE
	WHILE
	OPEN_BLOCK
	CLOSE_BLOCK
	OPEN_PAREN
	CLOSE_PAREN
	ADD_OP
	MULT_OP
	UNARY_OP
	OR_OP
	AND_OP
	COMP_OP
	CONST_NUMBER
	CONST_STRING
	IDENTIFIER
	FIELD_OP
	COMMA
)

var kindNames = map[TokenKind]string{
	ASSIGN:       "ASSIGN",
	EOF:          "EOF",
	FUN:          "FUN",
	IF:           "IF",
	ELSE:         "ELSE",
	WHILE:        "WHILE",
	OPEN_BLOCK:   "OPEN_BLOCK",
	CLOSE_BLOCK:  "CLOSE_BLOCK",
	OPEN_PAREN:   "OPEN_PAREN",
	CLOSE_PAREN:  "CLOSE_PAREN",
	ADD_OP:       "ADD_OP",
	MULT_OP:      "MULT_OP",
	UNARY_OP:     "UNARY_OP",
	OR_OP:        "OR_OP",
	AND_OP:       "AND_OP",
	COMP_OP:      "COMP_OP",
	CONST_NUMBER: "CONST_NUMBER",
	CONST_STRING: "CONST_STRING",
	IDENTIFIER:   "IDENTIFIER",
	FIELD_OP:     "FIELD_OP",
	COMMA:        "COMMA",
}

// String renders the kind's name, for diagnostics and tests.
func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// reservedWords maps reserved identifier spellings to their keyword kind.
var reservedWords = map[string]TokenKind{
	"fun":   FUN,
	"if":    IF,
	"else":  ELSE,
	"while": WHILE,
}

// Token is a single lexical unit: its kind, the exact source spelling
// ("lexeme"), and the position of its first character. Numeric CONST
// tokens additionally carry the decoded float64 value; string CONST
// tokens carry the decoded (escapes-resolved, quotes-stripped) body.
type Token struct {
	Kind     TokenKind
	Lexeme   string
	Pos      Position
	NumValue float64
	StrValue string
}
