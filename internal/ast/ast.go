// Package ast defines the abstract syntax tree produced by internal/parser
// and walked by internal/eval. Nodes are immutable once built; the
// evaluator never mutates them. Every node carries the source position of
// its first token, used solely for diagnostics, except ProcDef, which
// carries the position of the procedure name rather than of `fun`.
package ast

import "github.com/cwbudde/logoscript/internal/lexer"

// Position is re-exported so callers need not import internal/lexer just
// to read a node's location.
type Position = lexer.Position

// Node is implemented by every AST node.
type Node interface {
	Pos() Position
}

// Program is the root of a parsed source file: every top-level procedure
// definition and every top-level statement, in source order.
type Program struct {
	Definitions []*ProcDef
	Statements  []Stmt
}

// ProcDef is a user-defined procedure: `fun name(params) { body }`.
type ProcDef struct {
	NamePos Position
	Name    string
	Params  []string
	Body    *Block
}

func (d *ProcDef) Pos() Position { return d.NamePos }

// Block is a brace-delimited sequence of statements.
type Block struct {
	BracePos   Position
	Statements []Stmt
}

func (b *Block) Pos() Position { return b.BracePos }
