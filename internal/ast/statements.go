package ast

// Stmt is implemented by every statement node: Assign, If, While, and
// ExprStmt (a bare expression evaluated for its side effects).
type Stmt interface {
	Node
	stmtNode()
}

// Assign is `name = expr`. The parser only ever produces this when the
// left-hand side was a bare identifier with no postfixes.
type Assign struct {
	NamePos Position
	EqPos   Position
	Name    string
	Expr    Expr
}

func (a *Assign) Pos() Position { return a.NamePos }
func (*Assign) stmtNode()       {}

// If is `if (cond) { then } [else { else }]`.
type If struct {
	IfPos     Position
	Cond      Expr
	Then      *Block
	ElseBlock *Block // nil if no else clause
}

func (i *If) Pos() Position { return i.IfPos }
func (*If) stmtNode()       {}

// While is `while (cond) { block }`.
type While struct {
	WhilePos Position
	Cond     Expr
	Body     *Block
}

func (w *While) Pos() Position { return w.WhilePos }
func (*While) stmtNode()       {}

// ExprStmt is an expression used as a statement; its value is discarded.
type ExprStmt struct {
	E Expr
}

func (e *ExprStmt) Pos() Position { return e.E.Pos() }
func (*ExprStmt) stmtNode()       {}
