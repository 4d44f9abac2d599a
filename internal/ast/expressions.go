package ast

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// LogicOr is a `||`-joined operand list. A solitary operand is never
// wrapped — this node only appears when there are at least two operands.
type LogicOr struct {
	Operands []Expr
}

func (l *LogicOr) Pos() Position { return l.Operands[0].Pos() }
func (*LogicOr) exprNode()       {}

// LogicAnd is a `&&`-joined operand list, with the same non-solitary
// invariant as LogicOr.
type LogicAnd struct {
	Operands []Expr
}

func (l *LogicAnd) Pos() Position { return l.Operands[0].Pos() }
func (*LogicAnd) exprNode()       {}

// Relation is a single comparison. It is only constructed when a
// comparison operator is actually present.
type Relation struct {
	Lhs, Rhs Expr
	Op       string // one of == != < > <= >=
	OpPos    Position
}

func (r *Relation) Pos() Position { return r.Lhs.Pos() }
func (*Relation) exprNode()       {}

// AddTerm is one `(+|-) operand` pair following the first operand of Add.
type AddTerm struct {
	Op      string // "+" or "-"
	OpPos   Position
	Operand Expr
}

// Add is a left-to-right chain of +/- operations.
type Add struct {
	First Expr
	Rest  []AddTerm
}

func (a *Add) Pos() Position { return a.First.Pos() }
func (*Add) exprNode()       {}

// MulTerm is one `(*|/) operand` pair following the first operand of Mul.
type MulTerm struct {
	Op      string // "*" or "/"
	OpPos   Position
	Operand Expr
}

// Mul is a left-to-right chain of */ operations.
type Mul struct {
	First Expr
	Rest  []MulTerm
}

func (m *Mul) Pos() Position { return m.First.Pos() }
func (*Mul) exprNode()       {}

// Unary is a single leading +, -, or ! applied to a factor. Exactly one
// unary operator may precede a factor; a second consecutive one is a
// SyntaxError at parse time.
type Unary struct {
	OpPos Position
	Op    string // "+", "-", or "!"
	Inner Expr
}

func (u *Unary) Pos() Position { return u.OpPos }
func (*Unary) exprNode()       {}

// Postfix is implemented by FieldAccess and Call, the two operators that
// can follow an identifier in a left-associative postfix chain.
type Postfix interface {
	Node
	postfixNode()
}

// FieldAccess is `.name`.
type FieldAccess struct {
	DotPos Position
	Name   string
}

func (f *FieldAccess) Pos() Position { return f.DotPos }
func (*FieldAccess) postfixNode()    {}

// Call is `(args...)`.
type Call struct {
	ParenPos Position
	Args     []Expr
}

func (c *Call) Pos() Position { return c.ParenPos }
func (*Call) postfixNode()    {}

// Ident is a bare identifier, possibly followed by a postfix chain
// (`a.b(x, y).c`). Postfixes are applied left to right; each consumes the
// value of everything to its left.
type Ident struct {
	IdentPos  Position
	Name      string
	Postfixes []Postfix
}

func (i *Ident) Pos() Position { return i.IdentPos }
func (*Ident) exprNode()       {}

// ConstKind distinguishes the two literal kinds the lexer can produce.
type ConstKind int

const (
	NumberConst ConstKind = iota
	StringConst
)

// Const is a literal value: a number or a string.
type Const struct {
	ConstPos Position
	Kind     ConstKind
	Num      float64
	Str      string
}

func (c *Const) Pos() Position { return c.ConstPos }
func (*Const) exprNode()       {}
