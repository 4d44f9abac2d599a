package runtime

import (
	"fmt"

	"github.com/cwbudde/logoscript/internal/lexer"
)

// Position is re-exported for convenience; it is always a lexer.Position.
type Position = lexer.Position

// RuntimeError is the evaluator's error kind: undefined variable, type
// mismatch, wrong arity, division by zero, illegal return outside a
// procedure, missing field, or a redefinition conflict. It implements
// diag.PositionedError.
type RuntimeError struct {
	Msg string
	At  Position
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RuntimeError: %s", e.Msg)
}

// Position implements diag.PositionedError.
func (e *RuntimeError) Position() Position {
	return e.At
}

// NewRuntimeError builds a RuntimeError at pos with a formatted message.
func NewRuntimeError(pos Position, format string, args ...any) *RuntimeError {
	return &RuntimeError{Msg: fmt.Sprintf(format, args...), At: pos}
}

// Context is a single frame of the lexical scope chain: local variable
// bindings (elements), a procedure lookup table (definitions), and an
// optional parent frame.
type Context struct {
	elements    map[string]Value
	definitions map[string]Callable
	parent      *Context
}

// NewRoot creates the outermost context, with no parent. The caller
// (internal/builtins) populates its definitions with print/println/
// Turtle/True/False; internal/eval populates its definitions with the
// user's top-level procedures.
func NewRoot() *Context {
	return &Context{
		elements:    map[string]Value{},
		definitions: map[string]Callable{},
	}
}

// NewChild creates a context whose parent is parent. Used for if/while
// bodies (whose parent is the enclosing context) and for procedure
// invocations (whose parent is always the root context, never the
// caller — procedures do not close over the caller's locals).
func NewChild(parent *Context) *Context {
	return &Context{
		elements:    map[string]Value{},
		definitions: map[string]Callable{},
		parent:      parent,
	}
}

// Root walks the parent chain to the topmost context.
func (c *Context) Root() *Context {
	cur := c
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// DefineProc registers a procedure (built-in or user-defined) in this
// frame's definitions table. Used once per built-in/top-level procedure
// and once per call for the per-invocation `return` callable. An
// existing entry of the same name is overwritten: the parser rejects
// duplicate top-level ProcDefs, but a user procedure named like a
// built-in replaces that built-in, and the `return` binding registered
// by internal/eval replaces a user procedure named `return`.
func (c *Context) DefineProc(name string, proc Callable) {
	c.definitions[name] = proc
}

// SetLocal binds name directly in this frame's elements, bypassing the
// ancestor search DefineElement performs. Used exactly once per
// parameter when a procedure invocation is set up, so a parameter name
// that collides with a root-level variable shadows it instead of
// overwriting it.
func (c *Context) SetLocal(name string, value Value) {
	c.elements[name] = value
}

// Get looks up name: elements then definitions of this frame, recursing
// into the parent if not found here. Returns a RuntimeError stamped with
// pos if the name is undefined anywhere in the chain.
func (c *Context) Get(pos Position, name string) (Value, error) {
	if v, ok := c.elements[name]; ok {
		return v, nil
	}
	if v, ok := c.definitions[name]; ok {
		return v, nil
	}
	if c.parent != nil {
		return c.parent.Get(pos, name)
	}
	return nil, NewRuntimeError(pos, "Trying to access undefined variable: %s", name)
}

// findOwner returns the nearest frame (starting at c) that has a local
// element binding for name, or nil if none does.
func (c *Context) findOwner(name string) *Context {
	if _, ok := c.elements[name]; ok {
		return c
	}
	if c.parent != nil {
		return c.parent.findOwner(name)
	}
	return nil
}

// DefineElement implements assignment-by-name-resolution: writing
// `x = ...` updates the nearest enclosing element binding if one exists
// anywhere up the chain, else creates a new local binding in this frame.
// A name already bound as a procedure in this frame's definitions is a
// conflict, reported at pos.
func (c *Context) DefineElement(pos Position, name string, value Value) error {
	if _, ok := c.definitions[name]; ok {
		return NewRuntimeError(pos, "Redefinition of element")
	}
	if owner := c.findOwner(name); owner != nil {
		owner.elements[name] = value
		return nil
	}
	c.elements[name] = value
	return nil
}
