// Package eval walks an internal/ast tree and executes it against an
// internal/runtime.Context chain: a type switch per node kind dispatches
// to the matching statement or expression handler.
package eval

import (
	"github.com/cwbudde/logoscript/internal/ast"
	"github.com/cwbudde/logoscript/internal/runtime"
)

// Execute registers every top-level procedure definition in root, then
// runs the top-level statements against root in source order. root
// should already carry the language's built-ins (internal/builtins.Populate).
func Execute(prog *ast.Program, root *runtime.Context) error {
	for _, def := range prog.Definitions {
		root.DefineProc(def.Name, &UserProcedure{Def: def})
	}
	root.DefineProc("return", topLevelReturn())

	f := &frame{ctx: root, cf: newControlFlow()}
	for _, stmt := range prog.Statements {
		if err := execStmt(f, stmt); err != nil {
			return err
		}
	}
	return nil
}

// topLevelReturn backs the `return` binding visible outside any
// procedure body. Every procedure invocation shadows it with its own
// signal-setting builtin (procedure.go's newReturnBuiltin); a bare
// top-level `return(...)` never finds that shadow and lands here
// instead, reporting that return was used outside a procedure.
func topLevelReturn() runtime.BuiltinFunc {
	return runtime.BuiltinFunc{
		Name: "return",
		Fn: func(pos runtime.Position, root *runtime.Context, args []runtime.Value) (runtime.Value, error) {
			return nil, runtime.NewRuntimeError(pos, "return outside procedure")
		},
	}
}

func execBlock(f *frame, block *ast.Block) error {
	for _, stmt := range block.Statements {
		if err := execStmt(f, stmt); err != nil {
			return err
		}
		if f.cf.isActive() {
			return nil
		}
	}
	return nil
}

func execStmt(f *frame, stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Assign:
		v, err := evalExpr(f, s.Expr)
		if err != nil {
			return err
		}
		return f.ctx.DefineElement(s.EqPos, s.Name, v)

	case *ast.If:
		cond, err := evalExpr(f, s.Cond)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			return execBlock(f.child(runtime.NewChild(f.ctx)), s.Then)
		}
		if s.ElseBlock != nil {
			return execBlock(f.child(runtime.NewChild(f.ctx)), s.ElseBlock)
		}
		return nil

	case *ast.While:
		// A single child context is reused across iterations; write-through
		// assignment semantics make this behaviorally identical to a fresh
		// context per iteration.
		child := f.child(runtime.NewChild(f.ctx))
		for {
			cond, err := evalExpr(f, s.Cond)
			if err != nil {
				return err
			}
			if !cond.Truthy() {
				return nil
			}
			if err := execBlock(child, s.Body); err != nil {
				return err
			}
			if f.cf.isActive() {
				return nil
			}
		}

	case *ast.ExprStmt:
		_, err := evalExpr(f, s.E)
		return err
	}
	return runtime.NewRuntimeError(stmt.Pos(), "unhandled statement type %T", stmt)
}

func evalExpr(f *frame, expr ast.Expr) (runtime.Value, error) {
	switch e := expr.(type) {
	case *ast.LogicOr:
		for _, operand := range e.Operands {
			v, err := evalExpr(f, operand)
			if err != nil {
				return nil, err
			}
			if v.Truthy() {
				return runtime.Bool{Val: true}, nil
			}
		}
		return runtime.Bool{Val: false}, nil

	case *ast.LogicAnd:
		for _, operand := range e.Operands {
			v, err := evalExpr(f, operand)
			if err != nil {
				return nil, err
			}
			if !v.Truthy() {
				return runtime.Bool{Val: false}, nil
			}
		}
		return runtime.Bool{Val: true}, nil

	case *ast.Relation:
		lhs, err := evalExpr(f, e.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := evalExpr(f, e.Rhs)
		if err != nil {
			return nil, err
		}
		return applyRelation(e.OpPos, e.Op, lhs, rhs)

	case *ast.Add:
		acc, err := evalExpr(f, e.First)
		if err != nil {
			return nil, err
		}
		for _, term := range e.Rest {
			rhs, err := evalExpr(f, term.Operand)
			if err != nil {
				return nil, err
			}
			acc, err = applyAdd(term.OpPos, term.Op, acc, rhs)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil

	case *ast.Mul:
		acc, err := evalExpr(f, e.First)
		if err != nil {
			return nil, err
		}
		for _, term := range e.Rest {
			rhs, err := evalExpr(f, term.Operand)
			if err != nil {
				return nil, err
			}
			acc, err = applyMul(term.OpPos, term.Op, acc, rhs)
			if err != nil {
				return nil, err
			}
		}
		return acc, nil

	case *ast.Unary:
		inner, err := evalExpr(f, e.Inner)
		if err != nil {
			return nil, err
		}
		return applyUnary(e.OpPos, e.Op, inner)

	case *ast.Ident:
		return evalIdent(f, e)

	case *ast.Const:
		if e.Kind == ast.NumberConst {
			return runtime.Number{Val: e.Num}, nil
		}
		return runtime.Str{Val: e.Str}, nil
	}
	return nil, runtime.NewRuntimeError(expr.Pos(), "unhandled expression type %T", expr)
}

func evalIdent(f *frame, e *ast.Ident) (runtime.Value, error) {
	v, err := f.ctx.Get(e.IdentPos, e.Name)
	if err != nil {
		return nil, err
	}
	for _, pf := range e.Postfixes {
		switch p := pf.(type) {
		case *ast.FieldAccess:
			obj, ok := v.(runtime.Object)
			if !ok {
				return nil, runtime.NewRuntimeError(p.DotPos, "Field access on non-object value %s", v.Kind())
			}
			callable, ok := obj.Field(p.Name)
			if !ok {
				return nil, runtime.NewRuntimeError(p.DotPos, "Object has no field named %s", p.Name)
			}
			v = callable

		case *ast.Call:
			callable, ok := v.(runtime.Callable)
			if !ok {
				return nil, runtime.NewRuntimeError(p.ParenPos, "Value of kind %s is not callable", v.Kind())
			}
			args := make([]runtime.Value, len(p.Args))
			for i, a := range p.Args {
				av, err := evalExpr(f, a)
				if err != nil {
					return nil, err
				}
				args[i] = av
			}
			result, err := callable.Call(p.ParenPos, f.ctx.Root(), args)
			if err != nil {
				return nil, err
			}
			v = result
		}
	}
	return v, nil
}
