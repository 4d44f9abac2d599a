package eval

import (
	"github.com/cwbudde/logoscript/internal/ast"
	"github.com/cwbudde/logoscript/internal/runtime"
)

// UserProcedure is a Callable wrapping a parsed fun definition.
type UserProcedure struct {
	Def *ast.ProcDef
}

func (p *UserProcedure) Kind() string   { return "PROCEDURE" }
func (p *UserProcedure) String() string { return "procedure " + p.Def.Name }
func (p *UserProcedure) Truthy() bool   { return true }

// Call binds args to the procedure's parameters in a fresh child context
// of root and runs its body to completion or to an active return.
func (p *UserProcedure) Call(pos runtime.Position, root *runtime.Context, args []runtime.Value) (runtime.Value, error) {
	if len(args) != len(p.Def.Params) {
		return nil, runtime.NewRuntimeError(pos, "Numbers of arguments don't match")
	}

	ctx := runtime.NewChild(root)
	for i, name := range p.Def.Params {
		ctx.SetLocal(name, args[i])
	}

	cf := newControlFlow()
	ctx.DefineProc("return", newReturnBuiltin(cf))

	f := &frame{ctx: ctx, cf: cf}
	if err := execBlock(f, p.Def.Body); err != nil {
		return nil, err
	}
	if cf.isActive() {
		return cf.value, nil
	}
	return runtime.Unit{}, nil
}

// newReturnBuiltin builds the per-invocation `return` procedure that
// sets cf as its non-local-exit signal. `return()` with no argument
// yields Unit; `return(v)` yields v; more than one argument is a
// RuntimeError.
func newReturnBuiltin(cf *controlFlow) runtime.BuiltinFunc {
	return runtime.BuiltinFunc{
		Name: "return",
		Fn: func(pos runtime.Position, root *runtime.Context, args []runtime.Value) (runtime.Value, error) {
			switch len(args) {
			case 0:
				cf.setReturn(runtime.Unit{})
			case 1:
				cf.setReturn(args[0])
			default:
				return nil, runtime.NewRuntimeError(pos, "Numbers of arguments don't match")
			}
			return runtime.Unit{}, nil
		},
	}
}
