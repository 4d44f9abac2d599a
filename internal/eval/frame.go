package eval

import "github.com/cwbudde/logoscript/internal/runtime"

// frame pairs a scope-chain context with the control-flow signal of its
// enclosing procedure invocation (or the program-level pseudo-invocation
// for top-level statements). If/While child frames share the parent
// frame's cf; a fresh procedure call allocates its own.
type frame struct {
	ctx *runtime.Context
	cf  *controlFlow
}

func (f *frame) child(ctx *runtime.Context) *frame {
	return &frame{ctx: ctx, cf: f.cf}
}
