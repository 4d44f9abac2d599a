// Package builtins wires the language's built-in definitions
// (print/println/Turtle/True/False) into a root runtime.Context. Turtle
// instances expose a field table of bound getter/setter/movement
// closures, and native procedures are a flat map of name to
// runtime.BuiltinFunc.
package builtins

import (
	"math"

	"github.com/cwbudde/logoscript/internal/canvas"
	"github.com/cwbudde/logoscript/internal/logging"
	"github.com/cwbudde/logoscript/internal/runtime"
)

// turtle is the single object kind the core provides. It implements
// runtime.Object: Field resolves a method name to a callable already
// bound to this instance, so the evaluator never threads a receiver
// through the call.
type turtle struct {
	x, y, angle float64
	id          int
	canvas      *canvas.Canvas
}

func (*turtle) Kind() string { return "OBJECT" }
func (t *turtle) String() string {
	return "Turtle"
}
func (*turtle) Truthy() bool { return true }

func (t *turtle) Field(name string) (runtime.Callable, bool) {
	switch name {
	case "get_x":
		return getter(func() float64 { return t.x }), true
	case "get_y":
		return getter(func() float64 { return t.y }), true
	case "move":
		return runtime.BuiltinFunc{Name: "move", Fn: t.move}, true
	case "rotate":
		return runtime.BuiltinFunc{Name: "rotate", Fn: t.rotate}, true
	case "set_angle":
		return runtime.BuiltinFunc{Name: "set_angle", Fn: t.setAngle}, true
	case "set_x":
		return runtime.BuiltinFunc{Name: "set_x", Fn: setter(func(v float64) { t.x = v })}, true
	case "set_y":
		return runtime.BuiltinFunc{Name: "set_y", Fn: setter(func(v float64) { t.y = v })}, true
	}
	return nil, false
}

func getter(f func() float64) runtime.BuiltinFunc {
	return runtime.BuiltinFunc{
		Name: "get",
		Fn: func(pos runtime.Position, root *runtime.Context, args []runtime.Value) (runtime.Value, error) {
			if err := requireArity(pos, 0, args); err != nil {
				return nil, err
			}
			return runtime.Number{Val: f()}, nil
		},
	}
}

func setter(set func(float64)) func(runtime.Position, *runtime.Context, []runtime.Value) (runtime.Value, error) {
	return func(pos runtime.Position, root *runtime.Context, args []runtime.Value) (runtime.Value, error) {
		if err := requireArity(pos, 1, args); err != nil {
			return nil, err
		}
		n, err := requireNumber(pos, args[0])
		if err != nil {
			return nil, err
		}
		set(n)
		return runtime.Unit{}, nil
	}
}

// move advances the turtle d units along its current heading:
// dx = d*sin(-theta), dy = d*cos(-theta). With this sign convention a
// heading of 0 moves along +y and a heading of 90 moves along -x.
func (t *turtle) move(pos runtime.Position, root *runtime.Context, args []runtime.Value) (runtime.Value, error) {
	if err := requireArity(pos, 1, args); err != nil {
		return nil, err
	}
	d, err := requireNumber(pos, args[0])
	if err != nil {
		return nil, err
	}
	rad := t.angle * math.Pi / 180
	dx := d * math.Sin(-rad)
	dy := d * math.Cos(-rad)
	t.x += dx
	t.y += dy
	t.canvas.MoveTurtle(t.id, dx, dy)
	return runtime.Unit{}, nil
}

// rotate adds deg degrees to the turtle's heading.
func (t *turtle) rotate(pos runtime.Position, root *runtime.Context, args []runtime.Value) (runtime.Value, error) {
	if err := requireArity(pos, 1, args); err != nil {
		return nil, err
	}
	deg, err := requireNumber(pos, args[0])
	if err != nil {
		return nil, err
	}
	t.angle += deg
	t.canvas.RotateTurtle(t.id, t.angle)
	return runtime.Unit{}, nil
}

// setAngle replaces the turtle's heading outright.
func (t *turtle) setAngle(pos runtime.Position, root *runtime.Context, args []runtime.Value) (runtime.Value, error) {
	if err := requireArity(pos, 1, args); err != nil {
		return nil, err
	}
	deg, err := requireNumber(pos, args[0])
	if err != nil {
		return nil, err
	}
	t.angle = deg
	t.canvas.RotateTurtle(t.id, t.angle)
	return runtime.Unit{}, nil
}

func requireArity(pos runtime.Position, want int, args []runtime.Value) error {
	if len(args) != want {
		return runtime.NewRuntimeError(pos, "Numbers of arguments don't match")
	}
	return nil
}

func requireNumber(pos runtime.Position, v runtime.Value) (float64, error) {
	n, ok := v.(runtime.Number)
	if !ok {
		return 0, runtime.NewRuntimeError(pos, "Unsupported operation for type %s", v.Kind())
	}
	return n.Val, nil
}

func turtleConstructor(cv *canvas.Canvas) runtime.BuiltinFunc {
	return runtime.BuiltinFunc{
		Name: "Turtle",
		Fn: func(pos runtime.Position, root *runtime.Context, args []runtime.Value) (runtime.Value, error) {
			if err := requireArity(pos, 0, args); err != nil {
				return nil, err
			}
			t := &turtle{canvas: cv}
			t.id = cv.AddTurtle()
			return t, nil
		},
	}
}

func printBuiltin(sink logging.Sink, newline bool) runtime.BuiltinFunc {
	name := "print"
	if newline {
		name = "println"
	}
	return runtime.BuiltinFunc{
		Name: name,
		Fn: func(pos runtime.Position, root *runtime.Context, args []runtime.Value) (runtime.Value, error) {
			if err := requireArity(pos, 1, args); err != nil {
				return nil, err
			}
			text := args[0].String()
			if newline {
				text += "\n"
			}
			sink.Print(text)
			return runtime.Unit{}, nil
		},
	}
}

// Populate registers print, println, Turtle, True, and False into root.
// cv is the canvas every Turtle() call will draw onto; sink receives
// print/println output.
func Populate(root *runtime.Context, cv *canvas.Canvas, sink logging.Sink) {
	root.DefineProc("print", printBuiltin(sink, false))
	root.DefineProc("println", printBuiltin(sink, true))
	root.DefineProc("Turtle", turtleConstructor(cv))
	if err := root.DefineElement(runtime.Position{}, "True", runtime.Bool{Val: true}); err != nil {
		panic(err)
	}
	if err := root.DefineElement(runtime.Position{}, "False", runtime.Bool{Val: false}); err != nil {
		panic(err)
	}
}
