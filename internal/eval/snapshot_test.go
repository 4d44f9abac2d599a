package eval

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/logoscript/internal/builtins"
	"github.com/cwbudde/logoscript/internal/canvas"
	"github.com/cwbudde/logoscript/internal/lexer"
	"github.com/cwbudde/logoscript/internal/logging"
	"github.com/cwbudde/logoscript/internal/parser"
	"github.com/cwbudde/logoscript/internal/reader"
	"github.com/cwbudde/logoscript/internal/runtime"
)

// runEndToEnd mirrors what cmd/logoscript's run command and pkg/httpapi's
// handler both do: parse, populate a fresh root against a fresh canvas,
// execute, and report the printed log plus the canvas's wire encoding.
func runEndToEnd(t *testing.T, src string) (string, string) {
	t.Helper()
	prog, err := parser.ParseProgram(lexer.New(reader.NewString(src)))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	root := runtime.NewRoot()
	cv := canvas.New()
	sink := logging.NewBufferSink()
	builtins.Populate(root, cv, sink)

	if err := Execute(prog, root); err != nil {
		t.Fatalf("unexpected eval error: %v", err)
	}

	doc, err := cv.Encode()
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	return sink.String(), doc
}

// TestSnapshotSquare runs a four-sided turtle walk end to end and snapshots
// both the printed log and the resulting canvas JSON rather than asserting
// against hand-written golden strings.
func TestSnapshotSquare(t *testing.T) {
	src := `
t = Turtle()
i = 0
while (i < 4) {
  t.move(10)
  t.rotate(90)
  i = i + 1
}
println(t.get_x())
println(t.get_y())
`
	logOutput, canvasDoc := runEndToEnd(t, src)
	snaps.MatchSnapshot(t, "square_log", logOutput)
	snaps.MatchSnapshot(t, "square_canvas", canvasDoc)
}

// TestSnapshotFibonacciLog exercises recursion and print formatting
// together, distinct from TestScenarioFibonacci's value-only assertions.
func TestSnapshotFibonacciLog(t *testing.T) {
	src := `
fun fib(n) {
  if (n <= 1) { return(1) }
  return(fib(n-1)+fib(n-2))
}
i = 0
while (i < 6) {
  println(fib(i))
  i = i + 1
}
`
	logOutput, _ := runEndToEnd(t, src)
	snaps.MatchSnapshot(t, "fibonacci_log", logOutput)
}
