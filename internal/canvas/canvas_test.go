package canvas

import (
	"strings"
	"testing"
)

func TestAddTurtleStartsAtOrigin(t *testing.T) {
	c := New()
	id := c.AddTurtle()
	if id != 0 {
		t.Fatalf("expected id 0, got %d", id)
	}
	line := c.Line(id)
	if len(line) != 1 || line[0] != (Point{0, 0}) {
		t.Fatalf("expected a single origin point, got %v", line)
	}
	if c.Angle(id) != 0 {
		t.Fatalf("expected heading 0, got %v", c.Angle(id))
	}
}

func TestMoveTurtleAppendsRelativePoint(t *testing.T) {
	c := New()
	id := c.AddTurtle()
	c.MoveTurtle(id, 3, 4)
	c.MoveTurtle(id, -1, 2)
	line := c.Line(id)
	if len(line) != 3 {
		t.Fatalf("expected 3 points, got %d", len(line))
	}
	if line[1] != (Point{3, 4}) {
		t.Fatalf("expected (3,4), got %v", line[1])
	}
	if line[2] != (Point{2, 6}) {
		t.Fatalf("expected (2,6), got %v", line[2])
	}
}

func TestRotateTurtleOverwritesHeading(t *testing.T) {
	c := New()
	id := c.AddTurtle()
	c.RotateTurtle(id, 45)
	c.RotateTurtle(id, 90)
	if c.Angle(id) != 90 {
		t.Fatalf("expected overwritten heading 90, got %v", c.Angle(id))
	}
}

func TestMultipleTurtlesHaveIndependentState(t *testing.T) {
	c := New()
	a := c.AddTurtle()
	b := c.AddTurtle()
	if a == b {
		t.Fatalf("expected distinct ids")
	}
	c.MoveTurtle(a, 1, 1)
	if len(c.Line(b)) != 1 {
		t.Fatalf("turtle b should be unaffected by turtle a's move")
	}
	if c.NextID() != 2 {
		t.Fatalf("expected next_id 2, got %d", c.NextID())
	}
}

func TestEncodeProducesExpectedShape(t *testing.T) {
	c := New()
	id := c.AddTurtle()
	c.MoveTurtle(id, 10, 0)
	c.RotateTurtle(id, 30)

	doc, err := c.Encode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{`"turtle_lines"`, `"turtle_angles"`, `"next_id":1`} {
		if !strings.Contains(doc, want) {
			t.Fatalf("expected %s in %s", want, doc)
		}
	}
}
