package canvas

import (
	"strconv"
	"strings"

	"github.com/tidwall/sjson"
)

// Encode renders the canvas as `turtle_lines` and `turtle_angles`
// objects keyed by turtle id (as strings, JSON's only key type) plus
// `next_id`. Built incrementally with sjson rather than a marshaled
// struct, since the id-keyed maps have no fixed shape to declare a
// struct for. The leading ':' on each path segment forces sjson to
// treat the numeric id as an object key instead of an array index.
func (c *Canvas) Encode() (string, error) {
	doc := "{}"
	var err error
	for _, id := range c.Turtles() {
		key := strconv.Itoa(id)
		if doc, err = sjson.SetRaw(doc, "turtle_lines.:"+key, encodeLine(c.Line(id))); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, "turtle_angles.:"+key, c.Angle(id)); err != nil {
			return "", err
		}
	}
	if doc, err = sjson.Set(doc, "next_id", c.NextID()); err != nil {
		return "", err
	}
	return doc, nil
}

func encodeLine(line []Point) string {
	pairs := make([]string, len(line))
	for i, p := range line {
		pairs[i] = "[" + formatNum(p.X) + "," + formatNum(p.Y) + "]"
	}
	return "[" + strings.Join(pairs, ",") + "]"
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
