package styles

import "strings"

const idMaxLen = 180

// Element is a single drawable scene item. Every element carries a stable id
// and its full presentation inline, so sinks can emit it without lookups.
type Element interface {
	ElementID() string
}

// Point is one vertex of a polygon.
type Point struct {
	X, Y float64
}

// Line is a straight stroke. Dash is a stroke-dasharray value; empty means
// solid.
type Line struct {
	ID     string
	X1, Y1 float64
	X2, Y2 float64
	Color  string
	Width  float64
	Dash   string
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	ID     string
	X, Y   float64
	W, H   float64
	Fill   string
	Stroke string
	Width  float64
}

// Circle is a full circle around a center point.
type Circle struct {
	ID     string
	CX, CY float64
	R      float64
	Fill   string
	Stroke string
	Width  float64
}

// Polygon is a closed shape. Stroke "none" gives a pure fill (arrow heads).
type Polygon struct {
	ID     string
	Points []Point
	Fill   string
	Stroke string
	Width  float64
}

// Path is an arbitrary outline in SVG path syntax (quadrant fills).
type Path struct {
	ID     string
	D      string
	Fill   string
	Stroke string
	Width  float64
}

// Text is a single text line. Anchor is start, middle, or end; Weight is
// empty for normal text or "bold".
type Text struct {
	ID      string
	X, Y    float64
	Content string
	Size    float64
	Anchor  string
	Fill    string
	Weight  string
}

func (l Line) ElementID() string    { return l.ID }
func (r Rect) ElementID() string    { return r.ID }
func (c Circle) ElementID() string  { return c.ID }
func (p Polygon) ElementID() string { return p.ID }
func (p Path) ElementID() string    { return p.ID }
func (t Text) ElementID() string    { return t.ID }

// ID builds a stable element id from its parts: empty parts are skipped, the
// rest are joined with "_", every character outside [A-Za-z0-9_-] becomes
// "_", and the result is capped at 180 characters.
func ID(parts ...string) string {
	var joined strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if joined.Len() > 0 {
			joined.WriteByte('_')
		}
		joined.WriteString(p)
	}
	out := make([]byte, 0, joined.Len())
	for _, r := range joined.String() {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			out = append(out, byte(r))
		default:
			out = append(out, '_')
		}
	}
	if len(out) > idMaxLen {
		out = out[:idMaxLen]
	}
	return string(out)
}
