package sink

import (
	"encoding/json"

	"github.com/m0370/pedigree-drawer/pkg/render/chart"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/styles"
)

type jsonScene struct {
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Font     string        `json:"font"`
	Elements []jsonElement `json:"elements"`
}

// jsonElement is a tagged union: exactly one payload field is set, matching
// Kind.
type jsonElement struct {
	Kind    string       `json:"kind"`
	ID      string       `json:"id"`
	Line    *jsonLine    `json:"line,omitempty"`
	Rect    *jsonRect    `json:"rect,omitempty"`
	Circle  *jsonCircle  `json:"circle,omitempty"`
	Polygon *jsonPolygon `json:"polygon,omitempty"`
	Path    *jsonPath    `json:"path,omitempty"`
	Text    *jsonText    `json:"text,omitempty"`
}

type jsonLine struct {
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
	Color  string  `json:"color"`
	Width  float64 `json:"width"`
	Dash   string  `json:"dash,omitempty"`
}

type jsonRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Fill   string  `json:"fill"`
	Stroke string  `json:"stroke"`
	Width  float64 `json:"width"`
}

type jsonCircle struct {
	CX     float64 `json:"cx"`
	CY     float64 `json:"cy"`
	R      float64 `json:"r"`
	Fill   string  `json:"fill"`
	Stroke string  `json:"stroke"`
	Width  float64 `json:"width"`
}

type jsonPolygon struct {
	Points [][2]float64 `json:"points"`
	Fill   string       `json:"fill"`
	Stroke string       `json:"stroke"`
	Width  float64      `json:"width"`
}

type jsonPath struct {
	D      string  `json:"d"`
	Fill   string  `json:"fill"`
	Stroke string  `json:"stroke"`
	Width  float64 `json:"width"`
}

type jsonText struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Content string  `json:"content"`
	Size    float64 `json:"size"`
	Anchor  string  `json:"anchor"`
	Fill    string  `json:"fill"`
	Weight  string  `json:"weight,omitempty"`
}

// RenderJSON exports the scene as a pretty-printed JSON document for tooling
// and tests. It carries everything needed to reproduce the SVG: canvas, font,
// and the full element list in emission order.
func RenderJSON(s *chart.Scene) ([]byte, error) {
	out := jsonScene{
		Width:    s.Width,
		Height:   s.Height,
		Font:     s.Font,
		Elements: make([]jsonElement, 0, len(s.Elements)),
	}
	for _, el := range s.Elements {
		out.Elements = append(out.Elements, buildJSONElement(el))
	}
	return json.MarshalIndent(out, "", "  ")
}

func buildJSONElement(el styles.Element) jsonElement {
	switch e := el.(type) {
	case styles.Line:
		return jsonElement{Kind: "line", ID: e.ID, Line: &jsonLine{
			X1: e.X1, Y1: e.Y1, X2: e.X2, Y2: e.Y2,
			Color: e.Color, Width: e.Width, Dash: e.Dash,
		}}
	case styles.Rect:
		return jsonElement{Kind: "rect", ID: e.ID, Rect: &jsonRect{
			X: e.X, Y: e.Y, W: e.W, H: e.H,
			Fill: e.Fill, Stroke: e.Stroke, Width: e.Width,
		}}
	case styles.Circle:
		return jsonElement{Kind: "circle", ID: e.ID, Circle: &jsonCircle{
			CX: e.CX, CY: e.CY, R: e.R,
			Fill: e.Fill, Stroke: e.Stroke, Width: e.Width,
		}}
	case styles.Polygon:
		pts := make([][2]float64, len(e.Points))
		for i, p := range e.Points {
			pts[i] = [2]float64{p.X, p.Y}
		}
		return jsonElement{Kind: "polygon", ID: e.ID, Polygon: &jsonPolygon{
			Points: pts, Fill: e.Fill, Stroke: e.Stroke, Width: e.Width,
		}}
	case styles.Path:
		return jsonElement{Kind: "path", ID: e.ID, Path: &jsonPath{
			D: e.D, Fill: e.Fill, Stroke: e.Stroke, Width: e.Width,
		}}
	case styles.Text:
		return jsonElement{Kind: "text", ID: e.ID, Text: &jsonText{
			X: e.X, Y: e.Y, Content: e.Content,
			Size: e.Size, Anchor: e.Anchor, Fill: e.Fill, Weight: e.Weight,
		}}
	default:
		return jsonElement{Kind: "unknown", ID: el.ElementID()}
	}
}
