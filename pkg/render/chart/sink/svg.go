package sink

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/m0370/pedigree-drawer/pkg/render/chart"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/styles"
)

// RenderSVG serializes the scene as a flat SVG document: no groups, no defs,
// no CSS classes, every attribute inline. The profile survives import into
// PowerPoint and similar editors that ignore styling indirection. Output is
// byte-identical across runs for the same scene.
func RenderSVG(s *chart.Scene) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(s.Width), num(s.Height), num(s.Width), num(s.Height))

	for _, el := range s.Elements {
		writeElement(&buf, el, s.Font)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writeElement(buf *bytes.Buffer, el styles.Element, font string) {
	switch e := el.(type) {
	case styles.Line:
		fmt.Fprintf(buf, `  <line id="%s" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"`,
			e.ID, num(e.X1), num(e.Y1), num(e.X2), num(e.Y2), e.Color, num(e.Width))
		if e.Dash != "" {
			fmt.Fprintf(buf, ` stroke-dasharray="%s"`, e.Dash)
		}
		buf.WriteString(" />\n")
	case styles.Rect:
		fmt.Fprintf(buf, `  <rect id="%s" x="%s" y="%s" width="%s" height="%s" fill="%s" stroke="%s" stroke-width="%s" />`+"\n",
			e.ID, num(e.X), num(e.Y), num(e.W), num(e.H), e.Fill, e.Stroke, num(e.Width))
	case styles.Circle:
		fmt.Fprintf(buf, `  <circle id="%s" cx="%s" cy="%s" r="%s" fill="%s" stroke="%s" stroke-width="%s" />`+"\n",
			e.ID, num(e.CX), num(e.CY), num(e.R), e.Fill, e.Stroke, num(e.Width))
	case styles.Polygon:
		fmt.Fprintf(buf, `  <polygon id="%s" points="%s" fill="%s" stroke="%s" stroke-width="%s" />`+"\n",
			e.ID, points(e.Points), e.Fill, e.Stroke, num(e.Width))
	case styles.Path:
		fmt.Fprintf(buf, `  <path id="%s" d="%s" fill="%s" stroke="%s" stroke-width="%s" />`+"\n",
			e.ID, e.D, e.Fill, e.Stroke, num(e.Width))
	case styles.Text:
		fmt.Fprintf(buf, `  <text id="%s" x="%s" y="%s" font-family="%s" font-size="%s" text-anchor="%s" fill="%s"`,
			e.ID, num(e.X), num(e.Y), font, num(e.Size), e.Anchor, e.Fill)
		if e.Weight != "" {
			fmt.Fprintf(buf, ` font-weight="%s"`, e.Weight)
		}
		fmt.Fprintf(buf, `>%s</text>`+"\n", styles.EscapeXML(e.Content))
	}
}

// num formats a coordinate in its shortest exact decimal form, so 40 stays
// "40" and 114.666… keeps full precision.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func points(pts []styles.Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(num(p.X))
		b.WriteByte(',')
		b.WriteString(num(p.Y))
	}
	return b.String()
}
