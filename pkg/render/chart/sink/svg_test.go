package sink

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/m0370/pedigree-drawer/pkg/render/chart"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/styles"
)

const svgHeader = `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="200" height="120" viewBox="0 0 200 120">`

func renderOne(el styles.Element) string {
	s := &chart.Scene{Width: 200, Height: 120, Font: "Helvetica", Elements: []styles.Element{el}}
	return string(RenderSVG(s))
}

func TestRenderSVGElements(t *testing.T) {
	tests := []struct {
		name string
		el   styles.Element
		want string
	}{
		{
			name: "line",
			el:   styles.Line{ID: "down_I-1_II-1", X1: 100, Y1: 80, X2: 100, Y2: 140, Color: "#000", Width: 2},
			want: `  <line id="down_I-1_II-1" x1="100" y1="80" x2="100" y2="140" stroke="#000" stroke-width="2" />`,
		},
		{
			name: "dashed line",
			el:   styles.Line{ID: "adopt_A_L", X1: 74, Y1: 54, X2: 74, Y2: 106, Color: "#000", Width: 2, Dash: "4,3"},
			want: `  <line id="adopt_A_L" x1="74" y1="54" x2="74" y2="106" stroke="#000" stroke-width="2" stroke-dasharray="4,3" />`,
		},
		{
			name: "rect",
			el:   styles.Rect{ID: "sym_M_100_80", X: 80, Y: 60, W: 40, H: 40, Fill: "none", Stroke: "#000", Width: 2},
			want: `  <rect id="sym_M_100_80" x="80" y="60" width="40" height="40" fill="none" stroke="#000" stroke-width="2" />`,
		},
		{
			name: "circle",
			el:   styles.Circle{ID: "sym_F_100_80", CX: 100, CY: 80, R: 20, Fill: "#000", Stroke: "#000", Width: 2},
			want: `  <circle id="sym_F_100_80" cx="100" cy="80" r="20" fill="#000" stroke="#000" stroke-width="2" />`,
		},
		{
			name: "polygon",
			el: styles.Polygon{ID: "sym_U_100_80", Points: []styles.Point{
				{X: 100, Y: 60}, {X: 120, Y: 80}, {X: 100, Y: 100}, {X: 80, Y: 80},
			}, Fill: "none", Stroke: "#000", Width: 2},
			want: `  <polygon id="sym_U_100_80" points="100,60 120,80 100,100 80,80" fill="none" stroke="#000" stroke-width="2" />`,
		},
		{
			name: "path",
			el:   styles.Path{ID: "quad_A_1", D: "M 100,80 L 80,80 A 20,20 0 0 1 100,60 Z", Fill: "#e41a1c", Stroke: "none", Width: 0},
			want: `  <path id="quad_A_1" d="M 100,80 L 80,80 A 20,20 0 0 1 100,60 Z" fill="#e41a1c" stroke="none" stroke-width="0" />`,
		},
		{
			name: "text",
			el:   styles.Text{ID: "text_I-1_84_100", X: 100, Y: 84, Content: "48y", Size: 11, Anchor: "middle", Fill: "#000"},
			want: `  <text id="text_I-1_84_100" x="100" y="84" font-family="Helvetica" font-size="11" text-anchor="middle" fill="#000">48y</text>`,
		},
		{
			name: "bold text",
			el:   styles.Text{ID: "legend_title", X: 10, Y: 280, Content: "Legend", Size: 11, Anchor: "start", Fill: "#000", Weight: "bold"},
			want: `  <text id="legend_title" x="10" y="280" font-family="Helvetica" font-size="11" text-anchor="start" fill="#000" font-weight="bold">Legend</text>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderOne(tt.el)
			want := svgHeader + "\n" + tt.want + "\n</svg>\n"
			if got != want {
				t.Errorf("RenderSVG() = %q, want %q", got, want)
			}
		})
	}
}

func TestRenderSVGEscapesText(t *testing.T) {
	got := renderOne(styles.Text{
		ID: "text_A_84_100", X: 100, Y: 84,
		Content: `<b> & "q"`, Size: 11, Anchor: "middle", Fill: "#000",
	})
	if !strings.Contains(got, `>&lt;b&gt; &amp; &#34;q&#34;</text>`) {
		t.Errorf("RenderSVG() text content not escaped: %q", got)
	}
	if strings.Contains(got, `><b>`) {
		t.Errorf("RenderSVG() emitted raw markup inside text: %q", got)
	}
}

func TestRenderSVGFractionalCanvas(t *testing.T) {
	s := &chart.Scene{Width: 739.5, Height: 428, Font: "Helvetica"}
	got := string(RenderSVG(s))

	want := `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="739.5" height="428" viewBox="0 0 739.5 428">` + "\n</svg>\n"
	if got != want {
		t.Errorf("RenderSVG() = %q, want %q", got, want)
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	s := &chart.Scene{Width: 200, Height: 120, Font: "Helvetica", Elements: []styles.Element{
		styles.Rect{ID: "sym_M_100_80", X: 80, Y: 60, W: 40, H: 40, Fill: "none", Stroke: "#000", Width: 2},
		styles.Line{ID: "down_A_B", X1: 100, Y1: 100, X2: 100, Y2: 120, Color: "#000", Width: 2},
		styles.Text{ID: "text_A_84_100", X: 100, Y: 84, Content: "48y", Size: 11, Anchor: "middle", Fill: "#000"},
	}}

	first := RenderSVG(s)
	for i := 0; i < 5; i++ {
		if got := RenderSVG(s); !bytes.Equal(got, first) {
			t.Fatalf("RenderSVG() run %d differs from first run", i+1)
		}
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{40, "40"},
		{62.5, "62.5"},
		{0.1, "0.1"},
		{-6, "-6"},
		{139.75, "139.75"},
		{0, "0"},
	}
	for _, tt := range tests {
		if got := num(tt.v); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func ExampleRenderSVG() {
	scene := &chart.Scene{
		Width:  120,
		Height: 100,
		Font:   "Helvetica",
		Elements: []styles.Element{
			styles.Rect{ID: "sym_M_60_40", X: 40, Y: 20, W: 40, H: 40, Fill: "none", Stroke: "#000", Width: 2},
		},
	}
	fmt.Print(string(RenderSVG(scene)))
	// Output:
	// <svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="120" height="100" viewBox="0 0 120 100">
	//   <rect id="sym_M_60_40" x="40" y="20" width="40" height="40" fill="none" stroke="#000" stroke-width="2" />
	// </svg>
}
