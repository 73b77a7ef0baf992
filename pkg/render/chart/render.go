package chart

import (
	"strings"

	"github.com/m0370/pedigree-drawer/pkg/pedigree"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/layout"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/route"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/styles"
)

// Options toggles optional chart furniture on top of what the record's meta
// block requests. Either source may switch a feature on.
type Options struct {
	Legend          bool
	ConditionColors bool
}

// Scene is a rendered chart: the canvas, the font, and a flat ordered
// element list. Sinks serialize it without reordering; rendering the same
// record twice yields the same scene.
type Scene struct {
	Width    float64
	Height   float64
	Font     string
	Elements []styles.Element
}

// Render lays out the record and assembles the scene. Emission order is
// fixed: generation labels, metadata footer, legend, family connectors and
// sibling bars in input order, then every individual in input order.
func Render(rec *pedigree.Record, gens map[string]int, th styles.Theme, opts Options) (*Scene, error) {
	capLines, capMetrics := buildCaptions(rec, th)
	l, err := layout.Compute(rec, gens, capMetrics, th)
	if err != nil {
		return nil, err
	}

	showLegend := opts.Legend || rec.Meta.ShowLegend
	showColors := opts.ConditionColors || rec.Meta.ShowConditionColors

	conds := rec.Conditions()
	colorByKey := make(map[string]string, len(conds))
	if showColors {
		for i, c := range conds {
			colorByKey[c.Key] = th.PaletteColor(i)
		}
	}

	var els []styles.Element
	for g, rowY := range l.RowY {
		label := romanNumeral(g + 1)
		els = append(els, styles.Text{
			ID: styles.ID("gen", label),
			X:  8, Y: rowY + 4,
			Content: label, Size: 14, Anchor: "start", Fill: th.MutedColor,
		})
	}
	if date := strings.TrimSpace(rec.Meta.Date); date != "" {
		els = append(els, styles.Text{
			ID: "meta",
			X:  l.Width - 8, Y: l.Height - 10,
			Content: date, Size: 12, Anchor: "end", Fill: th.MutedColor,
		})
	}
	if showLegend {
		els = append(els, legendElements(conds, l.Height, showColors, th)...)
	}

	els = append(els, route.Connectors(rec, gens, l, th)...)

	for _, in := range rec.Individuals {
		pos := l.Positions[in.ID]
		els = append(els, drawIndividual(in, pos.X, pos.Y, l.Numbers[in.ID],
			capLines[in.ID], conditionColors(in, colorByKey), th)...)
	}

	return &Scene{Width: l.Width, Height: l.Height, Font: th.FontFamily, Elements: els}, nil
}

// conditionColors maps an affected individual's distinct conditions to their
// palette colors in diagnosis order, capped at the four quadrants. Unaffected
// individuals and loss triangles stay monochrome.
func conditionColors(in *pedigree.Individual, colorByKey map[string]string) []string {
	if len(colorByKey) == 0 || !in.Has(pedigree.StatusAffected) || len(in.Diagnoses) == 0 {
		return nil
	}
	var out []string
	seen := make(map[string]bool, len(in.Diagnoses))
	for _, dx := range in.Diagnoses {
		if dx.Key == "" || seen[dx.Key] {
			continue
		}
		seen[dx.Key] = true
		if c, ok := colorByKey[dx.Key]; ok {
			out = append(out, c)
		}
		if len(out) == 4 {
			break
		}
	}
	return out
}

var romanVals = [...]struct {
	v int
	s string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// romanNumeral renders a 1-based generation index as an uppercase roman
// numeral. Values below 1 yield "".
func romanNumeral(n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range romanVals {
		for n >= p.v {
			b.WriteString(p.s)
			n -= p.v
		}
	}
	return b.String()
}
