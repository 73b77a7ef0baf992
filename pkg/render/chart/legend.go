package chart

import (
	"strconv"

	"github.com/m0370/pedigree-drawer/pkg/pedigree"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/styles"
)

const (
	legendX          = 10.0
	legendLineHeight = 18.0
	legendReserve    = 120.0
)

var legendRows = [...]struct{ glyph, label string }{
	{"■", "Affected"},
	{"/", "Deceased"},
	{"P", "Proband"},
	{"*", "Verified"},
}

// legendElements draws the bottom-left legend: a bold title, the fixed
// marker rows, and one swatch row per canonical condition when condition
// colors are on. Condition rows grow the block upward so it stays clear of
// the canvas edge.
func legendElements(conds []pedigree.ConditionRef, height float64, showColors bool, th styles.Theme) []styles.Element {
	colorRows := 0
	if showColors {
		colorRows = len(conds)
	}
	startY := height - legendReserve - float64(colorRows)*legendLineHeight

	out := []styles.Element{styles.Text{
		ID: "legend_title",
		X:  legendX, Y: startY,
		Content: "Legend", Size: 11, Anchor: "start", Fill: "#000", Weight: "bold",
	}}

	y := startY
	for i, row := range legendRows {
		y += legendLineHeight
		out = append(out,
			styles.Text{
				ID: "legend_symbol_" + strconv.Itoa(i),
				X:  legendX + 5, Y: y,
				Content: row.glyph, Size: 10, Anchor: "start", Fill: "#000",
			},
			styles.Text{
				ID: "legend_desc_" + strconv.Itoa(i),
				X:  legendX + 25, Y: y,
				Content: row.label, Size: 10, Anchor: "start", Fill: th.MutedColor,
			},
		)
	}
	if !showColors {
		return out
	}
	for i, c := range conds {
		y += legendLineHeight
		out = append(out,
			styles.Rect{
				ID: "legend_swatch_" + strconv.Itoa(i),
				X:  legendX + 2, Y: y - 8, W: 10, H: 10,
				Fill: th.PaletteColor(i), Stroke: th.LineColor, Width: 1,
			},
			styles.Text{
				ID: "legend_cond_" + strconv.Itoa(i),
				X:  legendX + 25, Y: y,
				Content: c.Display, Size: 10, Anchor: "start", Fill: th.MutedColor,
			},
		)
	}
	return out
}
