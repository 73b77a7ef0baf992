package chart

import (
	"fmt"
	"math"
	"strconv"

	"github.com/m0370/pedigree-drawer/pkg/pedigree"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/styles"
)

// drawIndividual emits one person's elements in the order the emitter keeps:
// shape (with quadrant fills first when condition colors apply), inscribed
// glyphs, deceased slash, carrier line, verified star, proband/consultand
// arrow, count, adoption brackets, sequence number, caption block.
func drawIndividual(in *pedigree.Individual, cx, cy float64, number int, capLines []string, quadColors []string, th styles.Theme) []styles.Element {
	half := th.Half()
	affected := in.Has(pedigree.StatusAffected)

	fill := "none"
	if affected {
		fill = th.FillColor
	}
	glyphFill := "#000"
	if affected {
		glyphFill = "#fff"
	}

	var out []styles.Element

	if isPregnancyLoss(in) {
		out = append(out, styles.Polygon{
			ID: styles.ID("sym", in.ID),
			Points: []styles.Point{
				{X: cx, Y: cy - half*0.9},
				{X: cx + half*0.9, Y: cy + half*0.9},
				{X: cx - half*0.9, Y: cy + half*0.9},
			},
			Fill: fill, Stroke: th.LineColor, Width: th.StrokeWidth,
		})
		if isTermination(in) {
			out = append(out, styles.Line{
				ID: styles.ID("slash", in.ID),
				X1: cx - half*0.8, Y1: cy + half*0.8,
				X2: cx + half*0.8, Y2: cy - half*0.8,
				Color: glyphFill, Width: th.StrokeWidth,
			})
		}
	} else {
		out = append(out, genderShape(in, cx, cy, fill, quadColors, th)...)
		if in.Has(pedigree.StatusPregnancy) {
			out = append(out, inscribed(in.ID, cx, cy, "P", glyphFill))
		}
	}

	if in.Has(pedigree.StatusDonor) {
		out = append(out, inscribed(in.ID, cx, cy, "D", glyphFill))
	}
	if in.Has(pedigree.StatusSurrogate) {
		out = append(out, inscribed(in.ID, cx, cy, "S", glyphFill))
	}

	if in.Statuses.HasAny(pedigree.StatusDeceased, pedigree.StatusStillbirth) {
		out = append(out, styles.Line{
			ID: styles.ID("deceased", in.ID),
			X1: cx - half - 6, Y1: cy + half + 6,
			X2: cx + half + 6, Y2: cy - half - 6,
			Color: th.LineColor, Width: th.StrokeWidth,
		})
	}

	if in.Statuses.HasAny(pedigree.StatusCarrier, pedigree.StatusPresymptomaticCarrier) && !affected {
		out = append(out, styles.Line{
			ID: styles.ID("carrier", in.ID),
			X1: cx, Y1: cy - half,
			X2: cx, Y2: cy + half,
			Color: th.LineColor, Width: th.StrokeWidth,
		})
	}

	if in.Has(pedigree.StatusVerified) {
		out = append(out, textAt(in.ID, cx+half+10, cy+half-2, "*", 18, "start", "#000"))
	}

	if in.Statuses.HasAny(pedigree.StatusProband, pedigree.StatusConsultand) {
		sx, sy := cx-half-18, cy+half+18
		out = append(out, arrow(styles.ID("arrow", in.ID), sx, sy, cx-half-2, cy+half+2, th)...)
		if in.Has(pedigree.StatusProband) {
			out = append(out, textAt(in.ID, sx-4, sy+10, "P", 12, "middle", "#000"))
		}
	}

	if in.Count >= 2 {
		label := strconv.Itoa(in.Count)
		if in.CountApprox {
			label = "~" + label
		}
		out = append(out, inscribed(in.ID, cx, cy, label, glyphFill))
	}

	if in.Adopted {
		out = append(out, adoptionBrackets(in.ID, cx, cy, half, th)...)
	}

	out = append(out, textAt(in.ID, cx+half+4, cy-half-2, strconv.Itoa(number), 10, "start", "#000"))

	startY := cy + half + th.CaptionOffset
	for i, line := range capLines {
		out = append(out, textAt(in.ID, cx, startY+float64(i)*th.CaptionLineHeight, line, th.CaptionFontSize, "middle", "#000"))
	}
	return out
}

// genderShape draws the base symbol: square for male, circle for female,
// diamond otherwise. With quadrant colors the fills go underneath and the
// outline is drawn unfilled on top.
func genderShape(in *pedigree.Individual, cx, cy float64, fill string, quadColors []string, th styles.Theme) []styles.Element {
	var out []styles.Element
	if len(quadColors) > 0 {
		out = append(out, quadrantFills(in.ID, in.Gender, cx, cy, th.Half(), quadColors)...)
		fill = "none"
	}

	half := th.Half()
	ix, iy := strconv.Itoa(int(cx)), strconv.Itoa(int(cy))
	switch in.Gender {
	case pedigree.GenderMale:
		out = append(out, styles.Rect{
			ID: styles.ID("sym", "M", ix, iy),
			X:  cx - half, Y: cy - half, W: th.SymbolSize, H: th.SymbolSize,
			Fill: fill, Stroke: th.LineColor, Width: th.StrokeWidth,
		})
	case pedigree.GenderFemale:
		out = append(out, styles.Circle{
			ID: styles.ID("sym", "F", ix, iy),
			CX: cx, CY: cy, R: half,
			Fill: fill, Stroke: th.LineColor, Width: th.StrokeWidth,
		})
	default:
		out = append(out, styles.Polygon{
			ID: styles.ID("sym", "U", ix, iy),
			Points: []styles.Point{
				{X: cx, Y: cy - half},
				{X: cx + half, Y: cy},
				{X: cx, Y: cy + half},
				{X: cx - half, Y: cy},
			},
			Fill: fill, Stroke: th.LineColor, Width: th.StrokeWidth,
		})
	}
	return out
}

// quadrantFills colors up to four quadrants of the symbol, one per condition,
// in reading order: upper left, upper right, lower left, lower right.
func quadrantFills(id string, g pedigree.Gender, cx, cy, half float64, colors []string) []styles.Element {
	if len(colors) > 4 {
		colors = colors[:4]
	}
	var out []styles.Element
	for i, color := range colors {
		qid := styles.ID("quad", id, strconv.Itoa(i+1))
		switch g {
		case pedigree.GenderMale:
			x, y := cx-half, cy-half
			if i%2 == 1 {
				x = cx
			}
			if i >= 2 {
				y = cy
			}
			out = append(out, styles.Rect{ID: qid, X: x, Y: y, W: half, H: half, Fill: color, Stroke: "none"})
		case pedigree.GenderFemale:
			out = append(out, styles.Path{ID: qid, D: quarterDisc(cx, cy, half, i), Fill: color, Stroke: "none"})
		default:
			out = append(out, styles.Polygon{ID: qid, Points: diamondQuarter(cx, cy, half, i), Fill: color, Stroke: "none"})
		}
	}
	return out
}

// quarterDisc is one quarter of a circle as a path: center, radius to the
// quadrant's leading edge, a clockwise arc to its trailing edge, close.
func quarterDisc(cx, cy, r float64, quadrant int) string {
	var x1, y1, x2, y2 float64
	switch quadrant {
	case 0:
		x1, y1, x2, y2 = cx-r, cy, cx, cy-r
	case 1:
		x1, y1, x2, y2 = cx, cy-r, cx+r, cy
	case 2:
		x1, y1, x2, y2 = cx, cy+r, cx-r, cy
	default:
		x1, y1, x2, y2 = cx+r, cy, cx, cy+r
	}
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return fmt.Sprintf("M %s,%s L %s,%s A %s,%s 0 0 1 %s,%s Z",
		f(cx), f(cy), f(x1), f(y1), f(r), f(r), f(x2), f(y2))
}

// diamondQuarter is one quarter of the diamond: the center and two adjacent
// corners.
func diamondQuarter(cx, cy, half float64, quadrant int) []styles.Point {
	top := styles.Point{X: cx, Y: cy - half}
	right := styles.Point{X: cx + half, Y: cy}
	bottom := styles.Point{X: cx, Y: cy + half}
	left := styles.Point{X: cx - half, Y: cy}
	center := styles.Point{X: cx, Y: cy}
	switch quadrant {
	case 0:
		return []styles.Point{center, left, top}
	case 1:
		return []styles.Point{center, top, right}
	case 2:
		return []styles.Point{center, bottom, left}
	default:
		return []styles.Point{center, right, bottom}
	}
}

// arrow draws the proband pointer as an explicit shaft plus triangle head;
// marker defs are not part of the output profile.
func arrow(id string, x1, y1, x2, y2 float64, th styles.Theme) []styles.Element {
	out := []styles.Element{styles.Line{
		ID: id + "_shaft",
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		Color: th.LineColor, Width: th.StrokeWidth,
	}}

	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length <= 1e-6 {
		return out
	}
	ux, uy := dx/length, dy/length
	const headLen, headWidth = 10.0, 7.0
	bx, by := x2-ux*headLen, y2-uy*headLen
	px, py := -uy, ux
	out = append(out, styles.Polygon{
		ID: id + "_head",
		Points: []styles.Point{
			{X: x2, Y: y2},
			{X: bx + px*headWidth/2, Y: by + py*headWidth/2},
			{X: bx - px*headWidth/2, Y: by - py*headWidth/2},
		},
		Fill: "#000", Stroke: "none",
	})
	return out
}

// adoptionBrackets draws [ ] around the symbol: verticals 6 px outside the
// shape with 10 px caps top and bottom.
func adoptionBrackets(id string, cx, cy, half float64, th styles.Theme) []styles.Element {
	const pad, capLen = 6.0, 10.0
	lx, rx := cx-half-pad, cx+half+pad
	ty, by := cy-half-pad, cy+half+pad

	mk := func(suffix string, x1, y1, x2, y2 float64) styles.Line {
		return styles.Line{
			ID: styles.ID("adopt", id, suffix),
			X1: x1, Y1: y1, X2: x2, Y2: y2,
			Color: th.LineColor, Width: th.StrokeWidth,
		}
	}
	return []styles.Element{
		mk("L", lx, ty, lx, by),
		mk("R", rx, ty, rx, by),
		mk("LT", lx, ty, lx+capLen, ty),
		mk("LB", lx, by, lx+capLen, by),
		mk("RT", rx-capLen, ty, rx, ty),
		mk("RB", rx-capLen, by, rx, by),
	}
}

// inscribed centers a glyph inside the symbol.
func inscribed(owner string, cx, cy float64, s, fill string) styles.Text {
	return textAt(owner, cx, cy+4, s, 14, "middle", fill)
}

// textAt builds a text element with the positional id scheme shared by all
// per-person text.
func textAt(owner string, x, y float64, s string, size float64, anchor, fill string) styles.Text {
	return styles.Text{
		ID:      styles.ID("text", owner, strconv.Itoa(int(y)), strconv.Itoa(int(x))),
		X:       x, Y: y,
		Content: s, Size: size, Anchor: anchor, Fill: fill,
	}
}

// isPregnancyLoss reports whether the individual renders as the small
// triangle instead of a gender shape.
func isPregnancyLoss(in *pedigree.Individual) bool {
	if in.Statuses.HasAny(pedigree.StatusMiscarriage, pedigree.StatusInducedAbortion) {
		return true
	}
	if isEctopic(in) {
		return true
	}
	p := in.Pregnancy
	return p != nil && (p.Type == pedigree.PregnancySAB || p.Type == pedigree.PregnancyTOP)
}

// isTermination reports whether the loss triangle carries the TOP slash.
func isTermination(in *pedigree.Individual) bool {
	if in.Has(pedigree.StatusInducedAbortion) {
		return true
	}
	return in.Pregnancy != nil && in.Pregnancy.Type == pedigree.PregnancyTOP
}
