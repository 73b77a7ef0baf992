// Package route turns the family structure of a record into connector
// geometry: marriage lines, descent drops, sibship bars, child stubs, twin
// forks, and sibling-only bars. It reads symbol centers from a computed
// [layout.Layout] and emits plain line elements; symbols and text belong to
// the chart package.
package route

import (
	"math"
	"sort"
	"strings"

	"github.com/m0370/pedigree-drawer/pkg/pedigree"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/layout"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/styles"
)

const (
	// sibshipDropRatio sets the sibship bar at 75% of the drop from the
	// parents' row to the children's symbol tops, leaving room for the
	// parents' captions above it.
	sibshipDropRatio = 0.75

	// twinStem is the length of the shared vertical stem of a twin fork.
	twinStem = 14.0

	// mzTieRatio places the monozygotic tie bar along the twin diagonals.
	mzTieRatio = 0.45

	// orphanBarRise lifts a parentless sibling bar above the symbols.
	orphanBarRise = 15.0

	// adoptedDash is the stroke pattern of an adopted child's descent stub.
	adoptedDash = "6,4"
)

// Connectors produces every relationship line of the chart: spouse-family
// connectors first, then sibling-only bars, each group in input order.
func Connectors(rec *pedigree.Record, gens map[string]int, l *layout.Layout, th styles.Theme) []styles.Element {
	var out []styles.Element
	for _, rel := range rec.Relationships {
		if rel.IsFamily() {
			out = append(out, family(rec, gens, l, th, rel)...)
		}
	}
	for _, rel := range rec.Relationships {
		if !rel.IsFamily() {
			out = append(out, siblingBar(rec, gens, l, th, rel)...)
		}
	}
	return out
}

func family(rec *pedigree.Record, gens map[string]int, l *layout.Layout, th styles.Theme, rel pedigree.Relationship) []styles.Element {
	switch len(rel.Partners) {
	case 1:
		return singleParentLines(rec, l, th, rel)
	case 2:
		a, b := rel.Partners[0], rel.Partners[1]
		if gens[a] != gens[b] {
			return nil
		}
		out := spouseLines(l, th, rel)
		out = append(out, coupleChildLines(rec, l, th, rel)...)
		return out
	default:
		return nil
	}
}

// spouseLines draws the marriage segment between the facing symbol edges,
// plus the consanguinity double line or the divorce/separation strokes.
func spouseLines(l *layout.Layout, th styles.Theme, rel pedigree.Relationship) []styles.Element {
	a, b := rel.Partners[0], rel.Partners[1]
	pa, pb := l.Positions[a], l.Positions[b]
	y := pa.Y
	half := th.Half()

	var x1, x2 float64
	if pa.X <= pb.X {
		x1, x2 = pa.X+half, pb.X-half
	} else {
		x1, x2 = pa.X-half, pb.X+half
	}

	out := []styles.Element{
		line(styles.ID("spouse", rel.Type.String(), a, b), x1, y, x2, y, th),
	}

	switch rel.Type {
	case pedigree.RelationConsanguineous:
		const offset = 6.0
		out = append(out, line(styles.ID("spouse", "consanguineous2", a, b), x1, y+offset, x2, y+offset, th))
	case pedigree.RelationDivorced:
		mid := (x1 + x2) / 2
		out = append(out,
			line(styles.ID("divorce", "1", a, b), mid-6, y-10, mid-18, y+10, th),
			line(styles.ID("divorce", "2", a, b), mid+18, y-10, mid+6, y+10, th),
		)
	case pedigree.RelationSeparated:
		mid := (x1 + x2) / 2
		out = append(out, line(styles.ID("separated", a, b), mid-6, y-10, mid-18, y+10, th))
	}
	return out
}

// coupleChildLines draws the descent drop from the marriage midpoint, the
// sibship bar, and a stub (or twin fork) down to every child.
func coupleChildLines(rec *pedigree.Record, l *layout.Layout, th styles.Theme, rel pedigree.Relationship) []styles.Element {
	children := childPoints(rec, l, rel)
	if len(children) == 0 {
		return nil
	}
	a, b := rel.Partners[0], rel.Partners[1]
	pa, pb := l.Positions[a], l.Positions[b]
	half := th.Half()

	mx := (pa.X + pb.X) / 2
	parentY := pa.Y
	childTop := children[0].y - half
	for _, c := range children[1:] {
		childTop = math.Min(childTop, c.y-half)
	}
	midY := parentY + (childTop-parentY)*sibshipDropRatio

	out := []styles.Element{
		line(styles.ID("down", a, b), mx, parentY, mx, midY, th),
	}

	minX, maxX := children[0].x, children[0].x
	for _, c := range children[1:] {
		minX = math.Min(minX, c.x)
		maxX = math.Max(maxX, c.x)
	}
	if len(children) == 1 {
		minX = math.Min(mx, children[0].x)
		maxX = math.Max(mx, children[0].x)
	}
	out = append(out, line(styles.ID("sib", a, b), minX, midY, maxX, midY, th))

	groups, inTwin := twinGroups(children)
	for _, c := range children {
		if inTwin[c.id] {
			continue
		}
		stub := line(styles.ID("child", a, b, c.id), c.x, midY, c.x, c.y-half, th)
		if c.adopted {
			stub.Dash = adoptedDash
		}
		out = append(out, stub)
	}
	for _, grp := range groups {
		out = append(out, twinFork(grp, midY, half, th)...)
	}
	return out
}

// singleParentLines draws a lone vertical line to an only child, or the full
// T shape (drop, bar, stubs) for several children.
func singleParentLines(rec *pedigree.Record, l *layout.Layout, th styles.Theme, rel pedigree.Relationship) []styles.Element {
	children := childPoints(rec, l, rel)
	if len(children) == 0 {
		return nil
	}
	pid := rel.Partners[0]
	pp := l.Positions[pid]
	half := th.Half()

	childTop := children[0].y - half
	for _, c := range children[1:] {
		childTop = math.Min(childTop, c.y-half)
	}

	if len(children) == 1 {
		c := children[0]
		stub := line(styles.ID("child", pid, c.id), pp.X, pp.Y, pp.X, childTop, th)
		if c.adopted {
			stub.Dash = adoptedDash
		}
		return []styles.Element{stub}
	}

	midY := pp.Y + (childTop-pp.Y)*sibshipDropRatio
	out := []styles.Element{
		line(styles.ID("down", pid), pp.X, pp.Y, pp.X, midY, th),
	}
	minX, maxX := children[0].x, children[0].x
	for _, c := range children[1:] {
		minX = math.Min(minX, c.x)
		maxX = math.Max(maxX, c.x)
	}
	out = append(out, line(styles.ID("sib", pid), minX, midY, maxX, midY, th))
	for _, c := range children {
		stub := line(styles.ID("child", pid, c.id), c.x, midY, c.x, c.y-half, th)
		if c.adopted {
			stub.Dash = adoptedDash
		}
		out = append(out, stub)
	}
	return out
}

// siblingBar draws the bar for a parentless sibling group: a horizontal line
// above the symbols with a stub down to each member.
func siblingBar(rec *pedigree.Record, gens map[string]int, l *layout.Layout, th styles.Theme, rel pedigree.Relationship) []styles.Element {
	if len(rel.Siblings) < 2 {
		return nil
	}
	gen := gens[rel.Siblings[0]]
	for _, id := range rel.Siblings[1:] {
		if gens[id] != gen {
			return nil
		}
	}

	sorted := make([]string, len(rel.Siblings))
	copy(sorted, rel.Siblings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return l.Positions[sorted[i]].X < l.Positions[sorted[j]].X
	})

	half := th.Half()
	left, right := l.Positions[sorted[0]], l.Positions[sorted[len(sorted)-1]]
	y := left.Y - half - orphanBarRise

	out := []styles.Element{
		line(styles.ID("sibship", sorted[0]+"_"+sorted[1]), left.X, y, right.X, y, th),
	}
	for _, id := range sorted {
		p := l.Positions[id]
		out = append(out, line(styles.ID("sibship", "to", id), p.X, y, p.X, p.Y-half, th))
	}
	return out
}

// childPoint is a family child resolved to its drawing data.
type childPoint struct {
	id      string
	x, y    float64
	adopted bool
	twin    *pedigree.TwinLink
}

func childPoints(rec *pedigree.Record, l *layout.Layout, rel pedigree.Relationship) []childPoint {
	out := make([]childPoint, 0, len(rel.Children))
	for _, c := range rel.Children {
		in, ok := rec.Individual(c.ID)
		if !ok {
			continue
		}
		p, ok := l.Positions[c.ID]
		if !ok {
			continue
		}
		out = append(out, childPoint{
			id:      c.ID,
			x:       p.X,
			y:       p.Y,
			adopted: c.Adopted,
			twin:    in.Twin,
		})
	}
	return out
}

// twinGroups pairs up children that reference each other as twins. Groups
// are keyed "T_<id>_<id>" with the ids in lexical order and returned in
// first-member order; the second return marks every grouped child.
func twinGroups(children []childPoint) ([][]childPoint, map[string]bool) {
	index := make(map[string]childPoint, len(children))
	for _, c := range children {
		index[c.id] = c
	}

	var groups [][]childPoint
	inTwin := make(map[string]bool)
	for _, c := range children {
		if c.twin == nil || inTwin[c.id] {
			continue
		}
		partner, ok := index[c.twin.PartnerID]
		if !ok || inTwin[partner.id] {
			continue
		}
		groups = append(groups, []childPoint{c, partner})
		inTwin[c.id], inTwin[partner.id] = true, true
	}
	return groups, inTwin
}

func twinGroupID(members []childPoint) string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.id
	}
	sort.Strings(ids)
	return "T_" + strings.Join(ids, "_")
}

// twinFork draws the shared stem from the sibship bar, one diagonal per
// twin, and the monozygotic tie bar.
func twinFork(members []childPoint, midY, half float64, th styles.Theme) []styles.Element {
	sorted := make([]childPoint, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].x < sorted[j].x })

	grp := twinGroupID(sorted)
	left, right := sorted[0], sorted[len(sorted)-1]
	groupX := (left.x + right.x) / 2
	childTop := sorted[0].y - half
	for _, m := range sorted[1:] {
		childTop = math.Min(childTop, m.y-half)
	}
	branchY := midY + twinStem

	out := []styles.Element{
		line(styles.ID("twin", grp, "stem"), groupX, midY, groupX, branchY, th),
	}
	for _, m := range sorted {
		out = append(out, line(styles.ID("twin", grp, "to", m.id), groupX, branchY, m.x, childTop, th))
	}

	if len(sorted) == 2 && sorted[0].twin != nil && sorted[0].twin.Zygosity == pedigree.ZygosityMonozygotic {
		x1 := groupX + (left.x-groupX)*mzTieRatio
		x2 := groupX + (right.x-groupX)*mzTieRatio
		y := branchY + (childTop-branchY)*mzTieRatio
		out = append(out, line(styles.ID("twin", grp, "mz"), x1, y, x2, y, th))
	}
	return out
}

func line(id string, x1, y1, x2, y2 float64, th styles.Theme) styles.Line {
	return styles.Line{
		ID: id, X1: x1, Y1: y1, X2: x2, Y2: y2,
		Color: th.LineColor, Width: th.StrokeWidth,
	}
}
