package layout

import (
	"math"
	"sort"

	"github.com/m0370/pedigree-drawer/pkg/errors"
	"github.com/m0370/pedigree-drawer/pkg/pedigree"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/styles"
)

const (
	// sibshipDropRatio places the sibship bar at 75% of the way from the
	// parents' row to the children's symbol tops, leaving room above it for
	// the parents' caption blocks.
	sibshipDropRatio = 0.75

	// markerPad is the horizontal and vertical room reserved around a symbol
	// for its overlays (proband arrow, verified star, sequence number).
	markerPad = 26

	// footerReserve is the vertical space kept below the last content row for
	// the legend block and the metadata footer.
	footerReserve = 80
)

// Metrics describes an individual's caption block, measured by the caption
// builder before layout runs: the number of rendered lines and the width of
// the widest one.
type Metrics struct {
	Lines    int
	MaxWidth float64
}

// Position is a symbol center.
type Position struct {
	X, Y float64
}

// Layout holds the computed geometry of a chart: symbol centers, sequence
// numbers, the y of every generation row, and the canvas size.
type Layout struct {
	Positions map[string]Position
	Numbers   map[string]int
	RowY      []float64 // one entry per generation row, top first
	Width     float64
	Height    float64
}

// Compute places every individual of the record on the canvas.
//
// # Algorithm
//
// Rows are packed top to bottom. Each generation's units (couples, then
// singles) receive anchors: row one anchors at the input ordinal, deeper rows
// anchor children under their parent family's midpoint, spread by the child
// spacing in child-list order. The only child of a single parent is pinned
// directly under the parent. Units are then sorted by anchor and swept left
// to right, never closer than the unit gap widened by caption clearance; a
// compression pass afterwards shrinks earlier gaps (down to the minimum unit
// gap, still respecting caption clearance) to pull pinned children back onto
// their anchors.
//
// Rows advance by the generation gap, stretched when a row's tallest caption
// block would otherwise cross the sibship bar below it. After packing, all
// coordinates are translated onto the margins and sequence numbers are
// assigned per row in final left-to-right order.
//
// The result depends only on the record and the theme; map iteration never
// reaches any ordering decision.
func Compute(rec *pedigree.Record, gens map[string]int, caps map[string]Metrics, th styles.Theme) (*Layout, error) {
	if len(rec.Individuals) == 0 {
		return &Layout{
			Positions: map[string]Position{},
			Numbers:   map[string]int{},
			Width:     2 * th.MarginX,
			Height:    2 * th.MarginY,
		}, nil
	}

	maxGen := 0
	for _, in := range rec.Individuals {
		g, ok := gens[in.ID]
		if !ok || g < 1 {
			return nil, errors.New(errors.ErrCodeInternal, "no generation assigned for %q", in.ID).WithSubject(in.ID)
		}
		if g > maxGen {
			maxGen = g
		}
	}

	rowY := rowPositions(rec, gens, caps, th, maxGen)
	pos := make(map[string]Position, len(rec.Individuals))
	anchorX := make(map[string]float64)

	for gen := 1; gen <= maxGen; gen++ {
		units := unitsForGeneration(rec, gens, gen, caps, th)
		pinned := make(map[string]bool)

		for _, u := range units {
			for _, id := range u.members {
				if _, ok := anchorX[id]; !ok {
					in, _ := rec.Individual(id)
					anchorX[id] = float64(in.Order)
				}
			}
		}
		if gen > 1 {
			refineAnchors(rec, gens, gen, pos, anchorX, pinned, th)
		}
		for _, u := range units {
			u.anchor = unitAnchor(u, rec, gens, gen, pos, anchorX)
		}

		sort.Slice(units, func(i, j int) bool {
			if units[i].anchor != units[j].anchor {
				return units[i].anchor < units[j].anchor
			}
			return minOrder(units[i], rec) < minOrder(units[j], rec)
		})

		for i, u := range units {
			desired := u.anchor - u.width/2
			if i == 0 {
				u.left = desired
				continue
			}
			prev := units[i-1]
			u.left = math.Max(desired, prev.left+prev.width+requiredGap(th, caps, prev, u))
		}

		compress(units, pinned, caps, th)

		for _, u := range units {
			if u.couple {
				pos[u.members[0]] = Position{X: u.left + th.Half(), Y: rowY[gen-1]}
				pos[u.members[1]] = Position{X: u.left + u.width - th.Half(), Y: rowY[gen-1]}
			} else {
				pos[u.members[0]] = Position{X: u.left + u.width/2, Y: rowY[gen-1]}
			}
		}
	}

	translate(rec, pos, rowY, caps, th)
	width, height := canvas(rec, gens, pos, caps, th)

	return &Layout{
		Positions: pos,
		Numbers:   assignNumbers(rec, gens, pos, maxGen),
		RowY:      rowY,
		Width:     width,
		Height:    height,
	}, nil
}

// refineAnchors overwrites the default anchors of row members that are
// children of a family in the row above: they anchor under the family
// midpoint, spread by child spacing in child-list order. The only child of a
// single parent anchors exactly under the parent and is pinned.
func refineAnchors(rec *pedigree.Record, gens map[string]int, gen int, pos map[string]Position, anchorX map[string]float64, pinned map[string]bool, th styles.Theme) {
	childDx := th.SymbolSize + th.ChildSpacing
	for _, rel := range rec.Relationships {
		if !rel.IsFamily() || len(rel.Partners) == 0 {
			continue
		}
		var mid float64
		if len(rel.Partners) == 1 {
			pid := rel.Partners[0]
			if gens[pid] != gen-1 {
				continue
			}
			mid = pos[pid].X
			if len(rel.Children) == 1 {
				cid := rel.Children[0].ID
				if gens[cid] == gen {
					anchorX[cid] = mid
					pinned[cid] = true
				}
				continue
			}
		} else {
			a, b := rel.Partners[0], rel.Partners[1]
			if gens[a] != gen-1 || gens[b] != gen-1 {
				continue
			}
			mid = (pos[a].X + pos[b].X) / 2
		}
		n := len(rel.Children)
		for i, c := range rel.Children {
			if gens[c.ID] != gen {
				continue
			}
			anchorX[c.ID] = mid + (float64(i)-float64(n-1)/2)*childDx
		}
	}
}

// unitAnchor is the mean of the member anchors, except for a couple that
// contains the pinned only child of a single parent in the row above: that
// couple anchors under the parent so the descent line stays vertical.
func unitAnchor(u *unit, rec *pedigree.Record, gens map[string]int, gen int, pos map[string]Position, anchorX map[string]float64) float64 {
	if u.couple {
		for _, id := range u.members {
			for _, rel := range rec.Relationships {
				if !rel.IsFamily() || len(rel.Partners) != 1 || len(rel.Children) != 1 {
					continue
				}
				if rel.Children[0].ID != id {
					continue
				}
				if pid := rel.Partners[0]; gens[pid] == gen-1 {
					return pos[pid].X
				}
			}
		}
	}
	var sum float64
	for _, id := range u.members {
		sum += anchorX[id]
	}
	return sum / float64(len(u.members))
}

// compress pulls pinned single-parent children back toward their anchors by
// shrinking the gaps to their left, nearest first, down to the minimum unit
// gap (or the caption clearance floor where that is larger). Each reduction
// shifts the whole suffix of the row left.
func compress(units []*unit, pinned map[string]bool, caps map[string]Metrics, th styles.Theme) {
	if len(pinned) == 0 || len(units) == 0 {
		return
	}
	const eps = 1e-6
	for idx, u := range units {
		if u.couple || !pinned[u.members[0]] {
			continue
		}
		shift := u.left - (u.anchor - u.width/2)
		if shift <= eps {
			continue
		}
		for j := idx - 1; j >= 0; j-- {
			lu, ru := units[j], units[j+1]
			gap := ru.left - (lu.left + lu.width)
			floor := math.Max(th.MinUnitGap, clearanceFloor(th, caps, lu, ru))
			reducible := gap - floor
			if reducible <= eps {
				continue
			}
			take := math.Min(reducible, shift)
			for k := j + 1; k < len(units); k++ {
				units[k].left -= take
			}
			shift -= take
			if shift <= eps {
				break
			}
		}
	}
}

// rowPositions computes the y of every generation row. A row advances by the
// generation gap, stretched so the row's tallest caption block clears the
// sibship bar drawn at sibshipDropRatio of the way down to the next row.
func rowPositions(rec *pedigree.Record, gens map[string]int, caps map[string]Metrics, th styles.Theme, maxGen int) []float64 {
	lines := make([]int, maxGen)
	for _, in := range rec.Individuals {
		if m := caps[in.ID]; m.Lines > lines[gens[in.ID]-1] {
			lines[gens[in.ID]-1] = m.Lines
		}
	}
	rowY := make([]float64, maxGen)
	for g := 1; g < maxGen; g++ {
		rowY[g] = rowY[g-1] + rowAdvance(th, lines[g-1])
	}
	return rowY
}

func rowAdvance(th styles.Theme, maxLines int) float64 {
	if maxLines <= 0 {
		return th.GenGap
	}
	depth := th.CaptionOffset + float64(maxLines)*th.CaptionLineHeight
	need := th.Half() + (th.Half()+depth+th.CaptionPad)/sibshipDropRatio
	return math.Max(th.GenGap, need)
}

// translate shifts all coordinates so the leftmost and topmost symbol
// centers land on the margins, then shifts right once more if a wide caption
// would still start left of the canvas edge.
func translate(rec *pedigree.Record, pos map[string]Position, rowY []float64, caps map[string]Metrics, th styles.Theme) {
	minX, minY := math.Inf(1), math.Inf(1)
	for _, in := range rec.Individuals {
		p := pos[in.ID]
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
	}
	dx, dy := th.MarginX-minX, th.MarginY-minY

	overhang := 0.0
	for _, in := range rec.Individuals {
		left := pos[in.ID].X + dx - math.Max(th.Half()+markerPad, capHalf(caps, in.ID))
		if left < 0 && -left > overhang {
			overhang = -left
		}
	}
	dx += overhang

	for _, in := range rec.Individuals {
		p := pos[in.ID]
		pos[in.ID] = Position{X: p.X + dx, Y: p.Y + dy}
	}
	for g := range rowY {
		rowY[g] += dy
	}
}

// canvas sizes the drawing so every symbol keeps a margin plus one symbol of
// room, the bottom keeps the footer reserve, and no caption or marker box is
// cut off.
func canvas(rec *pedigree.Record, gens map[string]int, pos map[string]Position, caps map[string]Metrics, th styles.Theme) (float64, float64) {
	var maxX, maxY, contentMaxX, contentMaxY float64
	for _, in := range rec.Individuals {
		p := pos[in.ID]
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)

		side := math.Max(th.Half()+markerPad, capHalf(caps, in.ID))
		contentMaxX = math.Max(contentMaxX, p.X+side)

		depth := th.Half() + markerPad
		if m := caps[in.ID]; m.Lines > 0 {
			depth = math.Max(depth, th.Half()+th.CaptionOffset+float64(m.Lines)*th.CaptionLineHeight)
		}
		contentMaxY = math.Max(contentMaxY, p.Y+depth)
	}

	width := math.Max(maxX+th.MarginX+th.SymbolSize, contentMaxX+th.MarginX)
	height := math.Max(maxY+th.MarginY+th.SymbolSize+footerReserve, contentMaxY+th.MarginY+footerReserve)
	return math.Ceil(width), math.Ceil(height)
}
