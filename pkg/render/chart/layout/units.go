package layout

import (
	"math"
	"sort"

	"github.com/m0370/pedigree-drawer/pkg/pedigree"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/styles"
)

// unit is one packable item of a generation row: a couple (both partners,
// side by side) or a single individual.
type unit struct {
	members []string // one id, or left and right partner
	width   float64
	anchor  float64
	left    float64
	couple  bool
}

// capHalf returns half the caption block width of an individual, the
// horizontal clearance its caption needs on each side of the symbol center.
func capHalf(caps map[string]Metrics, id string) float64 {
	return caps[id].MaxWidth / 2
}

// clearanceFloor is the smallest edge-to-edge gap between two neighboring
// units that keeps their facing caption blocks from intersecting. Facing
// members sit half a symbol inside their unit edges, so the caption widths
// count from the symbol centers.
func clearanceFloor(th styles.Theme, caps map[string]Metrics, left, right *unit) float64 {
	l := capHalf(caps, left.members[len(left.members)-1])
	r := capHalf(caps, right.members[0])
	return l + r + th.CaptionPad - th.SymbolSize
}

// requiredGap is the gap used while sweeping units left to right: the
// configured unit gap, widened when caption clearance demands more.
func requiredGap(th styles.Theme, caps map[string]Metrics, left, right *unit) float64 {
	return math.Max(th.UnitGap, clearanceFloor(th, caps, left, right))
}

// unitsForGeneration builds the row's units: couples first (families whose
// two partners both sit in this generation, ordered by the lower partner
// input order, partner order preserved), then the remaining individuals as
// singles in input order. A partner already consumed by an earlier family
// falls through to the singles.
func unitsForGeneration(rec *pedigree.Record, gens map[string]int, gen int, caps map[string]Metrics, th styles.Theme) []*unit {
	order := func(id string) int {
		in, ok := rec.Individual(id)
		if !ok {
			return 1 << 30
		}
		return in.Order
	}

	var fams []pedigree.Relationship
	for _, rel := range rec.Relationships {
		if !rel.IsFamily() || len(rel.Partners) < 2 {
			continue
		}
		if gens[rel.Partners[0]] == gen && gens[rel.Partners[1]] == gen {
			fams = append(fams, rel)
		}
	}
	sort.SliceStable(fams, func(i, j int) bool {
		return famKey(fams[i], order) < famKey(fams[j], order)
	})

	used := make(map[string]bool)
	var units []*unit
	for _, fam := range fams {
		a, b := fam.Partners[0], fam.Partners[1]
		if used[a] || used[b] {
			continue
		}
		spouseGap := math.Max(th.SpouseGap, capHalf(caps, a)+capHalf(caps, b)+th.CaptionPad-th.SymbolSize)
		units = append(units, &unit{
			members: []string{a, b},
			width:   2*th.SymbolSize + spouseGap,
			couple:  true,
		})
		used[a], used[b] = true, true
	}

	for _, in := range rec.Individuals {
		if gens[in.ID] != gen || used[in.ID] {
			continue
		}
		units = append(units, &unit{members: []string{in.ID}, width: th.SymbolSize})
	}
	return units
}

func famKey(rel pedigree.Relationship, order func(string) int) int {
	k := order(rel.Partners[0])
	if k2 := order(rel.Partners[1]); k2 < k {
		k = k2
	}
	return k
}

func minOrder(u *unit, rec *pedigree.Record) int {
	k := 1 << 30
	for _, id := range u.members {
		if in, ok := rec.Individual(id); ok && in.Order < k {
			k = in.Order
		}
	}
	return k
}
