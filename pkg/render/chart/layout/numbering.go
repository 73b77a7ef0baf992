package layout

import (
	"sort"

	"github.com/m0370/pedigree-drawer/pkg/pedigree"
)

// assignNumbers gives every individual its per-generation sequence number:
// 1, 2, 3… left to right by final x, ties broken by input order. Recomputed
// from scratch on every layout, never persisted.
func assignNumbers(rec *pedigree.Record, gens map[string]int, pos map[string]Position, maxGen int) map[string]int {
	byGen := make([][]*pedigree.Individual, maxGen)
	for _, in := range rec.Individuals {
		g := gens[in.ID] - 1
		byGen[g] = append(byGen[g], in)
	}

	out := make(map[string]int, len(rec.Individuals))
	for _, row := range byGen {
		sort.SliceStable(row, func(i, j int) bool {
			return pos[row[i].ID].X < pos[row[j].ID].X
		})
		for i, in := range row {
			out[in.ID] = i + 1
		}
	}
	return out
}
