package transform

import (
	"github.com/m0370/pedigree-drawer/pkg/errors"
	"github.com/m0370/pedigree-drawer/pkg/pedigree"
)

// AssignGenerations computes the generation row of every individual from the
// record's parent-child structure. Generations start at 1 (roman numeral I)
// and grow downward.
//
// # Algorithm
//
// Three side-effect-free passes:
//
//  1. Union pass: partners of every spouse-family relationship and members
//     of every sibling group are unioned into one component, so everyone who
//     must share a row does.
//  2. Ordering pass: one edge comp(parent) -> comp(child) per recorded
//     parent-child pair forms a component graph. A self-loop (a child unioned
//     with its own parent) is a fatal contradiction. Kahn's topological sort
//     assigns every source component generation 1 and every other component
//     one plus the maximum of its predecessors (longest path); a leftover
//     component (cycle) is a fatal contradiction.
//  3. Check pass: every parent-child pair must satisfy
//     gen(child) = gen(parent) + 1 exactly. A violation means two
//     relationships pull the child to different floors, a fatal
//     contradiction naming the child.
//
// Isolated individuals end up at generation 1. Any generation hints in the
// input are ignored: generations are structural.
//
// # Determinism
//
// Components are discovered in input order and the queue is FIFO, so the
// result (and any error) is identical across runs for one record.
func AssignGenerations(rec *pedigree.Record) (map[string]int, error) {
	uf := newUnionFind()
	for _, in := range rec.Individuals {
		uf.Add(in.ID)
	}

	// Union pass.
	for _, rel := range rec.Relationships {
		if rel.IsFamily() {
			if len(rel.Partners) == 2 {
				uf.Union(rel.Partners[0], rel.Partners[1])
			}
			continue
		}
		for _, id := range rel.Siblings[1:] {
			uf.Union(rel.Siblings[0], id)
		}
	}

	// Component graph. Adjacency keeps insertion order so the traversal is
	// deterministic.
	type pair struct{ parent, child string }
	var pairs []pair
	children := make(map[string][]string)
	inDegree := make(map[string]int)
	hasEdge := make(map[pair]bool)

	for _, rel := range rec.Relationships {
		if !rel.IsFamily() {
			continue
		}
		for _, p := range rel.Partners {
			for _, c := range rel.Children {
				pairs = append(pairs, pair{p, c.ID})
				pc, cc := uf.Find(p), uf.Find(c.ID)
				if pc == cc {
					return nil, errors.New(errors.ErrCodeGenerationConflict,
						"child %q is in the same generation group as parent %q", c.ID, p).WithSubject(c.ID)
				}
				edge := pair{pc, cc}
				if hasEdge[edge] {
					continue
				}
				hasEdge[edge] = true
				children[pc] = append(children[pc], cc)
				inDegree[cc]++
			}
		}
	}

	// Components in input order.
	var comps []string
	seen := make(map[string]bool)
	for _, in := range rec.Individuals {
		root := uf.Find(in.ID)
		if !seen[root] {
			seen[root] = true
			comps = append(comps, root)
		}
	}

	// Kahn's topological sort with longest-path generation assignment.
	gen := make(map[string]int, len(comps))
	done := make(map[string]bool, len(comps))
	queue := make([]string, 0, len(comps))
	for _, comp := range comps {
		if inDegree[comp] == 0 {
			gen[comp] = 1
			queue = append(queue, comp)
		}
	}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		done[curr] = true

		for _, child := range children[curr] {
			if g := gen[curr] + 1; g > gen[child] {
				gen[child] = g
			}
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}
	if len(done) < len(comps) {
		for _, in := range rec.Individuals {
			if !done[uf.Find(in.ID)] {
				return nil, errors.New(errors.ErrCodeGenerationConflict,
					"parent-child relationships around %q form a cycle", in.ID).WithSubject(in.ID)
			}
		}
	}

	// Check pass: descent must drop exactly one row.
	for _, pc := range pairs {
		pg, cg := gen[uf.Find(pc.parent)], gen[uf.Find(pc.child)]
		if cg != pg+1 {
			return nil, errors.New(errors.ErrCodeGenerationConflict,
				"child %q is pulled to two different generations", pc.child).WithSubject(pc.child)
		}
	}

	out := make(map[string]int, len(rec.Individuals))
	for _, in := range rec.Individuals {
		out[in.ID] = gen[uf.Find(in.ID)]
	}
	return out, nil
}

// GenerationCount returns the number of distinct generation rows in an
// assignment.
func GenerationCount(gens map[string]int) int {
	max := 0
	for _, g := range gens {
		if g > max {
			max = g
		}
	}
	return max
}
