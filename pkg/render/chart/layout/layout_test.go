package layout

import (
	"testing"

	"github.com/m0370/pedigree-drawer/pkg/errors"
	"github.com/m0370/pedigree-drawer/pkg/pedigree"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/styles"
)

func spouses(a, b string, children ...string) pedigree.Relationship {
	rel := pedigree.Relationship{Type: pedigree.RelationSpouse, Partners: []string{a, b}}
	for _, c := range children {
		rel.Children = append(rel.Children, pedigree.Child{ID: c})
	}
	return rel
}

func singleParent(p string, children ...string) pedigree.Relationship {
	rel := pedigree.Relationship{Type: pedigree.RelationSpouse, Partners: []string{p}}
	for _, c := range children {
		rel.Children = append(rel.Children, pedigree.Child{ID: c})
	}
	return rel
}

func record(ids []string, rels ...pedigree.Relationship) *pedigree.Record {
	ins := make([]*pedigree.Individual, len(ids))
	for i, id := range ids {
		ins[i] = &pedigree.Individual{ID: id}
	}
	return pedigree.NewRecord(pedigree.Meta{}, ins, rels)
}

func wantPos(t *testing.T, l *Layout, id string, x, y float64) {
	t.Helper()
	p, ok := l.Positions[id]
	if !ok {
		t.Fatalf("no position for %q", id)
	}
	if p.X != x || p.Y != y {
		t.Errorf("position[%s] = (%v, %v), want (%v, %v)", id, p.X, p.Y, x, y)
	}
}

func TestComputeCoupleWithChildren(t *testing.T) {
	//  I-1 === I-2
	//      |
	//   +--+--+
	// II-1   II-2
	rec := record(
		[]string{"I-1", "I-2", "II-1", "II-2"},
		spouses("I-1", "I-2", "II-1", "II-2"),
	)
	gens := map[string]int{"I-1": 1, "I-2": 1, "II-1": 2, "II-2": 2}

	l, err := Compute(rec, gens, nil, styles.Default())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	wantPos(t, l, "I-1", 60, 40)
	wantPos(t, l, "I-2", 180, 40)
	wantPos(t, l, "II-1", 82, 160)
	wantPos(t, l, "II-2", 202, 160)

	wantNums := map[string]int{"I-1": 1, "I-2": 2, "II-1": 1, "II-2": 2}
	for id, n := range wantNums {
		if l.Numbers[id] != n {
			t.Errorf("Numbers[%s] = %d, want %d", id, l.Numbers[id], n)
		}
	}

	if len(l.RowY) != 2 || l.RowY[0] != 40 || l.RowY[1] != 160 {
		t.Errorf("RowY = %v, want [40 160]", l.RowY)
	}
	if l.Width < 262 || l.Height < 280 {
		t.Errorf("canvas = %v x %v, want at least 262 x 280", l.Width, l.Height)
	}
}

func TestComputePinsOnlyChildUnderSingleParent(t *testing.T) {
	//  P    U
	//  |
	//  C
	rec := record(
		[]string{"P", "U", "C"},
		singleParent("P", "C"),
	)
	gens := map[string]int{"P": 1, "U": 1, "C": 2}

	l, err := Compute(rec, gens, nil, styles.Default())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	wantPos(t, l, "P", 60, 40)
	wantPos(t, l, "U", 180, 40)
	wantPos(t, l, "C", 60, 160)

	if l.Positions["C"].X != l.Positions["P"].X {
		t.Errorf("child x = %v, parent x = %v, want pinned equal",
			l.Positions["C"].X, l.Positions["P"].X)
	}
}

func TestComputeCompressionRestoresPin(t *testing.T) {
	// A === B        P
	//    |           |
	// +--+--+        |
	// K1    K2       C
	//
	// The sweep pushes C right of P; compression shrinks the K2-C gap
	// (down to min_unit_gap) to bring C back under its parent.
	rec := record(
		[]string{"A", "B", "P", "K1", "K2", "C"},
		spouses("A", "B", "K1", "K2"),
		singleParent("P", "C"),
	)
	gens := map[string]int{"A": 1, "B": 1, "P": 1, "K1": 2, "K2": 2, "C": 2}

	l, err := Compute(rec, gens, nil, styles.Default())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	wantPos(t, l, "A", 60, 40)
	wantPos(t, l, "B", 180, 40)
	wantPos(t, l, "P", 300, 40)
	wantPos(t, l, "K1", 82, 160)
	wantPos(t, l, "K2", 202, 160)
	wantPos(t, l, "C", 300, 160)

	if l.Positions["C"].X != l.Positions["P"].X {
		t.Errorf("child x = %v, parent x = %v, want pinned equal",
			l.Positions["C"].X, l.Positions["P"].X)
	}
}

func TestComputeCaptionClearanceWidensGap(t *testing.T) {
	rec := record([]string{"A", "B"})
	gens := map[string]int{"A": 1, "B": 1}
	caps := map[string]Metrics{
		"A": {Lines: 2, MaxWidth: 150},
		"B": {Lines: 1, MaxWidth: 150},
	}

	l, err := Compute(rec, gens, caps, styles.Default())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	// Clearance 75+75+8-40 = 118 beats the unit gap 80, and the widest
	// caption pushes the whole row off the left edge by 15.
	wantPos(t, l, "A", 75, 40)
	wantPos(t, l, "B", 233, 40)

	if got := l.Positions["B"].X - l.Positions["A"].X; got != 158 {
		t.Errorf("center distance = %v, want 158", got)
	}
}

func TestComputeRowAdvanceStretchesForCaptions(t *testing.T) {
	rec := record(
		[]string{"H", "W", "C"},
		spouses("H", "W", "C"),
	)
	gens := map[string]int{"H": 1, "W": 1, "C": 2}
	caps := map[string]Metrics{"H": {Lines: 5, MaxWidth: 80}}

	l, err := Compute(rec, gens, caps, styles.Default())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	// depth = 16 + 5*14 = 86; advance = 20 + (20+86+8)/0.75 = 172 > 120.
	if got := l.RowY[1] - l.RowY[0]; got != 172 {
		t.Errorf("row advance = %v, want 172", got)
	}
	wantPos(t, l, "C", 120, 212)
}

func TestComputeRemarriagePartnerBecomesSingle(t *testing.T) {
	// A appears in two couple families; the first (by partner input order)
	// claims the couple unit, the second partner packs as a single.
	rec := record(
		[]string{"A", "B", "C"},
		spouses("A", "B"),
		spouses("A", "C"),
	)
	gens := map[string]int{"A": 1, "B": 1, "C": 1}

	l, err := Compute(rec, gens, nil, styles.Default())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}

	wantPos(t, l, "A", 60, 40)
	wantPos(t, l, "B", 180, 40)
	wantPos(t, l, "C", 300, 40)

	for id, n := range map[string]int{"A": 1, "B": 2, "C": 3} {
		if l.Numbers[id] != n {
			t.Errorf("Numbers[%s] = %d, want %d", id, l.Numbers[id], n)
		}
	}
}

func TestComputeEmptyRecord(t *testing.T) {
	rec := record(nil)

	l, err := Compute(rec, map[string]int{}, nil, styles.Default())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if l.Width != 120 || l.Height != 80 {
		t.Errorf("canvas = %v x %v, want 120 x 80", l.Width, l.Height)
	}
	if len(l.Positions) != 0 {
		t.Errorf("len(Positions) = %d, want 0", len(l.Positions))
	}
}

func TestComputeMissingGeneration(t *testing.T) {
	rec := record([]string{"A"})

	_, err := Compute(rec, map[string]int{}, nil, styles.Default())
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Errorf("Compute() error = %v, want INTERNAL_ERROR", err)
	}
}

func TestComputeDeterministic(t *testing.T) {
	rec := record(
		[]string{"I-1", "I-2", "II-1", "II-2", "II-3"},
		spouses("I-1", "I-2", "II-1", "II-2", "II-3"),
	)
	gens := map[string]int{"I-1": 1, "I-2": 1, "II-1": 2, "II-2": 2, "II-3": 2}
	caps := map[string]Metrics{"II-2": {Lines: 3, MaxWidth: 120}}

	first, err := Compute(rec, gens, caps, styles.Default())
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		next, err := Compute(rec, gens, caps, styles.Default())
		if err != nil {
			t.Fatalf("Compute() error = %v", err)
		}
		for id, p := range first.Positions {
			if next.Positions[id] != p {
				t.Fatalf("run %d: position[%s] = %v, want %v", i, id, next.Positions[id], p)
			}
		}
		if next.Width != first.Width || next.Height != first.Height {
			t.Fatalf("run %d: canvas = %v x %v, want %v x %v",
				i, next.Width, next.Height, first.Width, first.Height)
		}
	}
}
