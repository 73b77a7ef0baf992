package chart

import (
	"testing"

	"github.com/m0370/pedigree-drawer/pkg/pedigree"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/styles"
)

func elementByID(els []styles.Element, id string) (styles.Element, bool) {
	for _, el := range els {
		if el.ElementID() == id {
			return el, true
		}
	}
	return nil, false
}

func hasElement(els []styles.Element, id string) bool {
	_, ok := elementByID(els, id)
	return ok
}

func TestDrawIndividualShapes(t *testing.T) {
	th := styles.Default()

	tests := []struct {
		name   string
		in     *pedigree.Individual
		id     string
		verify func(t *testing.T, el styles.Element)
	}{
		{
			name: "male square",
			in:   &pedigree.Individual{ID: "a", Gender: pedigree.GenderMale},
			id:   "sym_M_100_80",
			verify: func(t *testing.T, el styles.Element) {
				r, ok := el.(styles.Rect)
				if !ok {
					t.Fatalf("element = %T, want styles.Rect", el)
				}
				if r.X != 80 || r.Y != 60 || r.W != 40 || r.H != 40 {
					t.Errorf("rect = (%v, %v, %v, %v), want (80, 60, 40, 40)", r.X, r.Y, r.W, r.H)
				}
				if r.Fill != "none" || r.Stroke != "#000" {
					t.Errorf("fill, stroke = %q, %q, want none, #000", r.Fill, r.Stroke)
				}
			},
		},
		{
			name: "affected female circle",
			in: &pedigree.Individual{
				ID: "a", Gender: pedigree.GenderFemale,
				Statuses: statuses(pedigree.StatusAffected),
			},
			id: "sym_F_100_80",
			verify: func(t *testing.T, el styles.Element) {
				c, ok := el.(styles.Circle)
				if !ok {
					t.Fatalf("element = %T, want styles.Circle", el)
				}
				if c.CX != 100 || c.CY != 80 || c.R != 20 {
					t.Errorf("circle = (%v, %v, %v), want (100, 80, 20)", c.CX, c.CY, c.R)
				}
				if c.Fill != "#000" {
					t.Errorf("Fill = %q, want #000", c.Fill)
				}
			},
		},
		{
			name: "unknown diamond",
			in:   &pedigree.Individual{ID: "a", Gender: pedigree.GenderUnknown},
			id:   "sym_U_100_80",
			verify: func(t *testing.T, el styles.Element) {
				p, ok := el.(styles.Polygon)
				if !ok {
					t.Fatalf("element = %T, want styles.Polygon", el)
				}
				want := []styles.Point{{X: 100, Y: 60}, {X: 120, Y: 80}, {X: 100, Y: 100}, {X: 80, Y: 80}}
				if len(p.Points) != 4 {
					t.Fatalf("len(Points) = %d, want 4", len(p.Points))
				}
				for i, pt := range want {
					if p.Points[i] != pt {
						t.Errorf("Points[%d] = %v, want %v", i, p.Points[i], pt)
					}
				}
			},
		},
		{
			name: "miscarriage triangle",
			in: &pedigree.Individual{
				ID: "a", Gender: pedigree.GenderUnknown,
				Statuses: statuses(pedigree.StatusMiscarriage),
			},
			id: "sym_a",
			verify: func(t *testing.T, el styles.Element) {
				p, ok := el.(styles.Polygon)
				if !ok {
					t.Fatalf("element = %T, want styles.Polygon", el)
				}
				want := []styles.Point{{X: 100, Y: 62}, {X: 118, Y: 98}, {X: 82, Y: 98}}
				if len(p.Points) != 3 {
					t.Fatalf("len(Points) = %d, want 3", len(p.Points))
				}
				for i, pt := range want {
					if p.Points[i] != pt {
						t.Errorf("Points[%d] = %v, want %v", i, p.Points[i], pt)
					}
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			els := drawIndividual(tt.in, 100, 80, 1, nil, nil, th)
			el, ok := elementByID(els, tt.id)
			if !ok {
				t.Fatalf("no element %q", tt.id)
			}
			tt.verify(t, el)
		})
	}
}

func TestDrawIndividualOverlays(t *testing.T) {
	th := styles.Default()

	t.Run("deceased slash", func(t *testing.T) {
		in := &pedigree.Individual{ID: "a", Gender: pedigree.GenderMale, Statuses: statuses(pedigree.StatusDeceased)}
		els := drawIndividual(in, 100, 80, 1, nil, nil, th)
		el, ok := elementByID(els, "deceased_a")
		if !ok {
			t.Fatal("no deceased slash")
		}
		l := el.(styles.Line)
		if l.X1 != 74 || l.Y1 != 106 || l.X2 != 126 || l.Y2 != 54 {
			t.Errorf("slash = (%v, %v)-(%v, %v), want (74, 106)-(126, 54)", l.X1, l.Y1, l.X2, l.Y2)
		}
	})

	t.Run("carrier line", func(t *testing.T) {
		in := &pedigree.Individual{ID: "a", Gender: pedigree.GenderFemale, Statuses: statuses(pedigree.StatusCarrier)}
		els := drawIndividual(in, 100, 80, 1, nil, nil, th)
		el, ok := elementByID(els, "carrier_a")
		if !ok {
			t.Fatal("no carrier line")
		}
		l := el.(styles.Line)
		if l.X1 != 100 || l.Y1 != 60 || l.X2 != 100 || l.Y2 != 100 {
			t.Errorf("carrier = (%v, %v)-(%v, %v), want (100, 60)-(100, 100)", l.X1, l.Y1, l.X2, l.Y2)
		}
	})

	t.Run("carrier suppressed when affected", func(t *testing.T) {
		in := &pedigree.Individual{
			ID: "a", Gender: pedigree.GenderFemale,
			Statuses: statuses(pedigree.StatusCarrier, pedigree.StatusAffected),
		}
		els := drawIndividual(in, 100, 80, 1, nil, nil, th)
		if hasElement(els, "carrier_a") {
			t.Error("carrier line drawn on affected symbol")
		}
	})

	t.Run("verified star", func(t *testing.T) {
		in := &pedigree.Individual{ID: "a", Gender: pedigree.GenderMale, Statuses: statuses(pedigree.StatusVerified)}
		els := drawIndividual(in, 100, 80, 1, nil, nil, th)
		el, ok := elementByID(els, "text_a_98_130")
		if !ok {
			t.Fatal("no verified star")
		}
		txt := el.(styles.Text)
		if txt.Content != "*" || txt.Size != 18 || txt.Anchor != "start" {
			t.Errorf("star = %q size %v anchor %q, want * size 18 anchor start", txt.Content, txt.Size, txt.Anchor)
		}
	})

	t.Run("termination slash", func(t *testing.T) {
		in := &pedigree.Individual{
			ID: "a", Gender: pedigree.GenderUnknown,
			Pregnancy: &pedigree.PregnancyDetail{Type: pedigree.PregnancyTOP},
		}
		els := drawIndividual(in, 100, 80, 1, nil, nil, th)
		el, ok := elementByID(els, "slash_a")
		if !ok {
			t.Fatal("no termination slash")
		}
		l := el.(styles.Line)
		if l.X1 != 84 || l.Y1 != 96 || l.X2 != 116 || l.Y2 != 64 {
			t.Errorf("slash = (%v, %v)-(%v, %v), want (84, 96)-(116, 64)", l.X1, l.Y1, l.X2, l.Y2)
		}
		if l.Color != "#000" {
			t.Errorf("Color = %q, want #000", l.Color)
		}
	})

	t.Run("pregnancy glyph", func(t *testing.T) {
		in := &pedigree.Individual{ID: "a", Gender: pedigree.GenderFemale, Statuses: statuses(pedigree.StatusPregnancy)}
		els := drawIndividual(in, 100, 80, 1, nil, nil, th)
		el, ok := elementByID(els, "text_a_84_100")
		if !ok {
			t.Fatal("no pregnancy glyph")
		}
		txt := el.(styles.Text)
		if txt.Content != "P" || txt.Size != 14 || txt.Fill != "#000" {
			t.Errorf("glyph = %q size %v fill %q, want P size 14 fill #000", txt.Content, txt.Size, txt.Fill)
		}
	})
}

func TestDrawIndividualProbandArrow(t *testing.T) {
	th := styles.Default()
	in := &pedigree.Individual{ID: "a", Gender: pedigree.GenderFemale, Statuses: statuses(pedigree.StatusProband)}
	els := drawIndividual(in, 100, 80, 1, nil, nil, th)

	el, ok := elementByID(els, "arrow_a_shaft")
	if !ok {
		t.Fatal("no arrow shaft")
	}
	shaft := el.(styles.Line)
	if shaft.X1 != 62 || shaft.Y1 != 118 || shaft.X2 != 78 || shaft.Y2 != 102 {
		t.Errorf("shaft = (%v, %v)-(%v, %v), want (62, 118)-(78, 102)", shaft.X1, shaft.Y1, shaft.X2, shaft.Y2)
	}

	el, ok = elementByID(els, "arrow_a_head")
	if !ok {
		t.Fatal("no arrow head")
	}
	head := el.(styles.Polygon)
	if len(head.Points) != 3 || head.Points[0] != (styles.Point{X: 78, Y: 102}) {
		t.Errorf("head tip = %v, want (78, 102)", head.Points)
	}
	if head.Fill != "#000" || head.Stroke != "none" {
		t.Errorf("head fill, stroke = %q, %q, want #000, none", head.Fill, head.Stroke)
	}

	el, ok = elementByID(els, "text_a_128_58")
	if !ok {
		t.Fatal("no proband P label")
	}
	label := el.(styles.Text)
	if label.Content != "P" || label.Size != 12 {
		t.Errorf("label = %q size %v, want P size 12", label.Content, label.Size)
	}
}

func TestDrawIndividualConsultandArrowNoLabel(t *testing.T) {
	th := styles.Default()
	in := &pedigree.Individual{ID: "a", Gender: pedigree.GenderMale, Statuses: statuses(pedigree.StatusConsultand)}
	els := drawIndividual(in, 100, 80, 1, nil, nil, th)

	if !hasElement(els, "arrow_a_shaft") || !hasElement(els, "arrow_a_head") {
		t.Error("consultand arrow missing")
	}
	if hasElement(els, "text_a_128_58") {
		t.Error("consultand drew the proband P label")
	}
}

func TestDrawIndividualCount(t *testing.T) {
	th := styles.Default()

	tests := []struct {
		name string
		in   *pedigree.Individual
		want string
		fill string
	}{
		{
			name: "exact",
			in:   &pedigree.Individual{ID: "a", Gender: pedigree.GenderMale, Count: 5},
			want: "5",
			fill: "#000",
		},
		{
			name: "approximate on affected",
			in: &pedigree.Individual{
				ID: "a", Gender: pedigree.GenderMale, Count: 12, CountApprox: true,
				Statuses: statuses(pedigree.StatusAffected),
			},
			want: "~12",
			fill: "#fff",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			els := drawIndividual(tt.in, 100, 80, 1, nil, nil, th)
			el, ok := elementByID(els, "text_a_84_100")
			if !ok {
				t.Fatal("no count glyph")
			}
			txt := el.(styles.Text)
			if txt.Content != tt.want || txt.Fill != tt.fill {
				t.Errorf("count = %q fill %q, want %q fill %q", txt.Content, txt.Fill, tt.want, tt.fill)
			}
		})
	}
}

func TestDrawIndividualAdoptionBrackets(t *testing.T) {
	th := styles.Default()
	in := &pedigree.Individual{ID: "a", Gender: pedigree.GenderFemale, Adopted: true}
	els := drawIndividual(in, 100, 80, 1, nil, nil, th)

	el, ok := elementByID(els, "adopt_a_L")
	if !ok {
		t.Fatal("no left bracket")
	}
	left := el.(styles.Line)
	if left.X1 != 74 || left.Y1 != 54 || left.X2 != 74 || left.Y2 != 106 {
		t.Errorf("left bracket = (%v, %v)-(%v, %v), want (74, 54)-(74, 106)", left.X1, left.Y1, left.X2, left.Y2)
	}

	el, ok = elementByID(els, "adopt_a_RT")
	if !ok {
		t.Fatal("no right top cap")
	}
	topCap := el.(styles.Line)
	if topCap.X1 != 116 || topCap.Y1 != 54 || topCap.X2 != 126 || topCap.Y2 != 54 {
		t.Errorf("right top cap = (%v, %v)-(%v, %v), want (116, 54)-(126, 54)", topCap.X1, topCap.Y1, topCap.X2, topCap.Y2)
	}

	for _, suffix := range []string{"L", "R", "LT", "LB", "RT", "RB"} {
		if !hasElement(els, "adopt_a_"+suffix) {
			t.Errorf("missing bracket segment %s", suffix)
		}
	}
}

func TestDrawIndividualNumberAndCaptions(t *testing.T) {
	th := styles.Default()
	in := &pedigree.Individual{ID: "a", Gender: pedigree.GenderMale}
	els := drawIndividual(in, 100, 80, 3, []string{"48y", "Ada"}, nil, th)

	el, ok := elementByID(els, "text_a_58_124")
	if !ok {
		t.Fatal("no sequence number")
	}
	num := el.(styles.Text)
	if num.Content != "3" || num.Size != 10 || num.Anchor != "start" {
		t.Errorf("number = %q size %v anchor %q, want 3 size 10 anchor start", num.Content, num.Size, num.Anchor)
	}

	el, ok = elementByID(els, "text_a_116_100")
	if !ok {
		t.Fatal("no first caption line")
	}
	first := el.(styles.Text)
	if first.Content != "48y" || first.Size != 11 || first.Anchor != "middle" {
		t.Errorf("caption = %q size %v anchor %q, want 48y size 11 anchor middle", first.Content, first.Size, first.Anchor)
	}

	el, ok = elementByID(els, "text_a_130_100")
	if !ok {
		t.Fatal("no second caption line")
	}
	if second := el.(styles.Text); second.Content != "Ada" {
		t.Errorf("second caption = %q, want Ada", second.Content)
	}
}

func TestQuadrantFills(t *testing.T) {
	th := styles.Default()

	t.Run("square quadrants under outline", func(t *testing.T) {
		in := &pedigree.Individual{ID: "a", Gender: pedigree.GenderMale, Statuses: statuses(pedigree.StatusAffected)}
		els := drawIndividual(in, 100, 80, 1, nil, []string{"#e41a1c", "#377eb8"}, th)

		el, ok := elementByID(els, "quad_a_1")
		if !ok {
			t.Fatal("no first quadrant")
		}
		q1 := el.(styles.Rect)
		if q1.X != 80 || q1.Y != 60 || q1.W != 20 || q1.H != 20 {
			t.Errorf("quad 1 = (%v, %v, %v, %v), want (80, 60, 20, 20)", q1.X, q1.Y, q1.W, q1.H)
		}
		if q1.Fill != "#e41a1c" || q1.Stroke != "none" {
			t.Errorf("quad 1 fill, stroke = %q, %q, want #e41a1c, none", q1.Fill, q1.Stroke)
		}

		el, ok = elementByID(els, "quad_a_2")
		if !ok {
			t.Fatal("no second quadrant")
		}
		q2 := el.(styles.Rect)
		if q2.X != 100 || q2.Y != 60 {
			t.Errorf("quad 2 at (%v, %v), want (100, 60)", q2.X, q2.Y)
		}

		el, ok = elementByID(els, "sym_M_100_80")
		if !ok {
			t.Fatal("no outline")
		}
		if outline := el.(styles.Rect); outline.Fill != "none" {
			t.Errorf("outline Fill = %q, want none over quadrants", outline.Fill)
		}
	})

	t.Run("circle quarter disc path", func(t *testing.T) {
		in := &pedigree.Individual{ID: "a", Gender: pedigree.GenderFemale, Statuses: statuses(pedigree.StatusAffected)}
		els := drawIndividual(in, 100, 80, 1, nil, []string{"#e41a1c"}, th)

		el, ok := elementByID(els, "quad_a_1")
		if !ok {
			t.Fatal("no quarter disc")
		}
		p := el.(styles.Path)
		if want := "M 100,80 L 80,80 A 20,20 0 0 1 100,60 Z"; p.D != want {
			t.Errorf("D = %q, want %q", p.D, want)
		}
	})

	t.Run("diamond quarter triangles", func(t *testing.T) {
		in := &pedigree.Individual{ID: "a", Gender: pedigree.GenderUnknown, Statuses: statuses(pedigree.StatusAffected)}
		els := drawIndividual(in, 100, 80, 1, nil, []string{"#e41a1c"}, th)

		el, ok := elementByID(els, "quad_a_1")
		if !ok {
			t.Fatal("no quarter triangle")
		}
		p := el.(styles.Polygon)
		want := []styles.Point{{X: 100, Y: 80}, {X: 80, Y: 80}, {X: 100, Y: 60}}
		if len(p.Points) != 3 {
			t.Fatalf("len(Points) = %d, want 3", len(p.Points))
		}
		for i, pt := range want {
			if p.Points[i] != pt {
				t.Errorf("Points[%d] = %v, want %v", i, p.Points[i], pt)
			}
		}
	})
}
