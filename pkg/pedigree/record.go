package pedigree

// Meta carries record-level metadata. Date is rendered in the footer as
// written; an empty date omits the footer entirely so output never depends on
// the clock.
type Meta struct {
	Date                string
	Author              string
	Indication          string
	ShowLegend          bool
	ShowConditionColors bool
}

// Diagnosis is one diagnosed condition of an individual. Age is the
// unit-suffixed age at diagnosis ("45y"). Key is the canonical condition key
// used for color-coding; Condition keeps the display text as written.
type Diagnosis struct {
	Condition  string
	Key        string
	Age        string
	Subtype    string
	Laterality string
	Treatment  string
	Outcome    string
}

// TwinLink is one side of a reciprocal twin pair.
type TwinLink struct {
	PartnerID string
	Zygosity  Zygosity
}

// PregnancyDetail describes a pregnancy event attached to an individual.
type PregnancyDetail struct {
	Type           PregnancyType
	GestationalAge string // unit-suffixed, weeks by default
	LMP            string
	EDD            string
	Karyotype      string
	Label          string
}

// Individual is one person (or pregnancy, or multiple-individuals node) of
// the canonical record. All text fields are display-ready: ages are
// unit-suffixed, death ages carry the "d. " prefix, note text has its age
// expressions normalized.
type Individual struct {
	ID       string
	Gender   Gender
	Statuses StatusSet
	Age      string

	Diagnoses   []Diagnosis
	Notes       []string
	GeneticTest string
	Name        string
	SexAtBirth  string

	Count       int // 0 = single individual; >= 2 = multiplicity node
	CountApprox bool

	Twin      *TwinLink
	Pregnancy *PregnancyDetail
	Adopted   bool

	// Order is the position in the input individual list. It drives slot
	// ordering, anchor defaults and tie-breaking, and emission order.
	Order int
}

// Has reports whether the individual carries the given status tag.
func (in *Individual) Has(s Status) bool {
	return in.Statuses.Has(s)
}

// Child is one child reference of a spouse-family relationship.
type Child struct {
	ID      string
	Adopted bool // dashed descent stub
}

// Relationship is one canonical relationship entry. Spouse-family variants
// (everything but RelationSiblings) carry 1-2 partners and an ordered child
// list; the siblings variant carries only the sibling list.
type Relationship struct {
	Type     RelationType
	Partners []string
	Children []Child
	Siblings []string

	// Order is the position in the input relationship list, used for
	// connector emission order.
	Order int
}

// IsFamily reports whether the relationship is a spouse-family variant
// (has partners and possibly children) rather than a sibling group.
func (r Relationship) IsFamily() bool {
	return r.Type != RelationSiblings
}

// ConditionRef pairs a canonical condition key with the display text it was
// first seen as. The slice order of [Record.Conditions] fixes the palette
// assignment.
type ConditionRef struct {
	Key     string
	Display string
}

// Record is the canonical, validated family-history record. Build one with
// [Normalize] (raw JSON input) or [NewRecord] (already-canonical values).
type Record struct {
	Meta          Meta
	Individuals   []*Individual
	Relationships []Relationship

	byID map[string]*Individual
}

// NewRecord assembles a Record from canonical parts. It assigns input order
// from slice positions and builds the lookup index. It does not validate;
// callers that start from raw input use [Normalize] instead.
func NewRecord(meta Meta, individuals []*Individual, relationships []Relationship) *Record {
	rec := &Record{
		Meta:          meta,
		Individuals:   individuals,
		Relationships: relationships,
		byID:          make(map[string]*Individual, len(individuals)),
	}
	for i, in := range individuals {
		in.Order = i
		rec.byID[in.ID] = in
	}
	for i := range relationships {
		relationships[i].Order = i
	}
	return rec
}

// Individual returns the individual with the given id.
func (r *Record) Individual(id string) (*Individual, bool) {
	in, ok := r.byID[id]
	return in, ok
}

// Families returns the spouse-family relationships in input order.
func (r *Record) Families() []Relationship {
	var out []Relationship
	for _, rel := range r.Relationships {
		if rel.IsFamily() {
			out = append(out, rel)
		}
	}
	return out
}

// SiblingGroups returns the sibling-only relationships in input order.
func (r *Record) SiblingGroups() []Relationship {
	var out []Relationship
	for _, rel := range r.Relationships {
		if !rel.IsFamily() {
			out = append(out, rel)
		}
	}
	return out
}

// FamilyOf returns the first spouse-family relationship that lists id as a
// child.
func (r *Record) FamilyOf(id string) (Relationship, bool) {
	for _, rel := range r.Relationships {
		if !rel.IsFamily() {
			continue
		}
		for _, c := range rel.Children {
			if c.ID == id {
				return rel, true
			}
		}
	}
	return Relationship{}, false
}

// Conditions returns the distinct canonical condition keys across all
// diagnoses, in first-appearance order, each paired with its first-seen
// display text. The order fixes color palette assignment.
func (r *Record) Conditions() []ConditionRef {
	seen := make(map[string]bool)
	var out []ConditionRef
	for _, in := range r.Individuals {
		for _, dx := range in.Diagnoses {
			if dx.Key == "" || seen[dx.Key] {
				continue
			}
			seen[dx.Key] = true
			out = append(out, ConditionRef{Key: dx.Key, Display: dx.Condition})
		}
	}
	return out
}
