package pedigree

import "strings"

// Gender is the symbol-determining sex of an individual.
type Gender uint8

const (
	GenderUnknown Gender = iota // diamond
	GenderMale                  // square
	GenderFemale                // circle
)

// String implements fmt.Stringer.
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "unknown"
	}
}

// ParseGender maps a raw gender value onto the closed set. The second return
// is false for values outside the vocabulary; an empty value is also false
// (gender is required, the caller decides the error code).
func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "male":
		return GenderMale, true
	case "f", "female":
		return GenderFemale, true
	case "u", "x", "unknown", "unspecified", "diverse", "other":
		return GenderUnknown, true
	default:
		return GenderUnknown, false
	}
}

// Status is a single clinical status tag.
type Status uint8

const (
	StatusAffected Status = iota
	StatusCarrier
	StatusPresymptomaticCarrier
	StatusDeceased
	StatusProband
	StatusConsultand
	StatusVerified
	StatusPregnancy
	StatusMiscarriage
	StatusInducedAbortion
	StatusEctopic
	StatusStillbirth
	StatusAdopted
	StatusDonor
	StatusSurrogate

	numStatuses
)

var statusNames = [...]string{
	StatusAffected:              "affected",
	StatusCarrier:               "carrier",
	StatusPresymptomaticCarrier: "presymptomatic_carrier",
	StatusDeceased:              "deceased",
	StatusProband:               "proband",
	StatusConsultand:            "consultand",
	StatusVerified:              "verified",
	StatusPregnancy:             "pregnancy",
	StatusMiscarriage:           "miscarriage",
	StatusInducedAbortion:       "abortion",
	StatusEctopic:               "ectopic",
	StatusStillbirth:            "stillbirth",
	StatusAdopted:               "adopted",
	StatusDonor:                 "donor",
	StatusSurrogate:             "surrogate",
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// ParseStatus maps a raw status tag onto the closed set. Unknown tags return
// false; the normalizer drops them with a warning.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "affected":
		return StatusAffected, true
	case "carrier":
		return StatusCarrier, true
	case "presymptomatic_carrier", "presymptomatic-carrier", "presymptomatic carrier":
		return StatusPresymptomaticCarrier, true
	case "deceased":
		return StatusDeceased, true
	case "proband":
		return StatusProband, true
	case "consultand":
		return StatusConsultand, true
	case "verified":
		return StatusVerified, true
	case "pregnancy", "pregnant":
		return StatusPregnancy, true
	case "miscarriage":
		return StatusMiscarriage, true
	case "abortion", "induced_abortion", "induced-abortion":
		return StatusInducedAbortion, true
	case "ectopic":
		return StatusEctopic, true
	case "stillbirth":
		return StatusStillbirth, true
	case "adopted":
		return StatusAdopted, true
	case "donor":
		return StatusDonor, true
	case "surrogate":
		return StatusSurrogate, true
	default:
		return 0, false
	}
}

// StatusSet is a set of status tags.
type StatusSet uint32

// Add returns the set with s included.
func (ss StatusSet) Add(s Status) StatusSet {
	return ss | 1<<s
}

// Has reports whether s is in the set.
func (ss StatusSet) Has(s Status) bool {
	return ss&(1<<s) != 0
}

// HasAny reports whether any of the given tags is in the set.
func (ss StatusSet) HasAny(tags ...Status) bool {
	for _, s := range tags {
		if ss.Has(s) {
			return true
		}
	}
	return false
}

// Slice returns the tags in the set in declaration order.
func (ss StatusSet) Slice() []Status {
	var out []Status
	for s := Status(0); s < numStatuses; s++ {
		if ss.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

// RelationType is the kind of a relationship entry.
type RelationType uint8

const (
	RelationSpouse RelationType = iota
	RelationConsanguineous
	RelationDivorced
	RelationSeparated
	RelationSiblings
)

// String implements fmt.Stringer.
func (rt RelationType) String() string {
	switch rt {
	case RelationConsanguineous:
		return "consanguineous"
	case RelationDivorced:
		return "divorced"
	case RelationSeparated:
		return "separated"
	case RelationSiblings:
		return "siblings"
	default:
		return "spouse"
	}
}

// ParseRelationType maps a raw relationship type onto the closed set.
// Unknown types return false; the normalizer drops the whole relationship
// with a warning.
func ParseRelationType(s string) (RelationType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "spouse", "partner", "single_parent":
		return RelationSpouse, true
	case "consanguineous":
		return RelationConsanguineous, true
	case "divorced":
		return RelationDivorced, true
	case "separated":
		return RelationSeparated, true
	case "siblings":
		return RelationSiblings, true
	default:
		return 0, false
	}
}

// Zygosity describes a twin pair.
type Zygosity uint8

const (
	ZygosityUnknown Zygosity = iota
	ZygosityMonozygotic
	ZygosityDizygotic
)

// String implements fmt.Stringer.
func (z Zygosity) String() string {
	switch z {
	case ZygosityMonozygotic:
		return "monozygotic"
	case ZygosityDizygotic:
		return "dizygotic"
	default:
		return "unknown"
	}
}

// ParseZygosity maps a raw twin type onto the closed set. An empty value is
// ZygosityUnknown, true; anything else outside the vocabulary is false.
func ParseZygosity(s string) (Zygosity, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "":
		return ZygosityUnknown, true
	case strings.HasPrefix(v, "mono"), v == "mz", v == "identical":
		return ZygosityMonozygotic, true
	case strings.HasPrefix(v, "di"), v == "dz", v == "fraternal":
		return ZygosityDizygotic, true
	default:
		return ZygosityUnknown, false
	}
}

// PregnancyType is the outcome class of a pregnancy event.
type PregnancyType uint8

const (
	PregnancyNone PregnancyType = iota // event with details but no outcome class
	PregnancySAB                       // spontaneous abortion (miscarriage)
	PregnancyTOP                       // termination of pregnancy
	PregnancyECT                       // ectopic pregnancy
)

// String implements fmt.Stringer.
func (pt PregnancyType) String() string {
	switch pt {
	case PregnancySAB:
		return "SAB"
	case PregnancyTOP:
		return "TOP"
	case PregnancyECT:
		return "ECT"
	default:
		return ""
	}
}

// ParsePregnancyType maps a raw pregnancy event type onto the closed set.
// An empty value is PregnancyNone, true; anything else outside the
// vocabulary is false.
func ParsePregnancyType(s string) (PregnancyType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return PregnancyNone, true
	case "sab", "miscarriage", "spontaneous_abortion":
		return PregnancySAB, true
	case "top", "termination", "induced_abortion":
		return PregnancyTOP, true
	case "ect", "ectopic":
		return PregnancyECT, true
	default:
		return PregnancyNone, false
	}
}
