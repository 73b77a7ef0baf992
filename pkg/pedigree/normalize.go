package pedigree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m0370/pedigree-drawer/pkg/errors"
)

// Default size bounds enforced by the normalizer. A record past these limits
// is rejected with RECORD_TOO_LARGE before any layout work happens.
const (
	DefaultMaxIndividuals   = 500
	DefaultMaxRelationships = 500
)

// Limits bounds the accepted record size. The zero value means defaults.
type Limits struct {
	MaxIndividuals   int
	MaxRelationships int
}

func (l Limits) withDefaults() Limits {
	if l.MaxIndividuals <= 0 {
		l.MaxIndividuals = DefaultMaxIndividuals
	}
	if l.MaxRelationships <= 0 {
		l.MaxRelationships = DefaultMaxRelationships
	}
	return l
}

// FlexString decodes a JSON string or number into a string. Clinical records
// write ages both ways ("48" and 48).
type FlexString string

// UnmarshalJSON implements json.Unmarshaler.
func (fs *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if string(trimmed) == "null" {
		*fs = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*fs = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*fs = FlexString(n.String())
	return nil
}

// RawChild decodes a child list entry, which is either a bare id string or
// an object {"id": ..., "relation": "adopted"}.
type RawChild struct {
	ID       string
	Relation string
}

// UnmarshalJSON implements json.Unmarshaler.
func (rc *RawChild) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		rc.ID = id
		rc.Relation = ""
		return nil
	}
	var obj struct {
		ID       string `json:"id"`
		Relation string `json:"relation"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	rc.ID = obj.ID
	rc.Relation = obj.Relation
	return nil
}

// Raw input shapes, mirroring the JSON records under examples/.
// Normalize turns these into the canonical model.
type (
	// RawRecord is the top-level input document.
	RawRecord struct {
		Meta             RawMeta           `json:"meta"`
		Individuals      []RawIndividual   `json:"individuals"`
		Relationships    []RawRelationship `json:"relationships"`
		DonorsSurrogates []RawIndividual   `json:"donors_surrogates"`
	}

	// RawMeta is the record-level metadata block.
	RawMeta struct {
		Date                string `json:"date"`
		Author              string `json:"author"`
		Indication          string `json:"indication"`
		ShowLegend          bool   `json:"show_legend"`
		ShowConditionColors bool   `json:"show_condition_colors"`
	}

	// RawIndividual is one entry of the individuals list.
	RawIndividual struct {
		ID             string             `json:"id"`
		Gender         string             `json:"gender"`
		Status         []string           `json:"status"`
		Age            FlexString         `json:"age"`
		CurrentAge     FlexString         `json:"current_age"`
		AgeAtDeath     FlexString         `json:"age_at_death"`
		AgeUnit        string             `json:"age_unit"`
		BirthYear      FlexString         `json:"birth_year"`
		DeathYear      FlexString         `json:"death_year"`
		Diagnoses      []RawDiagnosis     `json:"diagnoses"`
		MedicalNotes   []string           `json:"medical_notes"`
		Note           string             `json:"note"`
		Name           string             `json:"name"`
		GeneticTesting *RawGeneticTest    `json:"genetic_testing"`
		Count          *int               `json:"count"`
		CountType      string             `json:"count_type"`
		TwinInfo       *RawTwinInfo       `json:"twin_info"`
		PregnancyEvent *RawPregnancyEvent `json:"pregnancy_event"`
		AdoptionInfo   *RawAdoptionInfo   `json:"adoption_info"`
		SexAtBirth     string             `json:"sex_at_birth"`
	}

	// RawDiagnosis is one entry of an individual's diagnoses list.
	RawDiagnosis struct {
		Condition      string     `json:"condition"`
		AgeAtDiagnosis FlexString `json:"age_at_diagnosis"`
		AgeUnit        string     `json:"age_unit"`
		Subtype        string     `json:"subtype"`
		Laterality     string     `json:"laterality"`
		Treatment      string     `json:"treatment"`
		Outcome        string     `json:"outcome"`
	}

	// RawGeneticTest is the genetic_testing block.
	RawGeneticTest struct {
		Tested   bool   `json:"tested"`
		Result   string `json:"result"`
		Display  string `json:"display"`
		Label    string `json:"label"`
		TestType string `json:"test_type"`
		Variant  string `json:"variant"`
	}

	// RawTwinInfo is the twin_info block.
	RawTwinInfo struct {
		IsTwin        bool   `json:"is_twin"`
		TwinSiblingID string `json:"twin_sibling_id"`
		TwinType      string `json:"twin_type"`
	}

	// RawPregnancyEvent is the pregnancy_event block.
	RawPregnancyEvent struct {
		Type           string     `json:"type"`
		GestationalAge FlexString `json:"gestational_age"`
		LMP            string     `json:"lmp"`
		EDD            string     `json:"edd"`
		Karyotype      string     `json:"karyotype"`
		Label          string     `json:"label"`
		Note           string     `json:"note"`
	}

	// RawAdoptionInfo is the adoption_info block.
	RawAdoptionInfo struct {
		Adopted bool `json:"adopted"`
	}

	// RawRelationship is one entry of the relationships list.
	RawRelationship struct {
		Type     string      `json:"type"`
		Partners []string    `json:"partners"`
		Children []RawChild  `json:"children"`
		Siblings []string    `json:"siblings"`
		Adoption *RawAdopted `json:"adoption"`
	}

	// RawAdopted is the per-relationship adoption block.
	RawAdopted struct {
		AdoptedChildID string `json:"adopted_child_id"`
	}
)

// adoptionRelations are the child relation markers that dash the descent
// stub.
var adoptionRelations = map[string]bool{
	"adopted":     true,
	"adopted_in":  true,
	"adopted_out": true,
	"foster":      true,
}

// Normalize validates a raw record and converts it into the canonical model.
// It fails closed: any required-field violation, dangling reference,
// duplicate id or size-bound violation returns a fatal validation error
// before layout. Tolerated oddities (unknown status tags, unknown
// relationship types) are dropped and reported as warnings.
func Normalize(raw *RawRecord, limits Limits) (*Record, []errors.Warning, error) {
	if raw == nil {
		return nil, nil, errors.New(errors.ErrCodeInvalidRecord, "record is empty")
	}
	lim := limits.withDefaults()

	total := len(raw.Individuals) + len(raw.DonorsSurrogates)
	if total == 0 {
		return nil, nil, errors.New(errors.ErrCodeInvalidRecord, "record has no individuals")
	}
	if total > lim.MaxIndividuals {
		return nil, nil, errors.New(errors.ErrCodeRecordTooLarge,
			"record has %d individuals (limit %d)", total, lim.MaxIndividuals)
	}
	if len(raw.Relationships) > lim.MaxRelationships {
		return nil, nil, errors.New(errors.ErrCodeRecordTooLarge,
			"record has %d relationships (limit %d)", len(raw.Relationships), lim.MaxRelationships)
	}

	rec := &Record{
		Meta: Meta{
			Date:                strings.TrimSpace(raw.Meta.Date),
			Author:              strings.TrimSpace(raw.Meta.Author),
			Indication:          strings.TrimSpace(raw.Meta.Indication),
			ShowLegend:          raw.Meta.ShowLegend,
			ShowConditionColors: raw.Meta.ShowConditionColors,
		},
		byID: make(map[string]*Individual, total),
	}
	var warns []errors.Warning

	// Individuals, with donors/surrogates folded in as auxiliary nodes.
	entries := make([]RawIndividual, 0, total)
	entries = append(entries, raw.Individuals...)
	entries = append(entries, raw.DonorsSurrogates...)
	for pos, ri := range entries {
		in, w, err := normalizeIndividual(ri, pos)
		warns = append(warns, w...)
		if err != nil {
			return nil, nil, err
		}
		if _, dup := rec.byID[in.ID]; dup {
			return nil, nil, errors.New(errors.ErrCodeDuplicateID,
				"duplicate individual id %q", in.ID).WithSubject(in.ID)
		}
		in.Order = len(rec.Individuals)
		rec.Individuals = append(rec.Individuals, in)
		rec.byID[in.ID] = in
	}

	// Twin links resolve against the full individual table and must be
	// mutual.
	for _, in := range rec.Individuals {
		if in.Twin == nil {
			continue
		}
		other, ok := rec.byID[in.Twin.PartnerID]
		if !ok {
			return nil, nil, errors.New(errors.ErrCodeUnknownReference,
				"twin sibling %q of %q is not in the record", in.Twin.PartnerID, in.ID).WithSubject(in.ID)
		}
		if other.Twin == nil || other.Twin.PartnerID != in.ID {
			return nil, nil, errors.New(errors.ErrCodeInvalidRecord,
				"twin link %q -> %q is not reciprocal", in.ID, other.ID).WithSubject(in.ID)
		}
		if in.Twin.Zygosity != other.Twin.Zygosity {
			if in.Twin.Zygosity == ZygosityUnknown {
				in.Twin.Zygosity = other.Twin.Zygosity
			} else if other.Twin.Zygosity == ZygosityUnknown {
				other.Twin.Zygosity = in.Twin.Zygosity
			} else {
				return nil, nil, errors.New(errors.ErrCodeInvalidRecord,
					"twin pair %q / %q disagrees on zygosity", in.ID, other.ID).WithSubject(in.ID)
			}
		}
	}

	// Relationships.
	childFamily := make(map[string]int) // child id -> input order of its family
	for pos, rr := range raw.Relationships {
		subject := relationshipSubject(rr, pos)
		rt, known := ParseRelationType(rr.Type)
		if !known {
			warns = append(warns, errors.Warningf(errors.ErrCodeUnknownRelationship, subject,
				"unrecognized relationship type %q dropped", rr.Type))
			continue
		}

		rel := Relationship{Type: rt, Order: pos}
		if rt == RelationSiblings {
			if len(rr.Siblings) < 2 {
				return nil, nil, errors.New(errors.ErrCodeMissingField,
					"siblings relationship needs at least two members").WithSubject(subject)
			}
			seen := make(map[string]bool, len(rr.Siblings))
			for _, raw := range rr.Siblings {
				id := strings.TrimSpace(raw)
				if _, ok := rec.byID[id]; !ok {
					return nil, nil, errors.New(errors.ErrCodeUnknownReference,
						"sibling %q is not in the record", id).WithSubject(subject)
				}
				if seen[id] {
					return nil, nil, errors.New(errors.ErrCodeInvalidRecord,
						"sibling %q listed twice", id).WithSubject(subject)
				}
				seen[id] = true
				rel.Siblings = append(rel.Siblings, id)
			}
		} else {
			if len(rr.Partners) == 0 {
				return nil, nil, errors.New(errors.ErrCodeMissingField,
					"relationship has no partners").WithSubject(subject)
			}
			if len(rr.Partners) > 2 {
				return nil, nil, errors.New(errors.ErrCodeInvalidRecord,
					"relationship has %d partners (max 2)", len(rr.Partners)).WithSubject(subject)
			}
			for _, raw := range rr.Partners {
				id := strings.TrimSpace(raw)
				if _, ok := rec.byID[id]; !ok {
					return nil, nil, errors.New(errors.ErrCodeUnknownReference,
						"partner %q is not in the record", id).WithSubject(subject)
				}
				rel.Partners = append(rel.Partners, id)
			}
			if len(rel.Partners) == 2 && rel.Partners[0] == rel.Partners[1] {
				return nil, nil, errors.New(errors.ErrCodeInvalidRecord,
					"partner %q listed twice", rel.Partners[0]).WithSubject(subject)
			}

			adoptedID := ""
			if rr.Adoption != nil {
				adoptedID = strings.TrimSpace(rr.Adoption.AdoptedChildID)
				if _, ok := rec.byID[adoptedID]; adoptedID != "" && !ok {
					return nil, nil, errors.New(errors.ErrCodeUnknownReference,
						"adopted child %q is not in the record", adoptedID).WithSubject(subject)
				}
			}
			seen := make(map[string]bool, len(rr.Children))
			for _, rc := range rr.Children {
				id := strings.TrimSpace(rc.ID)
				in, ok := rec.byID[id]
				if !ok {
					return nil, nil, errors.New(errors.ErrCodeUnknownReference,
						"child %q is not in the record", id).WithSubject(subject)
				}
				if seen[id] {
					return nil, nil, errors.New(errors.ErrCodeInvalidRecord,
						"child %q listed twice", id).WithSubject(subject)
				}
				seen[id] = true
				rel.Children = append(rel.Children, Child{
					ID:      id,
					Adopted: adoptionRelations[strings.ToLower(rc.Relation)] || id == adoptedID || in.Adopted,
				})
				if _, ok := childFamily[id]; !ok {
					childFamily[id] = pos
				}
			}
		}
		rec.Relationships = append(rec.Relationships, rel)
	}

	// A sibling group member must not also be a recorded child: that would
	// encode the same bond twice and draw two competing sibship lines.
	for _, rel := range rec.Relationships {
		if rel.IsFamily() {
			continue
		}
		for _, id := range rel.Siblings {
			if _, isChild := childFamily[id]; isChild {
				return nil, nil, errors.New(errors.ErrCodeInvalidRecord,
					"sibling group member %q is already a child of a family", id).WithSubject(id)
			}
		}
	}

	// Twins must descend from one shared family so the router has a single
	// sibship line to fork from.
	for _, in := range rec.Individuals {
		if in.Twin == nil || in.ID > in.Twin.PartnerID {
			continue // check each pair once
		}
		famA, okA := childFamily[in.ID]
		famB, okB := childFamily[in.Twin.PartnerID]
		if !okA || !okB || famA != famB {
			return nil, nil, errors.New(errors.ErrCodeInvalidRecord,
				"twins %q and %q must be children of the same relationship",
				in.ID, in.Twin.PartnerID).WithSubject(in.ID)
		}
	}

	return rec, warns, nil
}

func relationshipSubject(rr RawRelationship, pos int) string {
	if len(rr.Partners) > 0 {
		return rr.Partners[0]
	}
	if len(rr.Siblings) > 0 {
		return rr.Siblings[0]
	}
	return fmt.Sprintf("relationships[%d]", pos)
}

func normalizeIndividual(ri RawIndividual, pos int) (*Individual, []errors.Warning, error) {
	if strings.TrimSpace(ri.ID) == "" {
		return nil, nil, errors.New(errors.ErrCodeMissingField,
			"individual at position %d has no id", pos)
	}
	id := strings.TrimSpace(ri.ID)
	if err := errors.ValidateIdentifier(id); err != nil {
		return nil, nil, err
	}

	if strings.TrimSpace(ri.Gender) == "" {
		return nil, nil, errors.New(errors.ErrCodeMissingField,
			"individual %q has no gender", id).WithSubject(id)
	}
	gender, ok := ParseGender(ri.Gender)
	if !ok {
		return nil, nil, errors.New(errors.ErrCodeInvalidRecord,
			"unrecognized gender %q", ri.Gender).WithSubject(id)
	}

	in := &Individual{
		ID:         id,
		Gender:     gender,
		Name:       strings.TrimSpace(ri.Name),
		SexAtBirth: strings.TrimSpace(ri.SexAtBirth),
	}
	var warns []errors.Warning

	for _, tag := range ri.Status {
		st, known := ParseStatus(tag)
		if !known {
			warns = append(warns, errors.Warningf(errors.ErrCodeUnknownStatus, id,
				"unrecognized status tag %q dropped", tag))
			continue
		}
		in.Statuses = in.Statuses.Add(st)
	}

	unit := UnitLetter(ri.AgeUnit)
	switch {
	case ri.Age != "":
		in.Age = SuffixAge(string(ri.Age), unit)
	case ri.AgeAtDeath != "":
		in.Age = "d. " + SuffixAge(string(ri.AgeAtDeath), unit)
	case ri.CurrentAge != "":
		in.Age = SuffixAge(string(ri.CurrentAge), unit)
	case ri.DeathYear != "":
		in.Age = "d. " + string(ri.DeathYear)
	case ri.BirthYear != "":
		in.Age = "b. " + string(ri.BirthYear)
	}
	// A deceased individual's age reads as an age at death.
	if in.Has(StatusDeceased) && in.Age != "" &&
		!strings.HasPrefix(in.Age, "d.") && !strings.HasPrefix(in.Age, "b.") {
		in.Age = "d. " + in.Age
	}

	for _, dx := range ri.Diagnoses {
		condition := strings.TrimSpace(dx.Condition)
		if condition == "" {
			return nil, nil, errors.New(errors.ErrCodeMissingField,
				"diagnosis of %q has no condition", id).WithSubject(id)
		}
		if strings.TrimSpace(string(dx.AgeAtDiagnosis)) == "" {
			return nil, nil, errors.New(errors.ErrCodeMissingField,
				"diagnosis %q of %q has no age_at_diagnosis", condition, id).WithSubject(id)
		}
		dxUnit := unit
		if dx.AgeUnit != "" {
			dxUnit = UnitLetter(dx.AgeUnit)
		}
		in.Diagnoses = append(in.Diagnoses, Diagnosis{
			Condition:  condition,
			Key:        CanonicalCondition(condition),
			Age:        SuffixAge(string(dx.AgeAtDiagnosis), dxUnit),
			Subtype:    strings.TrimSpace(dx.Subtype),
			Laterality: strings.TrimSpace(dx.Laterality),
			Treatment:  strings.TrimSpace(dx.Treatment),
			Outcome:    strings.TrimSpace(dx.Outcome),
		})
	}

	for _, note := range ri.MedicalNotes {
		if s := strings.TrimSpace(note); s != "" {
			in.Notes = append(in.Notes, NormalizeAgeText(s))
		}
	}
	if s := strings.TrimSpace(ri.Note); s != "" {
		in.Notes = append(in.Notes, NormalizeAgeText(s))
	}

	if gt := ri.GeneticTesting; gt != nil {
		label := firstNonEmpty(gt.Display, gt.Label, gt.Result, gt.TestType)
		if label != "" && gt.Variant != "" && !strings.Contains(label, gt.Variant) {
			label += " (" + gt.Variant + ")"
		}
		in.GeneticTest = label
	}

	if ri.Count != nil {
		if *ri.Count < 2 {
			return nil, nil, errors.New(errors.ErrCodeInvalidRecord,
				"count %d is below 2", *ri.Count).WithSubject(id)
		}
		in.Count = *ri.Count
		switch strings.ToLower(strings.TrimSpace(ri.CountType)) {
		case "", "exact":
			in.CountApprox = false
		case "approximate", "approx", "estimate", "estimated":
			in.CountApprox = true
		default:
			return nil, nil, errors.New(errors.ErrCodeInvalidRecord,
				"unrecognized count_type %q", ri.CountType).WithSubject(id)
		}
	}

	if ti := ri.TwinInfo; ti != nil && ti.IsTwin {
		if strings.TrimSpace(ti.TwinSiblingID) == "" {
			return nil, nil, errors.New(errors.ErrCodeMissingField,
				"twin_info of %q has no twin_sibling_id", id).WithSubject(id)
		}
		zyg, known := ParseZygosity(ti.TwinType)
		if !known {
			return nil, nil, errors.New(errors.ErrCodeInvalidRecord,
				"unrecognized twin_type %q", ti.TwinType).WithSubject(id)
		}
		in.Twin = &TwinLink{PartnerID: strings.TrimSpace(ti.TwinSiblingID), Zygosity: zyg}
	}

	if pe := ri.PregnancyEvent; pe != nil {
		pt, known := ParsePregnancyType(pe.Type)
		if !known {
			return nil, nil, errors.New(errors.ErrCodeInvalidRecord,
				"unrecognized pregnancy event type %q", pe.Type).WithSubject(id)
		}
		in.Pregnancy = &PregnancyDetail{
			Type:           pt,
			GestationalAge: SuffixAge(string(pe.GestationalAge), "w"),
			LMP:            strings.TrimSpace(pe.LMP),
			EDD:            strings.TrimSpace(pe.EDD),
			Karyotype:      strings.TrimSpace(pe.Karyotype),
			Label:          strings.TrimSpace(pe.Label),
		}
		if s := strings.TrimSpace(pe.Note); s != "" {
			in.Notes = append(in.Notes, NormalizeAgeText(s))
		}
	}

	in.Adopted = in.Has(StatusAdopted) || (ri.AdoptionInfo != nil && ri.AdoptionInfo.Adopted)

	return in, warns, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
