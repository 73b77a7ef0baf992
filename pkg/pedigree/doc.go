// Package pedigree defines the canonical family-history record and its
// normalizer.
//
// # Overview
//
// A pedigree chart starts life as a structured JSON record: individuals with
// clinical detail (status tags, ages, diagnoses, genetic tests, twin links,
// pregnancy events) and relationships between them (spouse families with
// ordered child lists, plus parent-less sibling groups). This package owns
// that data model in two forms:
//
//   - The raw form ([RawRecord] and friends) mirrors the JSON input,
//     tolerant of the loose ways clinical records are written (ages as
//     strings or numbers, children as ids or objects).
//   - The canonical form ([Record], [Individual], [Relationship]) is fully
//     validated and display-ready: closed enums for gender, status,
//     relationship type, zygosity and pregnancy type; unit-suffixed ages;
//     canonicalized condition keys.
//
// # Normalization
//
// [Normalize] converts raw to canonical and fails closed: duplicate ids,
// dangling references, missing required fields, non-reciprocal twin links
// and size-bound violations are fatal validation errors carrying the
// offending id. Values outside the closed vocabularies that can safely be
// ignored (unknown status tags, unknown relationship types) are dropped and
// reported as warnings instead, so records written against a newer schema
// still render:
//
//	rec, warns, err := pedigree.Normalize(raw, pedigree.Limits{})
//	if err != nil {
//	    return err // e.g. DUPLICATE_ID: duplicate individual id "II-3"
//	}
//	for _, w := range warns {
//	    logger.Warn("normalize", "warning", w)
//	}
//
// # Ordering
//
// Input order is meaning, not accident: the order of the individuals list
// and of every child and sibling list is the left-to-right rendering order
// downstream. The normalizer records it in [Individual.Order] and
// [Relationship.Order] and never reorders anything.
//
// The [transform] subpackage assigns generation rows on top of this model.
//
// [transform]: github.com/m0370/pedigree-drawer/pkg/pedigree/transform
package pedigree
