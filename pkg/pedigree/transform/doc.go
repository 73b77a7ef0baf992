// Package transform derives structure from a canonical pedigree record.
//
// Its single job today is generation assignment: [AssignGenerations] turns
// the record's marriages, sibling groups and child lists into one generation
// row per individual, using union-find to tie everyone who must share a row
// (partners, siblings) into a component and a topological longest-path pass
// to order the components. Contradictions (a child married to its parent,
// cyclic descent, a child pulled to two floors) surface as
// GENERATION_CONFLICT errors naming the individual.
//
// The pass is pure: it never mutates the record, so callers can reuse one
// record across renders.
package transform
