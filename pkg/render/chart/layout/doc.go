// Package layout places pedigree symbols on the canvas.
//
// The input is a validated [pedigree.Record], a generation assignment, and
// per-individual caption metrics; the output is a [Layout] with symbol
// centers, per-row baselines, sequence numbers, and the canvas size.
//
// # Packing
//
// Each generation row packs independently: couples and singles become units,
// units get anchors (input ordinal on the first row, parent-family midpoints
// below), and a left-to-right sweep resolves overlaps. Two correction passes
// keep family structure readable: pinned single-parent children are pulled
// back onto their parent's x by compressing earlier gaps, and unit gaps widen
// where caption blocks would otherwise collide.
//
// Rows are ordered by [transform.AssignGenerations]; nothing in this package
// re-derives generations.
package layout
