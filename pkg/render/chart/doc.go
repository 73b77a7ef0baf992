// Package chart turns a canonical pedigree record into a drawable scene.
//
// [Render] is the single entry point. It builds every individual's caption
// block, computes symbol positions via [layout.Compute], routes the family
// connectors via [route.Connectors], and assembles a flat [Scene] in a fixed
// emission order so that serializing it is deterministic. Symbol geometry
// follows standardized pedigree nomenclature: squares, circles and diamonds
// for males, females and unknowns, triangles for pregnancy losses, with
// overlay marks for deceased, carrier, proband and the rest.
package chart
