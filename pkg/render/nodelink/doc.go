// Package nodelink renders family records as traditional node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// individuals appear as gender-shaped nodes connected through family
// junctions. It's a structural debug view next to the pedigree chart: no
// clinical symbol conventions, just who connects to whom.
//
// # Usage
//
// Convert a record to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(rec, gens, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include ages, status tags, and
//     diagnoses next to the individual id
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses top-to-bottom layout (rankdir=TB): males are boxes,
// females ellipses, unknown-gender individuals diamonds. Each generation is
// pinned to one rank, and every spouse-family becomes a small point junction
// with partner ties above and child edges below, so the result reads like a
// rough pedigree.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
