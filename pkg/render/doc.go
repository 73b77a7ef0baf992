// Package render turns family-history records into visual outputs.
//
// # Overview
//
// The package tree mirrors the two views the engine produces:
//
//   - [chart]: the pedigree chart itself, standardized clinical symbols on a
//     generation grid.
//   - [nodelink]: a debug node-link view of the relationship structure via
//     Graphviz.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Both renderers share them.
//
//	svg := sink.RenderSVG(scene)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Pedigree Charts
//
// The [chart] subpackage renders canonical records as deterministic scenes.
// Key subpackages:
//   - [chart/layout]: symbol position computation
//   - [chart/route]: family connector lines
//   - [chart/styles]: theme, element model, text metrics
//   - [chart/sink]: output formats (SVG, JSON, PNG, PDF)
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the record's relationship graph as a
// traditional directed diagram for debugging layout and generation issues.
//
//	dot := nodelink.ToDOT(rec, gens, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [chart]: github.com/m0370/pedigree-drawer/pkg/render/chart
// [chart/layout]: github.com/m0370/pedigree-drawer/pkg/render/chart/layout
// [chart/route]: github.com/m0370/pedigree-drawer/pkg/render/chart/route
// [chart/styles]: github.com/m0370/pedigree-drawer/pkg/render/chart/styles
// [chart/sink]: github.com/m0370/pedigree-drawer/pkg/render/chart/sink
// [nodelink]: github.com/m0370/pedigree-drawer/pkg/render/nodelink
package render
