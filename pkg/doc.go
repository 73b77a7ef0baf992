// Package pkg provides the core libraries for pedigree chart rendering.
//
// # Overview
//
// pedigree-drawer turns clinical family-history records (JSON) into medical
// pedigree charts drawn with standardized symbols. The pkg directory is
// organized into four main areas:
//
//  1. [pedigree] - Domain model (record normalization, generation assignment)
//  2. [render] - Visualization (chart layout, connector routing, output sinks)
//  3. [pipeline] - Orchestration (normalize → generations → layout → encode)
//  4. [io] - Record import and scene export
//
// # Architecture
//
// The typical data flow:
//
//	Family-history record (JSON)
//	         ↓
//	    [pedigree] package (normalize into the canonical model)
//	         ↓
//	    [pedigree/transform] package (assign generations)
//	         ↓
//	    [render/chart] package (layout + scene assembly)
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
// The one-call path runs the whole chain and returns encoded artifacts:
//
//	import "github.com/m0370/pedigree-drawer/pkg/pipeline"
//
//	data, _ := os.ReadFile("family.json")
//	result, err := pipeline.Run(context.Background(), data, pipeline.Options{
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	os.WriteFile("family.svg", result.Artifacts[pipeline.FormatSVG], 0o644)
//
// The same stages are callable one at a time:
//
//	import (
//	    pkgio "github.com/m0370/pedigree-drawer/pkg/io"
//	    "github.com/m0370/pedigree-drawer/pkg/pedigree/transform"
//	    "github.com/m0370/pedigree-drawer/pkg/render/chart"
//	    "github.com/m0370/pedigree-drawer/pkg/render/chart/sink"
//	    "github.com/m0370/pedigree-drawer/pkg/render/chart/styles"
//	)
//
//	// 1. Import and validate the record
//	rec, warns, _ := pkgio.ImportRecord("family.json", pedigree.Limits{})
//
//	// 2. Assign generations
//	gens, _ := transform.AssignGenerations(rec)
//
//	// 3. Lay out the chart
//	scene, _ := chart.Render(rec, gens, styles.Default(), chart.Options{})
//
//	// 4. Render to SVG
//	svg := sink.RenderSVG(scene)
//
// # Main Packages
//
// ## Domain Model
//
// [pedigree] - The canonical record model: individuals with status tags,
// diagnoses, genetic test results, twin links and pregnancy events, plus
// partner and sibling relationships. [pedigree.Normalize] validates raw
// input, fails closed on structural errors, and reports tolerated oddities
// as warnings.
//
// [pedigree/transform] - Generation assignment. Partners and recorded
// siblings share a generation row; children sit exactly one row below their
// parents. Contradictory records are rejected rather than guessed at.
//
// ## Visualization
//
// [render/chart] - The pedigree chart itself. The rendering pipeline:
// layout → route → scene → sink.
//
//   - [render/chart/layout]: symbol positions (anchor refinement, row packing)
//   - [render/chart/route]: family connector lines (partner, descent, sibship)
//   - [render/chart/styles]: themes, the element model, text measurement
//   - [render/chart/sink]: output formats (SVG, PDF, PNG, JSON)
//
// [render/nodelink] - Debug node-link diagrams of the relationship structure
// using Graphviz.
//
// [render] - Top-level utilities for format conversion (SVG to PDF/PNG).
//
// ## Orchestration
//
// [pipeline] - Complete rendering pipeline used by every CLI command.
// Ensures consistent limits, theming and stage timing across entry points.
//
// [io] - Record import (reader or file path) and scene export in any
// supported format.
//
// ## Supporting Packages
//
// [errors] - Coded errors and warnings. Codes separate validation failures
// (rejected input) from render failures (broken output path or toolchain),
// which the CLI maps to distinct exit codes.
//
// [observability] - Stage hooks for timing and artifact-size reporting.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Common Workflows
//
// Load a custom theme:
//
//	th, err := styles.Load("theme.toml")
//	scene, _ := chart.Render(rec, gens, th, chart.Options{Legend: true})
//
// Export one scene in several formats:
//
//	for _, format := range []string{"svg", "json"} {
//	    _ = pkgio.ExportScene(scene, format, "family."+format)
//	}
//
// Inspect the relationship structure:
//
//	dot := nodelink.ToDOT(rec, gens, nodelink.Options{})
//	svg, _ := nodelink.RenderSVG(dot)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                # All tests
//	go test ./pkg/render/chart/...   # Specific package
//	go test -run Example             # Examples only
//
// [pedigree]: https://pkg.go.dev/github.com/m0370/pedigree-drawer/pkg/pedigree
// [pedigree.Normalize]: https://pkg.go.dev/github.com/m0370/pedigree-drawer/pkg/pedigree#Normalize
// [pedigree/transform]: https://pkg.go.dev/github.com/m0370/pedigree-drawer/pkg/pedigree/transform
// [render]: https://pkg.go.dev/github.com/m0370/pedigree-drawer/pkg/render
// [render/chart]: https://pkg.go.dev/github.com/m0370/pedigree-drawer/pkg/render/chart
// [render/chart/layout]: https://pkg.go.dev/github.com/m0370/pedigree-drawer/pkg/render/chart/layout
// [render/chart/route]: https://pkg.go.dev/github.com/m0370/pedigree-drawer/pkg/render/chart/route
// [render/chart/styles]: https://pkg.go.dev/github.com/m0370/pedigree-drawer/pkg/render/chart/styles
// [render/chart/sink]: https://pkg.go.dev/github.com/m0370/pedigree-drawer/pkg/render/chart/sink
// [render/nodelink]: https://pkg.go.dev/github.com/m0370/pedigree-drawer/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/m0370/pedigree-drawer/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/m0370/pedigree-drawer/pkg/io
// [errors]: https://pkg.go.dev/github.com/m0370/pedigree-drawer/pkg/errors
// [observability]: https://pkg.go.dev/github.com/m0370/pedigree-drawer/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/m0370/pedigree-drawer/pkg/buildinfo
package pkg
