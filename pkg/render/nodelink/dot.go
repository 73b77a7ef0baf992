package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/m0370/pedigree-drawer/pkg/pedigree"
	"github.com/m0370/pedigree-drawer/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes ages, status tags, and diagnoses in node labels.
	// When false, only the individual id is shown.
	Detailed bool
}

// ToDOT converts a record to Graphviz DOT format for a structural node-link
// view of the family. Individuals become nodes shaped by gender (box, ellipse,
// diamond), each generation becomes a same-rank group, and every spouse-family
// becomes a point junction with partner ties above and child edges below.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or
// [RenderPNG].
func ToDOT(rec *pedigree.Record, gens map[string]int, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=filled, fillcolor=white, fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for _, in := range rec.Individuals {
		label := fmtLabel(in, opts.Detailed)
		attrs := fmtAttrs(in, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", in.ID, strings.Join(attrs, ", "))
	}

	writeRanks(&buf, rec, gens)

	buf.WriteString("\n")
	for _, fam := range rec.Families() {
		writeFamily(&buf, fam)
	}
	for _, sib := range rec.SiblingGroups() {
		writeSiblingGroup(&buf, sib)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(in *pedigree.Individual, detailed bool) string {
	if !detailed {
		return in.ID
	}

	var parts []string
	if in.Age != "" {
		parts = append(parts, in.Age)
	}
	for _, s := range in.Statuses.Slice() {
		parts = append(parts, s.String())
	}
	for _, dx := range in.Diagnoses {
		parts = append(parts, dx.Condition)
	}
	if len(parts) == 0 {
		return in.ID
	}
	return in.ID + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(in *pedigree.Individual, label string) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", label),
		"shape=" + genderShape(in.Gender),
	}
	if in.Has(pedigree.StatusAffected) {
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	if in.Statuses.HasAny(pedigree.StatusProband, pedigree.StatusConsultand) {
		attrs = append(attrs, "penwidth=2")
	}
	return attrs
}

func genderShape(g pedigree.Gender) string {
	switch g {
	case pedigree.GenderMale:
		return "box"
	case pedigree.GenderFemale:
		return "ellipse"
	default:
		return "diamond"
	}
}

func writeRanks(buf *bytes.Buffer, rec *pedigree.Record, gens map[string]int) {
	rows := make(map[int][]string)
	for _, in := range rec.Individuals {
		g, ok := gens[in.ID]
		if !ok {
			continue
		}
		rows[g] = append(rows[g], in.ID)
	}

	levels := make([]int, 0, len(rows))
	for g := range rows {
		levels = append(levels, g)
	}
	sort.Ints(levels)

	buf.WriteString("\n")
	for _, g := range levels {
		buf.WriteString("  { rank=same;")
		for _, id := range rows[g] {
			fmt.Fprintf(buf, " %q;", id)
		}
		buf.WriteString(" }\n")
	}
}

// writeFamily emits a point junction per spouse-family. Partner ties attach
// above it, children hang below it, so couples and sibships read at a glance.
func writeFamily(buf *bytes.Buffer, fam pedigree.Relationship) {
	if len(fam.Partners) < 2 && len(fam.Children) == 0 {
		return
	}

	j := fmt.Sprintf("f%d", fam.Order)
	fmt.Fprintf(buf, "  %q [shape=point, width=0.08];\n", j)
	for _, p := range fam.Partners {
		fmt.Fprintf(buf, "  %q -> %q [%s];\n", p, j, partnerEdgeAttrs(fam.Type))
	}
	for _, c := range fam.Children {
		if c.Adopted {
			fmt.Fprintf(buf, "  %q -> %q [style=dashed];\n", j, c.ID)
		} else {
			fmt.Fprintf(buf, "  %q -> %q;\n", j, c.ID)
		}
	}
}

func partnerEdgeAttrs(t pedigree.RelationType) string {
	switch t {
	case pedigree.RelationConsanguineous:
		return `dir=none, color="black:black"`
	case pedigree.RelationDivorced, pedigree.RelationSeparated:
		return "dir=none, style=dashed"
	default:
		return "dir=none"
	}
}

func writeSiblingGroup(buf *bytes.Buffer, rel pedigree.Relationship) {
	for i := 0; i+1 < len(rel.Siblings); i++ {
		fmt.Fprintf(buf, "  %q -> %q [dir=none, style=dotted, constraint=false];\n",
			rel.Siblings[i], rel.Siblings[i+1])
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
