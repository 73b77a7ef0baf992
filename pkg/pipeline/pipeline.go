// Package pipeline provides the core render pipeline for the pedigree drawer.
//
// This package implements the complete normalize → generations → render →
// encode pipeline that both the CLI and embedding programs use. By
// centralizing this logic, we ensure consistent behavior across all entry
// points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Normalize: decode the raw record document and validate it into the
//     canonical model
//  2. Generations: assign every individual to a generation row
//  3. Render: lay out the chart and emit the scene
//  4. Encode: serialize the scene in the requested formats (SVG, PNG, PDF,
//     JSON)
//
// # Usage
//
// Run the full pipeline on raw record bytes:
//
//	opts := pipeline.Options{Formats: []string{"svg", "png"}}
//	result, err := pipeline.Run(ctx, data, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Or start from an already-normalized record with [RunRecord]. The individual
// stages stay available for piecemeal use: [io.ReadRecord],
// [transform.AssignGenerations], [chart.Render], [io.EncodeScene].
//
// Every run gets a uuid id that tags all its log lines, so interleaved runs
// stay distinguishable in shared logs.
//
// [io.ReadRecord]: github.com/m0370/pedigree-drawer/pkg/io.ReadRecord
// [io.EncodeScene]: github.com/m0370/pedigree-drawer/pkg/io.EncodeScene
// [transform.AssignGenerations]: github.com/m0370/pedigree-drawer/pkg/pedigree/transform.AssignGenerations
// [chart.Render]: github.com/m0370/pedigree-drawer/pkg/render/chart.Render
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/m0370/pedigree-drawer/pkg/errors"
	"github.com/m0370/pedigree-drawer/pkg/observability"
	"github.com/m0370/pedigree-drawer/pkg/pedigree"
	"github.com/m0370/pedigree-drawer/pkg/render/chart"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/styles"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for the render pipeline.
// This struct supports JSON serialization for embedding programs.
type Options struct {
	// Render options
	Formats         []string `json:"formats,omitempty"`
	ThemePath       string   `json:"theme_path,omitempty"`
	Legend          bool     `json:"legend,omitempty"`
	ConditionColors bool     `json:"condition_colors,omitempty"`

	// Record size limits. Zero means the normalizer defaults.
	MaxIndividuals   int `json:"max_individuals,omitempty"`
	MaxRelationships int `json:"max_relationships,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger                 `json:"-"`
	Hooks  observability.PipelineHooks `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID is the uuid that tags all log lines of this invocation.
	RunID string

	// Record is the normalized record.
	Record *pedigree.Record

	// Generations maps individual ids to 1-based generation numbers.
	Generations map[string]int

	// Scene is the rendered scene all artifacts derive from.
	Scene *chart.Scene

	// Artifacts contains encoded outputs keyed by format.
	Artifacts map[string][]byte

	// Warnings collects tolerated-input findings from normalization.
	Warnings []errors.Warning

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Individuals   int
	Relationships int
	Generations   int
	Elements      int

	NormalizeTime   time.Duration
	GenerationsTime time.Duration
	RenderTime      time.Duration
	EncodeTime      time.Duration
}

// ValidateAndSetDefaults checks the requested formats and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetDefaults fills unset options: SVG output, a discarding logger, and the
// globally registered hooks.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Hooks == nil {
		o.Hooks = observability.Pipeline()
	}
}

// Limits returns the record size limits for normalization.
func (o *Options) Limits() pedigree.Limits {
	return pedigree.Limits{
		MaxIndividuals:   o.MaxIndividuals,
		MaxRelationships: o.MaxRelationships,
	}
}

// Theme loads the theme for the run: the file at ThemePath when set, the
// defaults otherwise.
func (o *Options) Theme() (styles.Theme, error) {
	if o.ThemePath == "" {
		return styles.Default(), nil
	}
	return styles.Load(o.ThemePath)
}
