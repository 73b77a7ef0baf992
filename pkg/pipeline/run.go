package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	pkgio "github.com/m0370/pedigree-drawer/pkg/io"
	"github.com/m0370/pedigree-drawer/pkg/pedigree"
	"github.com/m0370/pedigree-drawer/pkg/pedigree/transform"
	"github.com/m0370/pedigree-drawer/pkg/render/chart"
)

// Run executes the complete normalize → generations → render → encode
// pipeline on a raw record document.
//
// The returned Result carries the normalized record, the generation
// assignment, the rendered scene, and one artifact per requested format.
// Normalization warnings are returned on the Result, not as errors. Run
// stops at the first failing stage and returns its error; use
// errors.IsValidation to distinguish a rejected record from a production
// failure.
func Run(ctx context.Context, data []byte, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := newResult()
	logger := opts.Logger.With("run", result.RunID)

	start := time.Now()
	opts.Hooks.OnNormalizeStart(ctx)
	rec, warnings, err := pkgio.ReadRecord(bytes.NewReader(data), opts.Limits())
	result.Stats.NormalizeTime = time.Since(start)

	individuals, relationships := 0, 0
	if rec != nil {
		individuals, relationships = len(rec.Individuals), len(rec.Relationships)
	}
	opts.Hooks.OnNormalizeComplete(ctx, individuals, relationships, result.Stats.NormalizeTime, err)
	if err != nil {
		return nil, err
	}

	result.Record = rec
	result.Warnings = warnings
	result.Stats.Individuals = individuals
	result.Stats.Relationships = relationships

	logger.Info("normalized record",
		"individuals", individuals,
		"relationships", relationships,
		"warnings", len(warnings),
		"duration", result.Stats.NormalizeTime)
	for _, w := range warnings {
		logger.Warn("tolerated input", "code", w.Code, "subject", w.Subject, "detail", w.Message)
	}

	if err := runStages(ctx, logger, result, &opts); err != nil {
		return nil, err
	}
	return result, nil
}

// RunRecord executes the pipeline on an already-normalized record, skipping
// the normalize stage. Embedders that build records programmatically with
// [pedigree.NewRecord] use this entry point.
func RunRecord(ctx context.Context, rec *pedigree.Record, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := newResult()
	result.Record = rec
	result.Stats.Individuals = len(rec.Individuals)
	result.Stats.Relationships = len(rec.Relationships)
	logger := opts.Logger.With("run", result.RunID)

	if err := runStages(ctx, logger, result, &opts); err != nil {
		return nil, err
	}
	return result, nil
}

func newResult() *Result {
	return &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
}

// runStages performs generation assignment, scene rendering, and artifact
// encoding for result.Record.
func runStages(ctx context.Context, logger *log.Logger, result *Result, opts *Options) error {
	rec := result.Record

	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	opts.Hooks.OnGenerationsStart(ctx, len(rec.Individuals))
	gens, err := transform.AssignGenerations(rec)
	result.Stats.GenerationsTime = time.Since(start)
	opts.Hooks.OnGenerationsComplete(ctx, transform.GenerationCount(gens), result.Stats.GenerationsTime, err)
	if err != nil {
		return err
	}
	result.Generations = gens
	result.Stats.Generations = transform.GenerationCount(gens)

	logger.Info("assigned generations",
		"generations", result.Stats.Generations,
		"duration", result.Stats.GenerationsTime)

	th, err := opts.Theme()
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	start = time.Now()
	opts.Hooks.OnRenderStart(ctx, len(rec.Individuals))
	scene, err := chart.Render(rec, gens, th, chart.Options{
		Legend:          opts.Legend,
		ConditionColors: opts.ConditionColors,
	})
	result.Stats.RenderTime = time.Since(start)

	var width, height float64
	if scene != nil {
		width, height = scene.Width, scene.Height
	}
	opts.Hooks.OnRenderComplete(ctx, width, height, result.Stats.RenderTime, err)
	if err != nil {
		return err
	}
	result.Scene = scene
	result.Stats.Elements = len(scene.Elements)

	logger.Info("rendered scene",
		"width", scene.Width,
		"height", scene.Height,
		"elements", len(scene.Elements),
		"duration", result.Stats.RenderTime)

	if err := ctx.Err(); err != nil {
		return err
	}

	start = time.Now()
	opts.Hooks.OnEncodeStart(ctx, opts.Formats)
	for _, format := range opts.Formats {
		data, err := pkgio.EncodeScene(scene, format)
		if err != nil {
			result.Stats.EncodeTime = time.Since(start)
			opts.Hooks.OnEncodeComplete(ctx, opts.Formats, result.Stats.EncodeTime, err)
			return err
		}
		result.Artifacts[format] = data
	}
	result.Stats.EncodeTime = time.Since(start)
	opts.Hooks.OnEncodeComplete(ctx, opts.Formats, result.Stats.EncodeTime, nil)

	logger.Info("encoded artifacts",
		"formats", opts.Formats,
		"duration", result.Stats.EncodeTime)

	return nil
}
