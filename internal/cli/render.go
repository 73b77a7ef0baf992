package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m0370/pedigree-drawer/pkg/errors"
	"github.com/m0370/pedigree-drawer/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output          string   // output file (single format) or base path (multiple)
	formats         []string // output formats: "svg", "png", "pdf", "json"
	themePath       string   // optional TOML theme file
	legend          bool     // draw a status/condition legend
	conditionColors bool     // color-code affected symbols per condition
}

// renderCommand creates the render command for producing pedigree charts.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [record.json]",
		Short: "Render a family-history record as a pedigree chart",
		Long: `Render a family-history record as a pedigree chart.

The record is normalized, individuals are assigned to generations, and the
chart is laid out and drawn. SVG is produced directly; PNG and PDF are
converted from the SVG with rsvg-convert; JSON dumps the scene model for
tooling and tests.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.themePath, "theme", "", "TOML theme file overriding layout and style defaults")
	cmd.Flags().BoolVar(&opts.legend, "legend", false, "draw a legend for statuses and conditions")
	cmd.Flags().BoolVar(&opts.conditionColors, "colors", false, "color-code affected individuals per condition")

	return cmd
}

// runRender reads the record, runs the pipeline, and writes one artifact per
// requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", input)
	}

	popts := pipeline.Options{
		Formats:         opts.formats,
		ThemePath:       opts.themePath,
		Legend:          opts.legend,
		ConditionColors: opts.conditionColors,
		Logger:          c.Logger,
	}

	spinner := newSpinnerWithContext(ctx, "Rendering pedigree...")
	spinner.Start()

	result, err := pipeline.Run(ctx, data, popts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	single := len(opts.formats) == 1
	var paths []string
	for _, format := range opts.formats {
		path := artifactPath(opts.output, input, format, single)
		if err := writeArtifact(path, result.Artifacts[format]); err != nil {
			return err
		}
		paths = append(paths, path)
	}

	printSuccess("Render complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.Individuals, result.Stats.Relationships, result.Stats.Generations)
	if n := len(result.Warnings); n > 0 {
		printWarning("%d input value(s) dropped, run '%s validate %s' for details", n, appName, input)
	}

	return nil
}

// artifactPath derives the output path for one format. A single format with
// an explicit output uses it verbatim; every other combination derives
// base.<format> from the output base path or the input file name.
func artifactPath(output, input, format string, single bool) string {
	if single && output != "" {
		return output
	}
	return basePath(output, input) + "." + format
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that
// extension. This is used when generating multiple files
// (e.g., family.svg, family.json).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	// Strip known format extensions from output path
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifact writes encoded bytes to path, overwriting any existing file.
func writeArtifact(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return nil
}
