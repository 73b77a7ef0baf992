package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/m0370/pedigree-drawer/pkg/errors"
	pkgio "github.com/m0370/pedigree-drawer/pkg/io"
	"github.com/m0370/pedigree-drawer/pkg/pedigree"
	"github.com/m0370/pedigree-drawer/pkg/pedigree/transform"
	"github.com/m0370/pedigree-drawer/pkg/render/nodelink"
)

// graphFormats is the set of formats the graph command can produce.
var graphFormats = map[string]bool{"svg": true, "png": true, "dot": true}

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output   string // output file path
	format   string // "svg", "png", or "dot"
	detailed bool   // include ages, statuses, and diagnoses in labels
}

// graphCommand creates the graph command for debugging record structure.
func (c *CLI) graphCommand() *cobra.Command {
	opts := graphOpts{format: "svg"}

	cmd := &cobra.Command{
		Use:   "graph [record.json]",
		Short: "Render the relationship structure as a node-link diagram",
		Long: `Render the relationship structure as a node-link diagram.

The graph command is a debugging view: it feeds the record through Graphviz
instead of the pedigree layout engine, showing generations and family links
without the clinical drawing conventions. Use it to check how a record hangs
together before worrying about chart output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !graphFormats[opts.format] {
				return errors.New(errors.ErrCodeInvalidFormat,
					"invalid format: %q (must be 'svg', 'png', or 'dot')", opts.format)
			}
			return c.runGraph(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include ages, statuses, and diagnoses in node labels")

	return cmd
}

// runGraph converts the record to DOT and renders it via Graphviz.
func (c *CLI) runGraph(ctx context.Context, input string, opts *graphOpts) error {
	rec, _, err := pkgio.ImportRecord(input, pedigree.Limits{})
	if err != nil {
		return err
	}
	gens, err := transform.AssignGenerations(rec)
	if err != nil {
		return err
	}

	dot := nodelink.ToDOT(rec, gens, nodelink.Options{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	default:
		spinner := newSpinnerWithContext(ctx, "Rendering node-link diagram...")
		spinner.Start()

		if opts.format == "svg" {
			data, err = nodelink.RenderSVG(dot)
		} else {
			data, err = nodelink.RenderPNG(dot, 2.0)
		}
		if err != nil {
			spinner.StopWithError("Graphviz render failed")
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "render node-link %s", opts.format)
		}
		spinner.Stop()
	}

	path := opts.output
	if path == "" {
		path = basePath("", input) + "." + opts.format
	}
	if err := writeArtifact(path, data); err != nil {
		return err
	}

	printSuccess("Graph complete")
	printFile(path)
	printStats(len(rec.Individuals), len(rec.Relationships), transform.GenerationCount(gens))

	return nil
}
