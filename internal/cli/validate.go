package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	pkgio "github.com/m0370/pedigree-drawer/pkg/io"
	"github.com/m0370/pedigree-drawer/pkg/pedigree"
	"github.com/m0370/pedigree-drawer/pkg/pedigree/transform"
)

// validateCommand creates the validate command for checking records without
// rendering them.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [record.json]",
		Short: "Validate a family-history record without rendering",
		Long: `Validate a family-history record without rendering.

The record is normalized and individuals are assigned to generations, which
catches everything the render command would reject: duplicate ids, dangling
references, missing fields, and contradictory generation structure. Tolerated
values that normalization dropped are listed as warnings.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}
}

// runValidate normalizes the record, assigns generations, and prints warnings
// and summary statistics.
func (c *CLI) runValidate(input string) error {
	prog := newProgress(c.Logger)

	rec, warnings, err := pkgio.ImportRecord(input, pedigree.Limits{})
	if err != nil {
		return err
	}

	gens, err := transform.AssignGenerations(rec)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Checked %d individuals", len(rec.Individuals)))

	printSuccess("Record is valid")
	printKeyValue("Individuals", strconv.Itoa(len(rec.Individuals)))
	printKeyValue("Relationships", strconv.Itoa(len(rec.Relationships)))
	printKeyValue("Generations", strconv.Itoa(transform.GenerationCount(gens)))

	if len(warnings) > 0 {
		printNewline()
		printWarning("%d value(s) dropped during normalization", len(warnings))
		for _, w := range warnings {
			printDetail("%s", w)
		}
	}

	printNewline()
	printNextStep("Render", fmt.Sprintf("%s render %s", appName, input))

	return nil
}
