// Package cli implements the pedigree command-line interface.
//
// This package provides commands for rendering clinical family-history
// records as pedigree charts, validating records without rendering, browsing
// them in the terminal, and producing node-link debug views. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - render: Produce SVG, PNG, PDF, or JSON scene output from a record
//   - validate: Normalize a record and assign generations without rendering
//   - inspect: Browse individuals and relationships interactively
//   - graph: Render the relationship structure via Graphviz
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The shared
// logger writes to stderr and is handed to the pipeline so stage logs and
// policy warnings surface during long runs.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/m0370/pedigree-drawer/pkg/buildinfo"
	"github.com/m0370/pedigree-drawer/pkg/pipeline"
)

// appName is the binary name used in help text and suggested commands.
const appName = "pedigree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance writing log output to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Pedigree renders family-history records as pedigree charts",
		Long:         `Pedigree is a CLI tool for turning structured clinical family-history records into standardized pedigree charts, the diagrams used in genetic counseling to show conditions across generations.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
