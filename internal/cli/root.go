// Package cli provides the Cobra command structure for rstlight.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/rstlight/rstlight/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root rstlight command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "rstlight",
		Short: "A fast reStructuredText documentation site builder",
		Long: `rstlight compiles a tree of reStructuredText (and Markdown) sources
into a static HTML documentation site.

It parses RST block structure and inline markup, processes directives
and roles, highlights code, and builds Sphinx-style navigation
(sidebar toctree, breadcrumbs, prev/next links) from the master
document's toctree.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
