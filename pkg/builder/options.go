// Package builder orchestrates full site builds: source discovery, the
// sequential title-collection pass, and the concurrent render pass.
package builder

import "github.com/rstlight/rstlight/pkg/config"

// Options controls a single build run.
type Options struct {
	// Config is the resolved configuration for this run.
	Config *config.Config

	// WorkingDir is the base directory used to resolve the configured
	// source and output directories. If empty, the current process
	// working directory is used.
	WorkingDir string
}

// DefaultExtensions returns the source file extensions the builder
// treats as documents.
func DefaultExtensions() []string {
	return []string{".rst", ".md", ".txt"}
}

// effectiveConfig returns the configuration to use, defaulting if nil.
func (o Options) effectiveConfig() *config.Config {
	if o.Config == nil {
		return config.NewConfig()
	}
	return o.Config
}
