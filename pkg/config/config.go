// Package config defines core configuration types for rstlight.
// These types are pure data structures with no dependency on any
// particular loader, so they can be shared by the CLI and by tests.
package config

// DefaultConfigFile is the canonical config file name searched for in
// the project root.
const DefaultConfigFile = ".rstlight.yaml"

// configFileNames lists the file names probed, in order, when no
// explicit config path is given.
var configFileNames = []string{
	".rstlight.yaml",
	".rstlight.yml",
	"rstlight.yaml",
	"rstlight.yml",
}

// Config is the root configuration structure for rstlight.
type Config struct {
	// SourceDir is the directory scanned for source documents.
	SourceDir string `mapstructure:"source_dir" yaml:"source_dir"`

	// OutputDir is where rendered HTML pages are written.
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`

	// MasterDoc is the document path (without extension) whose toctree
	// forms the root of the site navigation.
	MasterDoc string `mapstructure:"master_doc" yaml:"master_doc"`

	// ProjectName appears in page titles and the sidebar header.
	ProjectName string `mapstructure:"project_name" yaml:"project_name"`

	// HighlightStyle selects the syntax highlighting color scheme.
	HighlightStyle string `mapstructure:"highlight_style" yaml:"highlight_style"`

	// Exclude contains glob patterns for files to skip during discovery.
	Exclude []string `mapstructure:"exclude" yaml:"exclude"`

	// LogLevel sets the logging verbosity: debug, info, warn or error.
	// Empty keeps the default level; the --debug flag wins over it.
	LogLevel string `mapstructure:"log_level" yaml:"log_level,omitempty"`

	// CLI-level options (not persisted to config files).

	// Jobs specifies the number of parallel render workers.
	Jobs int `mapstructure:"-" yaml:"-"`

	// Clean removes the output directory before building.
	Clean bool `mapstructure:"-" yaml:"-"`

	// Strict turns directive and role processing errors into build failures.
	Strict bool `mapstructure:"-" yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		SourceDir:      "docs",
		OutputDir:      "_site",
		MasterDoc:      "index",
		ProjectName:    "Documentation",
		HighlightStyle: "monokai",
		Exclude:        nil,
		Jobs:           0, // 0 means use GOMAXPROCS
	}
}

// Validate checks the configuration for values that would make a build
// impossible. It does not touch the filesystem.
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return &ValidationError{Field: "source_dir", Reason: "must not be empty"}
	}
	if c.OutputDir == "" {
		return &ValidationError{Field: "output_dir", Reason: "must not be empty"}
	}
	if c.MasterDoc == "" {
		return &ValidationError{Field: "master_doc", Reason: "must not be empty"}
	}
	if c.Jobs < 0 {
		return &ValidationError{Field: "jobs", Reason: "must not be negative"}
	}
	return nil
}

// ValidationError describes a single invalid configuration field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "config: " + e.Field + " " + e.Reason
}
