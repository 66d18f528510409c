package config

// GenerateTemplate creates a commented starter configuration file.
func GenerateTemplate() []byte {
	return []byte(`# rstlight configuration
# See: https://github.com/rstlight/rstlight

# Directory scanned for .rst, .md and .txt sources
source_dir: docs

# Directory where rendered HTML is written
output_dir: _site

# Document whose toctree forms the root of the navigation
master_doc: index

# Shown in page titles and the sidebar header
project_name: Documentation

# Syntax highlighting color scheme (any Chroma style name)
highlight_style: monokai

# Glob patterns to skip during discovery
# exclude:
#   - "drafts/**"
#   - "**/README.rst"

# Logging verbosity: debug, info, warn, error
# log_level: info
`)
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# rstlight configuration
# See: https://github.com/rstlight/rstlight`
}
