// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError     = "error"
	FieldPath      = "path"
	FieldDoc       = "doc"
	FieldSourceDir = "source_dir"
	FieldOutputDir = "output_dir"
	FieldOutput    = "output"

	// Configuration fields.
	FieldMasterDoc = "master_doc"
	FieldStyle     = "style"
	FieldJobs      = "jobs"
	FieldStrict    = "strict"

	// Statistics fields.
	FieldPagesDiscovered = "pages_discovered"
	FieldPagesRendered   = "pages_rendered"
	FieldPagesErrored    = "pages_errored"
	FieldDuration        = "duration"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
