package builder

import "time"

// PageOutcome records the result of rendering a single document.
type PageOutcome struct {
	// DocPath is the document path relative to the source directory,
	// without extension (e.g. "guide/install").
	DocPath string

	// SourcePath is the source file path relative to the source directory.
	SourcePath string

	// OutputPath is the written HTML file path relative to the output
	// directory. Empty if the page was not written.
	OutputPath string

	// Title is the document title used in the page shell.
	Title string

	// Error is set if the page could not be rendered or written.
	Error error
}

// Stats captures aggregate information about a build.
type Stats struct {
	// PagesDiscovered is the total number of source files found.
	PagesDiscovered int

	// PagesRendered is the number of pages successfully written.
	PagesRendered int

	// PagesErrored is the number of pages that encountered errors.
	PagesErrored int

	// Duration is the wall-clock time of the whole build.
	Duration time.Duration
}

// Result is the overall build result.
type Result struct {
	// Pages contains the outcome for each document, ordered
	// deterministically by document path.
	Pages []PageOutcome

	// Stats contains aggregate statistics for the build.
	Stats Stats
}

// HasFailures reports whether any page failed to render or write.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.PagesErrored > 0
}

// accumulate updates the result with a page outcome.
func (r *Result) accumulate(outcome PageOutcome) {
	r.Pages = append(r.Pages, outcome)

	if outcome.Error != nil {
		r.Stats.PagesErrored++
		return
	}
	r.Stats.PagesRendered++
}
