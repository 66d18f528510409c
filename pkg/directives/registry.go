// Package directives processes block directives that need no file I/O
// or registry access. It implements render.DirectiveProcessor; the
// renderer handles toctree, literalinclude and include itself.
package directives

import (
	"fmt"

	"github.com/rstlight/rstlight/pkg/docast"
)

// Handler renders one directive occurrence.
type Handler func(d docast.Directive) (string, error)

// Registration couples a handler with its capabilities.
type Registration struct {
	Name string

	Handler Handler

	// PreservesRawContent marks directives whose content must reach the
	// handler unmodified, skipping inline markup pre-processing.
	PreservesRawContent bool
}

// HighlightFunc renders code as highlighted HTML.
type HighlightFunc func(code, language string) (string, error)

// Registry maps directive names to registrations.
type Registry struct {
	regs      map[string]Registration
	highlight HighlightFunc
}

// NewRegistry creates a registry seeded with the built-in directives.
// highlight is used by the code-block family; nil falls back to plain
// escaped output.
func NewRegistry(highlight HighlightFunc) *Registry {
	r := &Registry{
		regs:      make(map[string]Registration),
		highlight: highlight,
	}
	r.registerDefaults()
	return r
}

// Register adds or replaces a directive registration.
func (r *Registry) Register(reg Registration) {
	r.regs[reg.Name] = reg
}

// Process renders a directive. Unknown names return an error; the
// renderer degrades that to an HTML comment so the name never shows up
// in visible output.
func (r *Registry) Process(d docast.Directive) (string, error) {
	reg, ok := r.regs[d.Name]
	if !ok {
		return "", fmt.Errorf("unknown directive %q", d.Name)
	}
	return reg.Handler(d)
}

// PreservesRawContent reports whether the named directive takes its
// content verbatim. Unregistered names report the legacy raw-content
// set, so the in-core file-inclusion directives keep their raw bodies.
func (r *Registry) PreservesRawContent(name string) bool {
	if reg, ok := r.regs[name]; ok {
		return reg.PreservesRawContent
	}
	switch name {
	case "literalinclude", "highlight":
		return true
	default:
		return false
	}
}
