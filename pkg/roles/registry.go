// Package roles resolves inline roles (:ref:, :doc:, :class:, ...) to
// HTML fragments. It implements inline.RoleProcessor.
package roles

import (
	"fmt"
	"html"

	"github.com/rstlight/rstlight/pkg/inline"
)

// Handler renders one role occurrence.
type Handler func(role inline.Role) (string, error)

// Registry maps role names to handlers.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates a registry seeded with the built-in roles.
func NewRegistry() *Registry {
	r := &Registry{handlers: make(map[string]Handler)}

	r.Register("ref", refRole)
	r.Register("doc", docRole)

	// Python domain roles render as cross-reference code spans.
	for _, name := range []string{"class", "func", "meth", "mod", "attr", "obj", "exc"} {
		r.Register(name, codeRefRole(name))
	}

	r.Register("code", literalRole)
	r.Register("literal", literalRole)

	return r
}

// Register adds or replaces a role handler.
func (r *Registry) Register(name string, handler Handler) {
	r.handlers[name] = handler
}

// Process resolves a role. Unknown role names return an error; the
// inline engine degrades that to an HTML comment.
func (r *Registry) Process(role inline.Role) (string, error) {
	handler, ok := r.handlers[role.Name]
	if !ok {
		return "", fmt.Errorf("unknown role %q", role.Name)
	}
	return handler(role)
}

// displayText returns the explicit display text or falls back to the
// target.
func displayText(role inline.Role) string {
	if role.Text != "" {
		return role.Text
	}
	return role.Target
}

// refRole links to a section or link-target anchor. The target slug is
// used both as the page name and the fragment, matching how section ids
// and link targets are emitted.
func refRole(role inline.Role) (string, error) {
	slug := inline.Slugify(role.Target)
	return fmt.Sprintf("<a class=\"reference internal\" href=\"%s.html#%s\"><span class=\"std std-ref\">%s</span></a>",
		slug, slug, html.EscapeString(displayText(role))), nil
}

// docRole links to another document by path.
func docRole(role inline.Role) (string, error) {
	return fmt.Sprintf("<a class=\"reference internal\" href=\"%s.html\">%s</a>",
		html.EscapeString(role.Target), html.EscapeString(displayText(role))), nil
}

func codeRefRole(domain string) Handler {
	return func(role inline.Role) (string, error) {
		return fmt.Sprintf("<code class=\"xref py py-%s docutils literal notranslate\"><span class=\"pre\">%s</span></code>",
			domain, html.EscapeString(displayText(role))), nil
	}
}

func literalRole(role inline.Role) (string, error) {
	return fmt.Sprintf("<code class=\"code docutils literal notranslate\"><span class=\"pre\">%s</span></code>",
		html.EscapeString(role.Target)), nil
}
