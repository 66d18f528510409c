// Package inline rewrites reStructuredText inline markup (roles,
// references, code spans, emphasis) inside a text string to HTML.
//
// The pipeline order is a correctness contract: roles and references are
// resolved on the raw text before HTML escaping so angle brackets in
// `text <target>` forms survive, code spans are consumed after escaping,
// and bold must run before italic. Already-rendered fragments are held in
// protected segments so later passes cannot corrupt them.
package inline

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// Role is an inline construct `:name:`target`` or `:name:`display <target>``.
type Role struct {
	// Name is the role name, e.g. "ref" or "doc".
	Name string

	// Target is the link target.
	Target string

	// Text is the explicit display text, empty when the target doubles
	// as the display text.
	Text string
}

// RoleProcessor resolves a role to an HTML fragment.
type RoleProcessor interface {
	Process(role Role) (string, error)
}

var (
	roleRe       = regexp.MustCompile(":([a-zA-Z][a-zA-Z0-9_:-]*):`([^`]+)`")
	refRe        = regexp.MustCompile("`([^`]+)`_")
	bareRefRe    = regexp.MustCompile(`\b([A-Za-z][A-Za-z0-9_.]*[A-Za-z0-9])_\b`)
	doubleCodeRe = regexp.MustCompile("``([^`]+)``")
	singleCodeRe = regexp.MustCompile("`([^`]+)`")
	boldRe       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe     = regexp.MustCompile(`\*([^*]+)\*`)
)

// Engine is the inline markup renderer. The zero value renders every
// role as an error comment; use NewEngine to attach a role processor.
type Engine struct {
	roles RoleProcessor
}

// NewEngine creates an Engine that resolves roles through the given
// processor. A nil processor is allowed.
func NewEngine(roles RoleProcessor) *Engine {
	return &Engine{roles: roles}
}

// Render rewrites all inline markup in text to HTML. It is a pure
// function: markup-free input comes back unchanged modulo HTML escaping.
func (e *Engine) Render(text string) string {
	segs := []segment{{text: text}}

	// 1. Roles, resolved on unescaped text.
	segs = protect(segs, roleRe, func(groups []string) string {
		return e.renderRole(groups[1], groups[2])
	})

	// 2. Explicit references: `text`_ or `text <url>`_.
	segs = protect(segs, refRe, func(groups []string) string {
		return renderReference(groups[1])
	})

	// 3. Bare word references: Word_.
	segs = protect(segs, bareRefRe, func(groups []string) string {
		word := groups[1]
		return fmt.Sprintf("<a class=\"reference internal\" href=\"#%s\">%s</a>",
			Slugify(word), html.EscapeString(word))
	})

	// 4. Escape everything still rewritable.
	segs = mapText(segs, html.EscapeString)

	// 5. Double-backtick code spans.
	segs = protect(segs, doubleCodeRe, func(groups []string) string {
		return "<code>" + groups[1] + "</code>"
	})

	// 6. Single-backtick code spans. Safe now that reference-form
	// backticks were consumed in step 2.
	segs = protect(segs, singleCodeRe, func(groups []string) string {
		return "<code class=\"code docutils literal notranslate\"><span class=\"pre\">" +
			groups[1] + "</span></code>"
	})

	// 7. Bold before italic, so ** is gone when * is matched.
	segs = mapText(segs, func(s string) string {
		return boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	})

	// 8. Italic.
	segs = mapText(segs, func(s string) string {
		return italicRe.ReplaceAllString(s, "<em>$1</em>")
	})

	// 9. Reassemble, restoring every protected fragment.
	return flatten(segs)
}

func (e *Engine) renderRole(name, content string) string {
	display, target := SplitTitleTarget(content)

	role := Role{Name: name, Target: target, Text: display}
	if e.roles == nil {
		return fmt.Sprintf("<!-- Unknown role: %s -->", name)
	}
	rendered, err := e.roles.Process(role)
	if err != nil {
		return fmt.Sprintf("<!-- Unknown role: %s -->", name)
	}
	return rendered
}

func renderReference(ref string) string {
	// External link form: `text <URL>`_.
	if angle := strings.LastIndex(ref, "<"); angle >= 0 && strings.HasSuffix(ref, ">") {
		display := strings.TrimSpace(ref[:angle])
		url := ref[angle+1 : len(ref)-1]
		return fmt.Sprintf("<a class=\"reference external\" href=\"%s\">%s</a>",
			html.EscapeString(url), html.EscapeString(display))
	}

	// Internal reference to a section or link target.
	return fmt.Sprintf("<a class=\"reference internal\" href=\"#%s\">%s</a>",
		Slugify(ref), html.EscapeString(ref))
}

// SplitTitleTarget splits an entry of the form "Title <target>" into its
// display text and target. Entries without an explicit title return an
// empty display text and the entry itself as target.
func SplitTitleTarget(entry string) (display, target string) {
	if angle := strings.Index(entry, "<"); angle >= 0 && strings.HasSuffix(entry, ">") {
		return strings.TrimSpace(entry[:angle]), entry[angle+1 : len(entry)-1]
	}
	return "", entry
}
