// Package render walks a parsed document AST and produces semantic
// HTML. It maintains heading-driven section nesting, runs inline markup
// through the inline engine per node, and dispatches directives: three
// built-ins that need file I/O or the navigation registry (toctree,
// literalinclude, include) are handled here, everything else goes to
// the configured DirectiveProcessor.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/rstlight/rstlight/pkg/docast"
	"github.com/rstlight/rstlight/pkg/highlight"
	"github.com/rstlight/rstlight/pkg/inline"
	"github.com/rstlight/rstlight/pkg/nav"
)

// DirectiveProcessor handles directives the renderer does not implement
// itself.
type DirectiveProcessor interface {
	// Process renders a directive; an error causes the renderer to emit
	// an HTML comment in its place.
	Process(d docast.Directive) (string, error)

	// PreservesRawContent reports whether the named directive must
	// receive its content verbatim, skipping inline pre-processing.
	PreservesRawContent(name string) bool
}

// Highlighter renders code to highlighted HTML, keyed by a language
// token or file extension.
type Highlighter interface {
	Highlight(code, language string) (string, error)
}

// Config wires the renderer's collaborators. Any field may be left nil;
// missing collaborators degrade gracefully (unknown roles and
// directives become HTML comments, code renders unhighlighted).
type Config struct {
	Directives  DirectiveProcessor
	Roles       inline.RoleProcessor
	Highlighter Highlighter

	// Nav is the frozen title/toctree registry used by the toctree
	// directive. It must be fully populated before rendering begins.
	Nav *nav.Builder

	// SourceDir anchors relative paths in literalinclude and include.
	SourceDir string
}

// Renderer converts a document AST to HTML. A Renderer is stateless
// across documents and safe for concurrent use once its Config
// collaborators are frozen.
type Renderer struct {
	cfg    Config
	inline *inline.Engine
}

// New creates a Renderer.
func New(cfg Config) *Renderer {
	return &Renderer{
		cfg:    cfg,
		inline: inline.NewEngine(cfg.Roles),
	}
}

// Inline renders inline markup in a text fragment.
func (r *Renderer) Inline(text string) string {
	return r.inline.Render(text)
}

// RenderDocument renders any document content to body HTML.
func (r *Renderer) RenderDocument(content docast.Content) string {
	switch content.Kind {
	case docast.ContentRST:
		return r.RenderRST(content.RST)
	case docast.ContentMarkdown:
		return r.renderMarkdown(content.Markdown)
	default:
		return "<p>" + html.EscapeString(content.Plain) + "</p>"
	}
}

// RenderRST renders an RST AST, wrapping content in hierarchical
// section tags driven by heading levels.
func (r *Renderer) RenderRST(rst *docast.RSTContent) string {
	var sb strings.Builder
	var open []int // stack of open section levels

	for _, node := range rst.AST {
		if node.Kind == docast.NodeTitle {
			level := clampLevel(node.Level)

			// Close sections at the same level or deeper, then open a
			// new one for this heading.
			for len(open) > 0 && open[len(open)-1] >= level {
				sb.WriteString("</section>\n")
				open = open[:len(open)-1]
			}
			fmt.Fprintf(&sb, "<section id=\"%s\">\n", titleSlug(node.Text))
			open = append(open, level)
		}

		sb.WriteString(r.renderNode(node))
		sb.WriteByte('\n')
	}

	for range open {
		sb.WriteString("</section>\n")
	}

	return sb.String()
}

func (r *Renderer) renderNode(node docast.Node) string {
	switch node.Kind {
	case docast.NodeTitle:
		return r.renderTitle(node)

	case docast.NodeParagraph:
		return "<p>" + r.inline.Render(node.Content) + "</p>"

	case docast.NodeCodeBlock:
		return r.highlightCode(node.Content, node.Language)

	case docast.NodeList:
		return r.renderList(node)

	case docast.NodeTable:
		return renderTable(node)

	case docast.NodeDirective:
		return r.renderDirective(docast.Directive{
			Name:    node.Name,
			Args:    node.Args,
			Options: node.Options,
			Content: node.Content,
			Line:    node.Line,
		})

	case docast.NodeLinkTarget:
		// Invisible anchor, never visible text.
		return fmt.Sprintf("<span id=\"%s\"></span>", html.EscapeString(node.Name))

	case docast.NodeBlockQuote:
		return "<blockquote>\n<p>" + r.inline.Render(node.Content) + "</p>\n</blockquote>"

	case docast.NodeDefinitionList:
		var sb strings.Builder
		sb.WriteString("<dl class=\"simple\">\n")
		for _, item := range node.Defs {
			fmt.Fprintf(&sb, "<dt>%s</dt><dd><p>%s</p>\n</dd>\n",
				r.inline.Render(item.Term), r.inline.Render(item.Definition))
		}
		sb.WriteString("</dl>")
		return sb.String()

	default:
		return ""
	}
}

// renderTitle emits the heading with a Sphinx-style headerlink. The
// anchor id lives on the enclosing section tag, not the heading.
func (r *Renderer) renderTitle(node docast.Node) string {
	level := clampLevel(node.Level)
	slug := titleSlug(node.Text)
	return fmt.Sprintf("<h%d>%s<a class=\"headerlink\" href=\"#%s\" title=\"Link to this heading\">¶</a></h%d>",
		level, r.inline.Render(node.Text), slug, level)
}

// renderList emits a simple list. Items containing embedded newlines
// render as a nested definition-list sub-list.
func (r *Renderer) renderList(node docast.Node) string {
	var items []string
	for _, item := range node.Items {
		if strings.Contains(item, "\n") {
			parts := strings.Split(item, "\n")
			var nested []string
			for _, sub := range parts[1:] {
				nested = append(nested, "<li><p>"+r.inline.Render(sub)+"</p></li>")
			}
			items = append(items, fmt.Sprintf(
				"<li><dl class=\"simple\">\n<dt>%s</dt><dd><ul>\n%s\n</ul>\n</dd>\n</dl></li>",
				r.inline.Render(parts[0]), strings.Join(nested, "\n")))
			continue
		}
		items = append(items, "<li>"+r.inline.Render(item)+"</li>")
	}

	body := strings.Join(items, "\n")
	if node.Ordered {
		return "<ol>\n" + body + "\n</ol>"
	}
	return "<ul class=\"simple\">\n" + body + "\n</ul>"
}

func renderTable(node docast.Node) string {
	var sb strings.Builder
	sb.WriteString("<table>\n")

	if len(node.Headers) > 0 {
		sb.WriteString("<thead>\n<tr>\n")
		for _, h := range node.Headers {
			fmt.Fprintf(&sb, "<th>%s</th>\n", html.EscapeString(h))
		}
		sb.WriteString("</tr>\n</thead>\n")
	}

	if len(node.Rows) > 0 {
		sb.WriteString("<tbody>\n")
		for _, row := range node.Rows {
			sb.WriteString("<tr>\n")
			for _, cell := range row {
				fmt.Fprintf(&sb, "<td>%s</td>\n", html.EscapeString(cell))
			}
			sb.WriteString("</tr>\n")
		}
		sb.WriteString("</tbody>\n")
	}

	sb.WriteString("</table>")
	return sb.String()
}

// renderDirective dispatches one directive. The three built-ins need
// file I/O or the navigation registry; the rest go to the processor
// with inline markup pre-applied per content line unless the directive
// preserves raw content.
func (r *Renderer) renderDirective(d docast.Directive) string {
	switch d.Name {
	case "toctree":
		return r.renderToctree(d)
	case "literalinclude":
		return r.renderLiteralInclude(d)
	case "include":
		return r.renderInclude(d)
	}

	if r.cfg.Directives == nil {
		return fmt.Sprintf("<!-- Error processing directive: %s -->", d.Name)
	}

	if !r.cfg.Directives.PreservesRawContent(d.Name) {
		lines := strings.Split(d.Content, "\n")
		for i, line := range lines {
			lines[i] = r.inline.Render(line)
		}
		d.Content = strings.Join(lines, "\n")
	}

	rendered, err := r.cfg.Directives.Process(d)
	if err != nil {
		return fmt.Sprintf("<!-- Error processing directive: %s -->", d.Name)
	}
	return rendered
}

// renderMarkdown renders the minimal Markdown AST.
func (r *Renderer) renderMarkdown(md *docast.MarkdownContent) string {
	var sb strings.Builder
	for _, node := range md.AST {
		switch node.Kind {
		case docast.NodeParagraph:
			sb.WriteString("<p>" + html.EscapeString(node.Content) + "</p>")
		case docast.NodeTitle:
			level := clampLevel(node.Level)
			fmt.Fprintf(&sb, "<h%d id=\"%s\">%s</h%d>",
				level, inline.Slugify(node.Text), html.EscapeString(node.Text), level)
		case docast.NodeCodeBlock:
			sb.WriteString(r.highlightCode(node.Content, node.Language))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (r *Renderer) highlightCode(code, language string) string {
	if r.cfg.Highlighter == nil {
		return highlight.Fallback(code)
	}
	rendered, err := r.cfg.Highlighter.Highlight(code, language)
	if err != nil {
		return highlight.Fallback(code)
	}
	return rendered
}

// titleSlug derives the anchor slug from heading text: markup is
// stripped (keeping display text) before slugification.
func titleSlug(text string) string {
	return inline.Slugify(inline.StripMarkup(text))
}

func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}
