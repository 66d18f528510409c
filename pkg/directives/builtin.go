package directives

import (
	"fmt"
	"html"
	"strings"

	"github.com/rstlight/rstlight/pkg/docast"
	"github.com/rstlight/rstlight/pkg/highlight"
	"github.com/rstlight/rstlight/pkg/langdetect"
)

// admonitionNames maps directive names to their display titles.
var admonitionNames = map[string]string{
	"note":      "Note",
	"warning":   "Warning",
	"tip":       "Tip",
	"important": "Important",
	"caution":   "Caution",
	"danger":    "Danger",
	"attention": "Attention",
	"hint":      "Hint",
	"error":     "Error",
	"seealso":   "See also",
}

func (r *Registry) registerDefaults() {
	for name, title := range admonitionNames {
		r.Register(Registration{Name: name, Handler: admonition(name, title)})
	}

	for _, name := range []string{"code-block", "code", "sourcecode"} {
		r.Register(Registration{
			Name:                name,
			Handler:             r.codeBlock,
			PreservesRawContent: true,
		})
	}

	r.Register(Registration{Name: "raw", Handler: rawDirective, PreservesRawContent: true})
	r.Register(Registration{Name: "highlight", Handler: noOutput, PreservesRawContent: true})
	r.Register(Registration{Name: "image", Handler: imageDirective})
	r.Register(Registration{Name: "versionadded", Handler: versionNote("versionadded", "Added in version")})
	r.Register(Registration{Name: "versionchanged", Handler: versionNote("versionchanged", "Changed in version")})
	r.Register(Registration{Name: "deprecated", Handler: versionNote("deprecated", "Deprecated since version")})
}

// admonition renders the note/warning family. Content arrives with
// inline markup already processed; blank lines separate paragraphs.
func admonition(name, title string) Handler {
	return func(d docast.Directive) (string, error) {
		var sb strings.Builder
		fmt.Fprintf(&sb, "<div class=\"admonition %s\">\n<p class=\"admonition-title\">%s</p>\n", name, title)
		for _, para := range splitParagraphs(d.Content) {
			fmt.Fprintf(&sb, "<p>%s</p>\n", para)
		}
		sb.WriteString("</div>")
		return sb.String(), nil
	}
}

// codeBlock renders the code-block/code/sourcecode family. The language
// comes from the argument, or content detection when absent.
func (r *Registry) codeBlock(d docast.Directive) (string, error) {
	language := ""
	if len(d.Args) > 0 {
		language = d.Args[0]
	}
	if language == "" {
		language = langdetect.Detect([]byte(d.Content))
	}

	rendered := ""
	if r.highlight != nil {
		if h, err := r.highlight(d.Content, language); err == nil {
			rendered = h
		}
	}
	if rendered == "" {
		rendered = highlight.Fallback(d.Content)
	}

	var sb strings.Builder
	if caption, ok := d.Options["caption"]; ok {
		fmt.Fprintf(&sb, "<div class=\"code-block-caption\"><span class=\"caption-text\">%s</span></div>\n",
			html.EscapeString(caption))
	}
	fmt.Fprintf(&sb, "<div class=\"highlight-%s notranslate\">%s</div>", language, rendered)
	return sb.String(), nil
}

// rawDirective passes html-format content through verbatim; other
// formats produce no output.
func rawDirective(d docast.Directive) (string, error) {
	if len(d.Args) > 0 && strings.EqualFold(d.Args[0], "html") {
		return d.Content, nil
	}
	return "", nil
}

func noOutput(docast.Directive) (string, error) {
	return "", nil
}

func imageDirective(d docast.Directive) (string, error) {
	if len(d.Args) == 0 {
		return "", fmt.Errorf("image directive requires a path argument")
	}
	alt := d.Options["alt"]
	return fmt.Sprintf("<img src=\"%s\" alt=\"%s\">",
		html.EscapeString(d.Args[0]), html.EscapeString(alt)), nil
}

func versionNote(class, label string) Handler {
	return func(d docast.Directive) (string, error) {
		version := strings.Join(d.Args, " ")
		var sb strings.Builder
		fmt.Fprintf(&sb, "<div class=\"%s\">\n<p><span class=\"versionmodified\">%s %s: </span>",
			class, label, html.EscapeString(version))
		sb.WriteString(strings.Join(splitParagraphs(d.Content), " "))
		sb.WriteString("</p>\n</div>")
		return sb.String(), nil
	}
}

// splitParagraphs splits directive content on blank lines, joining the
// lines of each paragraph with spaces.
func splitParagraphs(content string) []string {
	var paras []string
	var current []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(current) > 0 {
				paras = append(paras, strings.Join(current, " "))
				current = nil
			}
			continue
		}
		current = append(current, trimmed)
	}
	if len(current) > 0 {
		paras = append(paras, strings.Join(current, " "))
	}
	return paras
}
