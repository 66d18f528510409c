package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/rstlight/rstlight/pkg/docast"
	"github.com/rstlight/rstlight/pkg/inline"
)

// renderToctree renders the toctree directive body as a link list.
// Entries are either "Title <path>" (the explicit title wins) or a bare
// path whose title is looked up in the navigation registry, falling
// back to the path itself.
func (r *Renderer) renderToctree(d docast.Directive) string {
	caption, hasCaption := d.Options["caption"]
	_, hidden := d.Options["hidden"]

	var entries []string
	for _, line := range strings.Split(d.Content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		entries = append(entries, line)
	}

	var sb strings.Builder
	if hidden {
		sb.WriteString("<div class=\"toctree-wrapper\" style=\"display: none;\">\n")
	} else {
		sb.WriteString("<div class=\"toctree-wrapper\">\n")
	}

	if hasCaption {
		fmt.Fprintf(&sb, "<p class=\"caption\"><span class=\"caption-text\">%s</span></p>\n",
			html.EscapeString(caption))
	}

	if len(entries) > 0 {
		sb.WriteString("<ul>\n")
		for _, entry := range entries {
			title, path := inline.SplitTitleTarget(entry)
			if title == "" {
				title = r.lookupTitle(path)
			}
			fmt.Fprintf(&sb, "<li class=\"toctree-l1\"><a class=\"reference internal\" href=\"%s\">%s</a></li>\n",
				html.EscapeString(path+".html"), html.EscapeString(title))
		}
		sb.WriteString("</ul>\n")
	}

	sb.WriteString("</div>")
	return sb.String()
}

func (r *Renderer) lookupTitle(path string) string {
	if r.cfg.Nav != nil {
		if title, ok := r.cfg.Nav.Title(path); ok {
			return title
		}
	}
	return path
}
