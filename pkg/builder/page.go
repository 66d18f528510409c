package builder

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/rstlight/rstlight/pkg/nav"
)

// pageData feeds the page shell template for one document.
type pageData struct {
	// ProjectName appears in the sidebar header and the title tag.
	ProjectName string

	// Title is the document title.
	Title string

	// Body is the rendered document body. Trusted: it is produced by
	// our own renderer, which escapes all source-derived text.
	Body template.HTML

	// Sidebar is the rendered site-wide toctree.
	Sidebar template.HTML

	// Parents is the breadcrumb trail from the root to this page.
	Parents []nav.NavLink

	// Prev and Next are reading-order neighbors, nil at the boundaries.
	Prev *nav.NavLink
	Next *nav.NavLink

	// Root is the relative path prefix back to the site root, e.g.
	// "../" for a page one directory deep.
	Root string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} &mdash; {{.ProjectName}}</title>
<link rel="stylesheet" href="{{.Root}}_static/rstlight.css">
</head>
<body>
<div class="page">
<aside class="sidebar">
<div class="sidebar-brand"><a href="{{.Root}}index.html">{{.ProjectName}}</a></div>
<nav class="sidebar-tree">
{{.Sidebar}}</nav>
</aside>
<main class="content">
{{- if .Parents}}
<nav class="breadcrumbs" aria-label="Breadcrumb"><ul>
{{- range .Parents}}
<li><a href="{{$.Root}}{{.Link}}">{{.Title}}</a></li>
{{- end}}
<li aria-current="page">{{.Title}}</li>
</ul></nav>
{{- end}}
<article role="main">
{{.Body}}</article>
<footer class="page-footer">
{{- if .Prev}}
<a class="prev-page" href="{{.Root}}{{.Prev.Link}}" rel="prev">&larr; {{.Prev.Title}}</a>
{{- end}}
{{- if .Next}}
<a class="next-page" href="{{.Root}}{{.Next.Link}}" rel="next">{{.Next.Title}} &rarr;</a>
{{- end}}
</footer>
</main>
</div>
</body>
</html>
`))

// renderPage executes the page shell template.
func renderPage(data pageData) (string, error) {
	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("execute page template: %w", err)
	}
	return sb.String(), nil
}

// rootPrefix returns the relative prefix from a document path back to
// the site root: "" at the root, "../" one level down, and so on.
func rootPrefix(docPath string) string {
	depth := strings.Count(docPath, "/")
	return strings.Repeat("../", depth)
}
