package nav

import (
	"fmt"
	"html"
	"regexp"
	"slices"
	"strings"
)

// ToctreeOptions controls sidebar toctree rendering.
type ToctreeOptions struct {
	// Maxdepth limits nesting depth; 0 means unlimited.
	Maxdepth int

	// CurrentDoc marks the document being rendered, for current-page
	// and breadcrumb highlighting. Empty disables highlighting.
	CurrentDoc string
}

// DefaultToctreeOptions returns the options used for the sidebar.
func DefaultToctreeOptions() ToctreeOptions {
	return ToctreeOptions{Maxdepth: 4}
}

var navCodeRe = regexp.MustCompile("`([^`]+)`")

// renderNavTitle escapes a title and converts backtick spans to code
// tags, so titles with inline code display correctly in the sidebar.
func renderNavTitle(title string) string {
	escaped := html.EscapeString(title)
	return navCodeRe.ReplaceAllString(escaped,
		`<code class="code docutils literal notranslate"><span class="pre">$1</span></code>`)
}

// RenderToctree renders the sidebar tree as HTML. Only the children of
// the root document are emitted; the root's own title never appears.
func (b *Builder) RenderToctree(opts ToctreeOptions) (string, error) {
	tree, err := b.BuildTree()
	if err != nil {
		return "", err
	}

	var currentPath []string
	if opts.CurrentDoc != "" {
		currentPath = pathToDoc(tree, opts.CurrentDoc)
	}

	if len(tree.Children) == 0 {
		return "", nil
	}

	var sb strings.Builder
	checkboxID := 1
	for _, child := range tree.Children {
		checkboxID = renderToctreeNode(&sb, child, 1, opts, currentPath, checkboxID)
	}
	return sb.String(), nil
}

// RenderToctreeFor renders the subtree rooted at a specific document
// (its children, wrapped in a ul).
func (b *Builder) RenderToctreeFor(docPath string, opts ToctreeOptions) (string, error) {
	tree, err := b.BuildTree()
	if err != nil {
		return "", err
	}

	var currentPath []string
	if opts.CurrentDoc != "" {
		currentPath = pathToDoc(tree, opts.CurrentDoc)
	}

	node := findNode(tree, docPath)
	if node == nil || len(node.Children) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("<ul>\n")
	checkboxID := 1
	for _, child := range node.Children {
		checkboxID = renderToctreeNode(&sb, child, 1, opts, currentPath, checkboxID)
	}
	sb.WriteString("</ul>\n")
	return sb.String(), nil
}

// renderToctreeNode writes one node and its subtree. The checkbox id
// counter is threaded explicitly and the next free id is returned, so
// subtrees can be rendered independently without shared state.
func renderToctreeNode(sb *strings.Builder, node *TocTreeNode, depth int, opts ToctreeOptions, currentPath []string, checkboxID int) int {
	if opts.Maxdepth > 0 && depth > opts.Maxdepth {
		return checkboxID
	}

	external := isExternal(node.DocPath)
	hasChildren := len(node.Children) > 0 && (opts.Maxdepth == 0 || depth < opts.Maxdepth)
	isCurrent := !external && slices.Contains(currentPath, node.DocPath)
	isCurrentPage := !external && opts.CurrentDoc != "" && opts.CurrentDoc == node.DocPath

	classes := []string{fmt.Sprintf("toctree-l%d", depth)}
	if isCurrent {
		classes = append(classes, "current")
	}
	if isCurrentPage {
		classes = append(classes, "current-page")
	}
	if hasChildren {
		classes = append(classes, "has-children")
	}

	var linkClass, href string
	switch {
	case external:
		linkClass, href = "reference external", node.DocPath
	case isCurrentPage:
		linkClass, href = "current reference internal", node.DocPath+".html"
	default:
		linkClass, href = "reference internal", node.DocPath+".html"
	}

	fmt.Fprintf(sb, "<li class=\"%s\"><a class=\"%s\" href=\"%s\">%s</a>",
		strings.Join(classes, " "), linkClass, html.EscapeString(href), renderNavTitle(node.Title))

	if hasChildren {
		checked := ""
		if isCurrent {
			checked = " checked"
		}
		fmt.Fprintf(sb, `<input aria-label="Toggle navigation of %s" class="toctree-checkbox" id="toctree-checkbox-%d" name="toctree-checkbox-%d" role="switch" type="checkbox"%s>`,
			html.EscapeString(node.Title), checkboxID, checkboxID, checked)
		fmt.Fprintf(sb, `<label for="toctree-checkbox-%d"><span class="icon"><svg><use href="#svg-arrow-right"></use></svg></span></label>`,
			checkboxID)
		checkboxID++

		sb.WriteString("<ul>\n")
		for _, child := range node.Children {
			checkboxID = renderToctreeNode(sb, child, depth+1, opts, currentPath, checkboxID)
		}
		sb.WriteString("</ul>\n")
	}

	sb.WriteString("</li>\n")
	return checkboxID
}
