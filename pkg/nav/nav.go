// Package nav builds and queries the document hierarchy: the toctree,
// per-page prev/next/parent navigation, and the rendered sidebar tree.
//
// A Builder is populated once during the title-collection pass and then
// treated as read-only; all query methods are safe for concurrent use
// on an immutable Builder.
package nav

import (
	"fmt"
	"strings"

	"github.com/rstlight/rstlight/pkg/inline"
)

// NavLink is a resolved navigation link.
type NavLink struct {
	Title string
	Link  string
}

// PageNavigation is the navigation context computed for a single page.
// Its lifetime is one render call.
type PageNavigation struct {
	// Parents is the breadcrumb trail from the root down to (but not
	// including) the page itself.
	Parents []NavLink

	// Prev and Next are the neighbors in depth-first reading order,
	// nil at the sequence boundaries.
	Prev *NavLink
	Next *NavLink

	// Children are the page's own toctree entries, externals excluded.
	Children []NavLink
}

// TocTreeNode is a node in the expanded document tree. Trees are derived
// on demand from the registered toctrees; they are not persisted.
type TocTreeNode struct {
	DocPath  string
	Title    string
	Children []*TocTreeNode
}

// Flatten returns the subtree's nodes in depth-first pre-order, which is
// the reading order used for prev/next computation.
func (n *TocTreeNode) Flatten() []*TocTreeNode {
	result := []*TocTreeNode{n}
	for _, child := range n.Children {
		result = append(result, child.Flatten()...)
	}
	return result
}

// Builder owns the registry of document titles and toctree entries and
// answers hierarchy queries over them.
type Builder struct {
	toctreeEntries map[string][]string
	titles         map[string]string
	masterDoc      string
}

// NewBuilder creates a Builder rooted at the given master document
// (usually "index").
func NewBuilder(masterDoc string) *Builder {
	return &Builder{
		toctreeEntries: make(map[string][]string),
		titles:         make(map[string]string),
		masterDoc:      masterDoc,
	}
}

// RegisterDocument records a document's title.
func (b *Builder) RegisterDocument(docPath, title string) {
	b.titles[docPath] = title
}

// RegisterToctree records a document's toctree entry lines.
func (b *Builder) RegisterToctree(docPath string, entries []string) {
	b.toctreeEntries[docPath] = entries
}

// Title looks up a registered document title.
func (b *Builder) Title(docPath string) (string, bool) {
	title, ok := b.titles[docPath]
	return title, ok
}

// MasterDoc returns the root document path.
func (b *Builder) MasterDoc() string {
	return b.masterDoc
}

// BuildTree expands the document tree from the master document. An
// entry may carry an explicit title ("Title <path>"); http(s) URLs
// become unexpanded leaves. A toctree that reaches one of its own
// ancestors is reported as an error rather than recursing forever.
func (b *Builder) BuildTree() (*TocTreeNode, error) {
	visited := map[string]struct{}{}
	return b.buildTreeFor(b.masterDoc, visited)
}

func (b *Builder) buildTreeFor(docPath string, visited map[string]struct{}) (*TocTreeNode, error) {
	if _, seen := visited[docPath]; seen {
		return nil, fmt.Errorf("toctree cycle: %q is reachable from itself", docPath)
	}
	visited[docPath] = struct{}{}
	defer delete(visited, docPath)

	title, ok := b.titles[docPath]
	if !ok {
		title = docPath
	}
	node := &TocTreeNode{DocPath: docPath, Title: title}

	for _, entry := range b.toctreeEntries[docPath] {
		childTitle, childPath := inline.SplitTitleTarget(entry)

		if isExternal(childPath) {
			extTitle := childTitle
			if extTitle == "" {
				extTitle = childPath
			}
			node.Children = append(node.Children, &TocTreeNode{DocPath: childPath, Title: extTitle})
			continue
		}

		child, err := b.buildTreeFor(childPath, visited)
		if err != nil {
			return nil, err
		}
		if childTitle != "" {
			child.Title = childTitle
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}

// GetPageNavigation computes the navigation context for one document:
// prev/next from the depth-first flattening, the parent breadcrumb
// trail, and the document's own child entries.
func (b *Builder) GetPageNavigation(docPath string) (PageNavigation, error) {
	tree, err := b.BuildTree()
	if err != nil {
		return PageNavigation{}, err
	}

	var pn PageNavigation
	flat := tree.Flatten()

	for i, node := range flat {
		if node.DocPath != docPath {
			continue
		}
		if i > 0 {
			pn.Prev = &NavLink{Title: flat[i-1].Title, Link: flat[i-1].DocPath + ".html"}
		}
		if i+1 < len(flat) {
			pn.Next = &NavLink{Title: flat[i+1].Title, Link: flat[i+1].DocPath + ".html"}
		}
		break
	}

	pn.Parents = findParents(tree, docPath)

	for _, entry := range b.toctreeEntries[docPath] {
		childTitle, childPath := inline.SplitTitleTarget(entry)
		if isExternal(childPath) {
			continue
		}
		if childTitle == "" {
			if registered, ok := b.titles[childPath]; ok {
				childTitle = registered
			} else {
				childTitle = childPath
			}
		}
		pn.Children = append(pn.Children, NavLink{Title: childTitle, Link: childPath + ".html"})
	}

	return pn, nil
}

// findParents returns the root-to-parent path for target, excluding the
// target itself. Empty if the target is not in the tree.
func findParents(tree *TocTreeNode, target string) []NavLink {
	var path []NavLink
	if findPathTo(tree, target, &path) && len(path) > 0 {
		return path[:len(path)-1]
	}
	return nil
}

func findPathTo(node *TocTreeNode, target string, path *[]NavLink) bool {
	*path = append(*path, NavLink{Title: node.Title, Link: node.DocPath + ".html"})

	if node.DocPath == target {
		return true
	}
	for _, child := range node.Children {
		if findPathTo(child, target, path) {
			return true
		}
	}

	*path = (*path)[:len(*path)-1]
	return false
}

// pathToDoc returns the doc paths from the root to target, inclusive.
// Empty if the target is not in the tree.
func pathToDoc(tree *TocTreeNode, target string) []string {
	var path []string
	if !findDocPath(tree, target, &path) {
		return nil
	}
	return path
}

func findDocPath(node *TocTreeNode, target string, path *[]string) bool {
	*path = append(*path, node.DocPath)

	if node.DocPath == target {
		return true
	}
	for _, child := range node.Children {
		if findDocPath(child, target, path) {
			return true
		}
	}

	*path = (*path)[:len(*path)-1]
	return false
}

func findNode(node *TocTreeNode, docPath string) *TocTreeNode {
	if node.DocPath == docPath {
		return node
	}
	for _, child := range node.Children {
		if found := findNode(child, docPath); found != nil {
			return found
		}
	}
	return nil
}

func isExternal(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}
