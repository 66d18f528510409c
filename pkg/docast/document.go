// Package docast defines the document AST produced by the parser and
// consumed by the renderer and navigation builder.
package docast

import (
	"strings"
	"time"
)

// ContentKind discriminates the content union of a Document.
type ContentKind uint8

const (
	// ContentRST is reStructuredText content with a full block AST.
	ContentRST ContentKind = iota
	// ContentMarkdown is Markdown content with a minimal paragraph AST.
	ContentMarkdown
	// ContentPlainText is unparsed plain text.
	ContentPlainText
)

// Content is a tagged union of the three supported source formats.
// Exactly one of RST, Markdown or Plain is meaningful, selected by Kind.
type Content struct {
	Kind     ContentKind
	RST      *RSTContent
	Markdown *MarkdownContent
	Plain    string
}

// RSTContent holds the parse result for a reStructuredText source.
type RSTContent struct {
	// Raw is the original source text.
	Raw string

	// AST is the block node sequence in source line order.
	AST []Node

	// Directives lists every directive encountered, in order.
	Directives []Directive
}

// MarkdownContent holds the parse result for a Markdown source.
// The Markdown path is intentionally minimal: only paragraph-level text
// is captured.
type MarkdownContent struct {
	Raw string
	AST []Node
}

// Directive is a block construct of the form `.. name:: args` with
// option lines and indented content.
type Directive struct {
	Name    string
	Args    []string
	Options map[string]string
	Content string
	Line    int
}

// TocEntry is one entry in a document's own table of contents,
// produced per Title node.
type TocEntry struct {
	Title  string
	Level  int
	Anchor string
	Line   int
}

// CrossReference records an inline `:type:`target`` occurrence.
type CrossReference struct {
	RefType string
	Target  string
	Line    int
}

// Document is the compiler's unit of work: one parsed source file.
// It is owned exclusively by the caller and immutable once produced.
type Document struct {
	// SourcePath is the path the document was read from.
	SourcePath string

	// OutputPath is SourcePath with the extension replaced by .html.
	OutputPath string

	// Title is the text of the first Title node, or "Untitled".
	Title string

	// Content is the parsed body.
	Content Content

	// Toc lists the document's headings in order.
	Toc []TocEntry

	// CrossRefs lists inline cross-references found anywhere in the source.
	CrossRefs []CrossReference

	// SourceMtime is the source file's modification time, if known.
	// Consumed by incremental-cache layers keyed on path + mtime.
	SourceMtime time.Time
}

// IsRST reports whether the document parsed as reStructuredText.
func (d *Document) IsRST() bool {
	return d.Content.Kind == ContentRST
}

// Titles returns every Title node in the RST AST, in order.
// For non-RST content it returns nil.
func (d *Document) Titles() []Node {
	if d.Content.Kind != ContentRST || d.Content.RST == nil {
		return nil
	}
	var titles []Node
	for _, n := range d.Content.RST.AST {
		if n.Kind == NodeTitle {
			titles = append(titles, n)
		}
	}
	return titles
}

// ToctreeEntries returns the entry lines of every toctree directive in
// the document, skipping blank and option lines.
func (d *Document) ToctreeEntries() []string {
	if d.Content.Kind != ContentRST || d.Content.RST == nil {
		return nil
	}
	var entries []string
	for _, dir := range d.Content.RST.Directives {
		if dir.Name != "toctree" {
			continue
		}
		for _, line := range strings.Split(dir.Content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || line[0] == ':' {
				continue
			}
			entries = append(entries, line)
		}
	}
	return entries
}
