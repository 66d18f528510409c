// Package parser scans raw documentation source into a document AST.
//
// Parsing is total: every input produces some AST. Unrecognized
// constructs degrade to paragraphs or are consumed silently, so no
// malformed prose can abort a build.
package parser

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rstlight/rstlight/pkg/docast"
	"github.com/rstlight/rstlight/pkg/inline"
)

var (
	// Directive names may contain hyphens (code-block, csv-table).
	directiveRe = regexp.MustCompile(`^\s*\.\.\s+([\w-]+)::\s*(.*)$`)
	crossRefRe  = regexp.MustCompile(":(\\w+):`([^`]+)`")
)

// Parser turns raw text into a Document. It holds no per-document
// state; a single Parser is safe to use across goroutines.
type Parser struct{}

// New creates a Parser.
func New() *Parser {
	return &Parser{}
}

// Parse scans content into a Document. The file format is chosen by the
// path extension: .rst gets the full block scanner, .md the minimal
// Markdown path, anything else is kept as plain text. Parse never fails.
func (p *Parser) Parse(path, content string) *docast.Document {
	doc := &docast.Document{
		SourcePath: path,
		OutputPath: outputPath(path),
	}

	if info, err := os.Stat(path); err == nil {
		doc.SourceMtime = info.ModTime()
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".rst":
		doc.Content = docast.Content{Kind: docast.ContentRST, RST: p.parseRST(content)}
	case ".md":
		doc.Content = docast.Content{Kind: docast.ContentMarkdown, Markdown: p.parseMarkdown(content)}
	default:
		doc.Content = docast.Content{Kind: docast.ContentPlainText, Plain: content}
	}

	doc.Title = extractTitle(doc.Content)
	doc.Toc = extractToc(doc.Content)
	doc.CrossRefs = extractCrossRefs(content)

	return doc
}

// extractTitle returns the text of the first Title node, regardless of
// its level, or "Untitled".
func extractTitle(content docast.Content) string {
	switch content.Kind {
	case docast.ContentRST:
		for _, n := range content.RST.AST {
			if n.Kind == docast.NodeTitle {
				return n.Text
			}
		}
	case docast.ContentMarkdown:
		for _, n := range content.Markdown.AST {
			if n.Kind == docast.NodeTitle && n.Level == 1 {
				return n.Text
			}
		}
	}
	return "Untitled"
}

// extractToc collects one entry per Title node. Anchors are slugs of the
// markup-stripped title text, matching the renderer's section ids.
func extractToc(content docast.Content) []docast.TocEntry {
	var nodes []docast.Node
	switch content.Kind {
	case docast.ContentRST:
		nodes = content.RST.AST
	case docast.ContentMarkdown:
		nodes = content.Markdown.AST
	default:
		return nil
	}

	var toc []docast.TocEntry
	for _, n := range nodes {
		if n.Kind != docast.NodeTitle {
			continue
		}
		toc = append(toc, docast.TocEntry{
			Title:  n.Text,
			Level:  n.Level,
			Anchor: inline.Slugify(inline.StripMarkup(n.Text)),
			Line:   n.Line,
		})
	}
	return toc
}

func extractCrossRefs(content string) []docast.CrossReference {
	var refs []docast.CrossReference
	for i, line := range strings.Split(content, "\n") {
		for _, m := range crossRefRe.FindAllStringSubmatch(line, -1) {
			refs = append(refs, docast.CrossReference{
				RefType: m[1],
				Target:  m[2],
				Line:    i + 1,
			})
		}
	}
	return refs
}

// outputPath swaps the source extension for .html.
func outputPath(sourcePath string) string {
	ext := filepath.Ext(sourcePath)
	return strings.TrimSuffix(sourcePath, ext) + ".html"
}
