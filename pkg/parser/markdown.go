package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/rstlight/rstlight/pkg/docast"
)

// parseMarkdown maps a goldmark event stream onto the minimal Markdown
// AST: text nodes become paragraphs. Heading, list and code-block
// structure is not captured; Markdown is an intentionally minimal
// secondary format here.
func (p *Parser) parseMarkdown(content string) *docast.MarkdownContent {
	md := &docast.MarkdownContent{Raw: content}

	src := []byte(content)
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*ast.Text); ok {
			value := string(t.Segment.Value(src))
			if strings.TrimSpace(value) != "" {
				md.AST = append(md.AST, docast.NewParagraph(value, 1))
			}
		}
		return ast.WalkContinue, nil
	})

	return md
}
