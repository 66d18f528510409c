// Package highlight renders source code to HTML using chroma.
package highlight

import (
	"fmt"
	"html"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter renders code as highlighted HTML for a given language
// token. Unknown languages fall back to the plaintext lexer.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// New creates a Highlighter using the named chroma style. An unknown
// style name falls back to the registry default.
func New(styleName string) *Highlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{
		style:     style,
		formatter: chromahtml.New(chromahtml.WithClasses(false)),
	}
}

// Highlight renders code to HTML. The language may be a lexer name or a
// file extension; unrecognized tokens use the plaintext lexer.
func (h *Highlighter) Highlight(code, language string) (string, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenize: %w", err)
	}

	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		return "", fmt.Errorf("format: %w", err)
	}
	return b.String(), nil
}

// Fallback returns the escaped plain rendering used when highlighting
// fails.
func Fallback(code string) string {
	return "<pre><code>" + html.EscapeString(code) + "</code></pre>"
}
