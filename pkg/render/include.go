package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rstlight/rstlight/pkg/docast"
	"github.com/rstlight/rstlight/pkg/parser"
)

// renderInclude reads an RST file relative to the source directory,
// applies the line-range subset, parses the result with a fresh parser
// and renders its AST inline. Included headings use the same fixed
// level table as the host document, so sibling-level headings nest
// correctly without renumbering.
func (r *Renderer) renderInclude(d docast.Directive) string {
	filename := ""
	if len(d.Args) > 0 {
		filename = d.Args[0]
	}

	content, err := r.readSourceFile(filename)
	if err != nil {
		return fmt.Sprintf("<!-- include error: could not read '%s': %v -->", filename, err)
	}

	lines := strings.Split(content, "\n")
	lines = applyIncludeFilters(lines, d.Options)
	filtered := strings.Join(lines, "\n")

	// Parse under a .rst name so the included text gets the RST path
	// regardless of the include file's own extension.
	included := parser.New().Parse(forceRSTExt(filename), filtered)
	return r.RenderDocument(included.Content)
}

// applyIncludeFilters applies the include directive's subset options:
// start-line, end-line, start-after, end-before.
func applyIncludeFilters(lines []string, options map[string]string) []string {
	if v, ok := options["start-line"]; ok {
		if start, err := strconv.Atoi(v); err == nil && start >= 0 && start <= len(lines) {
			lines = lines[start:]
		}
	}

	if v, ok := options["end-line"]; ok {
		if end, err := strconv.Atoi(v); err == nil && end > 0 && end <= len(lines) {
			lines = lines[:end]
		}
	}

	if marker, ok := options["start-after"]; ok {
		if pos := findLine(lines, marker); pos >= 0 {
			lines = lines[pos+1:]
		}
	}

	if marker, ok := options["end-before"]; ok {
		if pos := findLine(lines, marker); pos >= 0 {
			lines = lines[:pos]
		}
	}

	return lines
}

func forceRSTExt(filename string) string {
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return filename[:i] + ".rst"
	}
	return filename + ".rst"
}
