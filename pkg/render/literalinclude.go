package render

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rstlight/rstlight/pkg/docast"
	"github.com/rstlight/rstlight/pkg/langdetect"
)

// renderLiteralInclude reads a file relative to the source directory and
// renders it as a highlighted code block. Filters apply in a strict
// precedence: pyobject, start-after/start-at, end-before,
// start-line/end-line, lines, dedent. A read failure emits an HTML
// comment and rendering continues.
func (r *Renderer) renderLiteralInclude(d docast.Directive) string {
	filename := ""
	if len(d.Args) > 0 {
		filename = d.Args[0]
	}

	content, err := r.readSourceFile(filename)
	if err != nil {
		return fmt.Sprintf("<!-- literalinclude error: could not read '%s': %v -->", filename, err)
	}

	if pyobject, ok := d.Options["pyobject"]; ok {
		extracted, found := extractPythonObject(content, pyobject)
		if !found {
			return fmt.Sprintf("<!-- literalinclude error: could not find pyobject '%s' in '%s' -->",
				pyobject, filename)
		}
		content = extracted
	}

	lines := strings.Split(content, "\n")
	lines = applyLineFilters(lines, d.Options)
	lines = applyLinesSpec(lines, d.Options)
	lines = applyDedent(lines, d.Options)
	filtered := strings.Join(lines, "\n")

	language := d.Options["language"]
	if language == "" {
		language = langdetect.FromExtension(filename)
	}

	var sb strings.Builder
	if caption, ok := d.Options["caption"]; ok {
		captionText := strings.ReplaceAll(caption, "{filename}", filename)
		fmt.Fprintf(&sb, "<div class=\"code-block-caption\"><span class=\"caption-text\">%s</span></div>\n",
			html.EscapeString(captionText))
	}

	fmt.Fprintf(&sb, "<div class=\"highlight-%s notranslate\">%s</div>",
		language, r.highlightCode(filtered, language))
	return sb.String()
}

func (r *Renderer) readSourceFile(filename string) (string, error) {
	path := filename
	if r.cfg.SourceDir != "" {
		path = filepath.Join(r.cfg.SourceDir, filename)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// applyLineFilters applies the marker and index based line filters in
// precedence order. Marker matches are substring matches; start-after
// and end-before exclude the marker lines, start-at includes its line.
func applyLineFilters(lines []string, options map[string]string) []string {
	if marker, ok := options["start-after"]; ok {
		if pos := findLine(lines, marker); pos >= 0 {
			lines = lines[pos+1:]
		}
	}

	if marker, ok := options["start-at"]; ok {
		if pos := findLine(lines, marker); pos >= 0 {
			lines = lines[pos:]
		}
	}

	if marker, ok := options["end-before"]; ok {
		if pos := findLine(lines, marker); pos >= 0 {
			lines = lines[:pos]
		}
	}

	// start-line skips the first N lines (0-based, like Sphinx).
	if v, ok := options["start-line"]; ok {
		if start, err := strconv.Atoi(v); err == nil && start >= 0 && start <= len(lines) {
			lines = lines[start:]
		}
	}

	// end-line is 1-based and exclusive.
	if v, ok := options["end-line"]; ok {
		if end, err := strconv.Atoi(v); err == nil && end > 0 && end <= len(lines) {
			lines = lines[:end]
		}
	}

	return lines
}

func applyLinesSpec(lines []string, options map[string]string) []string {
	spec, ok := options["lines"]
	if !ok {
		return lines
	}
	selected := parseLinesSpec(spec, len(lines))
	out := make([]string, 0, len(selected))
	for _, idx := range selected {
		out = append(out, lines[idx])
	}
	return out
}

// applyDedent strips up to N leading columns from each line, never
// cutting into non-whitespace.
func applyDedent(lines []string, options map[string]string) []string {
	v, ok := options["dedent"]
	if !ok {
		return lines
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return lines
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		leading := len(line) - len(strings.TrimLeft(line, " \t"))
		cut := n
		if cut > leading {
			cut = leading
		}
		out[i] = line[cut:]
	}
	return out
}

func findLine(lines []string, marker string) int {
	for i, line := range lines {
		if strings.Contains(line, marker) {
			return i
		}
	}
	return -1
}
