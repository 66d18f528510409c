// Package langdetect resolves language identifiers for code content,
// from file extensions and, as a fallback, from the content itself via
// go-enry.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// extLanguages is the fixed extension-to-language table used by
// file-inclusion directives.
var extLanguages = map[string]string{
	"py":   "python",
	"rs":   "rust",
	"js":   "javascript",
	"ts":   "typescript",
	"cpp":  "cpp",
	"cc":   "cpp",
	"cxx":  "cpp",
	"c":    "c",
	"h":    "cpp",
	"hpp":  "cpp",
	"java": "java",
	"go":   "go",
	"php":  "php",
	"rb":   "ruby",
	"sh":   "bash",
	"bash": "bash",
	"ps1":  "powershell",
	"sql":  "sql",
	"xml":  "xml",
	"html": "html",
	"htm":  "html",
	"css":  "css",
	"json": "json",
	"yaml": "yaml",
	"yml":  "yaml",
	"toml": "toml",
	"ini":  "ini",
	"cfg":  "ini",
	"md":   "markdown",
	"rst":  "rst",
	"tex":  "latex",
}

// FromExtension maps a filename to a language token by its extension,
// returning "text" when the extension is unknown.
func FromExtension(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if lang, ok := extLanguages[ext]; ok {
		return lang
	}
	return "text"
}

// Detect classifies code content when no language hint is available.
// Returns "text" if detection fails or confidence is low.
func Detect(content []byte) string {
	if len(content) == 0 {
		return "text"
	}

	// Shebang lines are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	candidates := []string{
		"Go", "Python", "Shell", "JavaScript", "TypeScript",
		"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
		"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
	}
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return "text"
}

// normalize converts enry language names to lowercase highlighter tokens.
func normalize(lang string) string {
	switch lang {
	case "C++":
		return "cpp"
	case "Shell":
		return "bash"
	default:
		return strings.ToLower(lang)
	}
}
