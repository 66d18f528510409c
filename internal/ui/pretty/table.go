package pretty

import (
	"io"
	"strings"

	"golang.org/x/term"

	"github.com/rstlight/rstlight/pkg/builder"
)

const defaultTermWidth = 80

// TerminalWidth attempts to get the terminal width from the writer.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}

// FormatPages renders a page-by-page report sized to the terminal.
// Successful pages show source and output; failed pages show the error.
func (s *Styles) FormatPages(writer io.Writer, pages []builder.PageOutcome) string {
	width := TerminalWidth(writer)

	var b strings.Builder
	for _, page := range pages {
		if page.Error != nil {
			b.WriteString(s.FormatPageError(page))
			continue
		}
		line := "  " + s.DocPath.Render(page.DocPath) +
			s.Dim.Render(" -> ") + s.OutputPath.Render(page.OutputPath)
		b.WriteString(truncate(line, width))
		b.WriteString("\n")
	}
	return b.String()
}

// truncate shortens a line to the terminal width. Styled lines carry
// escape sequences, so this only trims clearly overlong plain text.
func truncate(line string, width int) string {
	if width <= 3 || len(line) <= width || strings.Contains(line, "\x1b") {
		return line
	}
	return line[:width-3] + "..."
}
