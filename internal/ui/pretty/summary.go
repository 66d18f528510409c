package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rstlight/rstlight/pkg/builder"
)

const (
	summaryDividerWidth = 40
	wordPage            = "page"
	wordPages           = "pages"
)

// FormatSummaryOneLine formats build statistics as a single line.
// Example: "rendered 12 pages in 84ms (2 errors)".
func (s *Styles) FormatSummaryOneLine(stats builder.Stats) string {
	pageWord := wordPages
	if stats.PagesRendered == 1 {
		pageWord = wordPage
	}

	msg := s.Success.Render(fmt.Sprintf("rendered %d %s", stats.PagesRendered, pageWord)) +
		s.Dim.Render(fmt.Sprintf(" in %s", stats.Duration.Round(time.Millisecond)))

	if stats.PagesErrored > 0 {
		errWord := "errors"
		if stats.PagesErrored == 1 {
			errWord = "error"
		}
		msg += ", " + s.Failure.Render(fmt.Sprintf("%d %s", stats.PagesErrored, errWord))
	}

	return msg + "\n"
}

// FormatSummary formats build statistics as a summary block.
func (s *Styles) FormatSummary(stats builder.Stats) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(s.SummaryTitle.Render("Build Summary"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", summaryDividerWidth))
	b.WriteString("\n")

	b.WriteString("  Pages discovered: " +
		s.SummaryValue.Render(strconv.Itoa(stats.PagesDiscovered)) + "\n")
	b.WriteString("  Pages rendered:   " +
		s.SummaryValue.Render(strconv.Itoa(stats.PagesRendered)) + "\n")

	if stats.PagesErrored > 0 {
		b.WriteString("  Pages errored:    " +
			s.Failure.Render(strconv.Itoa(stats.PagesErrored)) + "\n")
	}

	b.WriteString("  Duration:         " +
		s.SummaryValue.Render(stats.Duration.Round(time.Millisecond).String()) + "\n")

	b.WriteString("\n")
	if stats.PagesErrored > 0 {
		b.WriteString(s.Failure.Render("Build failed"))
	} else {
		b.WriteString(s.Success.Render("Build succeeded"))
	}
	b.WriteString("\n")

	return b.String()
}

// FormatPageError formats one failed page for the error report.
func (s *Styles) FormatPageError(outcome builder.PageOutcome) string {
	return fmt.Sprintf("  %s: %s\n",
		s.DocPath.Render(outcome.DocPath),
		s.ErrorMsg.Render(outcome.Error.Error()))
}
