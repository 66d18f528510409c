package parser

import (
	"strings"

	"github.com/rstlight/rstlight/pkg/docast"
)

// parseDirective consumes a directive starting at lines[0] (the header
// line). Option lines use exactly three spaces of indent followed by
// :key: value; once a non-option indented line is seen the remainder is
// content, and later :key:-shaped lines inside it stay literal content.
// Returns the directive and the total number of lines consumed.
func parseDirective(lines []string, name, rawArgs string, startLine int) (docast.Directive, int) {
	options := make(map[string]string)
	var content strings.Builder
	consumed := 1
	i := 1

	// Option lines. Blank lines inside the option region are consumed.
	for i < len(lines) {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			i++
			consumed++
			continue
		}

		if opt, found := strings.CutPrefix(line, "   :"); found {
			if colon := strings.Index(opt, ":"); colon >= 0 {
				options[opt[:colon]] = strings.TrimSpace(opt[colon+1:])
			}
			i++
			consumed++
			continue
		}

		// First indented non-option line starts the content; anything
		// else ends the directive.
		break
	}

	// Content: indented lines, dedented. Embedded blank lines are kept.
	for i < len(lines) {
		line := lines[i]
		switch {
		case isIndented(line):
			content.WriteString(dedent(line))
			content.WriteByte('\n')
		case strings.TrimSpace(line) == "":
			content.WriteByte('\n')
		default:
			return makeDirective(name, rawArgs, options, content.String(), startLine), consumed
		}
		i++
		consumed++
	}

	return makeDirective(name, rawArgs, options, content.String(), startLine), consumed
}

func makeDirective(name, rawArgs string, options map[string]string, content string, line int) docast.Directive {
	return docast.Directive{
		Name:    name,
		Args:    strings.Fields(rawArgs),
		Options: options,
		Content: strings.TrimRight(content, " \t\n"),
		Line:    line,
	}
}
