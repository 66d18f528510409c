package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/rstlight/rstlight/pkg/docast"
)

// titleUnderlineChars is the set of characters a heading underline may
// be composed of.
const titleUnderlineChars = `=-~^"'*+#<>`

// titleLevel maps an underline character to a fixed heading level.
// The mapping is absolute, not relative to first use.
func titleLevel(c rune) int {
	switch c {
	case '#':
		return 1
	case '*':
		return 2
	case '=':
		return 3
	case '-':
		return 4
	case '^':
		return 5
	case '"':
		return 6
	default:
		return 7
	}
}

// parseRST scans content line by line. Recognition order per line:
// directive, title, literal block, link target, comment, block quote,
// paragraph.
func (p *Parser) parseRST(content string) *docast.RSTContent {
	rst := &docast.RSTContent{Raw: content}
	lines := strings.Split(content, "\n")

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			i++
			continue
		}

		// Directive header: .. name:: args
		if m := directiveRe.FindStringSubmatch(line); m != nil {
			directive, consumed := parseDirective(lines[i:], m[1], m[2], i+1)
			rst.Directives = append(rst.Directives, directive)
			rst.AST = append(rst.AST, docast.Node{
				Kind:    docast.NodeDirective,
				Name:    directive.Name,
				Args:    directive.Args,
				Options: directive.Options,
				Content: directive.Content,
				Line:    i + 1,
			})
			i += consumed
			continue
		}

		// Title: text underlined by a run of a single punctuation char at
		// least as long as the text. Counted by code point so non-breaking
		// spaces and other multi-byte characters are tolerated.
		if i+1 < len(lines) {
			underline := strings.TrimSpace(lines[i+1])
			if underline != "" && isUnderline(underline) &&
				utf8.RuneCountInString(underline) >= utf8.RuneCountInString(trimmed) {
				first, _ := utf8.DecodeRuneInString(underline)
				rst.AST = append(rst.AST, docast.NewTitle(trimmed, titleLevel(first), i+1))
				i += 2
				continue
			}
		}

		// Literal block: the introducing line ends in "::" and following
		// indented lines become an unlabeled code block.
		if strings.HasSuffix(line, "::") {
			code, consumed := parseLiteralBlock(lines[i+1:])
			rst.AST = append(rst.AST, docast.NewCodeBlock("", code, i+1))
			i += consumed + 1
			continue
		}

		// Link target: .. _name:
		if name, ok := parseLinkTarget(trimmed); ok {
			rst.AST = append(rst.AST, docast.NewLinkTarget(name, i+1))
			i++
			continue
		}

		// Comment: any other ".. " line, plus indented continuation lines.
		// Produces no node.
		if strings.HasPrefix(trimmed, ".. ") {
			i++
			for i < len(lines) {
				next := lines[i]
				if strings.TrimSpace(next) == "" || isIndented(next) {
					i++
				} else {
					break
				}
			}
			continue
		}

		// Block quote: indented text not claimed by a directive.
		if isIndented(line) {
			quote, consumed := parseBlockQuote(lines[i:])
			if strings.TrimSpace(quote) != "" {
				rst.AST = append(rst.AST, docast.NewBlockQuote(quote, i+1))
			}
			i += consumed
			continue
		}

		// Default: paragraph.
		para, consumed := parseParagraph(lines[i:])
		rst.AST = append(rst.AST, docast.NewParagraph(para, i+1))
		i += consumed
	}

	return rst
}

func isUnderline(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(titleUnderlineChars, r) {
			return false
		}
	}
	return true
}

// isIndented reports whether a line starts with at least three spaces
// or a tab.
func isIndented(line string) bool {
	return strings.HasPrefix(line, "   ") || strings.HasPrefix(line, "\t")
}

// dedent strips one level of indentation: three spaces or one tab.
func dedent(line string) string {
	if strings.HasPrefix(line, "   ") {
		return line[3:]
	}
	if strings.HasPrefix(line, "\t") {
		return line[1:]
	}
	return line
}

// parseLiteralBlock consumes indented and blank lines verbatim,
// returning the trimmed block and the number of lines consumed.
func parseLiteralBlock(lines []string) (string, int) {
	var b strings.Builder
	consumed := 0
	for _, line := range lines {
		if isIndented(line) || strings.TrimSpace(line) == "" {
			b.WriteString(line)
			b.WriteByte('\n')
			consumed++
		} else {
			break
		}
	}
	return strings.TrimSpace(b.String()), consumed
}

// parseParagraph joins contiguous non-blank lines with single spaces.
func parseParagraph(lines []string) (string, int) {
	var parts []string
	consumed := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			break
		}
		parts = append(parts, trimmed)
		consumed++
	}
	return strings.Join(parts, " "), consumed
}

// parseBlockQuote consumes contiguous indented lines, dedented. A blank
// line is consumed and terminates the quote.
func parseBlockQuote(lines []string) (string, int) {
	var b strings.Builder
	consumed := 0
	for _, line := range lines {
		if isIndented(line) {
			b.WriteString(dedent(line))
			b.WriteByte('\n')
			consumed++
		} else if strings.TrimSpace(line) == "" {
			consumed++
			break
		} else {
			break
		}
	}
	return strings.TrimSpace(b.String()), consumed
}

// parseLinkTarget recognizes `.. _name:` where name is non-empty and
// contains no spaces.
func parseLinkTarget(trimmed string) (string, bool) {
	if !strings.HasPrefix(trimmed, ".. _") || !strings.HasSuffix(trimmed, ":") {
		return "", false
	}
	name := trimmed[4 : len(trimmed)-1]
	if name == "" || strings.Contains(name, " ") {
		return "", false
	}
	return name, true
}
