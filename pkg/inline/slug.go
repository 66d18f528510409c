package inline

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	slugRoleRe = regexp.MustCompile(":(\\w+):`([^`<]+?)(?:\\s*<[^>]+>)?`")
	slugCodeRe = regexp.MustCompile("`([^`]+)`")
)

// StripMarkup removes inline markup from heading text, keeping display
// text, so the result is suitable for slug generation.
func StripMarkup(text string) string {
	result := slugRoleRe.ReplaceAllStringFunc(text, func(m string) string {
		groups := slugRoleRe.FindStringSubmatch(m)
		return strings.TrimSpace(groups[2])
	})
	result = slugCodeRe.ReplaceAllString(result, "$1")
	return strings.ReplaceAll(result, "`", "")
}

// Slugify converts text to a lowercase, hyphen-separated anchor id.
// Whitespace, hyphens, underscores and periods become hyphens; other
// non-alphanumerics are dropped; repeated hyphens collapse.
func Slugify(text string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			b.WriteByte('-')
		}
	}

	parts := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '-' })
	return strings.Join(parts, "-")
}
