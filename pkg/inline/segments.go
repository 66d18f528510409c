package inline

import (
	"regexp"
	"strings"
)

// A segment is one piece of the working string during the inline pipeline.
// Protected segments hold already-rendered HTML that later passes must not
// touch; text segments are still subject to rewriting.
type segment struct {
	text      string
	protected bool
}

// protect applies re to every text segment, replacing each match with a
// protected segment whose HTML is produced by render. Non-matching text
// stays rewritable.
func protect(segs []segment, re *regexp.Regexp, render func(groups []string) string) []segment {
	out := make([]segment, 0, len(segs))
	for _, s := range segs {
		if s.protected {
			out = append(out, s)
			continue
		}
		rest := s.text
		for {
			loc := re.FindStringSubmatchIndex(rest)
			if loc == nil {
				break
			}
			groups := make([]string, 0, len(loc)/2)
			for g := 0; g < len(loc); g += 2 {
				if loc[g] < 0 {
					groups = append(groups, "")
				} else {
					groups = append(groups, rest[loc[g]:loc[g+1]])
				}
			}
			if loc[0] > 0 {
				out = append(out, segment{text: rest[:loc[0]]})
			}
			out = append(out, segment{text: render(groups), protected: true})
			rest = rest[loc[1]:]
		}
		if rest != "" {
			out = append(out, segment{text: rest})
		}
	}
	return out
}

// mapText rewrites every text segment in place, leaving protected
// segments untouched.
func mapText(segs []segment, fn func(string) string) []segment {
	for i := range segs {
		if !segs[i].protected {
			segs[i].text = fn(segs[i].text)
		}
	}
	return segs
}

// flatten joins all segments back into a single HTML string.
func flatten(segs []segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.text)
	}
	return b.String()
}
