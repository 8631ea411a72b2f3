package filter

import (
	"regexp"
	"strings"

	"tree-to-text/pkg/interfaces"
)

// WordFilter drops lines containing any excluded word as a whole word.
// The alternation pattern is compiled once from the excluded-word set and
// applied per line, case-sensitively.
type WordFilter struct {
	pattern *regexp.Regexp
}

// NewWordFilter builds a whole-word alternation matcher from the
// excluded-word set. An empty set yields a filter that passes all text
// through unchanged.
func NewWordFilter(words []string) interfaces.LineFilter {
	f := &WordFilter{}
	if len(words) == 0 {
		return f
	}

	quoted := make([]string, 0, len(words))
	for _, word := range words {
		quoted = append(quoted, regexp.QuoteMeta(word))
	}
	f.pattern = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	return f
}

// Filter returns the surviving lines, newline-terminated, in original
// order. A line survives iff it contains none of the excluded words as a
// whole-word match.
func (f *WordFilter) Filter(text string) string {
	if f.pattern == nil {
		return text
	}

	lines := strings.Split(text, "\n")
	// A trailing newline produces one empty trailing element; drop it so
	// it does not become an extra blank line.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	var b strings.Builder
	for _, line := range lines {
		if !f.pattern.MatchString(line) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
