package search

import (
	"sort"
	"strings"

	"github.com/auditgov/auditdex/internal/normalizer"
)

// Snippet window around the first matched term, in runes.
const (
	snippetBefore   = 60
	snippetAfter    = 140
	snippetFallback = 150
)

// makeSnippet extracts a window around the first matching term. Terms are
// tried longest first so the most specific phrase anchors the window. The
// match is located in a normalized copy and the window is cut from the
// original text at the same rune position.
func makeSnippet(text string, terms []string) string {
	if text == "" {
		return ""
	}

	ordered := make([]string, len(terms))
	copy(ordered, terms)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})

	norm := normalizer.Normalize(text)
	runes := []rune(text)

	for _, term := range ordered {
		if term == "" {
			continue
		}
		byteIdx := strings.Index(norm, term)
		if byteIdx < 0 {
			continue
		}
		// Normalization collapses runs and strips marks, so positions in
		// the normalized copy only approximate the original. Rune offsets
		// stay close enough for a readable window.
		pos := len([]rune(norm[:byteIdx]))
		if pos > len(runes) {
			pos = len(runes)
		}

		start := pos - snippetBefore
		if start < 0 {
			start = 0
		}
		end := pos + snippetAfter
		if end > len(runes) {
			end = len(runes)
		}

		var b strings.Builder
		if start > 0 {
			b.WriteString("...")
		}
		b.WriteString(strings.TrimSpace(string(runes[start:end])))
		if end < len(runes) {
			b.WriteString("...")
		}
		return b.String()
	}

	if len(runes) > snippetFallback {
		return string(runes[:snippetFallback]) + "..."
	}
	return text
}
