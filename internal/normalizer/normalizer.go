// Package normalizer canonicalizes text for matching: lowercase, no
// diacritics, punctuation folded to spaces, whitespace collapsed.
package normalizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the canonical form of s. It is idempotent:
// Normalize(Normalize(s)) == Normalize(s). Empty input yields "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToLower(s)
	s = stripMarks(s)

	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		if !isWordRune(r) {
			// Punctuation and whitespace (newlines included) fold to one space.
			if b.Len() > 0 {
				pendingSpace = true
			}
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// stripMarks decomposes to NFD and drops combining marks ("saúde" -> "saude").
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// isWordRune reports whether r survives normalization. The class is ASCII
// word characters: decomposition already folded accented letters, and
// anything left outside it (ordinal signs, dashes, symbols) acts as a
// separator.
func isWordRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
