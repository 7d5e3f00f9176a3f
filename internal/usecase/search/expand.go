package search

import (
	"regexp"
	"strings"

	"github.com/auditgov/auditdex/internal/domain/search/plan"
	"github.com/auditgov/auditdex/internal/lexicon"
	"github.com/auditgov/auditdex/internal/normalizer"
)

// minTokenLength drops noise tokens ("e", "ou", stray digits).
const minTokenLength = 3

var trashWordRe = func() *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(` + strings.Join(lexicon.TrashWords(), "|") + `)\b`)
}()

// buildPlan derives the query plan: strips command verbs, detects quoted
// phrases, tokenizes, and expands terms through the dictionary.
func buildPlan(rawQuery string, dict Expander) plan.Plan {
	trimmed := strings.TrimSpace(rawQuery)

	// A query wrapped in double quotes is an exact-substring search; no
	// expansion applies.
	if len(trimmed) >= 2 && strings.HasPrefix(trimmed, `"`) && strings.HasSuffix(trimmed, `"`) {
		phrase := normalizer.Normalize(trashWordRe.ReplaceAllString(trimmed, " "))
		return plan.New(rawQuery, phrase, []string{phrase}, []string{phrase}, nil, plan.Phrase)
	}

	cleaned := trashWordRe.ReplaceAllString(rawQuery, " ")
	normCleaned := normalizer.Normalize(cleaned)
	normFull := normalizer.Normalize(rawQuery)

	var tokens []string
	for _, tok := range strings.Fields(normCleaned) {
		if len(tok) < minTokenLength || lexicon.IsStopword(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}

	seen := make(map[string]struct{})
	expanded := appendUnique(nil, seen, tokens...)

	// Whole-query dictionary hit captures multi-word keys ("saude indigena").
	expanded = appendUnique(expanded, seen, dict.Synonyms(normCleaned)...)

	tokenSynonyms := make(map[string][]string, len(tokens))
	for _, tok := range tokens {
		expanded = appendUnique(expanded, seen, pluralVariant(tok))
		expanded = appendUnique(expanded, seen, dict.Expand(tok)...)

		// Only the token's own dictionary entry can stand in for it in
		// the all-keywords check; the substring-broadened set above is
		// too loose for that and feeds the expansion bonus only.
		var own []string
		for _, syn := range dict.Synonyms(tok) {
			if syn != tok {
				own = append(own, syn)
			}
		}
		tokenSynonyms[tok] = own
	}

	return plan.New(rawQuery, normFull, tokens, expanded, tokenSynonyms, plan.Keyword)
}

// pluralVariant is the naive singular/plural toggle: drop or add a
// trailing "s".
func pluralVariant(token string) string {
	if strings.HasSuffix(token, "s") {
		return strings.TrimSuffix(token, "s")
	}
	return token + "s"
}

func appendUnique(dst []string, seen map[string]struct{}, terms ...string) []string {
	for _, t := range terms {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		dst = append(dst, t)
	}
	return dst
}
