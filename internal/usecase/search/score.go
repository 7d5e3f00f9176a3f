package search

import (
	"strings"

	"github.com/auditgov/auditdex/internal/domain/search/plan"
)

// Scoring ladder. The rules are additive and evaluated in a fixed order;
// the constants are tuned by observation, not derivation; change with care.
const (
	// phraseBonus rewards the full normalized query as an exact substring.
	phraseBonus = 100
	// allKeywordsBonus rewards every token matching, literally or through
	// that token's own synonyms.
	allKeywordsBonus = 50
	// expansionBonus rewards any expansion term being present.
	expansionBonus = 10
	// tokenCredit is granted once per distinct token found literally.
	tokenCredit = 1
	// scoreFloor suppresses single weak partial matches; anything below
	// is treated as non-matching.
	scoreFloor = 2
	// phraseMatchScore marks presence in phrase mode, where ranking is
	// not relevance-sensitive.
	phraseMatchScore = 1
)

// scoreText scores one record's normalized full text against the plan.
// The boolean is false when the record does not match at all.
func scoreText(fullText string, p *plan.Plan) (int, bool) {
	if p.Mode() == plan.Phrase {
		if p.NormalizedQuery() != "" && strings.Contains(fullText, p.NormalizedQuery()) {
			return phraseMatchScore, true
		}
		return 0, false
	}

	score := 0

	if p.NormalizedQuery() != "" && strings.Contains(fullText, p.NormalizedQuery()) {
		score += phraseBonus
	}

	tokens := p.Tokens()
	if len(tokens) > 0 && allTokensPresent(fullText, p) {
		score += allKeywordsBonus
	}

	for _, term := range p.ExpandedTerms() {
		if strings.Contains(fullText, term) {
			score += expansionBonus
			break
		}
	}

	for _, tok := range tokens {
		if strings.Contains(fullText, tok) {
			score += tokenCredit
		}
	}

	if score < scoreFloor {
		return 0, false
	}
	return score, true
}

// allTokensPresent checks every token for a literal hit or a hit through
// that token's own synonym list.
func allTokensPresent(fullText string, p *plan.Plan) bool {
	for _, tok := range p.Tokens() {
		if strings.Contains(fullText, tok) {
			continue
		}
		found := false
		for _, syn := range p.TokenSynonyms(tok) {
			if strings.Contains(fullText, syn) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
