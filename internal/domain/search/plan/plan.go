// Package plan holds the per-query expansion plan derived once per call.
package plan

// Mode is the query matching strategy.
type Mode string

// Matching modes.
const (
	// Keyword matches tokens and expansion terms independently.
	Keyword Mode = "keyword"
	// Phrase matches the quoted query as an exact substring.
	Phrase Mode = "phrase"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Keyword || m == Phrase
}

// Plan is the derived query plan: tokens, expanded term set and match mode.
type Plan struct {
	rawQuery        string
	normalizedQuery string
	tokens          []string
	expandedTerms   []string
	tokenSynonyms   map[string][]string
	mode            Mode
}

// New creates a query plan. expandedTerms must already be deduplicated;
// tokenSynonyms maps each token to its own synonym list for the
// all-keywords scoring rule.
func New(
	rawQuery, normalizedQuery string,
	tokens, expandedTerms []string,
	tokenSynonyms map[string][]string,
	mode Mode,
) Plan {
	return Plan{
		rawQuery:        rawQuery,
		normalizedQuery: normalizedQuery,
		tokens:          tokens,
		expandedTerms:   expandedTerms,
		tokenSynonyms:   tokenSynonyms,
		mode:            mode,
	}
}

// RawQuery returns the query as the caller supplied it.
func (p *Plan) RawQuery() string { return p.rawQuery }

// NormalizedQuery returns the normalized full query text. In phrase mode
// this is the normalized interior of the quotes.
func (p *Plan) NormalizedQuery() string { return p.normalizedQuery }

// Tokens returns the non-stopword tokens (or the single phrase).
func (p *Plan) Tokens() []string { return p.tokens }

// ExpandedTerms returns the deduplicated expansion term set.
func (p *Plan) ExpandedTerms() []string { return p.expandedTerms }

// TokenSynonyms returns the per-token synonym lists.
func (p *Plan) TokenSynonyms(token string) []string { return p.tokenSynonyms[token] }

// Mode returns the matching strategy.
func (p *Plan) Mode() Mode { return p.mode }

// Specific reports whether the query produced more than one token; specific
// queries get a stricter relevance threshold.
func (p *Plan) Specific() bool { return p.mode == Keyword && len(p.tokens) > 1 }
