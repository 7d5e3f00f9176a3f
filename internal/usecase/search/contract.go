package search

import "github.com/auditgov/auditdex/internal/domain/record"

// Corpus supplies the immutable record set owned by the ingestion layer.
type Corpus interface {
	Records() []record.Record
	Files() int
}

// Expander supplies query-term expansion. Expand broadens one token to its
// topically related terms; Synonyms is the exact-key lookup used for
// whole-query matches. Alternate strategies (prefix trees, no-op) can be
// substituted without touching the scoring rules.
type Expander interface {
	Expand(token string) []string
	Synonyms(key string) []string
}
