// Package diag holds the per-search diagnostics payload.
package diag

import (
	"time"

	"github.com/auditgov/auditdex/internal/domain/search/plan"
)

// SourceBreakdown counts results per provenance after ranking.
type SourceBreakdown struct {
	CGU   int
	TCU   int
	Other int
}

// ZeroResults explains an empty outcome; callers must surface the message
// instead of guessing.
type ZeroResults struct {
	Message    string
	Suggestion string
}

// Diagnostics describes how a search was executed.
type Diagnostics struct {
	OriginalQuery   string
	NormalizedQuery string
	Mode            plan.Mode
	ExpandedTerms   []string
	FilesScanned    int
	RowsScanned     int
	Matched         int
	Elapsed         time.Duration
	InferredUF      string
	InferredYear    string
	Breakdown       SourceBreakdown
	ZeroResults     *ZeroResults
}
