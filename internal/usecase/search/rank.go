package search

import (
	"sort"

	"github.com/auditgov/auditdex/internal/domain/record"
)

// Ranking policy. Observed constants, kept tunable in one place.
const (
	// maxCombined caps the list handed to the language model context.
	maxCombined = 20
	// maxPerSource caps each source's slice in the UI-facing split.
	maxPerSource = 10
	// highConfidence splits the threshold regimes for specific queries.
	highConfidence = 50
	// specificHighCut keeps only strong matches when the best match is
	// high-confidence.
	specificHighCut = 40
	// specificLowCut still trims single-token noise otherwise.
	specificLowCut = 10
)

// applyThreshold drops weak matches relative to the best score. Broad
// (single-token) queries keep everything above the score floor.
func applyThreshold(scored []record.Scored, specific bool) []record.Scored {
	if !specific || len(scored) == 0 {
		return scored
	}

	maxScore := 0
	for _, s := range scored {
		if s.Score() > maxScore {
			maxScore = s.Score()
		}
	}

	cut := specificLowCut
	if maxScore >= highConfidence {
		cut = specificHighCut
	}

	kept := scored[:0]
	for _, s := range scored {
		if s.Score() >= cut {
			kept = append(kept, s)
		}
	}
	return kept
}

// sortRanked orders by score descending, ties by timestamp descending so
// unknown dates (0) sort last. Stable so equal records keep scan order.
func sortRanked(scored []record.Scored) {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score() != scored[j].Score() {
			return scored[i].Score() > scored[j].Score()
		}
		return scored[i].Timestamp() > scored[j].Timestamp()
	})
}

// dedupByID keeps the first (highest-ranked) occurrence of each id.
func dedupByID(scored []record.Scored) []record.Scored {
	seen := make(map[string]struct{}, len(scored))
	kept := scored[:0]
	for _, s := range scored {
		rec := s.Record()
		if _, ok := seen[rec.ID()]; ok {
			continue
		}
		seen[rec.ID()] = struct{}{}
		kept = append(kept, s)
	}
	return kept
}

func truncate(scored []record.Scored, n int) []record.Scored {
	if len(scored) > n {
		return scored[:n]
	}
	return scored
}
