package search

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/auditgov/auditdex/internal/domain/record"
	"github.com/auditgov/auditdex/internal/domain/search/filters"
	"github.com/auditgov/auditdex/internal/lexicon"
)

// Implicit year inference accepts years from 2000 through next year.
const minInferredYear = 2000

var yearTokenRe = regexp.MustCompile(`\b(20\d{2})\b`)

// stateMatcher pairs a state entry with its word-boundary pattern,
// ordered longest name first so "mato grosso do sul" wins over
// "mato grosso".
type stateMatcher struct {
	state lexicon.State
	re    *regexp.Regexp
}

var stateMatchers = func() []stateMatcher {
	entries := lexicon.States()
	ms := make([]stateMatcher, len(entries))
	for i, e := range entries {
		ms[i] = stateMatcher{
			state: e,
			re:    regexp.MustCompile(`\b` + regexp.QuoteMeta(e.Name) + `\b`),
		}
	}
	return ms
}()

// matchesUF checks the record's state field against a code. The field may
// carry several codes split by ";".
func matchesUF(r *record.Record, code string) bool {
	raw := r.UF()
	if raw == "" {
		return false
	}
	for _, part := range strings.Split(raw, ";") {
		if strings.EqualFold(strings.TrimSpace(part), code) {
			return true
		}
	}
	return false
}

func matchesYear(r *record.Record, year string) bool {
	return r.Year() == year
}

// applyExplicit narrows the scored set by the caller's hard predicates.
func applyExplicit(scored []record.Scored, f *filters.Filters) []record.Scored {
	if f.IsZero() {
		return scored
	}
	kept := scored[:0]
	for _, s := range scored {
		rec := s.Record()
		if f.HasSource() && rec.Source() != f.Source() {
			continue
		}
		if f.HasUF() && !matchesUF(&rec, f.UF()) {
			continue
		}
		if f.HasYear() && !matchesYear(&rec, f.Year()) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}

// inferUF detects an unstated state constraint in the normalized query
// ("relatorios do acre" -> AC). Longest names are tried first; the "para"
// spelling doubles as an ordinary preposition, so it only counts when a
// qualifying phrase is present.
func inferUF(normQuery string) string {
	for _, m := range stateMatchers {
		if !m.re.MatchString(normQuery) {
			continue
		}
		if m.state.Name == "para" && !paraQualified(normQuery) {
			continue
		}
		return m.state.Code
	}
	return ""
}

func paraQualified(normQuery string) bool {
	return strings.Contains(normQuery, "estado do para") ||
		strings.Contains(normQuery, "no para")
}

// inferYear detects an unstated year constraint: the first 4-digit token
// starting with "20" within a sane range.
func inferYear(normQuery string) string {
	m := yearTokenRe.FindStringSubmatch(normQuery)
	if m == nil {
		return ""
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return ""
	}
	if year < minInferredYear || year > time.Now().Year()+1 {
		return ""
	}
	return m[1]
}

func filterByUF(scored []record.Scored, code string) []record.Scored {
	kept := scored[:0]
	for _, s := range scored {
		rec := s.Record()
		if matchesUF(&rec, code) {
			kept = append(kept, s)
		}
	}
	return kept
}

func filterByYear(scored []record.Scored, year string) []record.Scored {
	kept := scored[:0]
	for _, s := range scored {
		rec := s.Record()
		if matchesYear(&rec, year) {
			kept = append(kept, s)
		}
	}
	return kept
}
