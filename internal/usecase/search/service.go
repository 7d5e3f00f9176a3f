package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/auditgov/auditdex/internal/domain"
	"github.com/auditgov/auditdex/internal/domain/record"
	"github.com/auditgov/auditdex/internal/domain/search/diag"
	"github.com/auditgov/auditdex/internal/domain/search/facets"
	"github.com/auditgov/auditdex/internal/domain/search/filters"
	"github.com/auditgov/auditdex/internal/domain/search/plan"
	"github.com/auditgov/auditdex/internal/domain/search/result"
	"github.com/auditgov/auditdex/internal/metrics"
	"github.com/auditgov/auditdex/internal/normalizer"
)

// minFacetQueryLength avoids facet churn while the user is still typing.
const minFacetQueryLength = 3

// scanCheckInterval bounds how often the scan loop polls for cancellation.
const scanCheckInterval = 1024

// Service runs ranked searches over the in-memory corpus. Stateless per
// call; safe for concurrent use.
type Service struct {
	corpus Corpus
	dict   Expander
	log    *zap.Logger
}

// New creates the search service.
func New(corpus Corpus, dict Expander, log *zap.Logger) *Service {
	return &Service{corpus: corpus, dict: dict, log: log}
}

// Result is the full outcome of one search call.
type Result struct {
	CGU      []result.Item
	TCU      []result.Item
	Context  string
	Facets   facets.Facets
	Findings []result.Finding
	Diag     diag.Diagnostics
}

// Search expands the query, scores every record, applies explicit and
// inferred filters, and returns the ranked, capped result set.
func (s *Service) Search(ctx context.Context, rawQuery string, f filters.Filters) (*Result, error) {
	started := time.Now()

	if strings.TrimSpace(rawQuery) == "" {
		return nil, domain.ErrEmptyQuery
	}
	records := s.corpus.Records()
	if len(records) == 0 {
		return nil, domain.ErrCorpusEmpty
	}

	p := buildPlan(rawQuery, s.dict)

	matchedAll, err := s.scan(ctx, records, &p)
	if err != nil {
		return nil, err
	}

	// Filtering below rewrites slices in place, but the unfiltered match
	// set still feeds facet computation.
	filtered := append([]record.Scored(nil), matchedAll...)
	filtered = applyExplicit(filtered, &f)

	normFull := normalizer.Normalize(rawQuery)
	var inferredUF, inferredYear string
	if !f.HasUF() {
		if inferredUF = inferUF(normFull); inferredUF != "" {
			filtered = filterByUF(filtered, inferredUF)
		}
	}
	if !f.HasYear() {
		if inferredYear = inferYear(normFull); inferredYear != "" {
			filtered = filterByYear(filtered, inferredYear)
		}
	}

	filtered = applyThreshold(filtered, p.Specific())
	sortRanked(filtered)
	filtered = dedupByID(filtered)
	matched := len(filtered)
	top := truncate(filtered, maxCombined)

	// Embedded facets obey the same minimum-length rule as Facets.
	fc := facets.New(nil, nil)
	if len(strings.TrimSpace(rawQuery)) >= minFacetQueryLength {
		fc = s.computeFacets(matchedAll, &f)
	}

	res := &Result{
		Facets: fc,
		Diag: diag.Diagnostics{
			OriginalQuery:   rawQuery,
			NormalizedQuery: p.NormalizedQuery(),
			Mode:            p.Mode(),
			ExpandedTerms:   p.ExpandedTerms(),
			FilesScanned:    s.corpus.Files(),
			RowsScanned:     len(records),
			Matched:         matched,
			InferredUF:      inferredUF,
			InferredYear:    inferredYear,
		},
	}

	if len(top) == 0 {
		constrained := !f.IsZero() || inferredUF != "" || inferredYear != ""
		msg := zeroResultMessage(rawQuery, &f, len(matchedAll) > 0 && constrained)
		res.Context = msg
		res.Diag.ZeroResults = &diag.ZeroResults{
			Message:    msg,
			Suggestion: "Tente remover filtros ou usar termos mais amplos.",
		}
	} else {
		res.Context = buildContext(&p, &f, top, matched)
		res.Findings = extractFindings(&p, top)
		res.CGU, res.TCU, res.Diag.Breakdown = splitBySource(&p, top)
	}

	res.Diag.Elapsed = time.Since(started)
	metrics.ObserveSearch(string(p.Mode()), matched, res.Diag.Elapsed)

	s.log.Info("search executed",
		zap.String("query", rawQuery),
		zap.String("mode", string(p.Mode())),
		zap.Int("matched", matched),
		zap.Int("shown", len(top)),
		zap.String("inferred_uf", inferredUF),
		zap.String("inferred_year", inferredYear),
		zap.Duration("elapsed", res.Diag.Elapsed),
	)
	return res, nil
}

// scan scores every record against the plan. The corpus is immutable, so
// no locking is needed; cancellation is polled on an interval.
func (s *Service) scan(ctx context.Context, records []record.Record, p *plan.Plan) ([]record.Scored, error) {
	var matched []record.Scored
	for i := range records {
		if i%scanCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("scan aborted: %w", err)
			}
		}
		if score, ok := scoreText(records[i].FullText(), p); ok {
			matched = append(matched, record.NewScored(records[i], score))
		}
	}
	return matched, nil
}

// splitBySource partitions the ranked records into per-source item lists,
// each capped independently.
func splitBySource(p *plan.Plan, scored []record.Scored) (cgu, tcu []result.Item, bd diag.SourceBreakdown) {
	for _, s := range scored {
		rec := s.Record()
		switch rec.Source() {
		case record.SourceCGU:
			bd.CGU++
			if len(cgu) < maxPerSource {
				cgu = append(cgu, toItem(p, &rec, s.Score()))
			}
		case record.SourceTCU:
			bd.TCU++
			if len(tcu) < maxPerSource {
				tcu = append(tcu, toItem(p, &rec, s.Score()))
			}
		default:
			bd.Other++
		}
	}
	return cgu, tcu, bd
}

func toItem(p *plan.Plan, rec *record.Record, score int) result.Item {
	return result.New(
		rec.ID(),
		orFallback(rec.Title(), fallbackTitle),
		displayDate(rec),
		rec.UF(),
		rec.Municipality(),
		rec.Source(),
		resolveLink(rec),
		makeSnippet(recordText(rec), p.ExpandedTerms()),
		score,
		rec.SourceFile(),
	)
}

// Facets derives the available filter values for the query. Short queries
// yield empty facets.
func (s *Service) Facets(ctx context.Context, rawQuery string, f filters.Filters) (facets.Facets, error) {
	if len(strings.TrimSpace(rawQuery)) < minFacetQueryLength {
		return facets.New(nil, nil), nil
	}
	records := s.corpus.Records()
	if len(records) == 0 {
		return facets.Facets{}, domain.ErrCorpusEmpty
	}

	p := buildPlan(rawQuery, s.dict)
	matched, err := s.scan(ctx, records, &p)
	if err != nil {
		return facets.Facets{}, err
	}
	return s.computeFacets(matched, &f), nil
}

// computeFacets cross-filters asymmetrically: the UF list honors the
// selected year but not the selected UF, and vice versa, so the active
// selection stays visible among its alternatives.
func (s *Service) computeFacets(matched []record.Scored, f *filters.Filters) facets.Facets {
	ufSet := make(map[string]struct{})
	yearSet := make(map[string]struct{})
	maxYear := time.Now().Year() + 1

	for _, sc := range matched {
		rec := sc.Record()
		if !f.HasYear() || matchesYear(&rec, f.Year()) {
			for _, part := range strings.Split(rec.UF(), ";") {
				code := strings.ToUpper(strings.TrimSpace(part))
				if len(code) == 2 {
					ufSet[code] = struct{}{}
				}
			}
		}
		if !f.HasUF() || matchesUF(&rec, f.UF()) {
			if y := rec.Year(); y != "" {
				if n, err := yearValue(y); err == nil && n > 1990 && n <= maxYear {
					yearSet[y] = struct{}{}
				}
			}
		}
	}

	ufs := make([]string, 0, len(ufSet))
	for uf := range ufSet {
		ufs = append(ufs, uf)
	}
	sort.Strings(ufs)

	years := make([]string, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))

	return facets.New(ufs, years)
}

func yearValue(y string) (int, error) {
	var n int
	_, err := fmt.Sscanf(y, "%d", &n)
	return n, err
}
