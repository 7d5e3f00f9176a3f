package search

import (
	"strings"

	"github.com/auditgov/auditdex/internal/domain/record"
	"github.com/auditgov/auditdex/internal/domain/search/plan"
	"github.com/auditgov/auditdex/internal/domain/search/result"
	"github.com/auditgov/auditdex/internal/normalizer"
)

// maxFindings caps the structured findings extracted from the top results.
const maxFindings = 12

// Classification keyword groups, checked in order. The first group that
// matches decides the kind.
var (
	issueMarkers    = []string{"achado", "irregularidade", "ilegal", "impropriedade"}
	weaknessMarkers = []string{"fragilidade", "falha", "risco", "ausencia"}
	remedyMarkers   = []string{"recomenda", "determina"}
)

// extractFindings turns the top-ranked records into classified findings.
func extractFindings(p *plan.Plan, scored []record.Scored) []result.Finding {
	var findings []result.Finding
	for _, s := range scored {
		if len(findings) >= maxFindings {
			break
		}
		rec := s.Record()
		snippet := makeSnippet(recordText(&rec), p.ExpandedTerms())
		if snippet == "" {
			continue
		}
		norm := normalizer.Normalize(snippet)
		kind, ok := classifyFinding(norm)
		if !ok {
			continue
		}

		findings = append(findings, result.Finding{
			Kind:        kind,
			Description: snippet,
			Keywords:    presentTerms(norm, p.ExpandedTerms()),
			Source:      findingSource(rec.Source()),
			Link:        resolveLink(&rec),
		})
	}
	return findings
}

// classifyFinding maps marker hits to a finding kind. Records matching no
// marker group yield no finding at all.
func classifyFinding(norm string) (result.FindingKind, bool) {
	switch {
	case containsAny(norm, issueMarkers):
		return result.KindIssue, true
	case containsAny(norm, weaknessMarkers):
		return result.KindWeakness, true
	case containsAny(norm, remedyMarkers):
		return result.KindRecommendation, true
	}
	return "", false
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func presentTerms(norm string, terms []string) []string {
	var present []string
	for _, t := range terms {
		if strings.Contains(norm, t) {
			present = append(present, t)
		}
	}
	return present
}

func findingSource(k record.SourceKind) string {
	switch k {
	case record.SourceCGU, record.SourceTCU:
		return string(k)
	default:
		return "DADOS"
	}
}

// recordText picks the richest display text for snippet extraction.
func recordText(rec *record.Record) string {
	if s := strings.TrimSpace(rec.Summary()); s != "" {
		return s
	}
	if t := strings.TrimSpace(rec.Title()); t != "" {
		return t
	}
	return rec.FullText()
}
