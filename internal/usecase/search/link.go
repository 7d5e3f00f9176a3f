package search

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/auditgov/auditdex/internal/domain/record"
)

const (
	cguReportBase  = "https://ecgu.cgu.gov.br/relatorio/"
	cguPortalHome  = "https://www.gov.br/cgu/pt-br"
	cguSearchScope = "site:ecgu.cgu.gov.br/relatorio"
	cguTitleStub   = "Relatório CGU"
)

var numericIDRe = regexp.MustCompile(`^\d+$`)

// resolveLink picks the best URL for a record. Explicit links win; CGU
// records fall back to the report permalink when the report id is numeric,
// and to a scoped web search otherwise.
func resolveLink(r *record.Record) string {
	link := strings.TrimSpace(r.Link())
	explicit := len(link) > 5 &&
		(strings.HasPrefix(link, "http") || strings.HasPrefix(link, "www"))

	switch r.Source() {
	case record.SourceCGU:
		if explicit {
			return link
		}
		if id := strings.TrimSpace(r.ReportID()); numericIDRe.MatchString(id) {
			return cguReportBase + id
		}
		title := strings.TrimSpace(r.Title())
		if title == "" {
			title = cguTitleStub
		}
		return "https://www.google.com/search?q=" +
			url.QueryEscape(cguSearchScope+" "+title)
	case record.SourceTCU:
		if explicit {
			return link
		}
		return "#"
	default:
		if explicit {
			return link
		}
		return "#"
	}
}

// sanitizeLink makes a record link safe for display in the context block.
func sanitizeLink(link string) string {
	link = strings.TrimSpace(link)
	if link == "" || link == "#" {
		return cguPortalHome
	}
	if !strings.HasPrefix(link, "http") {
		return "https://" + link
	}
	return link
}
