package report

import (
	"strings"
	"testing"
	"time"

	"github.com/auditgov/auditdex/internal/domain/record"
	"github.com/auditgov/auditdex/internal/domain/search/result"
)

func TestGenerate(t *testing.T) {
	item := result.New(
		"r1", "Reforma da UBS Central", "10/03/2023", "BA", "Salvador",
		record.SourceCGU, "https://ecgu.cgu.gov.br/relatorio/123",
		"...irregularidade na reforma...", 62, "cgu.csv",
	)
	data := Data{
		Query:       "reforma salvador",
		FilterDesc:  "UF=BA",
		GeneratedAt: time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC),
		Matched:     1,
		CGU:         FromItems([]result.Item{item}),
		Findings: []result.Finding{{
			Kind:        result.KindIssue,
			Description: "Irregularidade na obra.",
			Keywords:    []string{"reforma", "obras"},
			Source:      "CGU",
			Link:        "https://ecgu.cgu.gov.br/relatorio/123",
		}},
	}

	var b strings.Builder
	if err := Generate(&b, data); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	got := b.String()

	for _, want := range []string{
		"reforma salvador",
		"UF=BA",
		"10/03/2026 15:30",
		"Reforma da UBS Central",
		"https://ecgu.cgu.gov.br/relatorio/123",
		"Achado",
		"reforma, obras",
		"Acórdãos TCU",
		"Nenhum registro.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestGenerateEscapesMarkup(t *testing.T) {
	data := Data{
		Query:       `<script>alert(1)</script>`,
		GeneratedAt: time.Now(),
	}

	var b strings.Builder
	if err := Generate(&b, data); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Contains(b.String(), "<script>alert(1)</script>") {
		t.Error("query markup must be escaped")
	}
}
