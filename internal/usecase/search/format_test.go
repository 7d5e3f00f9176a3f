package search

import (
	"strings"
	"testing"

	"github.com/auditgov/auditdex/internal/domain/record"
	"github.com/auditgov/auditdex/internal/domain/search/filters"
	"github.com/auditgov/auditdex/internal/lexicon"
)

func TestBuildContextLayout(t *testing.T) {
	p := buildPlan("obras salvador", lexicon.Default())
	f := filters.New("BA", "2023", "")

	cgu := record.New("c1", record.SourceCGU, "cgu.csv", nil, "", 0, record.Attrs{
		Title:    "Reforma da UBS Central",
		Summary:  "Constatada irregularidade na obra.",
		DateText: "10/03/2023",
		UF:       "BA",
		Unit:     "Prefeitura de Salvador",
	})
	tcu := record.New("t1", record.SourceTCU, "tcu.csv", nil, "", 0, record.Attrs{
		Title: "Acórdão 123/2023",
	})
	scored := []record.Scored{
		record.NewScored(cgu, 62),
		record.NewScored(tcu, 11),
	}

	got := buildContext(&p, &f, scored, 5)

	for _, want := range []string{
		"=== RESULTADO DA BUSCA INTELIGENTE (RANKED: RELEVANCE > DATE) ===",
		`Termo: "obras salvador"`,
		"Filtros: UF=BA, Ano=2023",
		"Status: Busca Específica (Sinônimos Desativados)",
		"Encontrados: 5 | Exibindo: 2",
		"=== CONTEXTO RELEVANTE ===",
		"[ID: #1] [FONTE: CGU | Data: 10/03/2023 | UF: BA | Unidade: Prefeitura de Salvador",
		"[ID: #2] [FONTE: TCU | Data: Data n/d",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("context missing %q\n%s", want, got)
		}
	}

	// Non-audit sources omit the audit-specific columns.
	if strings.Contains(got, "FONTE: TCU | Data: Data n/d | UF:") {
		t.Error("court ruling line must not carry the UF column")
	}
}

func TestBuildContextBroadStatus(t *testing.T) {
	p := buildPlan("dengue", lexicon.Default())
	f := filters.New("", "", "")

	got := buildContext(&p, &f, nil, 0)
	if !strings.Contains(got, "Status: Busca Ampliada (Sinônimos Ativos)") {
		t.Errorf("broad query status missing:\n%s", got)
	}
	if strings.Contains(got, "Filtros:") {
		t.Error("empty filters must not render a filter line")
	}
}

func TestContextLineFallbacks(t *testing.T) {
	rec := record.New("c1", record.SourceCGU, "cgu.csv", nil, "", 0, record.Attrs{})

	got := contextLine(1, &rec)
	for _, want := range []string{
		"Título não disponível", "Resumo indisponível", "Data n/d",
		"UF n/d", "Unidade n/d", "Tipo n/d",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("line missing fallback %q: %s", want, got)
		}
	}
}

func TestDisplayDateFromTimestamp(t *testing.T) {
	// 2023-06-15 00:00 UTC.
	rec := record.New("c1", record.SourceCGU, "f.csv", nil, "", 1_686_787_200_000, record.Attrs{})
	if got := displayDate(&rec); got != "15/06/2023" {
		t.Errorf("displayDate = %q, want 15/06/2023", got)
	}
}

func TestZeroResultMessage(t *testing.T) {
	none := filters.New("", "", "")
	got := zeroResultMessage("saneamento", &none, false)
	if got != "Nenhum registro relevante encontrado para o termo: saneamento" {
		t.Errorf("message = %q", got)
	}

	f := filters.New("AC", "", "")
	got = zeroResultMessage("saneamento", &f, true)
	if got != "Nenhum registro encontrado com os filtros selecionados (Termo: saneamento)." {
		t.Errorf("filtered message = %q", got)
	}

	// Inference also counts as a filter even with no explicit selection.
	got = zeroResultMessage("saneamento", &none, true)
	if got != "Nenhum registro encontrado com os filtros selecionados (Termo: saneamento)." {
		t.Errorf("inferred-filter message = %q", got)
	}

	got = zeroResultMessage("saneamento", &f, false)
	if !strings.Contains(got, "(UF=AC)") {
		t.Errorf("unfiltered message with filters = %q, want filter suffix", got)
	}
}
