package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/auditgov/auditdex/internal/domain/record"
	"github.com/auditgov/auditdex/internal/domain/search/filters"
	"github.com/auditgov/auditdex/internal/domain/search/plan"
)

// Display fallbacks for absent record fields.
const (
	fallbackTitle   = "Título não disponível"
	fallbackSummary = "Resumo indisponível"
	fallbackDate    = "Data n/d"
	fallbackUF      = "UF n/d"
	fallbackUnit    = "Unidade n/d"
	fallbackType    = "Tipo n/d"
)

// buildContext renders the ranked records into the plain-text block handed
// to the language model. The layout is position-sensitive: downstream
// prompts reference the header labels and the [ID: #n] markers.
func buildContext(p *plan.Plan, f *filters.Filters, scored []record.Scored, matched int) string {
	var b strings.Builder

	b.WriteString("=== RESULTADO DA BUSCA INTELIGENTE (RANKED: RELEVANCE > DATE) ===\n")
	fmt.Fprintf(&b, "Termo: %q\n", p.RawQuery())
	if desc := filterSummary(f); desc != "" {
		fmt.Fprintf(&b, "Filtros: %s\n", desc)
	}
	if p.Specific() {
		b.WriteString("Status: Busca Específica (Sinônimos Desativados)\n")
	} else {
		b.WriteString("Status: Busca Ampliada (Sinônimos Ativos)\n")
	}
	fmt.Fprintf(&b, "Encontrados: %d | Exibindo: %d\n", matched, len(scored))
	b.WriteString("=== CONTEXTO RELEVANTE ===\n")

	for i, s := range scored {
		rec := s.Record()
		b.WriteString(contextLine(i+1, &rec))
		b.WriteString("\n")
	}

	return b.String()
}

func filterSummary(f *filters.Filters) string {
	var parts []string
	if f.HasUF() {
		parts = append(parts, "UF="+f.UF())
	}
	if f.HasYear() {
		parts = append(parts, "Ano="+f.Year())
	}
	return strings.Join(parts, ", ")
}

// contextLine renders one record. CGU lines carry the audit-specific
// columns; court rulings and other sources keep the shorter form.
func contextLine(n int, rec *record.Record) string {
	title := orFallback(rec.Title(), fallbackTitle)
	summary := orFallback(rec.Summary(), fallbackSummary)
	date := displayDate(rec)
	link := sanitizeLink(resolveLink(rec))

	if rec.Source() == record.SourceCGU {
		return fmt.Sprintf(
			"[ID: #%d] [FONTE: CGU | Data: %s | UF: %s | Unidade: %s | Tipo: %s | Título: %s | Link: %s | Resumo: %s]",
			n, date,
			orFallback(rec.UF(), fallbackUF),
			orFallback(rec.Unit(), fallbackUnit),
			orFallback(rec.ServiceType(), fallbackType),
			title, link, summary,
		)
	}
	return fmt.Sprintf(
		"[ID: #%d] [FONTE: %s | Data: %s | Título: %s | Link: %s | Resumo: %s]",
		n, rec.Source(), date, title, link, summary,
	)
}

// displayDate prefers the source's own date text and falls back to the
// derived timestamp formatted dd/mm/yyyy.
func displayDate(rec *record.Record) string {
	if d := strings.TrimSpace(rec.DateText()); d != "" {
		return d
	}
	if ts := rec.Timestamp(); ts > 0 {
		return time.UnixMilli(ts).UTC().Format("02/01/2006")
	}
	return fallbackDate
}

func orFallback(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// zeroResultMessage explains an empty result set, distinguishing "nothing
// relevant" from "filters excluded everything". Inferred filters count as
// filters here even when none were passed explicitly.
func zeroResultMessage(rawQuery string, f *filters.Filters, anyBeforeFilters bool) string {
	if anyBeforeFilters {
		return fmt.Sprintf("Nenhum registro encontrado com os filtros selecionados (Termo: %s).", rawQuery)
	}
	msg := "Nenhum registro relevante encontrado para o termo: " + rawQuery
	if desc := filterSummary(f); desc != "" {
		msg += " (" + desc + ")"
	}
	return msg
}
