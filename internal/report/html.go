// Package report renders a search outcome as a standalone HTML dossier for
// download and offline review.
package report

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/auditgov/auditdex/internal/domain/search/result"
)

// Data is everything the dossier template needs.
type Data struct {
	Query       string
	FilterDesc  string
	GeneratedAt time.Time
	Matched     int
	CGU         []Row
	TCU         []Row
	Findings    []result.Finding
}

// Row is one flattened result line. The template package handles escaping.
type Row struct {
	Title   string
	Date    string
	UF      string
	Link    string
	Snippet string
	Score   int
}

// FromItems flattens ranked items into template rows.
func FromItems(items []result.Item) []Row {
	rows := make([]Row, len(items))
	for i := range items {
		rows[i] = Row{
			Title:   items[i].Title(),
			Date:    items[i].Date(),
			UF:      items[i].UF(),
			Link:    items[i].Link(),
			Snippet: items[i].Snippet(),
			Score:   items[i].Score(),
		}
	}
	return rows
}

// Generate writes the dossier HTML.
func Generate(w io.Writer, data Data) error {
	if err := dossierTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

var dossierTmpl = template.Must(template.New("dossier").Funcs(template.FuncMap{
	"fmtTime": func(t time.Time) string { return t.Format("02/01/2006 15:04") },
}).Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Dossiê de Auditoria — {{.Query}}</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 2rem; color: #1a1a2e; }
h1 { border-bottom: 3px solid #16325c; padding-bottom: .5rem; }
h2 { color: #16325c; margin-top: 2rem; }
table { border-collapse: collapse; width: 100%; margin-top: .5rem; }
th, td { border: 1px solid #ccc; padding: .4rem .6rem; text-align: left; vertical-align: top; }
th { background: #16325c; color: #fff; }
.meta { color: #555; font-size: .9rem; }
.kind { font-weight: bold; }
.empty { color: #777; font-style: italic; }
</style>
</head>
<body>
<h1>Dossiê de Auditoria</h1>
<p class="meta">
Termo: <strong>{{.Query}}</strong>
{{- if .FilterDesc}} | Filtros: {{.FilterDesc}}{{end}}
| Registros encontrados: {{.Matched}}
| Gerado em: {{fmtTime .GeneratedAt}}
</p>

<h2>Achados Estruturados</h2>
{{- if .Findings}}
<table>
<tr><th>Classificação</th><th>Descrição</th><th>Fonte</th><th>Termos</th></tr>
{{- range .Findings}}
<tr>
<td class="kind">{{.Kind}}</td>
<td>{{.Description}}{{if .Link}} (<a href="{{.Link}}">fonte</a>){{end}}</td>
<td>{{.Source}}</td>
<td>{{range $i, $k := .Keywords}}{{if $i}}, {{end}}{{$k}}{{end}}</td>
</tr>
{{- end}}
</table>
{{- else}}
<p class="empty">Nenhum achado estruturado.</p>
{{- end}}

<h2>Relatórios CGU</h2>
{{- template "rows" .CGU}}

<h2>Acórdãos TCU</h2>
{{- template "rows" .TCU}}

</body>
</html>
{{- define "rows"}}
{{- if .}}
<table>
<tr><th>Título</th><th>Data</th><th>UF</th><th>Relevância</th><th>Trecho</th></tr>
{{- range .}}
<tr>
<td><a href="{{.Link}}">{{.Title}}</a></td>
<td>{{.Date}}</td>
<td>{{.UF}}</td>
<td>{{.Score}}</td>
<td>{{.Snippet}}</td>
</tr>
{{- end}}
</table>
{{- else}}
<p class="empty">Nenhum registro.</p>
{{- end}}
{{- end}}`))
