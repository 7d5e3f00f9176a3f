package ingest

import (
	"strings"

	"github.com/auditgov/auditdex/internal/normalizer"
)

// Logical column keys resolved through aliases. Source files disagree on
// header spelling; everything is matched against normalized snake_case.
const (
	colTitle        = "titulo"
	colSummary      = "texto_resumo"
	colDate         = "data"
	colUF           = "uf"
	colMunicipality = "municipio"
	colUnit         = "unidade_auditada"
	colServiceType  = "tipo_servico"
	colReportID     = "id_relatorio"
	colLink         = "link"
)

var columnAliases = map[string][]string{
	colTitle:        {"titulo", "assunto", "title", "objeto", "ds_titulo"},
	colSummary:      {"texto_resumo", "resumo", "texto", "sumario", "ementa", "resumo_extrativo", "historico", "constatacao", "ds_resumo"},
	colDate:         {"data", "datapublicacao", "data_publicacao", "ano", "competencia", "exercicio", "dt_publicacao"},
	colUF:           {"uf", "ufs", "siglauf", "sigla_uf", "sg_uf", "estado"},
	colMunicipality: {"municipio", "cidade", "unidade_municipio"},
	colUnit:         {"unidadesauditadas", "unidade_auditada", "unidade", "orgao", "jurisdicionado", "siglasunidadesauditadas", "no_unidade"},
	colServiceType:  {"tiposervico", "tipo_de_servico", "tipo", "natureza", "origem", "ds_tipo_servico"},
	colReportID:     {"idrelatorio", "id_relatorio", "id", "codigo", "identificador", "idtarefa", "numero_acordao"},
	colLink:         {"link", "url", "endereco", "site"},
}

// priorityColumns are concatenated first into the searchable full text so
// title and summary terms dominate relevance.
var priorityColumns = []string{
	colTitle, colSummary, colUnit, colServiceType, colUF, colMunicipality,
}

// normalizeHeader turns a raw CSV header into an accent-free snake_case key:
// "Texto Resumo" -> "texto_resumo".
func normalizeHeader(h string) string {
	return strings.ReplaceAll(normalizer.Normalize(h), " ", "_")
}

// mappedValue resolves a logical column key against a row using aliases,
// returning the first non-empty candidate.
func mappedValue(row map[string]string, key string) string {
	candidates, ok := columnAliases[key]
	if !ok {
		candidates = []string{key}
	}
	for _, c := range candidates {
		if v := strings.TrimSpace(row[c]); v != "" {
			return v
		}
	}
	return ""
}
