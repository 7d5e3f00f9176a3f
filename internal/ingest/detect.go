package ingest

import (
	"strings"

	"github.com/auditgov/auditdex/internal/domain/record"
)

// Schema keywords identifying a provenance; headers are already normalized.
var (
	cguHeaderKeys = []string{"idtarefa", "datapublicacao", "unidadesauditadas", "texto_resumo", "linhaacao", "id_relatorio"}
	tcuHeaderKeys = []string{"resumo_extrativo", "palavras_chave_dicionario", "acordao", "relator", "numero_acordao"}
)

// detectSource classifies a file by its header schema, falling back to the
// filename. Assigned once at ingestion, immutable thereafter.
func detectSource(headers []string, filename string) record.SourceKind {
	set := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		set[h] = struct{}{}
	}

	for _, k := range cguHeaderKeys {
		if _, ok := set[k]; ok {
			return record.SourceCGU
		}
	}
	for _, k := range tcuHeaderKeys {
		if _, ok := set[k]; ok {
			return record.SourceTCU
		}
	}

	upper := strings.ToUpper(filename)
	if strings.Contains(upper, "CGU") || strings.Contains(upper, "AUDITORIA") {
		return record.SourceCGU
	}
	if strings.Contains(upper, "TCU") || strings.Contains(upper, "ACORDAO") {
		return record.SourceTCU
	}
	return record.SourceOther
}
