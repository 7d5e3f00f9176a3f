// Package lexicon holds the static language tables the engine depends on:
// the synonym dictionary, stopwords, command verbs, and the state name map.
// Everything here is read-only after process start and safe to share across
// concurrent queries.
package lexicon

import (
	"fmt"
	"sort"
	"strings"

	"github.com/auditgov/auditdex/internal/domain"
	"github.com/auditgov/auditdex/internal/normalizer"
)

// Dictionary maps a canonical term (possibly multi-word) to related terms.
// All keys and values are stored pre-normalized; Validate enforces that.
type Dictionary map[string][]string

// Default returns the built-in audit-domain dictionary.
func Default() Dictionary {
	return defaultDictionary
}

// Synonyms returns the related terms for an exact key, or nil.
func (d Dictionary) Synonyms(key string) []string {
	return d[key]
}

// Expand returns the synonyms reachable from token: the token's own entry
// plus the entries of every key containing the token as a substring. The
// substring rule is a coarse topical broadening ("saude" pulls in the
// "saude indigena" terms). Results are deduplicated and ordered by key.
func (d Dictionary) Expand(token string) []string {
	if token == "" {
		return nil
	}

	keys := make([]string, 0, len(d))
	for k := range d {
		if k == token || strings.Contains(k, token) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var out []string
	seen := make(map[string]struct{})
	for _, k := range keys {
		for _, syn := range d[k] {
			if _, ok := seen[syn]; ok {
				continue
			}
			seen[syn] = struct{}{}
			out = append(out, syn)
		}
	}
	return out
}

// Validate checks that every key and value is already in normalized form.
// A dictionary failing this check would silently never match; callers are
// expected to fail fast at startup.
func (d Dictionary) Validate() error {
	for key, syns := range d {
		if normalizer.Normalize(key) != key {
			return fmt.Errorf("%w: key %q is not normalized", domain.ErrInvalidDictionary, key)
		}
		if len(syns) == 0 {
			return fmt.Errorf("%w: key %q has no synonyms", domain.ErrInvalidDictionary, key)
		}
		for _, s := range syns {
			if normalizer.Normalize(s) != s {
				return fmt.Errorf("%w: value %q under key %q is not normalized", domain.ErrInvalidDictionary, s, key)
			}
		}
	}
	return nil
}

var defaultDictionary = Dictionary{
	// Saude indigena
	"saude indigena": {"sesai", "dsei", "povos indigenas", "sasisus", "atencao a saude dos povos indigenas", "aldeia", "distrito sanitario especial", "casai"},
	"sesai":          {"saude indigena", "secretaria especial de saude indigena", "dsei", "aldeia"},
	"dsei":           {"saude indigena", "sesai", "distrito sanitario"},

	// Atencao basica
	"aps":            {"atencao primaria", "esf", "estrategia saude da familia", "ubs", "unidade basica", "equipe de saude"},
	"esf":            {"estrategia saude da familia", "aps", "atencao primaria", "saude da familia"},
	"ubs":            {"unidade basica de saude", "posto de saude", "centro de saude", "aps", "atencao basica"},
	"atencao basica": {"pab", "esf", "saude da familia", "ubs", "unidade basica"},

	// Programas e farmacia
	"farmacia popular": {"pfpb", "programa farmacia popular", "medicamentos", "copagamento", "gratuidade", "aqui tem farmacia popular"},
	"pfpb":             {"farmacia popular", "programa farmacia popular", "medicamentos"},
	"medicamentos":     {"farmacos", "remedios", "insumos farmaceuticos", "assistencia farmaceutica", "daf"},
	"opme":             {"orteses", "proteses", "materiais especiais", "implantes", "alto custo"},

	// Urgencia e emergencia
	"samu":       {"servico de atendimento movel", "urgencia", "emergencia", "ambulancia", "192", "transporte sanitario"},
	"upa":        {"unidade de pronto atendimento", "urgencia", "emergencia", "pronto socorro"},
	"transporte": {"ambulancia", "samu", "unidade movel", "transporte sanitario", "veiculo", "locacao de veiculos", "aereo"},

	// Doencas e condicoes
	"diabetes":    {"insulinodependente", "diabetico", "glicemia", "insulina", "hiperglicemia"},
	"hipertensao": {"pressao alta", "hipertenso", "cardiovascular", "pressao arterial"},
	"dengue":      {"aedes", "zika", "chikungunya", "arbovirose", "vetor", "fumace", "vetores"},
	"covid":       {"coronavirus", "pandemia", "sars cov 2", "emergencia de saude", "respiradores"},

	// Infraestrutura e servicos
	"obras":   {"reforma", "construcao", "ampliacao", "engenharia", "edificacao", "infraestrutura"},
	"limpeza": {"higiene", "asseio", "conservacao", "zeladoria"},

	// Gestao e financas
	"fundo a fundo": {"bloco de financiamento", "recurso federal", "transferencia"},
	"emenda":        {"parlamentar", "recurso extra", "investimento", "custeio"},
	"licitacao":     {"pregao", "concorrencia", "contrato", "aquisicao", "dispensa", "inexigibilidade"},
	"fraude":        {"irregularidade", "desvio", "superfaturamento", "corrupcao", "ilegalidade"},

	// Termos tecnicos
	"cnes": {"cadastro nacional", "estabelecimento de saude"},
	"sus":  {"sistema unico de saude", "rede publica"},
	"tcu":  {"tribunal de contas", "acordao", "auditoria", "fiscalizacao"},
	"cgu":  {"controladoria geral", "auditoria", "fiscalizacao"},
}
