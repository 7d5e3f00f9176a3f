package lexicon

import "sort"

// State pairs a normalized state spelling with its two-letter code.
type State struct {
	Name string
	Code string
}

// stateNames maps every normalized spelling (full name, alias, or code) to
// the federation unit code.
var stateNames = map[string]string{
	"acre": "AC", "alagoas": "AL", "amapa": "AP", "amazonas": "AM",
	"bahia": "BA", "ceara": "CE", "distrito federal": "DF", "brasilia": "DF",
	"espirito santo": "ES", "goias": "GO", "maranhao": "MA",
	"mato grosso": "MT", "mato grosso do sul": "MS", "minas gerais": "MG",
	"para": "PA", "paraiba": "PB", "parana": "PR", "pernambuco": "PE",
	"piaui": "PI", "rio de janeiro": "RJ", "rio grande do norte": "RN",
	"rio grande do sul": "RS", "rondonia": "RO", "roraima": "RR",
	"santa catarina": "SC", "sao paulo": "SP", "sergipe": "SE", "tocantins": "TO",

	"ac": "AC", "al": "AL", "ap": "AP", "am": "AM", "ba": "BA", "ce": "CE",
	"df": "DF", "es": "ES", "go": "GO", "ma": "MA", "mt": "MT", "ms": "MS",
	"mg": "MG", "pa": "PA", "pb": "PB", "pr": "PR", "pe": "PE", "pi": "PI",
	"rj": "RJ", "rn": "RN", "rs": "RS", "ro": "RO", "rr": "RR", "sc": "SC",
	"sp": "SP", "se": "SE", "to": "TO",
}

// States returns every spelling/code pair ordered longest name first, so
// "mato grosso do sul" is tried before "mato grosso" and full names before
// two-letter codes.
func States() []State {
	return stateEntries
}

var stateEntries = func() []State {
	entries := make([]State, 0, len(stateNames))
	for name, code := range stateNames {
		entries = append(entries, State{Name: name, Code: code})
	}
	sort.Slice(entries, func(i, j int) bool {
		if len(entries[i].Name) != len(entries[j].Name) {
			return len(entries[i].Name) > len(entries[j].Name)
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}()
