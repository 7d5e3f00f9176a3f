package lexicon

// stopwordList are Portuguese function words dropped during tokenization.
var stopwordList = []string{
	"de", "da", "do", "das", "dos", "em", "no", "na", "nos", "nas", "para", "por",
	"com", "sem", "que", "o", "a", "os", "as", "um", "uma", "uns", "umas", "e", "ou",
	"sobre", "entre", "ate", "ante", "apos", "desde", "contra",
}

var stopwordSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(stopwordList))
	for _, w := range stopwordList {
		s[w] = struct{}{}
	}
	return s
}()

// IsStopword reports whether the normalized token is a stopword.
func IsStopword(token string) bool {
	_, ok := stopwordSet[token]
	return ok
}

// TrashWords are command verbs and filler nouns that carry no topical
// meaning ("busque", "listar"); they are stripped from queries before
// tokenization.
func TrashWords() []string {
	return trashWords
}

var trashWords = []string{
	"busque", "buscar", "pesquisar", "encontre", "listar", "verificar",
	"relatorio", "relatorios", "acordao", "acordaos", "sobre", "acerca",
	"identificar", "quais", "lista", "tabela",
}
