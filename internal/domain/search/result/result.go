// Package result holds the display-ready search hit and structured finding.
package result

import "github.com/auditgov/auditdex/internal/domain/record"

// Item is a single ranked search hit with its resolved snippet and link.
type Item struct {
	id           string
	title        string
	date         string
	uf           string
	municipality string
	source       record.SourceKind
	link         string
	snippet      string
	score        int
	sourceFile   string
}

// New creates a search hit.
func New(
	id, title, date, uf, municipality string,
	source record.SourceKind, link, snippet string,
	score int, sourceFile string,
) Item {
	return Item{
		id: id, title: title, date: date, uf: uf, municipality: municipality,
		source: source, link: link, snippet: snippet, score: score, sourceFile: sourceFile,
	}
}

// ID returns the record identifier.
func (i *Item) ID() string { return i.id }

// Title returns the record title.
func (i *Item) Title() string { return i.title }

// Date returns the display date string.
func (i *Item) Date() string { return i.date }

// UF returns the raw state field value.
func (i *Item) UF() string { return i.uf }

// Municipality returns the municipality value.
func (i *Item) Municipality() string { return i.municipality }

// Source returns the provenance.
func (i *Item) Source() record.SourceKind { return i.source }

// Link returns the resolved canonical URL.
func (i *Item) Link() string { return i.link }

// Snippet returns the human-readable excerpt.
func (i *Item) Snippet() string { return i.snippet }

// Score returns the relevance score.
func (i *Item) Score() int { return i.score }

// SourceFile returns the file the record came from.
func (i *Item) SourceFile() string { return i.sourceFile }

// FindingKind classifies a structured finding.
type FindingKind string

// Finding categories.
const (
	// KindIssue marks an irregularity or damage finding.
	KindIssue FindingKind = "Achado"
	// KindWeakness marks a control weakness or risk.
	KindWeakness FindingKind = "Fragilidade"
	// KindRecommendation marks a corrective determination.
	KindRecommendation FindingKind = "Recomendação"
)

// Finding is a classified excerpt extracted from the top results.
type Finding struct {
	Kind        FindingKind
	Description string
	Keywords    []string
	Source      string
	Link        string
}
