// Package facets holds the derived filter-value lists for UI population.
package facets

// Facets are the available UF and year values for a result set under
// cross-filtering. Computed fresh per query, never persisted.
type Facets struct {
	ufs   []string
	years []string
}

// New creates a facet set. ufs must be sorted ascending, years descending.
func New(ufs, years []string) Facets {
	return Facets{ufs: ufs, years: years}
}

// UFs returns the available state codes, ascending.
func (f *Facets) UFs() []string { return f.ufs }

// Years returns the available years, descending.
func (f *Facets) Years() []string { return f.years }
