// Package filters holds the caller-supplied explicit search filters.
package filters

import (
	"strings"

	"github.com/auditgov/auditdex/internal/domain/record"
)

// noopValues are source selections that mean "do not filter".
var noopValues = map[string]struct{}{
	"": {}, "ALL": {}, "FINDINGS": {}, "TODOS": {},
}

// Filters are optional hard predicates applied before ranking. The zero
// value filters nothing.
type Filters struct {
	uf     string
	year   string
	source record.SourceKind
}

// New normalizes raw filter values: a "show all" source or year selection
// becomes a no-op, UF codes are uppercased.
func New(uf, year, source string) Filters {
	f := Filters{
		uf:   strings.ToUpper(strings.TrimSpace(uf)),
		year: strings.TrimSpace(year),
	}
	if strings.EqualFold(f.year, "todos") {
		f.year = ""
	}
	src := strings.ToUpper(strings.TrimSpace(source))
	if _, noop := noopValues[src]; !noop {
		f.source = record.SourceKind(src)
	}
	return f
}

// UF returns the state code filter, "" when absent.
func (f *Filters) UF() string { return f.uf }

// Year returns the year filter, "" when absent.
func (f *Filters) Year() string { return f.year }

// Source returns the source-kind filter, "" when absent.
func (f *Filters) Source() record.SourceKind { return f.source }

// HasUF reports whether a state filter is set.
func (f *Filters) HasUF() bool { return f.uf != "" }

// HasYear reports whether a year filter is set.
func (f *Filters) HasYear() bool { return f.year != "" }

// HasSource reports whether a source filter is set.
func (f *Filters) HasSource() bool { return f.source != "" }

// IsZero reports whether no filter is set at all.
func (f *Filters) IsZero() bool { return f.uf == "" && f.year == "" && f.source == "" }
