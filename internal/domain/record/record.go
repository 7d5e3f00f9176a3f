// Package record holds the immutable audit record aggregate and its
// per-query scored wrapper.
package record

import "time"

// SourceKind classifies record provenance, assigned at ingestion.
type SourceKind string

// Provenance categories.
const (
	// SourceCGU marks oversight-body audit reports.
	SourceCGU SourceKind = "CGU"
	// SourceTCU marks court-of-accounts rulings.
	SourceTCU SourceKind = "TCU"
	// SourceOther marks everything else.
	SourceOther SourceKind = "OUTROS"
)

// IsValid checks if the kind is one of the supported values.
func (k SourceKind) IsValid() bool {
	return k == SourceCGU || k == SourceTCU || k == SourceOther
}

// Field is one named column/attribute value. Order is preserved from the
// ingested row; absent values are empty strings, never null.
type Field struct {
	Name  string
	Value string
}

// Record is one ingested row or document. Immutable after ingestion: the
// engine never mutates a Record, only produces Scored wrappers.
type Record struct {
	id         string
	source     SourceKind
	sourceFile string
	fields     []Field

	// Derived at ingestion, pure functions of fields.
	fullText  string // normalized concatenation for matching
	timestamp int64  // unix milliseconds, 0 when unknown

	// Convenience extractions resolved through column aliases.
	title        string
	summary      string
	dateText     string
	uf           string
	municipality string
	unit         string
	serviceType  string
	link         string
	reportID     string
}

// Attrs carries the alias-resolved convenience fields for construction.
type Attrs struct {
	Title        string
	Summary      string
	DateText     string
	UF           string
	Municipality string
	Unit         string
	ServiceType  string
	Link         string
	ReportID     string
}

// New creates an immutable Record. fullText must already be normalized and
// timestamp derived; both are computed once by the ingestion layer.
func New(id string, source SourceKind, sourceFile string, fields []Field, fullText string, timestamp int64, attrs Attrs) Record {
	fs := make([]Field, len(fields))
	copy(fs, fields)
	return Record{
		id:           id,
		source:       source,
		sourceFile:   sourceFile,
		fields:       fs,
		fullText:     fullText,
		timestamp:    timestamp,
		title:        attrs.Title,
		summary:      attrs.Summary,
		dateText:     attrs.DateText,
		uf:           attrs.UF,
		municipality: attrs.Municipality,
		unit:         attrs.Unit,
		serviceType:  attrs.ServiceType,
		link:         attrs.Link,
		reportID:     attrs.ReportID,
	}
}

// ID returns the stable identifier (source file + row index, or document id).
func (r *Record) ID() string { return r.id }

// Source returns the provenance classification.
func (r *Record) Source() SourceKind { return r.source }

// SourceFile returns the name of the file the record came from.
func (r *Record) SourceFile() string { return r.sourceFile }

// Fields returns the ordered column values.
func (r *Record) Fields() []Field { return r.fields }

// Field returns the value of the named column, or "".
func (r *Record) Field(name string) string {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// FullText returns the precomputed normalized concatenation of field values.
func (r *Record) FullText() string { return r.fullText }

// Timestamp returns the derived point in time in unix milliseconds, 0 when
// unknown. Used only for tie-break ordering, never for scoring.
func (r *Record) Timestamp() int64 { return r.timestamp }

// Year returns the derived four-digit year as a string, or "" when the
// timestamp is unknown.
func (r *Record) Year() string {
	if r.timestamp <= 0 {
		return ""
	}
	return time.UnixMilli(r.timestamp).UTC().Format("2006")
}

// Title returns the alias-resolved title text.
func (r *Record) Title() string { return r.title }

// Summary returns the alias-resolved summary text.
func (r *Record) Summary() string { return r.summary }

// DateText returns the raw date value as it appeared in the source.
func (r *Record) DateText() string { return r.dateText }

// UF returns the raw state field; may hold several codes split by ";".
func (r *Record) UF() string { return r.uf }

// Municipality returns the alias-resolved municipality value.
func (r *Record) Municipality() string { return r.municipality }

// Unit returns the audited unit value.
func (r *Record) Unit() string { return r.unit }

// ServiceType returns the service type value.
func (r *Record) ServiceType() string { return r.serviceType }

// Link returns the raw link field, possibly empty.
func (r *Record) Link() string { return r.link }

// ReportID returns the report/ruling identifier value, possibly empty.
func (r *Record) ReportID() string { return r.reportID }

// Scored wraps a Record with its per-query relevance score. Ephemeral:
// created during one search call and discarded after it returns.
type Scored struct {
	rec   Record
	score int
}

// NewScored creates a scored wrapper.
func NewScored(rec Record, score int) Scored {
	return Scored{rec: rec, score: score}
}

// Record returns the underlying record.
func (s *Scored) Record() Record { return s.rec }

// Score returns the integer relevance score.
func (s *Scored) Score() int { return s.score }

// Timestamp returns the record's derived timestamp.
func (s *Scored) Timestamp() int64 { return s.rec.timestamp }

// Source returns the record's provenance.
func (s *Scored) Source() SourceKind { return s.rec.source }
