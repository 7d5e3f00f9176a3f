package ingest

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/auditgov/auditdex/internal/domain"
	"github.com/auditgov/auditdex/internal/domain/record"
)

// Corpus is the process-wide, append-only record set. Loaded once at
// startup and shared read-only across concurrent queries.
type Corpus struct {
	records []record.Record
	files   int
}

// Load parses every configured file into one corpus. Fails fast when no
// records load at all; a single unreadable file is fatal too, since a
// silently missing source would skew every search.
func Load(paths []string, delimiter rune, logger *zap.Logger) (*Corpus, error) {
	c := &Corpus{}
	for _, path := range paths {
		recs, err := readFile(path, delimiter)
		if err != nil {
			return nil, fmt.Errorf("load corpus: %w", err)
		}
		var source record.SourceKind
		if len(recs) > 0 {
			source = recs[0].Source()
		}
		logger.Info("corpus file loaded",
			zap.String("file", path),
			zap.Int("rows", len(recs)),
			zap.String("source", string(source)),
		)
		c.records = append(c.records, recs...)
		c.files++
	}

	if len(c.records) == 0 {
		return nil, fmt.Errorf("load corpus: %w", domain.ErrCorpusEmpty)
	}
	return c, nil
}

// FromRecords builds a corpus from pre-built records (tests, embedding).
func FromRecords(files int, records []record.Record) *Corpus {
	return &Corpus{records: records, files: files}
}

// Records returns the record set. Callers must treat it as read-only.
func (c *Corpus) Records() []record.Record { return c.records }

// Files returns how many source files were ingested.
func (c *Corpus) Files() int { return c.files }

// Len returns the total number of records.
func (c *Corpus) Len() int { return len(c.records) }
