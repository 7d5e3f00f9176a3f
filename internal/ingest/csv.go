// Package ingest parses semi-structured audit exports into the immutable
// record corpus the engine searches. All file I/O lives here; the engine
// itself never touches the filesystem.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/auditgov/auditdex/internal/domain/record"
	"github.com/auditgov/auditdex/internal/normalizer"
)

// readFile parses one ;-delimited CSV export into records. The first row is
// the header; headers are normalized before alias resolution. Rows with a
// different field count than the header are tolerated (short rows pad with
// empty values, long rows keep positional extras unnamed).
func readFile(path string, delimiter rune) ([]record.Record, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	headers := make([]string, len(header))
	for i, h := range header {
		headers[i] = normalizeHeader(h)
	}

	filename := filepath.Base(path)
	source := detectSource(headers, filename)

	var records []record.Record
	for idx := 0; ; idx++ {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s row %d: %w", path, idx, err)
		}
		if isBlank(row) {
			continue
		}
		records = append(records, buildRecord(filename, idx, source, headers, row))
	}

	return records, nil
}

func buildRecord(filename string, idx int, source record.SourceKind, headers, row []string) record.Record {
	fields := make([]record.Field, 0, len(row))
	byName := make(map[string]string, len(row))
	for i, v := range row {
		name := fmt.Sprintf("col_%d", i)
		if i < len(headers) && headers[i] != "" {
			name = headers[i]
		}
		v = strings.TrimSpace(v)
		fields = append(fields, record.Field{Name: name, Value: v})
		if _, dup := byName[name]; !dup {
			byName[name] = v
		}
	}

	attrs := record.Attrs{
		Title:        mappedValue(byName, colTitle),
		Summary:      mappedValue(byName, colSummary),
		DateText:     mappedValue(byName, colDate),
		UF:           mappedValue(byName, colUF),
		Municipality: mappedValue(byName, colMunicipality),
		Unit:         mappedValue(byName, colUnit),
		ServiceType:  mappedValue(byName, colServiceType),
		Link:         mappedValue(byName, colLink),
		ReportID:     mappedValue(byName, colReportID),
	}

	id := fmt.Sprintf("%s:%d", filename, idx)
	ts := parseTimestamp(attrs.DateText, attrs.Title)
	fullText := buildFullText(byName, row)

	return record.New(id, source, filename, fields, fullText, ts, attrs)
}

// buildFullText concatenates the prioritized columns first, then every raw
// value, and normalizes the result exactly once. Idempotent for a given row.
func buildFullText(byName map[string]string, row []string) string {
	var b strings.Builder
	for _, col := range priorityColumns {
		if v := mappedValue(byName, col); v != "" {
			b.WriteByte(' ')
			b.WriteString(v)
		}
	}
	for _, v := range row {
		b.WriteByte(' ')
		b.WriteString(v)
	}
	return normalizer.Normalize(b.String())
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
