package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ddmmyyyyRe  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})`)
	yyyymmddRe  = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})`)
	bareYearRe  = regexp.MustCompile(`^\d{4}$`)
	titleYearRe = regexp.MustCompile(`/(\d{4})`)
)

// parseTimestamp derives a unix-millisecond timestamp from a date-like
// value, falling back to a year embedded in the title ("Acórdão 1234/2022").
// Returns 0 when nothing parses; records are never excluded for that.
func parseTimestamp(dateStr, title string) int64 {
	dateStr = strings.TrimSpace(dateStr)

	if dateStr == "" {
		if m := titleYearRe.FindStringSubmatch(title); m != nil {
			return yearStart(m[1])
		}
		return 0
	}

	if m := ddmmyyyyRe.FindStringSubmatch(dateStr); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return civil(year, month, day)
	}

	if m := yyyymmddRe.FindStringSubmatch(dateStr); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		return civil(year, month, day)
	}

	if bareYearRe.MatchString(dateStr) {
		return yearStart(dateStr)
	}

	return 0
}

func yearStart(year string) int64 {
	y, err := strconv.Atoi(year)
	if err != nil {
		return 0
	}
	return civil(y, 1, 1)
}

func civil(year, month, day int) int64 {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).UnixMilli()
}
