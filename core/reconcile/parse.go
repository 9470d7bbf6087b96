package reconcile

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoPrefixPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	dayFirstPattern  = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

// fallbackDateLayouts are tried in order when a date string matches neither
// the ISO prefix nor the day-first slash format.
var fallbackDateLayouts = []string{
	time.RFC3339,
	"2006/01/02",
	"02-01-2006",
	"2 Jan 2006",
}

// ParseNumber converts a feed value to a number, tolerating both Indonesian
// ("1.234,56") and English ("1,234.56") separator conventions. When both
// separators appear, the rightmost one is the decimal point. A lone comma is
// treated as the decimal point; repeated commas are thousands grouping.
// Numeric fields are best-effort: any failure yields 0, never an error.
func ParseNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case float32:
		return ParseNumber(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		return parseNumericString(n)
	case []byte:
		return parseNumericString(string(n))
	default:
		return 0
	}
}

func parseNumericString(s string) float64 {
	// Strip all whitespace, including interior thousands spacing.
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return 0
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")

	switch {
	case hasDot && hasComma:
		// The rightmost separator is the decimal point; the other is
		// thousands grouping.
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		// Indonesian convention: a lone comma is the decimal point.
		// Repeated commas can only be thousands grouping.
		if strings.Count(s, ",") == 1 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	default:
		s = strings.ReplaceAll(s, ",", "")
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ParseDate converts a feed value to a calendar date (midnight UTC).
// It tries, in order: an ISO-like YYYY-MM-DD prefix, the Indonesian
// day-first D/M/YYYY format, then a small set of fallback layouts.
// Invalid calendar components (e.g. 31/02) fail instead of rolling over,
// and total failure returns ok=false rather than defaulting to "now".
func ParseDate(v any) (time.Time, bool) {
	switch d := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if d.IsZero() {
			return time.Time{}, false
		}
		return dateOnly(d), true
	case string:
		return parseDateString(d)
	case []byte:
		return parseDateString(string(d))
	default:
		return time.Time{}, false
	}
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if isoPrefixPattern.MatchString(s) {
		t, err := time.Parse("2006-01-02", s[:10])
		if err != nil {
			return time.Time{}, false
		}
		return dateOnly(t), true
	}

	if m := dayFirstPattern.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return makeDate(year, month, day)
	}

	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), true
		}
	}

	return time.Time{}, false
}

// makeDate builds a validated calendar date. time.Date normalizes out-of-range
// components (31 Feb becomes 3 Mar), so the result is checked against the
// inputs to reject such rollover.
func makeDate(year, month, day int) (time.Time, bool) {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// dateOnly truncates a timestamp to its calendar date in UTC.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two timestamps fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// foldSpecies normalizes a species name for case-insensitive comparison.
func foldSpecies(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
