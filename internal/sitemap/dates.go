package sitemap

import (
	"regexp"
	"strings"
	"time"
)

var dateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// DateProvider matches timestamp values that can hand out a native
// time, the shape legacy document-store SDKs expose
type DateProvider interface {
	ToDate() time.Time
}

// Timestamp is the wire shape legacy exports use for timestamps
type Timestamp struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int64 `json:"nanoseconds"`
}

func (t Timestamp) ToDate() time.Time {
	return time.Unix(t.Seconds, t.Nanoseconds).UTC()
}

// NormalizeDate coerces any timestamp shape the system has ever
// stored into a YYYY-MM-DD string. Total: unknown or unparseable
// input falls back to today rather than failing, because a sitemap
// with an approximate date beats no sitemap at all.
//
// Handled shapes: date-only strings, ISO datetime strings, native
// times, values exposing ToDate(), decoded JSON objects with a
// seconds field, and epoch-milliseconds numbers.
func NormalizeDate(v any) string {
	today := time.Now().Format("2006-01-02")

	switch t := v.(type) {
	case nil:
		return today

	case string:
		if dateOnly.MatchString(t) {
			return t
		}
		if prefix, _, found := strings.Cut(t, "T"); found && dateOnly.MatchString(prefix) {
			return prefix
		}
		return today

	case time.Time:
		if t.IsZero() {
			return today
		}
		return t.Format("2006-01-02")

	case *time.Time:
		if t == nil || t.IsZero() {
			return today
		}
		return t.Format("2006-01-02")

	case DateProvider:
		return t.ToDate().Format("2006-01-02")

	case map[string]any:
		// JSON-decoded legacy timestamp: {"seconds": N, "nanoseconds": M}
		if secs, ok := numeric(t["seconds"]); ok {
			return time.UnixMilli(secs * 1000).UTC().Format("2006-01-02")
		}
		return today

	case int, int64, float64:
		millis, _ := numeric(t)
		return time.UnixMilli(millis).UTC().Format("2006-01-02")

	default:
		return today
	}
}

func numeric(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	}
	return 0, false
}
