// Package validate turns untyped backup input into typed domain
// entities. Validators follow the comma-ok convention: zero value plus
// false means the input was rejected. Absence is the normal error
// channel here, not an exceptional condition.
package validate

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/atomixxxx/cuisine-app/internal/sanitize"
)

// String sanitizes v through the shared free-text boundary and rejects
// anything that is not a string or sanitizes to empty.
func String(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = sanitize.Text(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// Number accepts a numeric value or a numeric string and rejects
// non-finite results.
func Number(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Integer accepts a literal number with no fractional part. Unlike
// Number it takes no numeric strings: it types envelope fields such as
// the payload version, which must be actual numbers.
func Integer(v any) (int, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	default:
		return 0, false
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// Bool accepts literal booleans only. Truthy numbers and strings reject.
func Bool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// maxEpochMillis bounds numeric timestamps. Past this magnitude the
// int64 conversion wraps and the result is not a real instant.
const maxEpochMillis = 8.64e15

// Timestamp layouts tried in order for string dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Date accepts a time value, a parseable string or an epoch-millisecond
// number and rejects anything that does not yield a real instant.
func Date(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x.UTC(), true
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), true
			}
		}
		return time.Time{}, false
	case float64, int, int64:
		ms, ok := Number(x)
		if !ok || math.Abs(ms) > maxEpochMillis {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(ms)).UTC(), true
	default:
		return time.Time{}, false
	}
}

// Enum accepts v only when it matches one of the allowed tags exactly.
func Enum[T ~string](v any, allowed []T) (T, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	for _, a := range allowed {
		if T(s) == a {
			return a, true
		}
	}
	return "", false
}

// StringList maps a list through String, dropping entries that reject
// and deduplicating survivors. This is the one lenient validator: tag
// lists are non-critical metadata, so partial recovery is tolerated.
func StringList(v any) ([]string, bool) {
	list, ok := v.([]any)
	if !ok {
		return nil, false
	}
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := String(item)
		if !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out, true
}
