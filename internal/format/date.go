package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/checkpress-dev/checkpress/internal/dateserial"
)

// DefaultDatePattern is the pattern used when a caller supplies none.
const DefaultDatePattern = "YYYY-MM-DD"

// dateLayouts are the calendar-text forms accepted by ParseDate,
// tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"2006年01月02日",
	"Jan 2, 2006",
}

// Date formats a value as a date per a YYYY/MM/DD-style pattern.
// Unparseable input yields the original stringified value, a deliberate
// graceful degradation for display.
func Date(value any, pattern string) string {
	t, ok := ParseDate(value)
	if !ok {
		return Stringify(value)
	}
	return FormatTime(t, pattern)
}

// ParseDate interprets a raw cell value as a calendar date. Numbers and
// numeric-looking strings are treated as spreadsheet serials; other
// strings are parsed as calendar text. Blank and unsupported values
// report false — they are never coerced to the current time.
func ParseDate(value any) (time.Time, bool) {
	switch x := value.(type) {
	case time.Time:
		return x, true
	case float64, float32, int, int64:
		d, ok := ToDecimal(x)
		if !ok {
			return time.Time{}, false
		}
		f, _ := d.Float64()
		return dateserial.Decode(f, dateserial.Options{})
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, false
		}
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return dateserial.Decode(serial, dateserial.Options{})
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// FormatTime renders a time per a YYYY/MM/DD-style pattern. Pattern
// letters outside the year/month/day tokens pass through verbatim.
func FormatTime(t time.Time, pattern string) string {
	if pattern == "" {
		pattern = DefaultDatePattern
	}

	var b strings.Builder
	for i := 0; i < len(pattern); {
		switch {
		case strings.HasPrefix(pattern[i:], "YYYY"):
			b.WriteString(t.Format("2006"))
			i += 4
		case strings.HasPrefix(pattern[i:], "YY"):
			b.WriteString(t.Format("06"))
			i += 2
		case strings.HasPrefix(pattern[i:], "MM"):
			b.WriteString(t.Format("01"))
			i += 2
		case pattern[i] == 'M':
			b.WriteString(t.Format("1"))
			i++
		case strings.HasPrefix(pattern[i:], "DD"):
			b.WriteString(t.Format("02"))
			i += 2
		case pattern[i] == 'D':
			b.WriteString(t.Format("2"))
			i++
		default:
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}
