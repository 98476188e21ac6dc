package normalize

import (
	"strings"
	"time"
)

// Stored draw times come from several generations of the recording code, so a
// timestamp may be an ISO string, a slash-delimited date, or a locale string
// with an AM/PM marker. Everything is compared at day resolution in the
// campaign timezone.

// isoLayouts are tried first, in order.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// slashLayouts accept single-digit months, days and hours.
var slashLayouts = []string{
	"2006/1/2 15:04:05",
	"2006/1/2 15:04",
	"2006/1/2",
}

// meridiemLayouts are the remainder of a locale string after the marker has
// been cut out, e.g. "2025/3/26 下午 3:04:05" -> "2025/3/26 3:04:05".
var meridiemLayouts = []string{
	"2006/1/2 3:04:05",
	"2006/1/2 3:04",
}

var pmMarkers = []string{"下午", "PM", "pm"}
var amMarkers = []string{"上午", "AM", "am"}

// ParseDay parses a stored date or timestamp string and returns midnight of
// its calendar day in loc. The second return value is false when the string
// matches no recognized pattern; callers treat such values as non-matching
// rather than failing the request.
func ParseDay(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return truncateToDay(t.In(loc)), true
		}
	}
	for _, layout := range slashLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return truncateToDay(t), true
		}
	}
	if t, ok := parseMeridiem(s, loc); ok {
		return truncateToDay(t), true
	}
	return time.Time{}, false
}

// SameDay reports whether two stored strings denote the same calendar day in
// loc. It is false when either side is unparseable.
func SameDay(a, b string, loc *time.Location) bool {
	da, ok := ParseDay(a, loc)
	if !ok {
		return false
	}
	db, ok := ParseDay(b, loc)
	if !ok {
		return false
	}
	return da.Equal(db)
}

// parseMeridiem handles locale timestamps carrying an AM/PM marker. The
// afternoon marker maps hours below 12 up by 12; the morning marker leaves
// the hour untouched, including hour 12, matching the recorded data.
func parseMeridiem(s string, loc *time.Location) (time.Time, bool) {
	marker, afternoon := findMarker(s)
	if marker == "" {
		return time.Time{}, false
	}

	stripped := strings.Join(strings.Fields(strings.Replace(s, marker, " ", 1)), " ")
	for _, layout := range meridiemLayouts {
		t, err := time.ParseInLocation(layout, stripped, loc)
		if err != nil {
			continue
		}
		if afternoon && t.Hour() < 12 {
			t = t.Add(12 * time.Hour)
		}
		return t, true
	}
	return time.Time{}, false
}

func findMarker(s string) (marker string, afternoon bool) {
	for _, m := range pmMarkers {
		if strings.Contains(s, m) {
			return m, true
		}
	}
	for _, m := range amMarkers {
		if strings.Contains(s, m) {
			return m, false
		}
	}
	return "", false
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
