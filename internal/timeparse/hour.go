package timeparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// clockPattern matches bare H:MM / HH:MM time-of-day strings.
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// dateTimeLayouts are the accepted full-datetime shapes, tried in order.
// Zone-suffixed layouts are evaluated in UTC; naive layouts are taken as
// written wall-clock values.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseDateTime(s string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseHour resolves a heterogeneous time representation into a decimal
// hour in [0,24). Three strategies are tried in order: a full datetime
// (hour plus minutes/60 of its wall clock, zone-aware values read in
// UTC), a bare H:MM clock string, and finally a raw decimal number.
// The second return is false when no strategy matches; unparseable input
// is routine data, not an error.
func ParseHour(input string) (float64, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, false
	}

	if t, ok := parseDateTime(s); ok {
		return float64(t.Hour()) + float64(t.Minute())/60, true
	}

	if m := clockPattern.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if h >= 0 && h < 24 && min >= 0 && min < 60 {
			return float64(h) + float64(min)/60, true
		}
		return 0, false
	}

	if v, err := strconv.ParseFloat(s, 64); err == nil && v >= 0 && v < 24 {
		return v, true
	}

	return 0, false
}
