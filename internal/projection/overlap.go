package projection

import "math"

// normalizeHour wraps an hour value into [0,24).
func normalizeHour(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}

// inSpan reports whether hour x lies inside the half-open active span
// [s,e), where e < s means the span wraps past midnight.
func inSpan(x, s, e float64) bool {
	if s <= e {
		return x >= s && x < e
	}
	return x >= s || x < e
}

// IntervalsOverlap reports whether two time-of-day intervals intersect.
// Endpoints are decimal hours; an interval whose end is numerically below
// its start wraps past midnight. Non-wrapping pairs use the standard
// open-interval test. When either interval wraps, overlap holds whenever
// any endpoint of one interval falls inside the other's active span.
// That union test is deliberately permissive: two intervals that each
// span 23:00-01:00 count as overlapping.
func IntervalsOverlap(s1, e1, s2, e2 float64) bool {
	s1, e1 = normalizeHour(s1), normalizeHour(e1)
	s2, e2 = normalizeHour(s2), normalizeHour(e2)

	if s1 <= e1 && s2 <= e2 {
		return s1 < e2 && s2 < e1
	}

	return inSpan(s1, s2, e2) || inSpan(e1, s2, e2) ||
		inSpan(s2, s1, e1) || inSpan(e2, s1, e1)
}
