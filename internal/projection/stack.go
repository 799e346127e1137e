package projection

import (
	"github.com/alexanderramin/chronica/internal/domain"
	"github.com/alexanderramin/chronica/internal/timeparse"
)

// maxRangeDays caps day-by-day iteration over an entry's date span so a
// malformed range can never produce unbounded work. On hitting the cap
// the days accumulated so far are returned.
const maxRangeDays = 100

// maxWindowDays bounds the recurrence scan over a window; no view mode
// produces a window longer than a leap year.
const maxWindowDays = 366

// OccurrenceDates lists the calendar days inside [winStart,winEnd] that
// an entry occupies. Dated entries occupy the intersection of their date
// span with the window, plus every window day their recurrence rule
// lands on. Time-only entries without a rule stand on the anchor date.
func OccurrenceDates(e domain.ProjectedEntry, anchor, winStart, winEnd timeparse.Date) []timeparse.Date {
	recurs := e.Recurrence != nil && e.Recurrence.Type != domain.RecurNone && e.Recurrence.Type != ""
	if e.StartDate == "" && !recurs {
		if !anchor.Before(winStart) && !anchor.After(winEnd) {
			return []timeparse.Date{anchor}
		}
		return nil
	}

	var itemDate *timeparse.Date
	if e.StartDate != "" {
		if d, ok := timeparse.ParseDate(e.StartDate); ok {
			itemDate = &d
		}
	}

	var days []timeparse.Date
	seen := make(map[timeparse.Date]bool)
	add := func(d timeparse.Date) {
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}

	if itemDate != nil {
		start, end := *itemDate, *itemDate
		if e.EndDate != "" {
			if d, ok := timeparse.ParseDate(e.EndDate); ok && !d.Before(start) {
				end = d
			}
		}
		if start.Before(winStart) {
			start = winStart
		}
		if end.After(winEnd) {
			end = winEnd
		}
		for d, n := start, 0; !d.After(end) && n < maxRangeDays; d, n = d.AddDays(1), n+1 {
			add(d)
		}
	}

	if recurs {
		for d, n := winStart, 0; !d.After(winEnd) && n < maxWindowDays; d, n = d.AddDays(1), n+1 {
			if ShouldDisplay(itemDate, d, e.Recurrence) {
				add(d)
			}
		}
	}

	return days
}

func shareDay(a, b []timeparse.Date) bool {
	seen := make(map[timeparse.Date]bool, len(a))
	for _, d := range a {
		seen[d] = true
	}
	for _, d := range b {
		if seen[d] {
			return true
		}
	}
	return false
}

// AssignStackLevels computes the vertical rendering row of each entry.
// Entries are processed in order; an entry lands one row above the
// highest earlier entry it conflicts with, where a conflict is sharing a
// calendar day inside the window and overlapping in time of day. Two
// mutually overlapping entries therefore never share a row.
func AssignStackLevels(entries []domain.ProjectedEntry, anchor, winStart, winEnd timeparse.Date) []int {
	days := make([][]timeparse.Date, len(entries))
	for i, e := range entries {
		days[i] = OccurrenceDates(e, anchor, winStart, winEnd)
	}

	levels := make([]int, len(entries))
	for i := range entries {
		maxBelow := -1
		for j := 0; j < i; j++ {
			if !shareDay(days[i], days[j]) {
				continue
			}
			if !IntervalsOverlap(entries[i].StartTime, entries[i].EndTime, entries[j].StartTime, entries[j].EndTime) {
				continue
			}
			if levels[j] > maxBelow {
				maxBelow = levels[j]
			}
		}
		levels[i] = maxBelow + 1
	}
	return levels
}

// FillClass maps an interval's duration onto its bar fill style: up to an
// hour dotted, up to three hours hatched, anything longer solid.
func FillClass(start, end float64) domain.FillStyle {
	d := end - start
	if d < 0 {
		d += 24
	}
	switch {
	case d <= 1:
		return domain.FillDotted
	case d <= 3:
		return domain.FillHatched
	default:
		return domain.FillSolid
	}
}
