package projection

import (
	"github.com/alexanderramin/chronica/internal/domain"
	"github.com/alexanderramin/chronica/internal/timeparse"
)

// ShouldDisplay decides whether an item with the given calendar date and
// recurrence rule appears on the anchor date.
//
// itemDate is nil for items that carry no resolvable calendar date
// (time-only recurring items). Without a recurrence rule such items never
// display; with one, display depends solely on the rule and the anchor.
func ShouldDisplay(itemDate *timeparse.Date, anchor timeparse.Date, rec *domain.Recurrence) bool {
	if rec == nil || rec.Type == domain.RecurNone || rec.Type == "" {
		return itemDate != nil && itemDate.Equal(anchor)
	}

	// The original occurrence always shows.
	if itemDate != nil && itemDate.Equal(anchor) {
		return true
	}

	// Recurrence never projects backward in time.
	if itemDate != nil && anchor.Before(*itemDate) {
		return false
	}

	switch rec.Type {
	case domain.RecurDaily:
		return true

	case domain.RecurWeekly:
		if len(rec.DaysOfWeek) > 0 {
			return containsInt(rec.DaysOfWeek, anchor.Weekday())
		}
		if itemDate == nil {
			return true
		}
		return itemDate.Weekday() == anchor.Weekday()

	case domain.RecurMonthly:
		if rec.DayOfMonth != nil {
			return anchor.Day == *rec.DayOfMonth
		}
		if itemDate == nil {
			return true
		}
		return itemDate.Day == anchor.Day

	case domain.RecurYearly:
		// A yearly rule without an anchor occurrence is meaningless.
		if itemDate == nil {
			return false
		}
		return itemDate.Month == anchor.Month && itemDate.Day == anchor.Day
	}

	return false
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
