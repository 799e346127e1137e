package timeparse

import (
	"fmt"
	"regexp"
	"time"
)

// Date is an explicit calendar date, independent of any timezone. All
// calendar arithmetic in the projection core goes through this type so
// that results never depend on the host environment's local zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf extracts the UTC calendar date of t.
func DateOf(t time.Time) Date {
	u := t.UTC()
	return Date{Year: u.Year(), Month: u.Month(), Day: u.Day()}
}

// Today returns the calendar date of now in the local wall clock. The
// caller supplies now explicitly; the core never reads the system clock.
func Today(now time.Time) Date {
	return Date{Year: now.Year(), Month: now.Month(), Day: now.Day()}
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Weekday returns the day of week with 0=Sunday.
func (d Date) Weekday() int {
	return int(d.Time().Weekday())
}

// AddDays returns the date n days after d (negative n goes backward).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Equal(o Date) bool {
	return d == o
}

func (d Date) Before(o Date) bool {
	return d.Time().Before(o.Time())
}

func (d Date) After(o Date) bool {
	return d.Time().After(o.Time())
}

// DaysUntil returns the signed number of days from d to o.
func (d Date) DaysUntil(o Date) int {
	return int(o.Time().Sub(d.Time()).Hours() / 24)
}

var datePrefixPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)

// ParseDate parses a strict YYYY-MM-DD string.
func ParseDate(s string) (Date, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, false
	}
	return DateOf(t), true
}

// ParseCalendarDate extracts the calendar date from a heterogeneous time
// string. Bare time-of-day strings have no date component and yield
// absent. A leading YYYY-MM-DD is matched textually first, so that
// zone-suffixed datetimes keep their written calendar day rather than
// shifting through a constructed time value. Datetimes in other layouts
// fall back to a full parse read in UTC.
func ParseCalendarDate(s string) (Date, bool) {
	if s == "" || clockPattern.MatchString(s) {
		return Date{}, false
	}
	if m := datePrefixPattern.FindStringSubmatch(s); m != nil {
		if t, err := time.Parse("2006-01-02", m[0]); err == nil {
			return DateOf(t), true
		}
		return Date{}, false
	}
	if t, ok := parseDateTime(s); ok {
		return DateOf(t), true
	}
	return Date{}, false
}

// WeekWindow returns the Sunday-through-Saturday window containing anchor.
func WeekWindow(anchor Date) (Date, Date) {
	start := anchor.AddDays(-anchor.Weekday())
	return start, start.AddDays(6)
}

// MonthWindow returns the first and last day of anchor's calendar month.
func MonthWindow(anchor Date) (Date, Date) {
	first := Date{Year: anchor.Year, Month: anchor.Month, Day: 1}
	last := DateOf(first.Time().AddDate(0, 1, -1))
	return first, last
}

// YearWindow returns the first and last day of anchor's calendar year.
func YearWindow(anchor Date) (Date, Date) {
	return Date{Year: anchor.Year, Month: time.January, Day: 1},
		Date{Year: anchor.Year, Month: time.December, Day: 31}
}

// RangeOverlaps reports whether the inclusive date ranges [aStart,aEnd]
// and [bStart,bEnd] intersect.
func RangeOverlaps(aStart, aEnd, bStart, bEnd Date) bool {
	return !aEnd.Before(bStart) && !bEnd.Before(aStart)
}
