package projection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/chronica/internal/domain"
	"github.com/alexanderramin/chronica/internal/timeparse"
)

func datePtr(t *testing.T, s string) *timeparse.Date {
	t.Helper()
	d, ok := timeparse.ParseDate(s)
	require.True(t, ok, "bad test date %q", s)
	return &d
}

func date(t *testing.T, s string) timeparse.Date {
	t.Helper()
	return *datePtr(t, s)
}

func TestShouldDisplay_NoRecurrenceExactDateOnly(t *testing.T) {
	item := datePtr(t, "2024-06-10")

	assert.True(t, ShouldDisplay(item, date(t, "2024-06-10"), nil))
	assert.False(t, ShouldDisplay(item, date(t, "2024-06-11"), nil))
	assert.False(t, ShouldDisplay(nil, date(t, "2024-06-10"), nil))

	none := &domain.Recurrence{Type: domain.RecurNone}
	assert.True(t, ShouldDisplay(item, date(t, "2024-06-10"), none))
	assert.False(t, ShouldDisplay(item, date(t, "2024-06-11"), none))
}

func TestShouldDisplay_OriginalOccurrenceAlwaysShows(t *testing.T) {
	item := datePtr(t, "2024-06-10")
	// 2024-06-10 is a Monday; the rule names Tuesday only, yet the
	// original occurrence still displays.
	rec := &domain.Recurrence{Type: domain.RecurWeekly, DaysOfWeek: []int{2}}

	assert.True(t, ShouldDisplay(item, date(t, "2024-06-10"), rec))
}

func TestShouldDisplay_NeverBeforeItemDate(t *testing.T) {
	item := datePtr(t, "2024-06-10")
	rec := &domain.Recurrence{Type: domain.RecurDaily}

	assert.False(t, ShouldDisplay(item, date(t, "2024-06-09"), rec))
	assert.True(t, ShouldDisplay(item, date(t, "2024-06-10"), rec))
	assert.True(t, ShouldDisplay(item, date(t, "2024-06-11"), rec))
}

func TestShouldDisplay_WeeklyDaysOfWeek(t *testing.T) {
	// Item dated Monday 2024-01-01, recurring on Mondays.
	item := datePtr(t, "2024-01-01")
	rec := &domain.Recurrence{Type: domain.RecurWeekly, DaysOfWeek: []int{1}}

	assert.True(t, ShouldDisplay(item, date(t, "2024-01-01"), rec))
	assert.True(t, ShouldDisplay(item, date(t, "2024-01-08"), rec))
	assert.True(t, ShouldDisplay(item, date(t, "2024-12-02"), rec), "a Monday far in the future")

	assert.False(t, ShouldDisplay(item, date(t, "2024-01-09"), rec), "Tuesday")
	assert.False(t, ShouldDisplay(item, date(t, "2024-01-07"), rec), "Sunday")
	assert.False(t, ShouldDisplay(item, date(t, "2023-12-25"), rec), "a Monday before the item date")
}

func TestShouldDisplay_WeeklyWithoutDaysOfWeek(t *testing.T) {
	rec := &domain.Recurrence{Type: domain.RecurWeekly}

	// Dateless weekly items display unconditionally.
	assert.True(t, ShouldDisplay(nil, date(t, "2024-06-10"), rec))

	// Dated ones repeat on their own weekday.
	item := datePtr(t, "2024-06-10") // Monday
	assert.True(t, ShouldDisplay(item, date(t, "2024-06-17"), rec))
	assert.False(t, ShouldDisplay(item, date(t, "2024-06-18"), rec))
}

func TestShouldDisplay_Monthly(t *testing.T) {
	dom := 15
	pinned := &domain.Recurrence{Type: domain.RecurMonthly, DayOfMonth: &dom}

	assert.True(t, ShouldDisplay(nil, date(t, "2024-06-15"), pinned))
	assert.False(t, ShouldDisplay(nil, date(t, "2024-06-14"), pinned))

	free := &domain.Recurrence{Type: domain.RecurMonthly}
	assert.True(t, ShouldDisplay(nil, date(t, "2024-06-03"), free), "dateless monthly without a pinned day always displays")

	item := datePtr(t, "2024-05-20")
	assert.True(t, ShouldDisplay(item, date(t, "2024-06-20"), free))
	assert.False(t, ShouldDisplay(item, date(t, "2024-06-21"), free))
}

func TestShouldDisplay_Yearly(t *testing.T) {
	rec := &domain.Recurrence{Type: domain.RecurYearly}

	// Dateless yearly recurrence is meaningless.
	assert.False(t, ShouldDisplay(nil, date(t, "2024-06-10"), rec))

	item := datePtr(t, "2023-06-10")
	assert.True(t, ShouldDisplay(item, date(t, "2024-06-10"), rec))
	assert.False(t, ShouldDisplay(item, date(t, "2024-06-11"), rec))
	assert.False(t, ShouldDisplay(item, date(t, "2024-07-10"), rec))
	assert.False(t, ShouldDisplay(item, date(t, "2022-06-10"), rec), "before the item date")
}

func TestShouldDisplay_Daily(t *testing.T) {
	rec := &domain.Recurrence{Type: domain.RecurDaily}

	assert.True(t, ShouldDisplay(nil, date(t, "2024-06-10"), rec))
	assert.True(t, ShouldDisplay(datePtr(t, "2024-06-01"), date(t, "2024-06-10"), rec))
}
