// Package ics converts iCalendar events into Task-level work items so a
// calendar feed can serve as an item source alongside the JSON importer.
package ics

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/alexanderramin/chronica/internal/domain"
)

// ParseFile reads an .ics file and converts its events into work items.
func ParseFile(path string) ([]domain.WorkItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ics file: %w", err)
	}
	defer f.Close()
	items, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing ics file %s: %w", path, err)
	}
	return items, nil
}

// Parse converts an iCalendar payload into Task-level work items. Events
// missing a usable start or end are skipped, never fatal; partial feeds
// are routine input.
func Parse(r io.Reader) ([]domain.WorkItem, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing calendar: %w", err)
	}

	var items []domain.WorkItem
	for _, ve := range cal.Events() {
		item, ok := convertEvent(ve)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func convertEvent(ve *ical.VEvent) (domain.WorkItem, bool) {
	start, err := ve.GetStartAt()
	if err != nil {
		return domain.WorkItem{}, false
	}
	end, err := ve.GetEndAt()
	if err != nil || !end.After(start) {
		end = start.Add(time.Hour)
	}

	id := propValue(ve, ical.ComponentPropertyUniqueId)
	if id == "" {
		id = uuid.New().String()
	}
	title := propValue(ve, ical.ComponentPropertySummary)
	if title == "" {
		title = "(untitled event)"
	}

	item := domain.WorkItem{
		ID:     id,
		Title:  title,
		Level:  domain.LevelTask,
		Status: strings.ToLower(propValue(ve, ical.ComponentPropertyStatus)),
		Timeframe: &domain.Timeframe{
			Start:     start.UTC().Format(time.RFC3339),
			TargetEnd: end.UTC().Format(time.RFC3339),
		},
	}

	if raw := propValue(ve, ical.ComponentPropertyRrule); raw != "" {
		item.Timeframe.Recurrence = mapRRule(raw)
	}

	return item, true
}

func propValue(ve *ical.VEvent, name ical.ComponentProperty) string {
	if p := ve.GetProperty(name); p != nil {
		return p.Value
	}
	return ""
}

// mapRRule projects an RFC 5545 RRULE onto the domain recurrence model.
// Only the frequency, BYDAY, and BYMONTHDAY parts carry over; anything
// richer degrades to the bare frequency mapping. Unparseable or unmapped
// rules yield nil, leaving a plain dated event.
func mapRRule(raw string) *domain.Recurrence {
	opt, err := rrule.StrToROption(raw)
	if err != nil {
		return nil
	}

	var recType domain.RecurrenceType
	switch opt.Freq {
	case rrule.DAILY:
		recType = domain.RecurDaily
	case rrule.WEEKLY:
		recType = domain.RecurWeekly
	case rrule.MONTHLY:
		recType = domain.RecurMonthly
	case rrule.YEARLY:
		recType = domain.RecurYearly
	default:
		return nil
	}

	rec := &domain.Recurrence{Type: recType}

	// rrule weekdays count 0=Monday; the domain counts 0=Sunday.
	for _, wd := range opt.Byweekday {
		rec.DaysOfWeek = append(rec.DaysOfWeek, (wd.Day()+1)%7)
	}
	if len(opt.Bymonthday) > 0 {
		dom := opt.Bymonthday[0]
		rec.DayOfMonth = &dom
	}

	return rec
}
