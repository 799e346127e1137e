package projection

import (
	"github.com/alexanderramin/chronica/internal/domain"
	"github.com/alexanderramin/chronica/internal/timeparse"
)

// viewLevels fixes which two hierarchy levels each view mode includes,
// outer level first. Year views follow the month rule.
var viewLevels = map[domain.ViewMode][2]domain.ItemLevel{
	domain.ViewDay:   {domain.LevelTask, domain.LevelSubtask},
	domain.ViewWeek:  {domain.LevelProject, domain.LevelTask},
	domain.ViewMonth: {domain.LevelProgram, domain.LevelProject},
	domain.ViewYear:  {domain.LevelProgram, domain.LevelProject},
}

// resolved is the per-item outcome of timeframe resolution. An item whose
// start or end cannot be parsed never reaches projection output.
type resolved struct {
	ok        bool
	start     float64
	end       float64
	startDate *timeparse.Date
	endDate   *timeparse.Date
	rec       *domain.Recurrence
}

// resolve parses an item's timeframe into decimal hours and calendar
// dates. The end field is chosen by the level's precedence order, first
// parseable candidate wins; the end date follows the chosen end string,
// falling back to the start date for time-only end values.
func resolve(item domain.WorkItem) resolved {
	tf := item.Timeframe
	if tf == nil || tf.Start == "" {
		return resolved{}
	}

	start, ok := timeparse.ParseHour(tf.Start)
	if !ok {
		return resolved{}
	}

	var end float64
	var endStr string
	endOK := false
	for _, cand := range tf.EndCandidates(item.Level) {
		if v, parsed := timeparse.ParseHour(cand); parsed {
			end, endStr, endOK = v, cand, true
			break
		}
	}
	if !endOK {
		return resolved{}
	}

	r := resolved{ok: true, start: start, end: end, rec: tf.Recurrence}
	if d, has := timeparse.ParseCalendarDate(tf.Start); has {
		r.startDate = &d
	}
	if d, has := timeparse.ParseCalendarDate(endStr); has {
		r.endDate = &d
	} else {
		r.endDate = r.startDate
	}
	return r
}

// window returns the inclusive calendar window for a view mode.
func window(mode domain.ViewMode, anchor timeparse.Date) (timeparse.Date, timeparse.Date) {
	switch mode {
	case domain.ViewWeek:
		return timeparse.WeekWindow(anchor)
	case domain.ViewMonth:
		return timeparse.MonthWindow(anchor)
	case domain.ViewYear:
		return timeparse.YearWindow(anchor)
	default:
		return anchor, anchor
	}
}

// admit applies the per-view containment test. Day views require an exact
// recurrence/date match on the anchor. Wider views admit on window
// overlap of the item's date span OR a recurrence match on the anchor;
// either condition suffices.
func admit(r resolved, mode domain.ViewMode, anchor, winStart, winEnd timeparse.Date) bool {
	if mode == domain.ViewDay || mode == "" {
		return ShouldDisplay(r.startDate, anchor, r.rec)
	}
	if r.startDate != nil {
		end := r.startDate
		if r.endDate != nil {
			end = r.endDate
		}
		if timeparse.RangeOverlaps(*r.startDate, *end, winStart, winEnd) {
			return true
		}
	}
	return ShouldDisplay(r.startDate, anchor, r.rec)
}

func makeEntry(item domain.WorkItem, r resolved) domain.ProjectedEntry {
	e := domain.ProjectedEntry{
		ID:        item.ID,
		Title:     item.Title,
		Type:      item.Level.String(),
		Level:     item.Level,
		ParentID:  item.ParentID,
		StartTime: r.start,
		EndTime:   r.end,
		Status:    item.Status,
		Priority:  item.Priority,
	}
	if r.startDate != nil {
		e.StartDate = r.startDate.String()
	}
	if r.endDate != nil {
		e.EndDate = r.endDate.String()
	}
	e.Recurrence = r.rec.Clone()
	return e
}

// Project flattens the four hierarchical collections into positioned
// calendar entries for one anchor date and view mode. The function is
// pure: inputs are never mutated, all lookup structures are rebuilt per
// call, and identical arguments always produce an identical sequence.
//
// Output order is insertion order: each admitted outer-level item
// followed by its admitted children, then standalone inner-level items.
// Callers must not assume any ordering beyond that grouping.
func Project(programs, projects, tasks, subtasks []domain.WorkItem, anchor timeparse.Date, mode domain.ViewMode) []domain.ProjectedEntry {
	levels, known := viewLevels[mode]
	if !known {
		mode = domain.ViewDay
		levels = viewLevels[mode]
	}

	byLevel := map[domain.ItemLevel][]domain.WorkItem{
		domain.LevelProgram: programs,
		domain.LevelProject: projects,
		domain.LevelTask:    tasks,
		domain.LevelSubtask: subtasks,
	}
	outer := byLevel[levels[0]]
	inner := byLevel[levels[1]]

	winStart, winEnd := window(mode, anchor)

	// Per-call indexes, discarded on return.
	children := make(map[string][]domain.WorkItem)
	for _, it := range inner {
		if it.ParentID != "" {
			children[it.ParentID] = append(children[it.ParentID], it)
		}
	}
	outerResolved := make(map[string]resolved, len(outer))
	for _, it := range outer {
		outerResolved[it.ID] = resolve(it)
	}

	var out []domain.ProjectedEntry

	for _, it := range outer {
		r := outerResolved[it.ID]
		if !r.ok || !admit(r, mode, anchor, winStart, winEnd) {
			continue
		}
		out = append(out, makeEntry(it, r))

		// A child shows under its parent only when its own time-of-day
		// interval overlaps the parent's declared window.
		for _, ch := range children[it.ID] {
			cr := resolve(ch)
			if !cr.ok || !admit(cr, mode, anchor, winStart, winEnd) {
				continue
			}
			if !IntervalsOverlap(cr.start, cr.end, r.start, r.end) {
				continue
			}
			out = append(out, makeEntry(ch, cr))
		}
	}

	// Standalone inner items: no parent, an unknown parent, or a parent
	// without a usable timeframe. These still appear on their own merit.
	for _, ch := range inner {
		if ch.ParentID != "" {
			if pr, found := outerResolved[ch.ParentID]; found && pr.ok {
				continue
			}
		}
		cr := resolve(ch)
		if !cr.ok || !admit(cr, mode, anchor, winStart, winEnd) {
			continue
		}
		out = append(out, makeEntry(ch, cr))
	}

	return out
}
