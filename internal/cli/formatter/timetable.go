package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/chronica/internal/domain"
	"github.com/alexanderramin/chronica/internal/projection"
	"github.com/alexanderramin/chronica/internal/timeparse"
)

// fillGlyphs maps each fill class onto a three-cell bar.
var fillGlyphs = map[domain.FillStyle]string{
	domain.FillDotted:  "···",
	domain.FillHatched: "╱╱╱",
	domain.FillSolid:   "███",
}

// FormatHour renders a decimal hour as HH:MM.
func FormatHour(h float64) string {
	whole := int(h)
	min := int(math.Round((h - float64(whole)) * 60))
	if min == 60 {
		whole, min = whole+1, 0
	}
	return fmt.Sprintf("%02d:%02d", whole%24, min)
}

// entryLine renders one timetable row: time range, fill bar, stack
// offset, and the title indented one step for inner-level entries.
func entryLine(e domain.ProjectedEntry, stack int, innerLevel domain.ItemLevel) string {
	bar := fillGlyphs[projection.FillClass(e.StartTime, e.EndTime)]
	timeRange := fmt.Sprintf("%s–%s", FormatHour(e.StartTime), FormatHour(e.EndTime))
	if e.Wraps() {
		timeRange += "+"
	}

	indent := strings.Repeat("  ", stack)
	if e.Level == innerLevel && e.ParentID != "" {
		indent += "  "
	}

	line := fmt.Sprintf("%s  %s  %s%s",
		Dim(timeRange),
		LevelStyle(e.Level).Render(bar),
		indent,
		LevelStyle(e.Level).Render(e.Title),
	)
	if e.Status != "" {
		line += "  " + Dim("["+e.Status+"]")
	}
	return line
}

// RenderAgenda renders a day-view timetable: one row per entry in
// projection order, stack levels expressed as horizontal offsets.
func RenderAgenda(entries []domain.ProjectedEntry, anchor timeparse.Date) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%s  %s", weekdayName(anchor), anchor)))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(Dim("  nothing scheduled"))
		b.WriteString("\n")
		return b.String()
	}

	stacks := projection.AssignStackLevels(entries, anchor, anchor, anchor)
	innerLevel := innermost(entries)
	for i, e := range entries {
		b.WriteString("  ")
		b.WriteString(entryLine(e, stacks[i], innerLevel))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderWindow renders a week, month, or year view: each occupied day of
// the window followed by the entries present on it.
func RenderWindow(entries []domain.ProjectedEntry, anchor timeparse.Date, mode domain.ViewMode) string {
	winStart, winEnd := windowFor(mode, anchor)

	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("%s  %s – %s", strings.ToUpper(string(mode)), winStart, winEnd)))
	b.WriteString("\n")

	byDay := make(map[timeparse.Date][]int)
	for i, e := range entries {
		for _, d := range projection.OccurrenceDates(e, anchor, winStart, winEnd) {
			byDay[d] = append(byDay[d], i)
		}
	}
	if len(byDay) == 0 {
		b.WriteString(Dim("  nothing scheduled"))
		b.WriteString("\n")
		return b.String()
	}

	stacks := projection.AssignStackLevels(entries, anchor, winStart, winEnd)
	innerLevel := innermost(entries)

	span := winStart.DaysUntil(winEnd)
	for off := 0; off <= span; off++ {
		day := winStart.AddDays(off)
		idxs := byDay[day]
		if len(idxs) == 0 {
			continue
		}
		marker := "  "
		if day.Equal(anchor) {
			marker = StyleHeader.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, day, Dim(weekdayName(day))))
		for _, i := range idxs {
			b.WriteString("    ")
			b.WriteString(entryLine(entries[i], stacks[i], innerLevel))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// RenderTimetable picks the renderer for the view mode.
func RenderTimetable(entries []domain.ProjectedEntry, anchor timeparse.Date, mode domain.ViewMode) string {
	if mode == domain.ViewDay || mode == "" {
		return RenderAgenda(entries, anchor)
	}
	return RenderWindow(entries, anchor, mode)
}

func windowFor(mode domain.ViewMode, anchor timeparse.Date) (timeparse.Date, timeparse.Date) {
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

// innermost returns the deepest level present among entries; its items
// are the ones indented under their parents.
func innermost(entries []domain.ProjectedEntry) domain.ItemLevel {
	max := domain.LevelProgram
	for _, e := range entries {
		if e.Level > max {
			max = e.Level
		}
	}
	return max
}

var weekdayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func weekdayName(d timeparse.Date) string {
	return weekdayNames[d.Weekday()]
}
