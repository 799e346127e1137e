package importer

import (
	"fmt"

	"github.com/alexanderramin/chronica/internal/domain"
)

// ValidateItemsFile checks an items file before conversion and returns
// every validation error found, not just the first.
//
// An unknown parent_id is deliberately not an error: items with missing
// parents are projected under the standalone-admission rule.
func ValidateItemsFile(f *ItemsFile) []error {
	var errs []error

	errs = append(errs, validateItems("programs", f.Programs, domain.LevelProgram)...)
	errs = append(errs, validateItems("projects", f.Projects, domain.LevelProject)...)
	errs = append(errs, validateItems("tasks", f.Tasks, domain.LevelTask)...)
	errs = append(errs, validateItems("subtasks", f.Subtasks, domain.LevelSubtask)...)

	return errs
}

func validateItems(section string, items []ItemImport, level domain.ItemLevel) []error {
	var errs []error
	for i, it := range items {
		where := fmt.Sprintf("%s[%d]", section, i)
		if it.Title == "" {
			errs = append(errs, fmt.Errorf("%s: title is required", where))
		}
		if it.Timeframe != nil {
			errs = append(errs, validateTimeframe(where, it.Timeframe, level)...)
		}
	}
	return errs
}

func validateTimeframe(where string, tf *TimeframeImport, level domain.ItemLevel) []error {
	var errs []error

	if tf.Start == "" {
		errs = append(errs, fmt.Errorf("%s.timeframe: start is required", where))
	}
	if tf.Deadline != "" && level != domain.LevelProgram && level != domain.LevelProject {
		errs = append(errs, fmt.Errorf("%s.timeframe: deadline is only valid on programs and projects", where))
	}

	if rec := tf.Recurrence; rec != nil {
		if !domain.ValidRecurrenceTypes[rec.Type] {
			errs = append(errs, fmt.Errorf("%s.timeframe.recurrence: invalid type %q", where, rec.Type))
		}
		for _, d := range rec.DaysOfWeek {
			if d < 0 || d > 6 {
				errs = append(errs, fmt.Errorf("%s.timeframe.recurrence: day_of_week %d out of range 0-6", where, d))
			}
		}
		if rec.DayOfMonth != nil && (*rec.DayOfMonth < 1 || *rec.DayOfMonth > 31) {
			errs = append(errs, fmt.Errorf("%s.timeframe.recurrence: day_of_month %d out of range 1-31", where, *rec.DayOfMonth))
		}
	}

	return errs
}
