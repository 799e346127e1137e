package importer

import (
	"github.com/google/uuid"

	"github.com/alexanderramin/chronica/internal/domain"
)

// Convert transforms a validated items file into domain collections.
// Call ValidateItemsFile first; Convert assumes the file is valid.
// Items arriving without an ID are assigned a fresh UUID.
func Convert(f *ItemsFile) domain.ItemSet {
	return domain.ItemSet{
		Programs: convertItems(f.Programs, domain.LevelProgram),
		Projects: convertItems(f.Projects, domain.LevelProject),
		Tasks:    convertItems(f.Tasks, domain.LevelTask),
		Subtasks: convertItems(f.Subtasks, domain.LevelSubtask),
	}
}

func convertItems(items []ItemImport, level domain.ItemLevel) []domain.WorkItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]domain.WorkItem, 0, len(items))
	for _, it := range items {
		id := it.ID
		if id == "" {
			id = uuid.New().String()
		}
		out = append(out, domain.WorkItem{
			ID:        id,
			Title:     it.Title,
			Level:     level,
			Status:    it.Status,
			Priority:  it.Priority,
			ParentID:  it.ParentID,
			Timeframe: convertTimeframe(it.Timeframe),
		})
	}
	return out
}

func convertTimeframe(tf *TimeframeImport) *domain.Timeframe {
	if tf == nil {
		return nil
	}
	out := &domain.Timeframe{
		Start:     tf.Start,
		TargetEnd: tf.TargetEnd,
		ActualEnd: tf.ActualEnd,
		Deadline:  tf.Deadline,
	}
	if rec := tf.Recurrence; rec != nil {
		out.Recurrence = &domain.Recurrence{
			Type:       domain.RecurrenceType(rec.Type),
			DaysOfWeek: append([]int(nil), rec.DaysOfWeek...),
			DayOfMonth: rec.DayOfMonth,
		}
	}
	return out
}

// Load reads, validates, and converts an items file in one step. The
// first validation error is returned when the file is invalid.
func Load(path string) (domain.ItemSet, error) {
	f, err := ReadItemsFile(path)
	if err != nil {
		return domain.ItemSet{}, err
	}
	if errs := ValidateItemsFile(f); len(errs) > 0 {
		return domain.ItemSet{}, errs[0]
	}
	return Convert(f), nil
}
