package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFile() *ItemsFile {
	return &ItemsFile{
		Tasks: []ItemImport{
			{ID: "t1", Title: "Write report", Timeframe: &TimeframeImport{
				Start:     "2024-06-10T09:00",
				TargetEnd: "2024-06-10T10:00",
			}},
		},
		Subtasks: []ItemImport{
			{ID: "s1", Title: "Outline", ParentID: "t1", Timeframe: &TimeframeImport{
				Start:     "09:30",
				TargetEnd: "09:45",
			}},
		},
	}
}

func TestValidateItemsFile_Valid(t *testing.T) {
	assert.Empty(t, ValidateItemsFile(validFile()))
}

func TestValidateItemsFile_TitleRequired(t *testing.T) {
	f := validFile()
	f.Tasks[0].Title = ""

	errs := ValidateItemsFile(f)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "tasks[0]: title is required")
}

func TestValidateItemsFile_StartRequired(t *testing.T) {
	f := validFile()
	f.Tasks[0].Timeframe.Start = ""

	errs := ValidateItemsFile(f)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "start is required")
}

func TestValidateItemsFile_DeadlineOnlyOnUpperLevels(t *testing.T) {
	f := validFile()
	f.Tasks[0].Timeframe.Deadline = "2024-06-30T17:00"

	errs := ValidateItemsFile(f)
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "deadline is only valid on programs and projects")

	// The same field on a program is fine.
	f = &ItemsFile{Programs: []ItemImport{
		{Title: "Degree", Timeframe: &TimeframeImport{Start: "08:00", Deadline: "2024-06-30T17:00"}},
	}}
	assert.Empty(t, ValidateItemsFile(f))
}

func TestValidateItemsFile_RecurrenceBounds(t *testing.T) {
	bad := 32
	f := &ItemsFile{Tasks: []ItemImport{
		{Title: "Standup", Timeframe: &TimeframeImport{
			Start: "09:00",
			Recurrence: &RecurrenceImport{
				Type:       "fortnightly",
				DaysOfWeek: []int{1, 7},
				DayOfMonth: &bad,
			},
		}},
	}}

	errs := ValidateItemsFile(f)
	require.Len(t, errs, 3)
	assert.ErrorContains(t, errs[0], `invalid type "fortnightly"`)
	assert.ErrorContains(t, errs[1], "day_of_week 7 out of range")
	assert.ErrorContains(t, errs[2], "day_of_month 32 out of range")
}

func TestValidateItemsFile_UnknownParentAllowed(t *testing.T) {
	f := validFile()
	f.Subtasks[0].ParentID = "nonexistent"

	assert.Empty(t, ValidateItemsFile(f), "standalone admission handles unknown parents")
}

func TestValidateItemsFile_CollectsAllErrors(t *testing.T) {
	f := validFile()
	f.Tasks[0].Title = ""
	f.Subtasks[0].Timeframe.Start = ""

	errs := ValidateItemsFile(f)
	assert.Len(t, errs, 2)
}
