package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/chronica/internal/domain"
)

func TestConvert_LevelsAndFields(t *testing.T) {
	set := Convert(validFile())

	require.Len(t, set.Tasks, 1)
	require.Len(t, set.Subtasks, 1)
	assert.Nil(t, set.Programs)
	assert.Nil(t, set.Projects)

	task := set.Tasks[0]
	assert.Equal(t, "t1", task.ID)
	assert.Equal(t, domain.LevelTask, task.Level)
	assert.Equal(t, "2024-06-10T09:00", task.Timeframe.Start)
	assert.Equal(t, "2024-06-10T10:00", task.Timeframe.TargetEnd)

	sub := set.Subtasks[0]
	assert.Equal(t, domain.LevelSubtask, sub.Level)
	assert.Equal(t, "t1", sub.ParentID)
}

func TestConvert_AssignsUUIDWhenIDMissing(t *testing.T) {
	f := &ItemsFile{Tasks: []ItemImport{
		{Title: "No id", Timeframe: &TimeframeImport{Start: "09:00", TargetEnd: "10:00"}},
	}}

	set := Convert(f)

	require.Len(t, set.Tasks, 1)
	_, err := uuid.Parse(set.Tasks[0].ID)
	assert.NoError(t, err, "generated IDs are UUIDs")
}

func TestConvert_Recurrence(t *testing.T) {
	dom := 15
	f := &ItemsFile{Projects: []ItemImport{
		{ID: "pj1", Title: "Review", Timeframe: &TimeframeImport{
			Start: "09:00", TargetEnd: "10:00",
			Recurrence: &RecurrenceImport{Type: "monthly", DaysOfWeek: []int{1, 3}, DayOfMonth: &dom},
		}},
	}}

	set := Convert(f)

	require.Len(t, set.Projects, 1)
	rec := set.Projects[0].Timeframe.Recurrence
	require.NotNil(t, rec)
	assert.Equal(t, domain.RecurMonthly, rec.Type)
	assert.Equal(t, []int{1, 3}, rec.DaysOfWeek)
	require.NotNil(t, rec.DayOfMonth)
	assert.Equal(t, 15, *rec.DayOfMonth)
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	payload := `{
		"programs": [{"id": "pg1", "title": "Degree", "timeframe": {"start": "2024-06-01T08:00", "deadline": "2024-06-30T18:00"}}],
		"tasks": [{"id": "t1", "title": "Essay", "status": "in_progress", "timeframe": {"start": "14:30", "target_end": "16:00"}}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))

	set, err := Load(path)
	require.NoError(t, err)

	require.Len(t, set.Programs, 1)
	require.Len(t, set.Tasks, 1)
	assert.Equal(t, "in_progress", set.Tasks[0].Status)
	assert.Equal(t, "2024-06-30T18:00", set.Programs[0].Timeframe.Deadline)
}

func TestLoad_InvalidFileRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tasks": [{"title": ""}]}`), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "title is required")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "reading items file")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing items file")
}
