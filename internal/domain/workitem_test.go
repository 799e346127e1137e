package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemLevelString(t *testing.T) {
	assert.Equal(t, "program", LevelProgram.String())
	assert.Equal(t, "project", LevelProject.String())
	assert.Equal(t, "task", LevelTask.String())
	assert.Equal(t, "subtask", LevelSubtask.String())
	assert.Equal(t, "unknown", ItemLevel(9).String())
}

func TestEndCandidates_ProgramPrefersDeadline(t *testing.T) {
	tf := &Timeframe{TargetEnd: "17:00", ActualEnd: "18:00", Deadline: "16:00"}

	assert.Equal(t, []string{"16:00", "17:00", "18:00"}, tf.EndCandidates(LevelProgram))
	assert.Equal(t, []string{"16:00", "17:00", "18:00"}, tf.EndCandidates(LevelProject))
}

func TestEndCandidates_TaskIgnoresDeadline(t *testing.T) {
	tf := &Timeframe{TargetEnd: "17:00", ActualEnd: "18:00", Deadline: "16:00"}

	assert.Equal(t, []string{"17:00", "18:00"}, tf.EndCandidates(LevelTask))
	assert.Equal(t, []string{"17:00", "18:00"}, tf.EndCandidates(LevelSubtask))
}

func TestEndCandidates_SkipsEmptyFields(t *testing.T) {
	tf := &Timeframe{ActualEnd: "18:00"}

	assert.Equal(t, []string{"18:00"}, tf.EndCandidates(LevelProgram))
	assert.Equal(t, []string{"18:00"}, tf.EndCandidates(LevelSubtask))
}

func TestEndCandidates_NilTimeframe(t *testing.T) {
	var tf *Timeframe
	assert.Nil(t, tf.EndCandidates(LevelTask))
}

func TestProjectedEntry_WrapAndDuration(t *testing.T) {
	e := ProjectedEntry{StartTime: 22, EndTime: 2}
	assert.True(t, e.Wraps())
	assert.InDelta(t, 4.0, e.Duration(), 1e-9)

	e = ProjectedEntry{StartTime: 9, EndTime: 10.5}
	assert.False(t, e.Wraps())
	assert.InDelta(t, 1.5, e.Duration(), 1e-9)
}

func TestItemSetMerge(t *testing.T) {
	a := ItemSet{Tasks: []WorkItem{{ID: "t1", Level: LevelTask}}}
	b := ItemSet{
		Tasks:    []WorkItem{{ID: "t2", Level: LevelTask}},
		Programs: []WorkItem{{ID: "p1", Level: LevelProgram}},
	}

	a.Merge(b)

	assert.Len(t, a.Tasks, 2)
	assert.Len(t, a.Programs, 1)
	assert.Equal(t, "t1", a.Tasks[0].ID)
	assert.Equal(t, "t2", a.Tasks[1].ID)
}

func TestRecurrenceClone(t *testing.T) {
	day := 15
	rec := &Recurrence{Type: RecurWeekly, DaysOfWeek: []int{1, 3}, DayOfMonth: &day}

	cp := rec.Clone()
	cp.DaysOfWeek[0] = 5
	*cp.DayOfMonth = 1

	assert.Equal(t, []int{1, 3}, rec.DaysOfWeek, "copies never alias the original")
	assert.Equal(t, 15, *rec.DayOfMonth)

	var nilRec *Recurrence
	assert.Nil(t, nilRec.Clone())
}
