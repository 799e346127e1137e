// Package testutil provides shared work item fixtures for package tests.
package testutil

import "github.com/alexanderramin/chronica/internal/domain"

func item(id, parentID, title string, level domain.ItemLevel, start, targetEnd string) domain.WorkItem {
	return domain.WorkItem{
		ID:       id,
		Title:    title,
		Level:    level,
		ParentID: parentID,
		Timeframe: &domain.Timeframe{
			Start:     start,
			TargetEnd: targetEnd,
		},
	}
}

// Program builds a Program-level item with a start and target end.
func Program(id, title, start, targetEnd string) domain.WorkItem {
	return item(id, "", title, domain.LevelProgram, start, targetEnd)
}

// Project builds a Project-level item under the given program.
func Project(id, programID, title, start, targetEnd string) domain.WorkItem {
	return item(id, programID, title, domain.LevelProject, start, targetEnd)
}

// Task builds a top-level Task item.
func Task(id, title, start, targetEnd string) domain.WorkItem {
	return item(id, "", title, domain.LevelTask, start, targetEnd)
}

// Subtask builds a Subtask under the given task.
func Subtask(id, taskID, title, start, targetEnd string) domain.WorkItem {
	return item(id, taskID, title, domain.LevelSubtask, start, targetEnd)
}

// Recurring attaches a recurrence rule to an item and returns it.
func Recurring(wi domain.WorkItem, rec *domain.Recurrence) domain.WorkItem {
	if wi.Timeframe == nil {
		wi.Timeframe = &domain.Timeframe{}
	}
	wi.Timeframe.Recurrence = rec
	return wi
}
