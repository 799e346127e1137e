package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ItemsFile is the top-level JSON structure for a work item collection
// file: one array per hierarchy level.
type ItemsFile struct {
	Programs []ItemImport `json:"programs,omitempty"`
	Projects []ItemImport `json:"projects,omitempty"`
	Tasks    []ItemImport `json:"tasks,omitempty"`
	Subtasks []ItemImport `json:"subtasks,omitempty"`
}

// ItemImport defines a single work item in the file. ID is optional; a
// UUID is assigned on conversion when absent.
type ItemImport struct {
	ID        string           `json:"id,omitempty"`
	Title     string           `json:"title"`
	Status    string           `json:"status,omitempty"`
	Priority  string           `json:"priority,omitempty"`
	ParentID  string           `json:"parent_id,omitempty"`
	Timeframe *TimeframeImport `json:"timeframe,omitempty"`
}

// TimeframeImport mirrors the flexible timeframe fields. All time values
// stay as strings; the projection core resolves them.
type TimeframeImport struct {
	Start      string            `json:"start"`
	TargetEnd  string            `json:"target_end,omitempty"`
	ActualEnd  string            `json:"actual_end,omitempty"`
	Deadline   string            `json:"deadline,omitempty"`
	Recurrence *RecurrenceImport `json:"recurrence,omitempty"`
}

// RecurrenceImport defines an item's recurrence rule.
type RecurrenceImport struct {
	Type       string `json:"type"`
	DaysOfWeek []int  `json:"days_of_week,omitempty"`
	DayOfMonth *int   `json:"day_of_month,omitempty"`
}

// ReadItemsFile loads and decodes an items file from disk.
func ReadItemsFile(path string) (*ItemsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading items file: %w", err)
	}
	var f ItemsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing items file %s: %w", path, err)
	}
	return &f, nil
}
