package domain

// ItemLevel discriminates the four work item variants. The hierarchy is
// strictly four levels deep; ParentID always references the level
// immediately above.
type ItemLevel int

const (
	LevelProgram ItemLevel = iota
	LevelProject
	LevelTask
	LevelSubtask
)

// String returns the canonical variant name for the level.
func (l ItemLevel) String() string {
	switch l {
	case LevelProgram:
		return "program"
	case LevelProject:
		return "project"
	case LevelTask:
		return "task"
	case LevelSubtask:
		return "subtask"
	default:
		return "unknown"
	}
}

type RecurrenceType string

const (
	RecurNone    RecurrenceType = "none"
	RecurDaily   RecurrenceType = "daily"
	RecurWeekly  RecurrenceType = "weekly"
	RecurMonthly RecurrenceType = "monthly"
	RecurYearly  RecurrenceType = "yearly"
)

// ValidRecurrenceTypes is the canonical set of accepted recurrence type strings.
var ValidRecurrenceTypes = map[string]bool{
	"none": true, "daily": true, "weekly": true, "monthly": true, "yearly": true,
}

// Recurrence describes how an item repeats. DaysOfWeek uses 0=Sunday.
// DayOfMonth, when set, pins monthly recurrence to a specific day.
type Recurrence struct {
	Type       RecurrenceType `json:"type"`
	DaysOfWeek []int          `json:"days_of_week,omitempty"`
	DayOfMonth *int           `json:"day_of_month,omitempty"`
}

// Clone returns a deep copy of the rule, nil for nil.
func (r *Recurrence) Clone() *Recurrence {
	if r == nil {
		return nil
	}
	out := &Recurrence{Type: r.Type}
	if len(r.DaysOfWeek) > 0 {
		out.DaysOfWeek = append([]int(nil), r.DaysOfWeek...)
	}
	if r.DayOfMonth != nil {
		v := *r.DayOfMonth
		out.DayOfMonth = &v
	}
	return out
}

// Timeframe holds the raw time fields of a work item. All fields are kept
// as the strings they arrived in; resolution into decimal hours and
// calendar dates happens at projection time. Deadline is only meaningful
// on Program and Project items.
type Timeframe struct {
	Start      string
	TargetEnd  string
	ActualEnd  string
	Deadline   string
	Recurrence *Recurrence
}

// WorkItem is the single shape shared by all four hierarchy variants.
// Status and Priority are opaque tags passed through to projection output.
type WorkItem struct {
	ID       string
	Title    string
	Level    ItemLevel
	Status   string
	Priority string
	ParentID string

	Timeframe *Timeframe
}

// endField identifies one of the alternative end-time fields on a Timeframe.
type endField int

const (
	endDeadline endField = iota
	endTargetEnd
	endActualEnd
)

// endPrecedence maps each level to the order its end-time alternatives are
// tried. Program and Project prefer the deadline; Task and Subtask have no
// deadline field and try targetEnd before actualEnd.
var endPrecedence = map[ItemLevel][]endField{
	LevelProgram: {endDeadline, endTargetEnd, endActualEnd},
	LevelProject: {endDeadline, endTargetEnd, endActualEnd},
	LevelTask:    {endTargetEnd, endActualEnd},
	LevelSubtask: {endTargetEnd, endActualEnd},
}

// EndCandidates returns the raw end-time strings of tf in the precedence
// order for the given level, skipping empty fields.
func (tf *Timeframe) EndCandidates(level ItemLevel) []string {
	if tf == nil {
		return nil
	}
	var out []string
	for _, f := range endPrecedence[level] {
		var v string
		switch f {
		case endDeadline:
			v = tf.Deadline
		case endTargetEnd:
			v = tf.TargetEnd
		case endActualEnd:
			v = tf.ActualEnd
		}
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ItemSet bundles the four collections for loaders and the CLI. The
// projector itself takes the collections separately.
type ItemSet struct {
	Programs []WorkItem
	Projects []WorkItem
	Tasks    []WorkItem
	Subtasks []WorkItem
}

// Merge appends every collection of other onto s.
func (s *ItemSet) Merge(other ItemSet) {
	s.Programs = append(s.Programs, other.Programs...)
	s.Projects = append(s.Projects, other.Projects...)
	s.Tasks = append(s.Tasks, other.Tasks...)
	s.Subtasks = append(s.Subtasks, other.Subtasks...)
}
