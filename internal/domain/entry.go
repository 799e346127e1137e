package domain

// ViewMode selects which hierarchy levels a projection includes.
type ViewMode string

const (
	ViewDay   ViewMode = "day"
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
	ViewYear  ViewMode = "year"
)

// ValidViewModes is the canonical set of accepted view mode strings.
var ValidViewModes = map[string]bool{
	"day": true, "week": true, "month": true, "year": true,
}

// FillStyle classifies an entry's rendered bar by duration.
type FillStyle string

const (
	FillDotted  FillStyle = "dotted"
	FillHatched FillStyle = "hatched"
	FillSolid   FillStyle = "solid"
)

// ProjectedEntry is one positioned calendar entry. Entries are rebuilt on
// every projection call and owned by the caller for a single render.
//
// StartTime and EndTime are decimal hours in [0,24); EndTime numerically
// below StartTime marks an interval wrapping past midnight. StartDate and
// EndDate are YYYY-MM-DD, or empty for time-only recurring entries, in
// which case the caller substitutes the anchor date.
type ProjectedEntry struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Type     string    `json:"type"`
	Level    ItemLevel `json:"level"`
	ParentID string    `json:"parent_id,omitempty"`

	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	StartDate string  `json:"start_date,omitempty"`
	EndDate   string  `json:"end_date,omitempty"`

	Status   string `json:"status,omitempty"`
	Priority string `json:"priority,omitempty"`

	// Recurrence is the source item's rule, carried so the rendering
	// overlay can place the entry on every matching day of a window.
	Recurrence *Recurrence `json:"recurrence,omitempty"`
}

// Wraps reports whether the entry's time-of-day interval crosses midnight.
func (e ProjectedEntry) Wraps() bool {
	return e.EndTime < e.StartTime
}

// Duration returns the entry's length in hours, accounting for wrap.
func (e ProjectedEntry) Duration() float64 {
	d := e.EndTime - e.StartTime
	if d < 0 {
		d += 24
	}
	return d
}
