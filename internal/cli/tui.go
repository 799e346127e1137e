package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/chronica/internal/cli/formatter"
	"github.com/alexanderramin/chronica/internal/domain"
	"github.com/alexanderramin/chronica/internal/projection"
	"github.com/alexanderramin/chronica/internal/timeparse"
)

type tuiKeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Today key.Binding
	Day   key.Binding
	Week  key.Binding
	Month key.Binding
	Year  key.Binding
	Quit  key.Binding
}

func defaultTuiKeys() tuiKeyMap {
	return tuiKeyMap{
		Prev:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Today: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Day:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "day")),
		Week:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "week")),
		Month: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "month")),
		Year:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "year")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// tuiModel is the bubbletea model for the interactive timetable viewer.
// The item set is loaded once at startup; every keypress only moves the
// anchor date or switches the view mode and re-projects.
type tuiModel struct {
	set      domain.ItemSet
	anchor   timeparse.Date
	today    timeparse.Date
	mode     domain.ViewMode
	keys     tuiKeyMap
	quitting bool
}

func newTuiModel(set domain.ItemSet, anchor, today timeparse.Date, mode domain.ViewMode) tuiModel {
	return tuiModel{set: set, anchor: anchor, today: today, mode: mode, keys: defaultTuiKeys()}
}

func (m tuiModel) Init() tea.Cmd {
	return nil
}

// step returns the anchor moved by one view-mode unit in dir (±1).
func (m tuiModel) step(dir int) timeparse.Date {
	t := m.anchor.Time()
	switch m.mode {
	case domain.ViewWeek:
		return m.anchor.AddDays(7 * dir)
	case domain.ViewMonth:
		return timeparse.DateOf(t.AddDate(0, dir, 0))
	case domain.ViewYear:
		return timeparse.DateOf(t.AddDate(dir, 0, 0))
	default:
		return m.anchor.AddDays(dir)
	}
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Prev):
		m.anchor = m.step(-1)
	case key.Matches(keyMsg, m.keys.Next):
		m.anchor = m.step(1)
	case key.Matches(keyMsg, m.keys.Today):
		m.anchor = m.today
	case key.Matches(keyMsg, m.keys.Day):
		m.mode = domain.ViewDay
	case key.Matches(keyMsg, m.keys.Week):
		m.mode = domain.ViewWeek
	case key.Matches(keyMsg, m.keys.Month):
		m.mode = domain.ViewMonth
	case key.Matches(keyMsg, m.keys.Year):
		m.mode = domain.ViewYear
	}
	return m, nil
}

func (m tuiModel) View() string {
	if m.quitting {
		return ""
	}

	entries := projection.Project(m.set.Programs, m.set.Projects, m.set.Tasks, m.set.Subtasks, m.anchor, m.mode)

	body := formatter.RenderTimetable(entries, m.anchor, m.mode)
	footer := formatter.Dim("←/→ move · d/w/m/y view · t today · q quit")
	return body + "\n" + footer + "\n"
}

func newTuiCmd(app *App) *cobra.Command {
	var (
		dateStr   string
		itemsPath string
		icsPaths  []string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse timetables interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			today := timeparse.Today(app.Now())
			anchor := today
			if dateStr != "" {
				d, ok := timeparse.ParseDate(dateStr)
				if !ok {
					return fmt.Errorf("invalid --date %q (expected YYYY-MM-DD)", dateStr)
				}
				anchor = d
			}

			set, err := app.loadSet(itemsPath, icsPaths)
			if err != nil {
				return err
			}

			model := newTuiModel(set, anchor, today, domain.ViewMode(app.Config.DefaultView))
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "anchor date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&itemsPath, "items", "", "JSON items file (default from config)")
	cmd.Flags().StringSliceVar(&icsPaths, "ics", nil, "ICS files merged in as tasks")

	return cmd
}
