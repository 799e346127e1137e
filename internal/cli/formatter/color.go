package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/chronica/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
)

// LevelStyle returns the style used for a hierarchy level's title.
func LevelStyle(level domain.ItemLevel) lipgloss.Style {
	switch level {
	case domain.LevelProgram:
		return StylePurple
	case domain.LevelProject:
		return StyleBlue
	case domain.LevelTask:
		return StyleGreen
	case domain.LevelSubtask:
		return StyleYellow
	default:
		return StyleFg
	}
}

// Dim renders s in the dim style.
func Dim(s string) string {
	return StyleDim.Render(s)
}
