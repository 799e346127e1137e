package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/chronica/internal/domain"
)

// pickViewMode prompts for a view mode with a select form. Used only
// when no mode argument was given and stdin is an interactive terminal.
func pickViewMode(initial domain.ViewMode) (domain.ViewMode, error) {
	mode := string(initial)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("View").
				Options(
					huh.NewOption("Day", "day"),
					huh.NewOption("Week", "week"),
					huh.NewOption("Month", "month"),
					huh.NewOption("Year", "year"),
				).
				Value(&mode),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("selecting view mode: %w", err)
	}
	return domain.ViewMode(mode), nil
}
