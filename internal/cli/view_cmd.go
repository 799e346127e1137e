package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/chronica/internal/cli/formatter"
	"github.com/alexanderramin/chronica/internal/domain"
	"github.com/alexanderramin/chronica/internal/projection"
	"github.com/alexanderramin/chronica/internal/timeparse"
)

func newViewCmd(app *App) *cobra.Command {
	var (
		dateStr   string
		itemsPath string
		icsPaths  []string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "view [day|week|month|year]",
		Short: "Project work items onto a timetable for one anchor date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := resolveMode(app, args)
			if err != nil {
				return err
			}

			anchor := timeparse.Today(app.Now())
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

			entries := projection.Project(set.Programs, set.Projects, set.Tasks, set.Subtasks, anchor, mode)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTimetable(entries, anchor, mode))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "anchor date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&itemsPath, "items", "", "JSON items file (default from config)")
	cmd.Flags().StringSliceVar(&icsPaths, "ics", nil, "ICS files merged in as tasks")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit projected entries as JSON")

	return cmd
}

// resolveMode picks the view mode: explicit argument first, then an
// interactive picker on a terminal, then the configured default.
func resolveMode(app *App, args []string) (domain.ViewMode, error) {
	if len(args) > 0 {
		if !domain.ValidViewModes[args[0]] {
			return "", fmt.Errorf("invalid view mode %q (expected day, week, month, or year)", args[0])
		}
		return domain.ViewMode(args[0]), nil
	}
	if app.IsInteractive != nil && app.IsInteractive() {
		return pickViewMode(domain.ViewMode(app.Config.DefaultView))
	}
	return domain.ViewMode(app.Config.DefaultView), nil
}
