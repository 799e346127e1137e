package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/chronica/internal/config"
	"github.com/alexanderramin/chronica/internal/domain"
)

// App holds the configuration and injected collaborators used by CLI
// commands. Now and IsInteractive are injected so commands stay
// deterministic under test.
type App struct {
	Config *config.Config

	Now           func() time.Time
	IsInteractive func() bool

	LoadItems func(path string) (domain.ItemSet, error)
	LoadICS   func(path string) ([]domain.WorkItem, error)
}

// NewRootCmd creates the top-level "chronica" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "chronica",
		Short: "Timetable projections for hierarchical work items",
	}

	root.AddCommand(
		newViewCmd(app),
		newTuiCmd(app),
	)

	return root
}

// loadSet assembles the item collections from the JSON items file and
// any ICS feeds, with command line flags overriding the config.
func (app *App) loadSet(itemsPath string, icsPaths []string) (domain.ItemSet, error) {
	if itemsPath == "" {
		itemsPath = app.Config.ItemsFile
	}
	if len(icsPaths) == 0 {
		icsPaths = app.Config.ICSFiles
	}

	var set domain.ItemSet
	if itemsPath != "" {
		loaded, err := app.LoadItems(itemsPath)
		if err != nil {
			return domain.ItemSet{}, err
		}
		set = loaded
	}
	for _, p := range icsPaths {
		tasks, err := app.LoadICS(p)
		if err != nil {
			return domain.ItemSet{}, err
		}
		set.Merge(domain.ItemSet{Tasks: tasks})
	}
	return set, nil
}
