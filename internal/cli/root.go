// Package cli wires the planner's command surface: entity commands
// for scripted use, CSV export, and the interactive TUI.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/teamflowhq/teamflow/internal/grid"
	"github.com/teamflowhq/teamflow/internal/store"
)

// App holds everything the commands operate on.
type App struct {
	Store *store.Store
	Geo   grid.Geometry
}

// NewRootCmd creates the top-level "teamflow" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "teamflow",
		Short: "Weekly team scheduling grid",
		Long:  "TeamFlow plans a team's week: tasks on a Mon-Fri time grid, a shared to-do list, and CSV export.",
	}

	root.AddCommand(
		newPlanCmd(app),
		newMemberCmd(app),
		newTaskCmd(app),
		newTodoCmd(app),
		newEngagementCmd(app),
		newExportCmd(app),
	)

	return root
}
