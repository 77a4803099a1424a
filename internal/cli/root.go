package cli

import (
	"github.com/mhutchins/crewcal/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects  service.ProjectService
	Templates service.TemplateService
	Holidays  service.HolidayService
	Schedules service.ScheduleService
	Sync      service.SyncService
	Delay     service.DelayService
}

// NewRootCmd creates the top-level "crewcal" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "crewcal",
		Short: "Construction phase scheduler and customer schedule publisher",
	}

	root.AddCommand(
		newProjectCmd(app),
		newTemplateCmd(app),
		newHolidayCmd(app),
		newScheduleCmd(app),
		newDelayCmd(app),
	)

	return root
}
