package cli

import (
	"github.com/rushi2212/agrimitra/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	DayCycle service.DayCycleService
	Plans    service.PlanService
	Status   service.StatusService
	Outlook  service.OutlookService
}

// NewRootCmd creates the top-level "agrimitra" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "agrimitra",
		Short: "Farming advisory day-cycle planner",
	}

	root.AddCommand(
		newDayCmd(app),
		newPlanCmd(app),
		newStatusCmd(app),
		newOutlookCmd(app),
		newMarketCmd(app),
		newPestCmd(app),
	)

	return root
}
