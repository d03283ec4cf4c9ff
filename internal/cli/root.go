package cli

import (
	"github.com/handyops/proserve/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Catalog service.CatalogService
	Jobs    service.JobService
	Clients service.ClientService
	Comms   service.CommunicationService
	Reports service.ReportService
}

// NewRootCmd creates the top-level "proserve" command and registers
// all subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "proserve",
		Short: "Operations dashboard for a handyman service business",
	}

	root.AddCommand(
		newServiceCmd(app),
		newJobCmd(app),
		newClientCmd(app),
		newEstimateCmd(app),
		newCalendarCmd(app),
		newDashboardCmd(app),
		newReportCmd(app),
		newTUICmd(app),
	)

	return root
}
