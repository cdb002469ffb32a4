package cli

import (
	"github.com/linyuchen/gantry/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Projects    service.ProjectService
	Procurement service.ProcurementService
	Operations  service.OperationService
	Quality     service.QualityService
}

// NewRootCmd creates the top-level "gantry" command and registers all
// subcommands against the provided App. Running the bare command on a
// terminal starts the interactive dashboard.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "gantry",
		Short: "Construction project tracking dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	root.PersistentFlags().String("as", "admin", "Acting username (see the built-in user directory)")
	root.PersistentFlags().Bool("yes", false, "Skip confirmation prompts")

	root.AddCommand(
		newProjectCmd(app),
		newProcurementCmd(app),
		newOperationCmd(app),
		newQualityCmd(app),
	)

	return root
}
