package cli

import (
	"github.com/spf13/cobra"
	"github.com/st325a1114/bokunokada/internal/service"
)

const appVersion = "0.1.0"

// App holds the service handles and environment probes used by CLI commands.
type App struct {
	Ledger service.LedgerService

	// IsInteractive reports whether stdin is attached to a terminal.
	// The bare root command only opens the board when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "bokunokada" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "bokunokada",
		Short: "24-hour schedule ledger",
		Long: `Bokunokada keeps a ledger of named time blocks over one 24-hour day
and reconciles them into a per-activity breakdown, with whatever is
left over reported as unplanned time. The ledger lives only for the
current session; nothing is written to disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runBoard(app)
			}
			return cmd.Help()
		},
	}
	root.Version = appVersion
	root.SetVersionTemplate("bokunokada v{{.Version}}\n")

	root.AddCommand(
		newBoardCmd(app),
		newSummaryCmd(app),
	)

	return root
}
