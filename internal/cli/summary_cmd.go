package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/st325a1114/bokunokada/internal/cli/formatter"
)

func newSummaryCmd(app *App) *cobra.Command {
	var blocks blockList
	var noDetail bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Reconcile recorded blocks against the 24-hour day",
		Long: `Summary records any blocks given via --block into the session ledger,
then prints the recorded activities and the reconciled breakdown. Time
the ledger does not cover shows up as unplanned.`,
		Example: `  bokunokada summary --block work=09:00-17:00 --block sleep=23:00-07:00
  bokunokada summary --no-detail --block gym=18:00-19:30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			for _, b := range blocks {
				if _, err := app.Ledger.AddEntry(ctx, b.Name, b.Start, b.End); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()

			if !noDetail {
				entries, err := app.Ledger.Entries(ctx)
				if err != nil {
					return err
				}
				if len(entries) > 0 {
					fmt.Fprintln(out, formatter.Header("Recorded activities"))
					fmt.Fprintln(out, formatter.FormatEntries(entries))
				}
			}

			summary, err := app.Ledger.Summarize(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.FormatDaySummary(summary))
			return nil
		},
	}

	cmd.Flags().Var(&blocks, "block", "Record NAME=HH:MM-HH:MM before summarizing (repeatable)")
	cmd.Flags().BoolVar(&noDetail, "no-detail", false, "Skip the per-entry table")

	return cmd
}
