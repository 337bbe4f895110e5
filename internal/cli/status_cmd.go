package cli

import (
	"context"
	"fmt"

	"github.com/rushi2212/agrimitra/internal/cli/formatter"
	"github.com/rushi2212/agrimitra/internal/contract"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "status [session-id]",
		Short: "Show session status overview",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID := ""
			if len(args) > 0 {
				sessionID = args[0]
			}

			req := contract.NewStatusRequest(sessionID)
			if noHistory {
				req.IncludeHistory = false
			}

			resp, err := app.Status.GetStatus(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatStatus(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Omit the calendar and risk event log")

	return cmd
}
