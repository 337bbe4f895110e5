package cli

import (
	"context"
	"fmt"

	"github.com/rushi2212/agrimitra/internal/cli/formatter"
	"github.com/rushi2212/agrimitra/internal/contract"
	"github.com/rushi2212/agrimitra/internal/domain"
	"github.com/spf13/cobra"
)

func newDayCmd(app *App) *cobra.Command {
	var crop string
	var location string
	var sowing string
	var response string
	var days int

	cmd := &cobra.Command{
		Use:   "day [session-id]",
		Short: "Run one day of the advisory cycle",
		Long: "Advances the session's day cycle and prints today's actions and advisory.\n" +
			"Without a session ID a new session is created; pass --crop and --location\n" +
			"to identify the farm on first use.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID := ""
			if len(args) > 0 {
				sessionID = args[0]
			}

			req := contract.NewDayCycleRequest(sessionID)
			req.Crop = crop
			req.Location = location
			req.SowingDate = sowing
			req.Response = domain.FarmerResponse(response)
			if cmd.Flags().Changed("days") {
				req.Days = days
			}

			resp, err := app.DayCycle.RunDay(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatDayCycle(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&crop, "crop", "", "Crop name (required for a new session)")
	cmd.Flags().StringVar(&location, "location", "", "Farm location, e.g. Kolhapur")
	cmd.Flags().StringVar(&sowing, "sowing", "", "Sowing date, YYYY-MM-DD")
	cmd.Flags().StringVar(&response, "response", "", "Yesterday's outcome: completed or did_not_spray")
	cmd.Flags().IntVar(&days, "days", 1, "Advance by this many days")

	return cmd
}
