package cli

import (
	"context"
	"fmt"

	"github.com/rushi2212/agrimitra/internal/cli/formatter"
	"github.com/rushi2212/agrimitra/internal/contract"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var crop string
	var location string
	var sowing string

	cmd := &cobra.Command{
		Use:   "plan [session-id]",
		Short: "Build a fresh crop calendar",
		Long: "Discards any existing calendar for the session, rebuilds it from the\n" +
			"crop knowledge base and resets the day pointer to sowing.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionID := ""
			if len(args) > 0 {
				sessionID = args[0]
			}

			req := contract.PlanRequest{
				SessionID:  sessionID,
				Crop:       crop,
				Location:   location,
				SowingDate: sowing,
			}

			resp, err := app.Plans.Plan(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatPlan(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&crop, "crop", "", "Crop name (required for a new session)")
	cmd.Flags().StringVar(&location, "location", "", "Farm location, e.g. Kolhapur")
	cmd.Flags().StringVar(&sowing, "sowing", "", "Sowing date, YYYY-MM-DD")

	return cmd
}
