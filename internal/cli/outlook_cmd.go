package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rushi2212/agrimitra/internal/cli/formatter"
	"github.com/rushi2212/agrimitra/internal/contract"
	"github.com/spf13/cobra"
)

// outlookFlags are shared by the outlook, market and pest commands.
type outlookFlags struct {
	state    string
	month    int
	tempC    float64
	humidity float64
	rainfall float64
}

func (f *outlookFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.state, "state", "", "Indian state for mandi prices (default Maharashtra)")
	cmd.Flags().IntVar(&f.month, "month", 0, "Harvest month override, 1-12")
	cmd.Flags().Float64Var(&f.tempC, "temp", 27, "Today's temperature in Celsius")
	cmd.Flags().Float64Var(&f.humidity, "humidity", 75, "Today's relative humidity percent")
	cmd.Flags().Float64Var(&f.rainfall, "rain", 0, "Today's rainfall in millimeters")
}

func (f *outlookFlags) request(cmd *cobra.Command, sessionID string) contract.OutlookRequest {
	req := contract.NewOutlookRequest(sessionID)
	if f.state != "" {
		req.MarketState = f.state
	}
	if cmd.Flags().Changed("month") {
		req.HarvestMonth = time.Month(f.month)
	}
	if cmd.Flags().Changed("temp") {
		req.Conditions.TemperatureC = f.tempC
	}
	if cmd.Flags().Changed("humidity") {
		req.Conditions.HumidityPercent = f.humidity
	}
	if cmd.Flags().Changed("rain") {
		req.Conditions.RainfallMM = f.rainfall
	}
	return req
}

func newOutlookCmd(app *App) *cobra.Command {
	var flags outlookFlags

	cmd := &cobra.Command{
		Use:   "outlook <session-id>",
		Short: "Show harvest price forecast and pest early warning",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Outlook.GetOutlook(context.Background(), flags.request(cmd, args[0]))
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatOutlook(resp))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newMarketCmd(app *App) *cobra.Command {
	var flags outlookFlags

	cmd := &cobra.Command{
		Use:   "market <session-id>",
		Short: "Show the harvest price forecast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Outlook.GetOutlook(context.Background(), flags.request(cmd, args[0]))
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatMarket(resp))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newPestCmd(app *App) *cobra.Command {
	var flags outlookFlags

	cmd := &cobra.Command{
		Use:   "pest <session-id>",
		Short: "Show the pest and disease early warning",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Outlook.GetOutlook(context.Background(), flags.request(cmd, args[0]))
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPest(resp))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
