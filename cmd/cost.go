package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tejusbharadwaj/bemcost/internal/cost"
	"github.com/tejusbharadwaj/bemcost/internal/pipeline"
	"github.com/tejusbharadwaj/bemcost/internal/request"
)

var (
	costInput     inputFlags
	offPeakRate   float64
	peakRate      float64
	costBreakdown bool
)

var costCmd = &cobra.Command{
	Use:   "cost",
	Short: "Print the estimated electricity cost for a window",
	Long: `Simulates consumption for the address and prints the total electricity cost.

Hours 16:00-21:59 are billed at the peak rate, every other hour at the off-peak
rate. Rates default to the tariff section of the config file.`,
	Example: `  bemcost cost --address "929 Maxwell Ave. Boulder, CO 80304"
  bemcost cost --address "..." --heating-start 8 --heating-duration 3 --breakdown`,
	Args: cobra.NoArgs,
	RunE: runCost,
}

func init() {
	costInput.register(costCmd)
	costCmd.Flags().Float64Var(&offPeakRate, "off-peak-rate", 0, "override tariff.off_peak_rate ($/kWh)")
	costCmd.Flags().Float64Var(&peakRate, "peak-rate", 0, "override tariff.peak_rate ($/kWh)")
	costCmd.Flags().BoolVar(&costBreakdown, "breakdown", false, "print the hourly table to stderr")
	rootCmd.AddCommand(costCmd)
}

func runCost(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.logMetrics()

	in, err := costInput.input(cmd)
	if err != nil {
		return err
	}

	client, err := a.newClient()
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	rates := a.cfg.Tariff
	if cmd.Flags().Changed("off-peak-rate") {
		rates.OffPeakRate = offPeakRate
	}
	if cmd.Flags().Changed("peak-rate") {
		rates.PeakRate = peakRate
	}
	calc := cost.NewCalculator(decimal.NewFromFloat(rates.OffPeakRate), decimal.NewFromFloat(rates.PeakRate))

	result, err := pipeline.Run(cmd.Context(), client, in, calc)
	if err != nil {
		a.logger.WithError(err).WithField("address", in.Address).Error("Cost estimate failed")
		return err
	}

	a.logger.WithFields(logrus.Fields{
		"address": in.Address,
		"rows":    result.Table.Len(),
		"total":   result.Total.String(),
	}).Info("Cost estimate completed")

	if costBreakdown {
		printBreakdown(result)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Total.String())
	return nil
}

func printBreakdown(result *pipeline.Result) {
	w := tabwriter.NewWriter(os.Stderr, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "time\tkwh\tcost")
	for i, at := range result.Table.Index() {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			at.Format("2006-01-02 15:04"),
			formatValue(result.Table.Value(i, request.VarElectricity), 3),
			formatValue(result.Table.Value(i, cost.Column), 2),
		)
	}
}

func formatValue(v float64, places int32) string {
	if math.IsNaN(v) {
		return "-"
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}
