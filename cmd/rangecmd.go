package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voltlab/evrange/core/energy"
)

var (
	rangeBaseKm  float64
	rangeTempC   float64
	rangeTerrain float64
	rangeTraffic float64
)

var rangeCmd = &cobra.Command{
	Use:   "range",
	Short: "Adjust a rated range for temperature, terrain and traffic",
	Long: `range applies the empirical adjustment model to an EPA/WLTP rated range
without running a full drive-cycle simulation.`,
	RunE: runRange,
}

func init() {
	rangeCmd.Flags().Float64Var(&rangeBaseKm, "base-range", 400, "rated range in km")
	rangeCmd.Flags().Float64Var(&rangeTempC, "temperature", 20, "ambient temperature in C")
	rangeCmd.Flags().Float64Var(&rangeTerrain, "terrain", 1.0, "terrain factor (1.0 flat, 0.9 hilly)")
	rangeCmd.Flags().Float64Var(&rangeTraffic, "traffic", 1.0, "traffic factor (1.0 smooth, 0.85 heavy)")
	rootCmd.AddCommand(rangeCmd)
}

func runRange(cmd *cobra.Command, args []string) error {
	est, err := energy.PredictRange(rangeBaseKm, rangeTempC, rangeTerrain, rangeTraffic)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Base range:      %7.0f km\n", est.BaseRangeKm)
	fmt.Fprintf(out, "Adjusted range:  %7.0f km (%.1f %% loss)\n", est.AdjustedRangeKm, est.RangeLossPercent)
	fmt.Fprintf(out, "Factors:         temp %.2f  hvac %.2f  terrain %.2f  traffic %.2f\n",
		est.TempFactor, est.HVACFactor, est.TerrainFactor, est.TrafficFactor)
	return nil
}
