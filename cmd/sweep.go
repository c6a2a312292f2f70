package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voltlab/evrange/core/energy"
	"github.com/voltlab/evrange/core/model"
	"github.com/voltlab/evrange/pkg/export"
)

var (
	sweepBaseKm  float64
	sweepFromC   float64
	sweepToC     float64
	sweepStepC   float64
	sweepTerrain float64
	sweepTraffic float64
	sweepOut     string
	sweepFormat  string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep the adjusted range across a temperature interval",
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().Float64Var(&sweepBaseKm, "base-range", 400, "rated range in km")
	sweepCmd.Flags().Float64Var(&sweepFromC, "from", -20, "start temperature in C")
	sweepCmd.Flags().Float64Var(&sweepToC, "to", 40, "end temperature in C")
	sweepCmd.Flags().Float64Var(&sweepStepC, "step", 5, "temperature step in C")
	sweepCmd.Flags().Float64Var(&sweepTerrain, "terrain", 1.0, "terrain factor")
	sweepCmd.Flags().Float64Var(&sweepTraffic, "traffic", 1.0, "traffic factor")
	sweepCmd.Flags().StringVarP(&sweepOut, "out", "o", "", "export file")
	sweepCmd.Flags().StringVarP(&sweepFormat, "format", "f", "csv", "export format: csv or json")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	if sweepStepC <= 0 {
		return fmt.Errorf("step must be positive, got %g", sweepStepC)
	}
	if sweepToC < sweepFromC {
		return fmt.Errorf("temperature interval is empty: %g to %g", sweepFromC, sweepToC)
	}

	var estimates []model.RangeEstimate
	for temp := sweepFromC; temp <= sweepToC+1e-9; temp += sweepStepC {
		est, err := energy.PredictRange(sweepBaseKm, temp, sweepTerrain, sweepTraffic)
		if err != nil {
			return err
		}
		estimates = append(estimates, est)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-10s %-12s %-10s %s\n", "Temp [C]", "Range [km]", "Loss [%]", "Factors (temp/hvac)")
	for _, e := range estimates {
		fmt.Fprintf(out, "%-10.0f %-12.0f %-10.1f %.2f / %.2f\n",
			e.TemperatureC, e.AdjustedRangeKm, e.RangeLossPercent, e.TempFactor, e.HVACFactor)
	}

	if sweepOut == "" {
		return nil
	}
	f, err := os.Create(sweepOut)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()
	switch sweepFormat {
	case "json":
		err = export.WriteSweepJSON(f, estimates)
	case "csv":
		err = export.WriteSweepCSV(f, estimates)
	default:
		err = fmt.Errorf("unknown export format %q", sweepFormat)
	}
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
