package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voltlab/evrange/config"
	"github.com/voltlab/evrange/pkg/export"
)

var (
	cycleKind     string
	cycleDuration float64
	cycleStep     float64
	cycleSpeed    float64
	cycleOut      string
)

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Generate a synthetic drive cycle and write it as CSV",
	RunE:  runCycle,
}

func init() {
	cycleCmd.Flags().StringVar(&cycleKind, "kind", "wltp", "cycle kind: constant, wltp or urban")
	cycleCmd.Flags().Float64Var(&cycleDuration, "duration", 1800, "duration in seconds")
	cycleCmd.Flags().Float64Var(&cycleStep, "dt", 1, "sample interval in seconds")
	cycleCmd.Flags().Float64Var(&cycleSpeed, "speed", 100, "speed in km/h (constant cycle only)")
	cycleCmd.Flags().StringVarP(&cycleOut, "out", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(cycleCmd)
}

func runCycle(cmd *cobra.Command, args []string) error {
	cyc, err := buildCycle(config.SimulationConfig{
		Cycle:     cycleKind,
		DurationS: cycleDuration,
		TimeStepS: cycleStep,
		SpeedKmh:  cycleSpeed,
	})
	if err != nil {
		return fmt.Errorf("generate cycle: %w", err)
	}

	w := cmd.OutOrStdout()
	if cycleOut != "" {
		f, err := os.Create(cycleOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := export.WriteCycleCSV(w, cyc); err != nil {
		return fmt.Errorf("write cycle: %w", err)
	}
	return nil
}
