package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voltlab/evrange/core/validation"
	"github.com/voltlab/evrange/infra/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Compare the model against published EPA reference figures",
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	report, err := validation.NissanLeaf2018(logger.New("validate"))
	if err != nil {
		return fmt.Errorf("validation: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Vehicle: %s\n\n", report.Vehicle)
	fmt.Fprintf(out, "%-22s %12s %12s %10s\n", "Metric", "Reference", "Model", "Error")
	for _, m := range report.Metrics {
		fmt.Fprintf(out, "%-22s %12.1f %12.1f %+9.2f%%\n",
			fmt.Sprintf("%s [%s]", m.Name, m.Unit), m.Reference, m.Model, m.ErrorPercent)
	}
	fmt.Fprintf(out, "\nMean absolute error: %.2f %% (documented band: +/-%.0f %%)\n",
		report.MeanAbsErrorPercent, report.TolerancePercent)
	if !report.WithinTolerance() {
		fmt.Fprintln(out, "One or more metrics fall outside the documented band.")
	}
	return nil
}
