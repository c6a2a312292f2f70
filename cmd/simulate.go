package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/voltlab/evrange/config"
	"github.com/voltlab/evrange/core/cycle"
	"github.com/voltlab/evrange/core/energy"
	"github.com/voltlab/evrange/infra/logger"
	"github.com/voltlab/evrange/pkg/export"
)

var (
	simulateOut    string
	simulateFormat string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a drive-cycle simulation from the configuration",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&simulateOut, "out", "o", "", "export file (overrides output.path)")
	simulateCmd.Flags().StringVarP(&simulateFormat, "format", "f", "", "export format: csv or json (overrides output.format)")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logger.New("simulate")
	runID := uuid.NewString()

	calc, err := energy.New(cfg.Vehicle, cfg.Powertrain, cfg.Battery, cfg.Aux, log)
	if err != nil {
		return fmt.Errorf("calculator: %w", err)
	}
	cyc, err := buildCycle(cfg.Simulation)
	if err != nil {
		return fmt.Errorf("drive cycle: %w", err)
	}

	log.Infof("run %s: %s cycle, %d samples over %.0f s", runID, cfg.Simulation.Cycle, cyc.Samples(), cyc.Duration())
	res, err := calc.Consume(cyc, cfg.Simulation.Grade, cfg.Simulation.AmbientTempC)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Distance:        %8.2f km\n", res.DistanceKm)
	fmt.Fprintf(out, "Energy total:    %8.2f kWh (motor %.2f + aux %.2f)\n", res.TotalEnergyKWh, res.MotorEnergyKWh, res.AuxEnergyKWh)
	fmt.Fprintf(out, "Regen recovered: %8.2f kWh\n", res.RegenEnergyKWh)
	fmt.Fprintf(out, "Consumption:     %8.2f kWh/100km\n", res.EnergyPerKm*100)
	fmt.Fprintf(out, "SOC:             %8.1f %% -> %.1f %%\n", res.SOC[0]*100, res.FinalSOC*100)
	fmt.Fprintf(out, "Estimated range: %8.0f km\n", res.EstimatedRangeKm)

	path := cfg.Output.Path
	if simulateOut != "" {
		path = simulateOut
	}
	if path == "" {
		return nil
	}
	format := cfg.Output.Format
	if simulateFormat != "" {
		format = simulateFormat
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()
	switch format {
	case "json":
		err = export.WriteResultJSON(f, export.Meta{RunID: runID, GeneratedAt: time.Now().UTC()}, res)
	case "csv":
		err = export.WriteResultCSV(f, res)
	default:
		err = fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	log.Infof("run %s: result written to %s", runID, path)
	return nil
}

// buildCycle instantiates the generator selected by the configuration.
func buildCycle(sim config.SimulationConfig) (cycle.Cycle, error) {
	switch sim.Cycle {
	case "constant":
		return cycle.ConstantSpeed(sim.SpeedKmh, sim.DurationS, sim.TimeStepS)
	case "wltp":
		return cycle.SimplifiedWLTP(sim.DurationS, sim.TimeStepS)
	case "urban":
		return cycle.UrbanStopAndGo(sim.DurationS, sim.TimeStepS)
	default:
		return cycle.Cycle{}, fmt.Errorf("unknown cycle %q", sim.Cycle)
	}
}
