// Package cmd wires the evrange CLI: drive-cycle simulation, range
// what-ifs, temperature sweeps, cycle generation and model validation.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/voltlab/evrange/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "evrange",
	Short: "EV energy consumption and range estimation",
	Long: `evrange simulates electric-vehicle energy consumption, battery state of
charge and driving range over synthetic drive cycles from a physical
vehicle/battery/powertrain model.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configured file. When the default path does not exist
// and the user did not ask for a specific file, the built-in defaults apply.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
