// Package config loads simulation configuration from YAML or JSON files
// with optional EV_-prefixed environment overrides, applies defaults and
// validates every section before the engine sees it.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/voltlab/evrange/core/model"
)

// Config is the root configuration document.
type Config struct {
	Vehicle    model.VehicleParams    `json:"vehicle"`
	Battery    model.BatteryParams    `json:"battery"`
	Powertrain model.PowertrainParams `json:"powertrain"`
	Aux        model.AuxiliaryLoads   `json:"aux"`
	Simulation SimulationConfig       `json:"simulation"`
	Output     OutputConfig           `json:"output"`
}

// SimulationConfig selects the drive cycle and ambient conditions.
type SimulationConfig struct {
	// Cycle is one of "constant", "wltp" or "urban".
	Cycle string `json:"cycle"`
	// DurationS is the cycle duration in seconds.
	DurationS float64 `json:"duration_s"`
	// TimeStepS is the sample interval in seconds.
	TimeStepS float64 `json:"time_step_s"`
	// SpeedKmh applies to the constant cycle only.
	SpeedKmh float64 `json:"speed_kmh"`
	// Grade is the constant road grade (0.1 = 10 %).
	Grade float64 `json:"grade"`
	// AmbientTempC is the ambient temperature in Celsius.
	AmbientTempC float64 `json:"ambient_temp_c"`
}

// SetDefaults applies sane defaults.
func (c *SimulationConfig) SetDefaults() {
	if c.Cycle == "" {
		c.Cycle = "wltp"
	}
	if c.DurationS == 0 {
		c.DurationS = 1800
	}
	if c.TimeStepS == 0 {
		c.TimeStepS = 1
	}
	if c.SpeedKmh == 0 {
		c.SpeedKmh = 100
	}
	if c.AmbientTempC == 0 {
		c.AmbientTempC = 25
	}
}

// Validate checks the cycle selection and window.
func (c SimulationConfig) Validate() error {
	switch c.Cycle {
	case "constant", "wltp", "urban":
	default:
		return fmt.Errorf("config: unknown cycle %q", c.Cycle)
	}
	if c.DurationS <= 0 {
		return fmt.Errorf("config: duration_s must be positive, got %g", c.DurationS)
	}
	if c.TimeStepS <= 0 {
		return fmt.Errorf("config: time_step_s must be positive, got %g", c.TimeStepS)
	}
	if c.SpeedKmh < 0 {
		return fmt.Errorf("config: speed_kmh must be non-negative, got %g", c.SpeedKmh)
	}
	return nil
}

// OutputConfig controls result export.
type OutputConfig struct {
	// Format is "csv" or "json".
	Format string `json:"format"`
	// Path is the export destination; empty disables export.
	Path string `json:"path"`
}

// SetDefaults applies sane defaults.
func (c *OutputConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = "csv"
	}
}

// Validate checks the export format.
func (c OutputConfig) Validate() error {
	if c.Format != "csv" && c.Format != "json" {
		return fmt.Errorf("config: unknown output format %q", c.Format)
	}
	return nil
}

// Default returns a fully defaulted configuration without reading a file.
func Default() *Config {
	cfg := &Config{
		Vehicle:    model.DefaultVehicle(),
		Battery:    model.DefaultBattery(),
		Powertrain: model.DefaultPowertrain(),
		Aux:        model.DefaultAuxiliaryLoads(),
	}
	cfg.Simulation.SetDefaults()
	cfg.Output.SetDefaults()
	return cfg
}

// Load reads the file at path, applies EV_ environment overrides and
// defaults, and validates every section.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("config: unsupported format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides, e.g. EV_BATTERY__SOC_INITIAL=0.8.
	if err := k.Load(env.Provider("EV_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "ev_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Vehicle.SetDefaults()
	cfg.Battery.SetDefaults()
	cfg.Powertrain.SetDefaults()
	cfg.Aux.SetDefaults()
	cfg.Simulation.SetDefaults()
	cfg.Output.SetDefaults()
	if err := cfg.Vehicle.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Battery.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Powertrain.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Aux.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Simulation.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Output.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
