// Package export writes simulation results, range sweeps and drive cycles
// as CSV or JSON for downstream plotting and analysis. The core engine has
// no file interface of its own; this package is its export surface.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/voltlab/evrange/core/cycle"
	"github.com/voltlab/evrange/core/model"
)

// Meta identifies one simulation run in exported documents.
type Meta struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
}

type resultDocument struct {
	Meta   Meta                    `json:"meta"`
	Result *model.SimulationResult `json:"result"`
}

// WriteResultJSON writes the full result with run metadata as one JSON
// document.
func WriteResultJSON(w io.Writer, meta Meta, res *model.SimulationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(resultDocument{Meta: meta, Result: res})
}

// WriteResultCSV writes the per-sample time series, one row per sample.
func WriteResultCSV(w io.Writer, res *model.SimulationResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time_s", "velocity_ms", "soc", "power_wheels_kw", "power_battery_kw"}); err != nil {
		return err
	}
	for i := range res.Time {
		rec := []string{
			formatFloat(res.Time[i]),
			formatFloat(res.VelocityMS[i]),
			formatFloat(res.SOC[i]),
			formatFloat(res.PowerWheelsKW[i]),
			formatFloat(res.PowerBatteryKW[i]),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSweepJSON writes a temperature sweep of range estimates.
func WriteSweepJSON(w io.Writer, estimates []model.RangeEstimate) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(estimates)
}

// WriteSweepCSV writes a temperature sweep, one row per estimate.
func WriteSweepCSV(w io.Writer, estimates []model.RangeEstimate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"temperature_c", "adjusted_range_km", "f_temp", "f_hvac", "f_terrain", "f_traffic", "range_loss_percent"}); err != nil {
		return err
	}
	for _, e := range estimates {
		rec := []string{
			formatFloat(e.TemperatureC),
			formatFloat(e.AdjustedRangeKm),
			formatFloat(e.TempFactor),
			formatFloat(e.HVACFactor),
			formatFloat(e.TerrainFactor),
			formatFloat(e.TrafficFactor),
			formatFloat(e.RangeLossPercent),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCycleCSV writes a generated drive cycle, one row per sample.
func WriteCycleCSV(w io.Writer, c cycle.Cycle) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time_s", "velocity_ms"}); err != nil {
		return err
	}
	for i := range c.Time {
		if err := cw.Write([]string{formatFloat(c.Time[i]), formatFloat(c.Velocity[i])}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
