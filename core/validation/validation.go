// Package validation compares the simulation engine against published EPA
// reference figures for fixed vehicle configurations. It is fixture driven:
// the configurations, cycles and reference numbers are literals, and the
// output is the signed percentage error per metric.
package validation

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/voltlab/evrange/core/cycle"
	"github.com/voltlab/evrange/core/energy"
	"github.com/voltlab/evrange/core/logger"
	"github.com/voltlab/evrange/core/model"
)

// Metric is one reference-vs-model comparison.
type Metric struct {
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	Reference    float64 `json:"reference"`
	Model        float64 `json:"model"`
	ErrorPercent float64 `json:"error_percent"`
}

// Report aggregates the comparison for one reference vehicle.
type Report struct {
	Vehicle string `json:"vehicle"`
	// TolerancePercent is the accuracy band documented for this fixture.
	TolerancePercent    float64  `json:"tolerance_percent"`
	Metrics             []Metric `json:"metrics"`
	MeanAbsErrorPercent float64  `json:"mean_abs_error_percent"`
}

// WithinTolerance reports whether every metric error is inside the band.
func (r Report) WithinTolerance() bool {
	for _, m := range r.Metrics {
		if math.Abs(m.ErrorPercent) > r.TolerancePercent {
			return false
		}
	}
	return true
}

// Nissan Leaf 2018 EPA reference figures.
const (
	leafEPACityKWhPer100Km     = 18.9
	leafEPAHighwayKWhPer100Km  = 20.8
	leafEPACombinedKWhPer100Km = 19.7
	leafEPARangeKm             = 203
)

// NissanLeaf2018 runs the embedded 2018 compact-EV fixture through the
// energy calculator on the urban and constant-100-km/h highway stand-in
// cycles and reports the error against the EPA figures.
func NissanLeaf2018(log logger.Logger) (Report, error) {
	vehicle := model.DefaultVehicle()
	vehicle.MassKg = 1580
	vehicle.FrontalAreaM2 = 2.27
	vehicle.DragCoeff = 0.28
	vehicle.RollingCoeff = 0.009

	batt := model.DefaultBattery()
	batt.NominalCapacityKWh = 40
	batt.UsableCapacityKWh = 38
	batt.NominalVoltage = 350

	powertrain := model.DefaultPowertrain()
	powertrain.MotorPowerPeakKW = 110
	powertrain.MotorEfficiency = 0.92
	powertrain.RegenEfficiency = 0.67

	aux := model.DefaultAuxiliaryLoads()
	aux.HVACPowerKW = 0
	aux.ElectronicsKW = 0.3

	calc, err := energy.New(vehicle, powertrain, batt, aux, log)
	if err != nil {
		return Report{}, err
	}

	city, err := cycle.UrbanStopAndGo(1400, 1)
	if err != nil {
		return Report{}, err
	}
	cityRes, err := calc.Consume(city, 0, 25)
	if err != nil {
		return Report{}, err
	}

	highway, err := cycle.ConstantSpeed(100, 1800, 1)
	if err != nil {
		return Report{}, err
	}
	hwyRes, err := calc.Consume(highway, 0, 25)
	if err != nil {
		return Report{}, err
	}

	modelCity := cityRes.EnergyPerKm * 100
	modelHighway := hwyRes.EnergyPerKm * 100
	modelCombined := (modelCity + modelHighway) / 2
	modelRange := 0.0
	if cityRes.EnergyPerKm > 0 {
		modelRange = batt.UsableCapacityKWh / cityRes.EnergyPerKm
	}

	metrics := []Metric{
		newMetric("city", "kWh/100km", leafEPACityKWhPer100Km, modelCity),
		newMetric("highway", "kWh/100km", leafEPAHighwayKWhPer100Km, modelHighway),
		newMetric("combined", "kWh/100km", leafEPACombinedKWhPer100Km, modelCombined),
		newMetric("range", "km", leafEPARangeKm, modelRange),
	}

	absErrs := make([]float64, len(metrics))
	for i, m := range metrics {
		absErrs[i] = math.Abs(m.ErrorPercent)
	}

	return Report{
		Vehicle:             "Nissan Leaf 2018",
		TolerancePercent:    5,
		Metrics:             metrics,
		MeanAbsErrorPercent: stat.Mean(absErrs, nil),
	}, nil
}

func newMetric(name, unit string, ref, got float64) Metric {
	return Metric{
		Name:         name,
		Unit:         unit,
		Reference:    ref,
		Model:        got,
		ErrorPercent: (got - ref) / ref * 100,
	}
}
