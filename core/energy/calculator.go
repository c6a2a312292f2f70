// Package energy couples the vehicle dynamics and battery models over a
// drive cycle: it integrates power demand, recovers regenerative braking
// energy, steps the SOC trajectory and derives consumption and range
// aggregates. It also hosts the empirical range-adjustment model.
package energy

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"github.com/voltlab/evrange/core/battery"
	"github.com/voltlab/evrange/core/cycle"
	"github.com/voltlab/evrange/core/dynamics"
	"github.com/voltlab/evrange/core/logger"
	"github.com/voltlab/evrange/core/model"
)

const joulesPerKWh = 3.6e6

// Calculator runs drive-cycle simulations for one set of vehicle, powertrain,
// battery and auxiliary parameters. Parameters are validated once at
// construction and treated as read-only afterwards, so a Calculator is safe
// to use from concurrent goroutines.
type Calculator struct {
	vehicle    model.VehicleParams
	powertrain model.PowertrainParams
	battery    model.BatteryParams
	aux        model.AuxiliaryLoads

	dyn  dynamics.Dynamics
	pack battery.Model
	log  logger.Logger
}

// New validates all four parameter records and returns a Calculator. A nil
// log falls back to the no-op logger.
func New(vehicle model.VehicleParams, powertrain model.PowertrainParams, batt model.BatteryParams, aux model.AuxiliaryLoads, log logger.Logger) (*Calculator, error) {
	if err := vehicle.Validate(); err != nil {
		return nil, err
	}
	if err := powertrain.Validate(); err != nil {
		return nil, err
	}
	if err := batt.Validate(); err != nil {
		return nil, err
	}
	if err := aux.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop{}
	}
	return &Calculator{
		vehicle:    vehicle,
		powertrain: powertrain,
		battery:    batt,
		aux:        aux,
		dyn:        dynamics.New(vehicle),
		pack:       battery.New(batt),
		log:        log,
	}, nil
}

// Consume simulates the given drive cycle at a constant road grade and
// ambient temperature and returns the full energy/SOC trajectory.
func (c *Calculator) Consume(cyc cycle.Cycle, grade, ambientTempC float64) (*model.SimulationResult, error) {
	if err := cyc.Validate(); err != nil {
		return nil, fmt.Errorf("energy: %w", err)
	}
	t := cyc.Time
	v := cyc.Velocity
	n := len(t)

	accel := gradient(v, t)
	force := c.dyn.TotalTractiveForce(v, accel, grade, 0)
	pWheels := c.dyn.TractivePower(v, force)

	// Partition wheel power by sign: propulsion draws through the
	// powertrain losses, braking feeds back through the regen path up to
	// the regen power cap. Braking power beyond the cap goes to the
	// friction brakes and is not modelled further.
	eff := c.powertrain.OverallEfficiency()
	regenCapW := c.powertrain.RegenMaxPowerKW * 1000
	pMotor := make([]float64, n)
	regenJ := 0.0
	for i, p := range pWheels {
		if p > 0 {
			pMotor[i] = p / eff
			continue
		}
		recovered := -p * c.powertrain.RegenEfficiency
		if recovered > regenCapW {
			recovered = regenCapW
		}
		pMotor[i] = -recovered
		if i > 0 {
			regenJ += recovered * (t[i] - t[i-1])
		}
	}

	pAuxW := c.aux.TotalPowerKW() * 1000
	pBattery := make([]float64, n)
	current := make([]float64, n)
	for i := range pMotor {
		pBattery[i] = pMotor[i] + pAuxW
		// Current is derived against the nominal pack voltage; the
		// SOC-dependent terminal voltage is deliberately not used here.
		current[i] = pBattery[i] / c.battery.NominalVoltage
	}

	// SOC stepping is inherently sequential: each sample depends on the
	// previous one.
	soc := make([]float64, n)
	soc[0] = clamp(c.battery.SocInitial, c.battery.SocMin, c.battery.SocMax)
	for i := 1; i < n; i++ {
		soc[i] = c.pack.CoulombCount(current[i], t[i]-t[i-1], soc[i-1])
	}

	eTraction := integrate.Trapezoidal(t, positivePart(pWheels)) / joulesPerKWh
	eMotor := integrate.Trapezoidal(t, positivePart(pMotor)) / joulesPerKWh
	eAux := pAuxW * (t[n-1] - t[0]) / joulesPerKWh
	eTotal := eMotor + eAux

	distanceKm := integrate.Trapezoidal(t, v) / 1000

	energyPerKm := 0.0
	if distanceKm > 0 {
		energyPerKm = eTotal / distanceKm
	}
	estimatedRangeKm := 0.0
	if energyPerKm > 0 {
		remaining := (soc[n-1] - c.battery.SocMin) * c.battery.UsableCapacityKWh
		estimatedRangeKm = remaining / energyPerKm
	}

	res := &model.SimulationResult{
		Time:              t,
		VelocityMS:        v,
		SOC:               soc,
		PowerWheelsKW:     scaled(pWheels, 1e-3),
		PowerBatteryKW:    scaled(pBattery, 1e-3),
		DistanceKm:        distanceKm,
		TractionEnergyKWh: eTraction,
		MotorEnergyKWh:    eMotor,
		AuxEnergyKWh:      eAux,
		TotalEnergyKWh:    eTotal,
		RegenEnergyKWh:    regenJ / joulesPerKWh,
		EnergyPerKm:       energyPerKm,
		EstimatedRangeKm:  estimatedRangeKm,
		FinalSOC:          soc[n-1],
		PeakWheelPowerKW:  floats.Max(pWheels) / 1000,
		MeanSpeedKmh:      stat.Mean(v, nil) * 3.6,
		Grade:             grade,
		AmbientTempC:      ambientTempC,
	}

	c.log.Debugw("drive cycle simulated", map[string]any{
		"samples":            n,
		"distance_km":        res.DistanceKm,
		"e_total_kwh":        res.TotalEnergyKWh,
		"e_regen_kwh":        res.RegenEnergyKWh,
		"soc_final":          res.FinalSOC,
		"estimated_range_km": res.EstimatedRangeKm,
	})
	return res, nil
}

// gradient computes dv/dt with central differences in the interior and
// one-sided differences at the boundaries, matching the cycle's possibly
// non-uniform time grid.
func gradient(v, t []float64) []float64 {
	n := len(v)
	out := make([]float64, n)
	if n < 2 {
		return out
	}
	out[0] = (v[1] - v[0]) / (t[1] - t[0])
	out[n-1] = (v[n-1] - v[n-2]) / (t[n-1] - t[n-2])
	for i := 1; i < n-1; i++ {
		out[i] = (v[i+1] - v[i-1]) / (t[i+1] - t[i-1])
	}
	return out
}

func positivePart(s []float64) []float64 {
	out := make([]float64, len(s))
	for i, x := range s {
		if x > 0 {
			out[i] = x
		}
	}
	return out
}

func scaled(s []float64, k float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	floats.Scale(k, out)
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
