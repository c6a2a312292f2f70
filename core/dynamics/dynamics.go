// Package dynamics implements the longitudinal vehicle dynamics model:
// aerodynamic drag, rolling resistance, grade resistance and inertial force,
// combined into the tractive force and power demanded at the wheels.
package dynamics

import (
	"math"

	"github.com/voltlab/evrange/core/model"
)

// Dynamics computes forces and power for one vehicle parameter set. It holds
// no mutable state and is safe for concurrent use from multiple simulations.
type Dynamics struct {
	vehicle model.VehicleParams
}

// New returns a Dynamics bound to the given vehicle parameters.
func New(vehicle model.VehicleParams) Dynamics {
	return Dynamics{vehicle: vehicle}
}

// AeroDragForce returns the drag force in newton for a single speed sample.
// windSpeed is positive for headwind.
func (d Dynamics) AeroDragForce(velocity, windSpeed float64) float64 {
	v := velocity + windSpeed
	return 0.5 * d.vehicle.AirDensity * d.vehicle.DragCoeff * d.vehicle.FrontalAreaM2 * v * v
}

// AeroDragForces returns the drag force for every speed sample.
func (d Dynamics) AeroDragForces(velocity []float64, windSpeed float64) []float64 {
	out := make([]float64, len(velocity))
	for i, v := range velocity {
		out[i] = d.AeroDragForce(v, windSpeed)
	}
	return out
}

// RollingResistanceForce returns the rolling resistance in newton for a
// constant road grade (0.1 = 10 %).
func (d Dynamics) RollingResistanceForce(grade float64) float64 {
	theta := math.Atan(grade)
	return d.vehicle.MassKg * d.vehicle.Gravity * d.vehicle.RollingCoeff * math.Cos(theta)
}

// GradingResistanceForce returns the hill-climbing force in newton. The
// exact sin(atan(grade)) form is used rather than the small-angle
// approximation so steep grades stay accurate.
func (d Dynamics) GradingResistanceForce(grade float64) float64 {
	theta := math.Atan(grade)
	return d.vehicle.MassKg * d.vehicle.Gravity * math.Sin(theta)
}

// AccelerationForce returns the inertial force m*a in newton.
func (d Dynamics) AccelerationForce(acceleration float64) float64 {
	return d.vehicle.MassKg * acceleration
}

// TotalTractiveForce evaluates the canonical longitudinal dynamics equation
// F = m*a + F_aero + F_roll + F_grade for every sample. velocity and
// acceleration must have equal length; grade and wind are held constant over
// the cycle.
func (d Dynamics) TotalTractiveForce(velocity, acceleration []float64, grade, windSpeed float64) []float64 {
	fRoll := d.RollingResistanceForce(grade)
	fGrade := d.GradingResistanceForce(grade)
	out := make([]float64, len(velocity))
	for i, v := range velocity {
		out[i] = d.AccelerationForce(acceleration[i]) + d.AeroDragForce(v, windSpeed) + fRoll + fGrade
	}
	return out
}

// TractivePower returns the elementwise wheel power P = v*F in watt.
func (d Dynamics) TractivePower(velocity, force []float64) []float64 {
	out := make([]float64, len(velocity))
	for i, v := range velocity {
		out[i] = v * force[i]
	}
	return out
}
