// Package battery implements the pack model used by the energy loop:
// Coulomb-counting SOC updates, a temperature-corrected internal resistance
// and the linear-OCV terminal voltage and ohmic loss equations.
package battery

import "github.com/voltlab/evrange/core/model"

// Model evaluates the battery equations for one parameter set. SOC is kept
// by the caller and passed in explicitly, so a Model carries no hidden state
// and is safe to share between concurrent simulations.
type Model struct {
	params model.BatteryParams
}

// New returns a Model bound to the given battery parameters.
func New(params model.BatteryParams) Model {
	return Model{params: params}
}

// Params returns the bound parameter set.
func (m Model) Params() model.BatteryParams {
	return m.params
}

// CoulombCount advances SOC by one step of forward-Euler charge integration.
// current is in ampere, positive for discharge; dt in seconds. The result is
// clamped into [SocMin, SocMax].
//
// Plain Coulomb counting accumulates drift over long horizons. That is an
// accepted trade-off for O(1) per-step cost; a voltage-based correction
// (e.g. Kalman filtering) is deferred.
func (m Model) CoulombCount(current, dt, socPrev float64) float64 {
	deltaSOC := -(m.params.CoulombicEfficiency * current * dt) / (3600 * m.params.CapacityAh())
	return clamp(socPrev+deltaSOC, m.params.SocMin, m.params.SocMax)
}

// InternalResistance returns the pack resistance in ohm at the given
// temperature: R = R_ref * (1 + alpha*(T - T_ref)).
//
// With alpha > 0 this makes resistance drop below reference in the cold,
// which is the opposite of real lithium-ion behaviour. The convention is
// kept as-is so results stay comparable with the existing validation
// baselines; see DESIGN.md before changing the sign.
func (m Model) InternalResistance(tempC float64) float64 {
	return m.params.InternalResistance * (1 + m.params.ResistanceAlpha*(tempC-m.params.TempReference))
}

// TerminalVoltage returns V = OCV(soc) - I*R_int(T).
func (m Model) TerminalVoltage(soc, current, tempC float64) float64 {
	return m.params.OCV(soc) - current*m.InternalResistance(tempC)
}

// PowerLoss returns the ohmic loss P = I^2 * R_int(T) in watt.
func (m Model) PowerLoss(current, tempC float64) float64 {
	return current * current * m.InternalResistance(tempC)
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
