package model

// BatteryParams describes the traction battery pack. The open-circuit
// voltage model is linear in SOC, which is a deliberate simplification for
// range estimation rather than cell-level electrochemistry.
type BatteryParams struct {
	// NominalCapacityKWh is the rated pack capacity.
	NominalCapacityKWh float64 `json:"nominal_capacity_kwh"`
	// UsableCapacityKWh is the capacity available between the SOC limits.
	UsableCapacityKWh float64 `json:"usable_capacity_kwh"`
	// NominalVoltage is the rated pack voltage.
	NominalVoltage float64 `json:"nominal_voltage"`

	// SocMin and SocMax bound the operating SOC window.
	SocMin float64 `json:"soc_min"`
	SocMax float64 `json:"soc_max"`
	// SocInitial seeds the simulation; it is clamped into the SOC window
	// when the energy loop starts.
	SocInitial float64 `json:"soc_initial"`

	// InternalResistance is the pack resistance in ohm at TempReference.
	InternalResistance float64 `json:"resistance_internal"`
	// ResistanceAlpha is the linear temperature coefficient in 1/C.
	ResistanceAlpha float64 `json:"resistance_alpha"`
	// TempReference is the reference temperature in C for InternalResistance.
	TempReference float64 `json:"temp_reference"`

	// CoulombicEfficiency is the charge transfer efficiency per cycle step.
	CoulombicEfficiency float64 `json:"coulombic_efficiency"`

	// OCVFull and OCVEmpty anchor the linear open-circuit voltage curve.
	OCVFull  float64 `json:"ocv_full"`
	OCVEmpty float64 `json:"ocv_empty"`
}

// DefaultBattery returns parameters for a 75 kWh / 400 V pack.
func DefaultBattery() BatteryParams {
	return BatteryParams{
		NominalCapacityKWh:  75,
		UsableCapacityKWh:   70,
		NominalVoltage:      400,
		SocMin:              0.10,
		SocMax:              0.95,
		SocInitial:          1.0,
		InternalResistance:  0.05,
		ResistanceAlpha:     0.01,
		TempReference:       25,
		CoulombicEfficiency: 0.99,
		OCVFull:             420,
		OCVEmpty:            320,
	}
}

// SetDefaults fills zero-valued fields with the defaults of DefaultBattery.
func (p *BatteryParams) SetDefaults() {
	def := DefaultBattery()
	if p.NominalCapacityKWh == 0 {
		p.NominalCapacityKWh = def.NominalCapacityKWh
	}
	if p.UsableCapacityKWh == 0 {
		p.UsableCapacityKWh = def.UsableCapacityKWh
	}
	if p.NominalVoltage == 0 {
		p.NominalVoltage = def.NominalVoltage
	}
	if p.SocMin == 0 {
		p.SocMin = def.SocMin
	}
	if p.SocMax == 0 {
		p.SocMax = def.SocMax
	}
	if p.SocInitial == 0 {
		p.SocInitial = def.SocInitial
	}
	if p.InternalResistance == 0 {
		p.InternalResistance = def.InternalResistance
	}
	if p.ResistanceAlpha == 0 {
		p.ResistanceAlpha = def.ResistanceAlpha
	}
	if p.TempReference == 0 {
		p.TempReference = def.TempReference
	}
	if p.CoulombicEfficiency == 0 {
		p.CoulombicEfficiency = def.CoulombicEfficiency
	}
	if p.OCVFull == 0 {
		p.OCVFull = def.OCVFull
	}
	if p.OCVEmpty == 0 {
		p.OCVEmpty = def.OCVEmpty
	}
}

// Validate checks capacity, voltage, SOC window and OCV anchors.
func (p BatteryParams) Validate() error {
	if err := checkPositive("battery.nominal_capacity_kwh", p.NominalCapacityKWh); err != nil {
		return err
	}
	if err := checkPositive("battery.usable_capacity_kwh", p.UsableCapacityKWh); err != nil {
		return err
	}
	if p.UsableCapacityKWh > p.NominalCapacityKWh {
		return &ConfigError{Field: "battery.usable_capacity_kwh", Value: p.UsableCapacityKWh, Min: 0, Max: p.NominalCapacityKWh}
	}
	if err := checkPositive("battery.nominal_voltage", p.NominalVoltage); err != nil {
		return err
	}
	if err := checkRange("battery.soc_min", p.SocMin, 0, 1); err != nil {
		return err
	}
	if err := checkRange("battery.soc_max", p.SocMax, 0, 1); err != nil {
		return err
	}
	if p.SocMin >= p.SocMax {
		return &ConfigError{Field: "battery.soc_min", Value: p.SocMin, Min: 0, Max: p.SocMax}
	}
	if err := checkRange("battery.soc_initial", p.SocInitial, 0, 1); err != nil {
		return err
	}
	if err := checkPositive("battery.resistance_internal", p.InternalResistance); err != nil {
		return err
	}
	if err := checkRange("battery.coulombic_efficiency", p.CoulombicEfficiency, 0.5, 1); err != nil {
		return err
	}
	if err := checkPositive("battery.ocv_empty", p.OCVEmpty); err != nil {
		return err
	}
	if p.OCVFull <= p.OCVEmpty {
		return &ConfigError{Field: "battery.ocv_full", Value: p.OCVFull, Min: p.OCVEmpty, Max: inf}
	}
	return nil
}

// CapacityAh converts the nominal capacity to ampere-hours at nominal voltage.
func (p BatteryParams) CapacityAh() float64 {
	return p.NominalCapacityKWh * 1000 / p.NominalVoltage
}

// OCV returns the open-circuit voltage for the given SOC using linear
// interpolation between the empty and full anchors.
func (p BatteryParams) OCV(soc float64) float64 {
	return p.OCVEmpty + (p.OCVFull-p.OCVEmpty)*soc
}
