package model

// AuxiliaryLoads groups the constant hotel loads drawn from the pack.
//
// The ambient/cabin temperature and COP fields describe a temperature-coupled
// HVAC model that the energy loop does not read yet; they are carried as
// inert configuration until that coupling lands. TotalPowerKW is what the
// simulation consumes.
type AuxiliaryLoads struct {
	// HVACPowerKW is the heating/cooling draw.
	HVACPowerKW float64 `json:"hvac_power_kw"`
	// ElectronicsKW is the baseline electronics draw.
	ElectronicsKW float64 `json:"electronics_kw"`
	// LightingKW is the lighting draw.
	LightingKW float64 `json:"lighting_kw"`

	// AmbientTempC is the outside temperature. Informational, see above.
	AmbientTempC float64 `json:"ambient_temp_c"`
	// CabinTempTargetC is the target cabin temperature. Informational.
	CabinTempTargetC float64 `json:"cabin_temp_target_c"`
	// HVACCop is the HVAC coefficient of performance. Informational.
	HVACCop float64 `json:"hvac_cop"`
}

// DefaultAuxiliaryLoads returns typical hotel loads with HVAC off.
func DefaultAuxiliaryLoads() AuxiliaryLoads {
	return AuxiliaryLoads{
		HVACPowerKW:      0,
		ElectronicsKW:    0.3,
		LightingKW:       0.1,
		AmbientTempC:     20,
		CabinTempTargetC: 22,
		HVACCop:          2.5,
	}
}

// SetDefaults fills zero-valued fields with the defaults of
// DefaultAuxiliaryLoads. HVACPowerKW legitimately defaults to zero.
func (p *AuxiliaryLoads) SetDefaults() {
	def := DefaultAuxiliaryLoads()
	if p.ElectronicsKW == 0 {
		p.ElectronicsKW = def.ElectronicsKW
	}
	if p.LightingKW == 0 {
		p.LightingKW = def.LightingKW
	}
	if p.AmbientTempC == 0 {
		p.AmbientTempC = def.AmbientTempC
	}
	if p.CabinTempTargetC == 0 {
		p.CabinTempTargetC = def.CabinTempTargetC
	}
	if p.HVACCop == 0 {
		p.HVACCop = def.HVACCop
	}
}

// Validate checks that loads are non-negative and the COP is positive.
func (p AuxiliaryLoads) Validate() error {
	if p.HVACPowerKW < 0 {
		return &ConfigError{Field: "aux.hvac_power_kw", Value: p.HVACPowerKW, Min: 0, Max: inf}
	}
	if p.ElectronicsKW < 0 {
		return &ConfigError{Field: "aux.electronics_kw", Value: p.ElectronicsKW, Min: 0, Max: inf}
	}
	if p.LightingKW < 0 {
		return &ConfigError{Field: "aux.lighting_kw", Value: p.LightingKW, Min: 0, Max: inf}
	}
	return checkPositive("aux.hvac_cop", p.HVACCop)
}

// TotalPowerKW is the constant auxiliary draw applied over the whole cycle.
func (p AuxiliaryLoads) TotalPowerKW() float64 {
	return p.HVACPowerKW + p.ElectronicsKW + p.LightingKW
}
