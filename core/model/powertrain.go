package model

// PowertrainParams describes motor, single-speed transmission, inverter and
// regenerative braking limits.
type PowertrainParams struct {
	// MotorPowerPeakKW is the peak motor power.
	MotorPowerPeakKW float64 `json:"motor_power_peak_kw"`
	// MotorTorqueMaxNm is the maximum motor torque.
	MotorTorqueMaxNm float64 `json:"motor_torque_max_nm"`
	// MotorEfficiency is the average motor efficiency.
	MotorEfficiency float64 `json:"motor_efficiency"`

	// GearRatio is the total reduction ratio.
	GearRatio float64 `json:"gear_ratio"`
	// TransmissionEfficiency is the gearbox efficiency.
	TransmissionEfficiency float64 `json:"transmission_efficiency"`
	// InverterEfficiency is the DC/AC conversion efficiency.
	InverterEfficiency float64 `json:"inverter_efficiency"`

	// RegenEfficiency is the fraction of braking power recovered.
	RegenEfficiency float64 `json:"regen_efficiency"`
	// RegenMaxPowerKW caps recoverable braking power; anything beyond it is
	// dissipated by the friction brakes.
	RegenMaxPowerKW float64 `json:"regen_max_power_kw"`
}

// DefaultPowertrain returns parameters for a 150 kW single-speed powertrain.
func DefaultPowertrain() PowertrainParams {
	return PowertrainParams{
		MotorPowerPeakKW:       150,
		MotorTorqueMaxNm:       310,
		MotorEfficiency:        0.95,
		GearRatio:              9,
		TransmissionEfficiency: 0.97,
		InverterEfficiency:     0.96,
		RegenEfficiency:        0.70,
		RegenMaxPowerKW:        70,
	}
}

// SetDefaults fills zero-valued fields with the defaults of DefaultPowertrain.
func (p *PowertrainParams) SetDefaults() {
	def := DefaultPowertrain()
	if p.MotorPowerPeakKW == 0 {
		p.MotorPowerPeakKW = def.MotorPowerPeakKW
	}
	if p.MotorTorqueMaxNm == 0 {
		p.MotorTorqueMaxNm = def.MotorTorqueMaxNm
	}
	if p.MotorEfficiency == 0 {
		p.MotorEfficiency = def.MotorEfficiency
	}
	if p.GearRatio == 0 {
		p.GearRatio = def.GearRatio
	}
	if p.TransmissionEfficiency == 0 {
		p.TransmissionEfficiency = def.TransmissionEfficiency
	}
	if p.InverterEfficiency == 0 {
		p.InverterEfficiency = def.InverterEfficiency
	}
	if p.RegenEfficiency == 0 {
		p.RegenEfficiency = def.RegenEfficiency
	}
	if p.RegenMaxPowerKW == 0 {
		p.RegenMaxPowerKW = def.RegenMaxPowerKW
	}
}

// Validate checks power ratings and efficiency bounds.
func (p PowertrainParams) Validate() error {
	if err := checkPositive("powertrain.motor_power_peak_kw", p.MotorPowerPeakKW); err != nil {
		return err
	}
	if err := checkPositive("powertrain.motor_torque_max_nm", p.MotorTorqueMaxNm); err != nil {
		return err
	}
	if err := checkRange("powertrain.motor_efficiency", p.MotorEfficiency, 0.5, 1); err != nil {
		return err
	}
	if err := checkPositive("powertrain.gear_ratio", p.GearRatio); err != nil {
		return err
	}
	if err := checkRange("powertrain.transmission_efficiency", p.TransmissionEfficiency, 0.5, 1); err != nil {
		return err
	}
	if err := checkRange("powertrain.inverter_efficiency", p.InverterEfficiency, 0.5, 1); err != nil {
		return err
	}
	if err := checkRange("powertrain.regen_efficiency", p.RegenEfficiency, 0, 1); err != nil {
		return err
	}
	return checkPositive("powertrain.regen_max_power_kw", p.RegenMaxPowerKW)
}

// OverallEfficiency is the product of motor, transmission and inverter
// efficiencies, applied between battery terminals and wheels.
func (p PowertrainParams) OverallEfficiency() float64 {
	return p.MotorEfficiency * p.TransmissionEfficiency * p.InverterEfficiency
}
