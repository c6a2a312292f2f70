package model

// VehicleParams holds the physical parameters of the vehicle body used by
// the longitudinal dynamics model. Instances are treated as read-only after
// validation and are safe to share between concurrent simulations.
type VehicleParams struct {
	// MassKg is the total vehicle mass including payload.
	MassKg float64 `json:"mass_kg"`
	// FrontalAreaM2 is the projected frontal area.
	FrontalAreaM2 float64 `json:"frontal_area_m2"`
	// DragCoeff is the aerodynamic drag coefficient Cd.
	DragCoeff float64 `json:"drag_coefficient"`
	// AirDensity in kg/m3, sea level at 20 C by default.
	AirDensity float64 `json:"air_density"`
	// RollingCoeff is the tyre rolling resistance coefficient Cr.
	RollingCoeff float64 `json:"rolling_coeff"`
	// WheelRadiusM is the dynamic wheel radius.
	WheelRadiusM float64 `json:"wheel_radius_m"`
	// Gravity in m/s2.
	Gravity float64 `json:"gravity"`
}

// DefaultVehicle returns parameters for a typical mid-size passenger EV.
func DefaultVehicle() VehicleParams {
	return VehicleParams{
		MassKg:        1800,
		FrontalAreaM2: 2.3,
		DragCoeff:     0.28,
		AirDensity:    1.2,
		RollingCoeff:  0.010,
		WheelRadiusM:  0.34,
		Gravity:       9.81,
	}
}

// SetDefaults fills zero-valued fields with the defaults of DefaultVehicle.
func (p *VehicleParams) SetDefaults() {
	def := DefaultVehicle()
	if p.MassKg == 0 {
		p.MassKg = def.MassKg
	}
	if p.FrontalAreaM2 == 0 {
		p.FrontalAreaM2 = def.FrontalAreaM2
	}
	if p.DragCoeff == 0 {
		p.DragCoeff = def.DragCoeff
	}
	if p.AirDensity == 0 {
		p.AirDensity = def.AirDensity
	}
	if p.RollingCoeff == 0 {
		p.RollingCoeff = def.RollingCoeff
	}
	if p.WheelRadiusM == 0 {
		p.WheelRadiusM = def.WheelRadiusM
	}
	if p.Gravity == 0 {
		p.Gravity = def.Gravity
	}
}

// Validate checks that every parameter lies inside its physical range.
func (p VehicleParams) Validate() error {
	if err := checkRange("vehicle.mass_kg", p.MassKg, 1000, 3000); err != nil {
		return err
	}
	if err := checkRange("vehicle.frontal_area_m2", p.FrontalAreaM2, 1.5, 3.5); err != nil {
		return err
	}
	if err := checkRange("vehicle.drag_coefficient", p.DragCoeff, 0.2, 0.5); err != nil {
		return err
	}
	if err := checkPositive("vehicle.air_density", p.AirDensity); err != nil {
		return err
	}
	if err := checkPositive("vehicle.rolling_coeff", p.RollingCoeff); err != nil {
		return err
	}
	if err := checkPositive("vehicle.wheel_radius_m", p.WheelRadiusM); err != nil {
		return err
	}
	return checkPositive("vehicle.gravity", p.Gravity)
}
