package model

// SimulationResult carries the full time series and scalar aggregates of one
// drive-cycle simulation. It is created by the energy calculator, owned by
// the caller and not mutated afterwards.
type SimulationResult struct {
	// Time series, one entry per cycle sample.
	Time           []float64 `json:"time_s"`
	VelocityMS     []float64 `json:"velocity_ms"`
	SOC            []float64 `json:"soc"`
	PowerWheelsKW  []float64 `json:"power_wheels_kw"`
	PowerBatteryKW []float64 `json:"power_battery_kw"`

	// Scalar aggregates.
	DistanceKm        float64 `json:"distance_km"`
	TractionEnergyKWh float64 `json:"e_traction_kwh"`
	MotorEnergyKWh    float64 `json:"e_motor_kwh"`
	AuxEnergyKWh      float64 `json:"e_aux_kwh"`
	TotalEnergyKWh    float64 `json:"e_total_kwh"`
	RegenEnergyKWh    float64 `json:"e_regen_recovered_kwh"`
	EnergyPerKm       float64 `json:"energy_per_km"`
	EstimatedRangeKm  float64 `json:"estimated_range_km"`
	FinalSOC          float64 `json:"soc_final"`
	PeakWheelPowerKW  float64 `json:"peak_wheel_power_kw"`
	MeanSpeedKmh      float64 `json:"mean_speed_kmh"`

	// Inputs echoed for downstream consumers.
	Grade        float64 `json:"grade"`
	AmbientTempC float64 `json:"ambient_temp_c"`
}

// RangeEstimate is the output of the empirical range adjustment model. It is
// independent of the time-stepped simulation and intended for coarse what-if
// estimation.
type RangeEstimate struct {
	BaseRangeKm      float64 `json:"base_range_km"`
	AdjustedRangeKm  float64 `json:"adjusted_range_km"`
	TempFactor       float64 `json:"f_temp"`
	TerrainFactor    float64 `json:"f_terrain"`
	HVACFactor       float64 `json:"f_hvac"`
	TrafficFactor    float64 `json:"f_traffic"`
	TotalFactor      float64 `json:"total_factor"`
	TemperatureC     float64 `json:"temperature_c"`
	RangeLossKm      float64 `json:"range_loss_km"`
	RangeLossPercent float64 `json:"range_loss_percent"`
}
