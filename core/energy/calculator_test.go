package energy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltlab/evrange/core/cycle"
	"github.com/voltlab/evrange/core/model"
)

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	calc, err := New(model.DefaultVehicle(), model.DefaultPowertrain(), model.DefaultBattery(), model.DefaultAuxiliaryLoads(), nil)
	require.NoError(t, err)
	return calc
}

func TestNewRejectsInvalidParams(t *testing.T) {
	v := model.DefaultVehicle()
	v.MassKg = 50
	_, err := New(v, model.DefaultPowertrain(), model.DefaultBattery(), model.DefaultAuxiliaryLoads(), nil)
	var cfgErr *model.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
}

func TestConsumeRejectsMalformedCycle(t *testing.T) {
	calc := newTestCalculator(t)
	_, err := calc.Consume(cycle.Cycle{Time: []float64{0, 1, 1}, Velocity: []float64{0, 0, 0}}, 0, 25)
	if !errors.Is(err, cycle.ErrInvalidCycle) {
		t.Fatalf("expected ErrInvalidCycle, got %v", err)
	}
}

func TestConsumeConstantSpeed(t *testing.T) {
	calc := newTestCalculator(t)
	cyc, err := cycle.ConstantSpeed(120, 3600, 1)
	require.NoError(t, err)

	res, err := calc.Consume(cyc, 0, 25)
	require.NoError(t, err)

	// 120 km/h over the trapezoid of 3599 s.
	assert.InEpsilon(t, 120.0*3599/3600, res.DistanceKm, 1e-6)
	assert.Greater(t, res.TotalEnergyKWh, 0.0)
	assert.Greater(t, res.EnergyPerKm, 0.0)
	assert.Greater(t, res.EstimatedRangeKm, 0.0)
	assert.Less(t, res.FinalSOC, res.SOC[0], "battery must drain while cruising")
	// Energy accounting: total is motor plus auxiliary.
	assert.InDelta(t, res.MotorEnergyKWh+res.AuxEnergyKWh, res.TotalEnergyKWh, 1e-9)
	// Traction energy at the wheels is below the battery-side motor energy.
	assert.Less(t, res.TractionEnergyKWh, res.MotorEnergyKWh)
	assert.InDelta(t, 120, res.MeanSpeedKmh, 1e-9)
	assert.Len(t, res.SOC, cyc.Samples())
}

func TestDistanceMatchesPairwiseTrapezoid(t *testing.T) {
	calc := newTestCalculator(t)
	cyc, err := cycle.UrbanStopAndGo(700, 1)
	require.NoError(t, err)

	res, err := calc.Consume(cyc, 0, 25)
	require.NoError(t, err)

	sum := 0.0
	for i := 1; i < cyc.Samples(); i++ {
		sum += (cyc.Velocity[i] + cyc.Velocity[i-1]) / 2 * (cyc.Time[i] - cyc.Time[i-1])
	}
	assert.InDelta(t, sum/1000, res.DistanceKm, 1e-9)
}

func TestConsumeZeroVelocityCycle(t *testing.T) {
	calc := newTestCalculator(t)
	cyc := cycle.Cycle{Time: []float64{0, 1, 2, 3}, Velocity: []float64{0, 0, 0, 0}}

	res, err := calc.Consume(cyc, 0, 25)
	require.NoError(t, err)

	// Zero distance is a defined result, not an error: the guards collapse
	// energy-per-km and range to zero.
	assert.Equal(t, 0.0, res.DistanceKm)
	assert.Equal(t, 0.0, res.EnergyPerKm)
	assert.Equal(t, 0.0, res.EstimatedRangeKm)
	// Hotel loads still drain the pack.
	assert.Greater(t, res.AuxEnergyKWh, 0.0)
}

func TestSOCStaysInWindow(t *testing.T) {
	batt := model.DefaultBattery()
	batt.SocInitial = 1.0 // above SocMax, must be clamped at the seed
	calc, err := New(model.DefaultVehicle(), model.DefaultPowertrain(), batt, model.DefaultAuxiliaryLoads(), nil)
	require.NoError(t, err)

	// Pathological full-throttle ramp: 0 to 250 km/h and back, repeated.
	n := 2000
	tt := make([]float64, n)
	vv := make([]float64, n)
	for i := range tt {
		tt[i] = float64(i)
		phase := i % 100
		if phase < 50 {
			vv[i] = float64(phase) / 50 * 69.4
		} else {
			vv[i] = float64(100-phase) / 50 * 69.4
		}
	}
	res, err := calc.Consume(cycle.Cycle{Time: tt, Velocity: vv}, 0, 25)
	require.NoError(t, err)

	for i, s := range res.SOC {
		if s < batt.SocMin-1e-12 || s > batt.SocMax+1e-12 {
			t.Fatalf("SOC %v at sample %d outside [%v, %v]", s, i, batt.SocMin, batt.SocMax)
		}
	}
}

func TestRegenRecoveredOnDeceleration(t *testing.T) {
	calc := newTestCalculator(t)

	// 100 km/h to standstill over 10 s.
	tt := make([]float64, 11)
	vv := make([]float64, 11)
	for i := range tt {
		tt[i] = float64(i)
		vv[i] = 100 / 3.6 * (1 - float64(i)/10)
	}
	res, err := calc.Consume(cycle.Cycle{Time: tt, Velocity: vv}, 0, 25)
	require.NoError(t, err)

	assert.Greater(t, res.RegenEnergyKWh, 0.0, "braking must recover energy")
	// Recovered power is capped: never more than regen_max_power over the window.
	capKWh := model.DefaultPowertrain().RegenMaxPowerKW * 10.0 / 3600
	assert.LessOrEqual(t, res.RegenEnergyKWh, capKWh+1e-9)
	// Battery power goes negative during the braking phase.
	minBatt := res.PowerBatteryKW[0]
	for _, p := range res.PowerBatteryKW {
		if p < minBatt {
			minBatt = p
		}
	}
	assert.Less(t, minBatt, 0.0)
}

func TestUphillCostsMoreThanFlat(t *testing.T) {
	calc := newTestCalculator(t)
	cyc, err := cycle.ConstantSpeed(80, 600, 1)
	require.NoError(t, err)

	flat, err := calc.Consume(cyc, 0, 25)
	require.NoError(t, err)
	hill, err := calc.Consume(cyc, 0.05, 25)
	require.NoError(t, err)

	assert.Greater(t, hill.TotalEnergyKWh, flat.TotalEnergyKWh)
	assert.Less(t, hill.EstimatedRangeKm, flat.EstimatedRangeKm)
}

func TestGradientCentralDifferences(t *testing.T) {
	// Linear ramp has a constant derivative everywhere.
	v := []float64{0, 2, 4, 6, 8}
	tt := []float64{0, 1, 2, 3, 4}
	g := gradient(v, tt)
	for i, a := range g {
		assert.InDelta(t, 2.0, a, 1e-12, "sample %d", i)
	}

	// Non-uniform grid.
	v2 := []float64{0, 1, 4}
	t2 := []float64{0, 1, 3}
	g2 := gradient(v2, t2)
	assert.InDelta(t, 1.0, g2[0], 1e-12)
	assert.InDelta(t, (4.0-0.0)/3.0, g2[1], 1e-12)
	assert.InDelta(t, 1.5, g2[2], 1e-12)
}
