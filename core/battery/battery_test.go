package battery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voltlab/evrange/core/model"
)

func testParams() model.BatteryParams {
	p := model.DefaultBattery()
	p.NominalCapacityKWh = 75
	p.NominalVoltage = 400
	p.CoulombicEfficiency = 0.99
	return p
}

func TestCoulombCountDischargeOneHour(t *testing.T) {
	m := New(testParams())
	// 50 A for 3600 s from SOC 0.80 on a 187.5 Ah pack.
	got := m.CoulombCount(50, 3600, 0.80)
	assert.InEpsilon(t, 0.536, got, 0.02)
}

func TestCoulombCountRoundTripLossless(t *testing.T) {
	p := testParams()
	p.CoulombicEfficiency = 1.0
	m := New(p)

	soc := 0.60
	down := m.CoulombCount(30, 600, soc)
	up := m.CoulombCount(-30, 600, down)
	assert.InDelta(t, soc, up, 1e-12, "lossless charge must undo discharge")
}

func TestCoulombCountClamps(t *testing.T) {
	p := testParams()
	m := New(p)

	// Massive discharge pins SOC at the floor.
	low := m.CoulombCount(1e5, 3600, 0.5)
	assert.Equal(t, p.SocMin, low)

	// Massive charge pins SOC at the ceiling.
	high := m.CoulombCount(-1e5, 3600, 0.5)
	assert.Equal(t, p.SocMax, high)
}

func TestInternalResistanceTemperatureCorrection(t *testing.T) {
	p := testParams()
	m := New(p)

	assert.InDelta(t, p.InternalResistance, m.InternalResistance(p.TempReference), 1e-12)
	// +10 C above reference with alpha=0.01 adds 10 %.
	assert.InDelta(t, p.InternalResistance*1.1, m.InternalResistance(p.TempReference+10), 1e-12)
	// Documented convention: resistance decreases below reference.
	if m.InternalResistance(p.TempReference-20) >= p.InternalResistance {
		t.Fatal("expected resistance below reference value in the cold under the documented convention")
	}
}

func TestTerminalVoltage(t *testing.T) {
	p := testParams()
	m := New(p)

	// No current: terminal voltage equals OCV.
	assert.InDelta(t, p.OCV(0.5), m.TerminalVoltage(0.5, 0, p.TempReference), 1e-12)

	// Discharge sags, charge lifts.
	sag := m.TerminalVoltage(0.5, 100, p.TempReference)
	lift := m.TerminalVoltage(0.5, -100, p.TempReference)
	assert.Less(t, sag, p.OCV(0.5))
	assert.Greater(t, lift, p.OCV(0.5))
}

func TestPowerLossQuadraticInCurrent(t *testing.T) {
	p := testParams()
	m := New(p)

	l1 := m.PowerLoss(10, p.TempReference)
	l2 := m.PowerLoss(20, p.TempReference)
	assert.InDelta(t, 4*l1, l2, 1e-9)
	// Sign of the current does not matter for ohmic loss.
	assert.InDelta(t, l1, m.PowerLoss(-10, p.TempReference), 1e-12)
}
