package dynamics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voltlab/evrange/core/model"
)

func testVehicle() model.VehicleParams {
	v := model.DefaultVehicle()
	v.MassKg = 1800
	v.RollingCoeff = 0.010
	v.Gravity = 9.81
	return v
}

func TestAeroDragQuadraticScaling(t *testing.T) {
	d := New(testVehicle())
	f1 := d.AeroDragForce(10, 0)
	f2 := d.AeroDragForce(20, 0)
	assert.InDelta(t, 4*f1, f2, 1e-9, "doubling speed must quadruple drag")

	// Headwind adds to the effective velocity.
	assert.InDelta(t, f2, d.AeroDragForce(10, 10), 1e-9)
}

func TestAeroDragMonotonic(t *testing.T) {
	d := New(testVehicle())
	prev := -1.0
	for v := 0.0; v <= 60; v += 5 {
		f := d.AeroDragForce(v, 0)
		if f < prev {
			t.Fatalf("drag decreased at v=%v", v)
		}
		prev = f
	}
}

func TestRollingResistanceFlatRoad(t *testing.T) {
	d := New(testVehicle())
	// 1800 kg * 9.81 m/s2 * 0.010
	assert.InEpsilon(t, 176.58, d.RollingResistanceForce(0), 0.01)
}

func TestGradingResistanceTenPercent(t *testing.T) {
	d := New(testVehicle())
	assert.InEpsilon(t, 1753, d.GradingResistanceForce(0.10), 0.02)
	// Downhill mirrors uphill.
	assert.InDelta(t, -d.GradingResistanceForce(0.10), d.GradingResistanceForce(-0.10), 1e-9)
}

func TestGradingUsesExactTrig(t *testing.T) {
	d := New(testVehicle())
	grade := 0.30
	smallAngle := 1800 * 9.81 * grade
	exact := d.GradingResistanceForce(grade)
	if math.Abs(exact-smallAngle) < 1 {
		t.Fatal("expected exact trig form to differ from small-angle approximation at 30% grade")
	}
	want := 1800 * 9.81 * math.Sin(math.Atan(grade))
	assert.InDelta(t, want, exact, 1e-9)
}

func TestTotalTractiveForceComposition(t *testing.T) {
	d := New(testVehicle())
	velocity := []float64{0, 10, 20}
	accel := []float64{1, 0.5, 0}
	grade := 0.05
	total := d.TotalTractiveForce(velocity, accel, grade, 0)
	for i := range velocity {
		want := d.AccelerationForce(accel[i]) +
			d.AeroDragForce(velocity[i], 0) +
			d.RollingResistanceForce(grade) +
			d.GradingResistanceForce(grade)
		assert.InDelta(t, want, total[i], 1e-9)
	}
}

func TestTractivePowerElementwise(t *testing.T) {
	d := New(testVehicle())
	p := d.TractivePower([]float64{5, 10}, []float64{100, -50})
	assert.Equal(t, []float64{500, -500}, p)
}
