package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictRangeNearOptimalTemperature(t *testing.T) {
	est, err := PredictRange(400, 21.5, 1, 1)
	require.NoError(t, err)

	// Only the minimal HVAC tier applies at the sweet spot.
	assert.InDelta(t, 1.0, est.TempFactor, 1e-9)
	assert.Equal(t, 0.98, est.HVACFactor)
	assert.InEpsilon(t, 400, est.AdjustedRangeKm, 0.05)
}

func TestPredictRangeWinter(t *testing.T) {
	est, err := PredictRange(400, -10, 1, 1)
	require.NoError(t, err)

	assert.Equal(t, 0.80, est.HVACFactor)
	loss := est.RangeLossPercent
	if loss < 20 || loss > 40 {
		t.Fatalf("expected 20-40%% winter loss, got %.1f%%", loss)
	}
	assert.InDelta(t, est.BaseRangeKm-est.AdjustedRangeKm, est.RangeLossKm, 1e-9)
}

func TestPredictRangeFactorComposition(t *testing.T) {
	est, err := PredictRange(300, 30, 0.9, 0.85)
	require.NoError(t, err)

	want := est.TempFactor * est.TerrainFactor * est.HVACFactor * est.TrafficFactor
	assert.InDelta(t, want, est.TotalFactor, 1e-12)
	assert.InDelta(t, 300*want, est.AdjustedRangeKm, 1e-9)
}

func TestPredictRangeTemperatureFloor(t *testing.T) {
	// Far enough from optimal the quadratic penalty hits the 0.5 floor:
	// |T - 21.5| > sqrt(0.5/0.0001) ~ 70.7 C.
	est, err := PredictRange(400, -60, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.5, est.TempFactor)
}

func TestPredictRangeRejectsNonPositiveBase(t *testing.T) {
	_, err := PredictRange(0, 20, 1, 1)
	assert.Error(t, err)
	_, err = PredictRange(-10, 20, 1, 1)
	assert.Error(t, err)
}

func TestPredictRangeHVACTiers(t *testing.T) {
	cases := []struct {
		temp float64
		want float64
	}{
		{22, 0.98},
		{26, 0.98},
		{28, 0.90},
		{12, 0.90},
		{35, 0.80},
		{5, 0.80},
	}
	for _, tc := range cases {
		est, err := PredictRange(400, tc.temp, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, tc.want, est.HVACFactor, "temperature %v", tc.temp)
	}
}
