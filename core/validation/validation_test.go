package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNissanLeaf2018Report(t *testing.T) {
	report, err := NissanLeaf2018(nil)
	require.NoError(t, err)

	assert.Equal(t, "Nissan Leaf 2018", report.Vehicle)
	assert.Equal(t, 5.0, report.TolerancePercent)
	require.Len(t, report.Metrics, 4)

	byName := map[string]Metric{}
	for _, m := range report.Metrics {
		byName[m.Name] = m
		if math.IsNaN(m.Model) || math.IsInf(m.Model, 0) {
			t.Fatalf("metric %s is not finite: %v", m.Name, m.Model)
		}
		assert.Greater(t, m.Model, 0.0, "metric %s", m.Name)
		// Signed error arithmetic must match the raw values.
		assert.InDelta(t, (m.Model-m.Reference)/m.Reference*100, m.ErrorPercent, 1e-9, "metric %s", m.Name)
		// The simplified stand-in cycles keep the model in the same
		// ballpark as the EPA figures even where they miss the band.
		assert.Less(t, math.Abs(m.ErrorPercent), 60.0, "metric %s", m.Name)
	}

	city := byName["city"]
	highway := byName["highway"]
	combined := byName["combined"]
	// Highway consumption exceeds city for an EV, matching the EPA ordering.
	assert.Greater(t, highway.Model, city.Model)
	assert.InDelta(t, (city.Model+highway.Model)/2, combined.Model, 1e-9)

	// Mean absolute error summarises the per-metric magnitudes.
	sum := 0.0
	for _, m := range report.Metrics {
		sum += math.Abs(m.ErrorPercent)
	}
	assert.InDelta(t, sum/4, report.MeanAbsErrorPercent, 1e-9)

	// WithinTolerance agrees with the per-metric band check.
	within := true
	for _, m := range report.Metrics {
		if math.Abs(m.ErrorPercent) > report.TolerancePercent {
			within = false
		}
	}
	assert.Equal(t, within, report.WithinTolerance())
}
