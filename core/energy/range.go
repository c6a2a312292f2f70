package energy

import (
	"fmt"
	"math"

	"github.com/voltlab/evrange/core/model"
)

// Empirical range-adjustment constants. The quadratic temperature penalty is
// centred at the battery's sweet spot and floored so extreme cold never
// predicts less than half the rated range.
const (
	tempOptimalC   = 21.5
	tempPenaltyK   = 0.0001 // 1/C^2
	tempFactorMin  = 0.5
	hvacNeutralC   = 22.0
	hvacHeavyBand  = 10.0
	hvacMediumBand = 5.0
)

// PredictRange applies the empirical correction model to a rated base range.
// It is deliberately independent of the time-stepped simulation: a coarse
// what-if estimate that does not require running a full cycle.
func PredictRange(baseRangeKm, temperatureC, terrainFactor, trafficFactor float64) (model.RangeEstimate, error) {
	if baseRangeKm <= 0 {
		return model.RangeEstimate{}, fmt.Errorf("energy: base range must be positive, got %g", baseRangeKm)
	}

	fTemp := 1 - tempPenaltyK*(temperatureC-tempOptimalC)*(temperatureC-tempOptimalC)
	fTemp = math.Max(tempFactorMin, fTemp)

	var fHVAC float64
	switch delta := math.Abs(temperatureC - hvacNeutralC); {
	case delta > hvacHeavyBand:
		fHVAC = 0.80
	case delta > hvacMediumBand:
		fHVAC = 0.90
	default:
		fHVAC = 0.98
	}

	total := fTemp * terrainFactor * fHVAC * trafficFactor
	adjusted := baseRangeKm * total

	return model.RangeEstimate{
		BaseRangeKm:      baseRangeKm,
		AdjustedRangeKm:  adjusted,
		TempFactor:       fTemp,
		TerrainFactor:    terrainFactor,
		HVACFactor:       fHVAC,
		TrafficFactor:    trafficFactor,
		TotalFactor:      total,
		TemperatureC:     temperatureC,
		RangeLossKm:      baseRangeKm - adjusted,
		RangeLossPercent: (1 - adjusted/baseRangeKm) * 100,
	}, nil
}
