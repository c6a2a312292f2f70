package cycle

import (
	"fmt"
	"math"
)

const kmhToMS = 1.0 / 3.6

// InvalidParameterError reports a malformed generation request.
type InvalidParameterError struct {
	Param string
	Value float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("cycle: invalid %s: %g", e.Param, e.Value)
}

func checkWindow(durationS, dtS float64) error {
	if durationS <= 0 {
		return &InvalidParameterError{Param: "duration_s", Value: durationS}
	}
	if dtS <= 0 {
		return &InvalidParameterError{Param: "time_step_s", Value: dtS}
	}
	return nil
}

func timeGrid(durationS, dtS float64) []float64 {
	n := int(math.Ceil(durationS / dtS))
	if n < 2 {
		n = 2
	}
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) * dtS
	}
	return t
}

// ConstantSpeed produces a flat profile at the given speed, used for
// steady-state highway range estimation.
func ConstantSpeed(speedKmh, durationS, dtS float64) (Cycle, error) {
	if err := checkWindow(durationS, dtS); err != nil {
		return Cycle{}, err
	}
	if speedKmh < 0 {
		return Cycle{}, &InvalidParameterError{Param: "speed_kmh", Value: speedKmh}
	}
	t := timeGrid(durationS, dtS)
	v := make([]float64, len(t))
	ms := speedKmh * kmhToMS
	for i := range v {
		v[i] = ms
	}
	return Cycle{Time: t, Velocity: v}, nil
}

// SimplifiedWLTP approximates the WLTP Class 3 procedure with four repeating
// 600 s phases, each a sinusoidal ramp centred at 20/40/60/80 km/h. It is a
// stand-in for the official regulatory profile, not a replica.
func SimplifiedWLTP(durationS, dtS float64) (Cycle, error) {
	if err := checkWindow(durationS, dtS); err != nil {
		return Cycle{}, err
	}
	t := timeGrid(durationS, dtS)
	v := make([]float64, len(t))
	for i, ts := range t {
		phase := math.Mod(ts, 600) / 600
		var kmh float64
		switch {
		case phase < 0.25: // low speed urban
			kmh = 20 + 15*math.Sin(2*math.Pi*phase*4)
		case phase < 0.5: // medium speed
			kmh = 40 + 20*math.Sin(2*math.Pi*(phase-0.25)*4)
		case phase < 0.75: // high speed
			kmh = 60 + 15*math.Sin(2*math.Pi*(phase-0.5)*4)
		default: // extra high speed
			kmh = 80 + 20*math.Sin(2*math.Pi*(phase-0.75)*4)
		}
		v[i] = kmh * kmhToMS
	}
	return Cycle{Time: t, Velocity: v}, nil
}

// UrbanStopAndGo produces a UDDS-like pattern of repeating 100 s segments:
// 20 s linear acceleration to 50 km/h, 40 s cruise, 20 s linear deceleration
// and 20 s standstill.
func UrbanStopAndGo(durationS, dtS float64) (Cycle, error) {
	if err := checkWindow(durationS, dtS); err != nil {
		return Cycle{}, err
	}
	t := timeGrid(durationS, dtS)
	v := make([]float64, len(t))
	for i, ts := range t {
		in := math.Mod(ts, 100)
		var kmh float64
		switch {
		case in < 20:
			kmh = in / 20 * 50
		case in < 60:
			kmh = 50
		case in < 80:
			kmh = 50 - (in-60)/20*50
		default:
			kmh = 0
		}
		v[i] = kmh * kmhToMS
	}
	return Cycle{Time: t, Velocity: v}, nil
}
