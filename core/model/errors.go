package model

import (
	"fmt"
	"math"
)

var inf = math.Inf(1)

// ConfigError reports a parameter outside its documented physical range.
// It is returned at construction/validation time and is never retried.
type ConfigError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s = %g outside [%g, %g]", e.Field, e.Value, e.Min, e.Max)
}

func checkRange(field string, value, min, max float64) error {
	if value < min || value > max {
		return &ConfigError{Field: field, Value: value, Min: min, Max: max}
	}
	return nil
}

func checkPositive(field string, value float64) error {
	if value <= 0 {
		return &ConfigError{Field: field, Value: value, Min: 0, Max: inf}
	}
	return nil
}
