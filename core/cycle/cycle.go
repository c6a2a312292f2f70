// Package cycle defines the drive-cycle type consumed by the energy
// calculator and synthetic generators for constant-speed, simplified-WLTP
// and urban stop-and-go profiles.
package cycle

import (
	"errors"
	"fmt"
)

// ErrInvalidCycle marks a malformed time/velocity profile. It is a
// precondition violation for that call, not a recoverable condition.
var ErrInvalidCycle = errors.New("cycle: invalid profile")

// Cycle is an ordered time/velocity profile. Time is in seconds, strictly
// increasing and starting at zero; velocity is in m/s and non-negative.
// Cycles are read-only once built.
type Cycle struct {
	Time     []float64
	Velocity []float64
}

// Validate checks the structural invariants of the profile.
func (c Cycle) Validate() error {
	if len(c.Time) != len(c.Velocity) {
		return fmt.Errorf("%w: time and velocity lengths differ (%d vs %d)", ErrInvalidCycle, len(c.Time), len(c.Velocity))
	}
	if len(c.Time) < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidCycle, len(c.Time))
	}
	if c.Time[0] != 0 {
		return fmt.Errorf("%w: time must start at 0, got %g", ErrInvalidCycle, c.Time[0])
	}
	for i := 1; i < len(c.Time); i++ {
		if c.Time[i] <= c.Time[i-1] {
			return fmt.Errorf("%w: time not strictly increasing at index %d", ErrInvalidCycle, i)
		}
	}
	for i, v := range c.Velocity {
		if v < 0 {
			return fmt.Errorf("%w: negative velocity %g at index %d", ErrInvalidCycle, v, i)
		}
	}
	return nil
}

// Duration returns the total cycle duration in seconds.
func (c Cycle) Duration() float64 {
	if len(c.Time) == 0 {
		return 0
	}
	return c.Time[len(c.Time)-1] - c.Time[0]
}

// Samples returns the number of samples in the profile.
func (c Cycle) Samples() int {
	return len(c.Time)
}
