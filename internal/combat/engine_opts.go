package combat

import "time"

type EngineOpt func(*Engine)

// WithInterval sets the fixed resolution interval.
func WithInterval(d time.Duration) EngineOpt {
	return func(e *Engine) {
		e.interval = d
	}
}

// WithVariance sets the bound on the random damage component.
func WithVariance(v int) EngineOpt {
	return func(e *Engine) {
		e.variance = v
	}
}

// WithRolls replaces the random sources. roll draws the damage variance
// in [0,n), chance draws the hit roll in [0,1).
func WithRolls(roll func(n int) int, chance func() float64) EngineOpt {
	return func(e *Engine) {
		e.roll = roll
		e.chance = chance
	}
}

// WithClock replaces the wall clock, letting tests control interval
// boundaries.
func WithClock(now func() time.Time) EngineOpt {
	return func(e *Engine) {
		e.now = now
	}
}
