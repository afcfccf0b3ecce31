package dispatch

import "time"

type ProcessorOpt func(*Processor)

// WithResetter sets the inactivity world-reset collaborator.
func WithResetter(r WorldResetter) ProcessorOpt {
	return func(p *Processor) {
		p.resetter = r
	}
}

// WithInactivityLimit sets the global idle duration before a world reset.
func WithInactivityLimit(d time.Duration) ProcessorOpt {
	return func(p *Processor) {
		p.inactivityLimit = d
	}
}

// WithHealTicks sets how many slept ticks heal one stamina point.
func WithHealTicks(n int) ProcessorOpt {
	return func(p *Processor) {
		p.healTicks = n
	}
}

// WithClock replaces the wall clock for tests.
func WithClock(now func() time.Time) ProcessorOpt {
	return func(p *Processor) {
		p.now = now
	}
}
