package mobs

type SchedulerOpt func(*Scheduler)

// WithMoveChance sets the per-tick wander probability.
func WithMoveChance(p float64) SchedulerOpt {
	return func(s *Scheduler) {
		s.moveChance = p
	}
}

// WithRolls replaces the random sources. pick draws a choice index in
// [0,n), chance draws the wander roll in [0,1).
func WithRolls(pick func(n int) int, chance func() float64) SchedulerOpt {
	return func(s *Scheduler) {
		s.pick = pick
		s.chance = chance
	}
}
