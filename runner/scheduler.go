package runner

import "time"

// Scheduler turns wall clock time into a count of fixed length ticks. Time is
// accumulated between calls and one tick is due per full interval, so a late
// frame never skips a tick the way an exact modulo check would.
type Scheduler struct {
	Interval time.Duration
	// MaxSteps caps the ticks reported by one call. Time beyond the cap is
	// dropped. Zero means no cap.
	MaxSteps int

	last        time.Time
	accumulated time.Duration
	started     bool
}

// NewScheduler returns a scheduler for the given cadence.
func NewScheduler(interval time.Duration, maxSteps int) *Scheduler {
	return &Scheduler{Interval: interval, MaxSteps: maxSteps}
}

// Due reports how many ticks are due at now. The first call only starts the
// clock.
func (s *Scheduler) Due(now time.Time) int {
	if !s.started {
		s.started = true
		s.last = now
		return 0
	}
	if elapsed := now.Sub(s.last); elapsed > 0 {
		s.accumulated += elapsed
	}
	s.last = now

	if s.Interval <= 0 {
		s.accumulated = 0
		return 1
	}

	steps := int(s.accumulated / s.Interval)
	s.accumulated -= time.Duration(steps) * s.Interval
	if s.MaxSteps > 0 && steps > s.MaxSteps {
		steps = s.MaxSteps
	}
	return steps
}

// Reset restarts the clock at now and discards accumulated time.
func (s *Scheduler) Reset(now time.Time) {
	s.started = true
	s.last = now
	s.accumulated = 0
}
