package runner

import "time"

// SteppedClock returns a clock that advances by step on every reading. With
// step equal to the tick interval every loop iteration fires one tick, which
// replays a session as fast as it can be rendered.
func SteppedClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}
