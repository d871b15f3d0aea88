package backoff

import (
	"time"

	"github.com/vvka-141/backstop/pkg/backstop"
)

// Fixed is an explicit, hand-written delay schedule.
type Fixed struct {
	delays []time.Duration
}

// Of builds a fixed schedule from the given delays, in order.
// Of() with no arguments is a legal empty schedule: a retry run under it
// attempts the operation exactly once.
func Of(delays ...time.Duration) *Fixed {
	cp := make([]time.Duration, len(delays))
	copy(cp, delays)
	return &Fixed{delays: cp}
}

// Schedule returns a fresh traversal of the fixed delays.
func (f *Fixed) Schedule() backstop.Schedule {
	return &fixedSequence{delays: f.delays}
}

// Delays returns a copy of the schedule's delays.
func (f *Fixed) Delays() []time.Duration {
	cp := make([]time.Duration, len(f.delays))
	copy(cp, f.delays)
	return cp
}

// Count returns the number of delays in the schedule.
func (f *Fixed) Count() int {
	return len(f.delays)
}

type fixedSequence struct {
	delays []time.Duration
	pos    int
}

func (s *fixedSequence) Next() (time.Duration, bool) {
	if s.pos >= len(s.delays) {
		return 0, false
	}
	d := s.delays[s.pos]
	s.pos++
	return d, true
}
