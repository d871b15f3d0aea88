package backstop

import "time"

// Schedule is a lazy, finite sequence of delay durations. It is consumed by
// pulling values with Next until ok is false.
//
// A Schedule is single-use and owns private iteration state; it must not be
// shared across goroutines. Obtain a fresh one from a ScheduleProvider for
// each retry run.
type Schedule interface {
	// Next returns the next delay in the sequence.
	// ok is false once the sequence is exhausted.
	Next() (delay time.Duration, ok bool)
}

// ScheduleProvider produces fresh, independent delay schedules.
// Providers are immutable and safe for concurrent use; every call to
// Schedule returns a new sequence with its own random state.
type ScheduleProvider interface {
	Schedule() Schedule
}

// Classifier decides whether a failed attempt should be retried.
//
// attempt is zero-indexed (0 = first attempt). The returned error is the
// effective error: classifiers may substitute a different error than the one
// actually observed, normalizing what the caller eventually sees. Returning
// (true, err) requests another attempt if the schedule permits one; the
// effective error is what propagates when no attempt remains.
type Classifier func(attempt int, err error) (retry bool, effective error)
