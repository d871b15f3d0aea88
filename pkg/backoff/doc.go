// Package backoff produces delay schedules for retry loops.
//
// The central type is Exponential: an immutable specification of a jittered
// geometric delay sequence with a ceiling. Calling Schedule() yields a fresh,
// lazy sequence of exactly Count() delays; each sequence owns its own random
// state, so sequences are independent and safe to use from different
// goroutines (a single sequence is not).
//
// # Example Usage
//
//	spec, err := backoff.New(5,
//	    backoff.WithFirstDelay(200*time.Millisecond),
//	    backoff.WithMaxDelay(10*time.Second),
//	    backoff.WithJitter(0.2),
//	)
//	if err != nil {
//	    return err
//	}
//	seq := spec.Schedule()
//	for d, ok := seq.Next(); ok; d, ok = seq.Next() {
//	    time.Sleep(d)
//	}
//
// With jitter disabled the sequence is exactly deterministic geometric
// growth capped at the maximum delay. Fixed, hand-written schedules are
// available through Of().
package backoff
