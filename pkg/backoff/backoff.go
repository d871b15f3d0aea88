package backoff

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vvka-141/backstop/pkg/backstop"
)

// NoLimit disables the delay ceiling. Delays then grow without bound.
const NoLimit = time.Duration(math.MaxInt64)

// Exponential specifies a jittered geometric delay sequence.
// The zero value is not usable; construct instances with New.
type Exponential struct {
	// count is the exact number of delays each sequence produces
	count int

	// firstDelay is the first delay in the sequence (pre-jitter)
	firstDelay time.Duration

	// maxDelay is the ceiling applied to every delay (NoLimit = unbounded)
	maxDelay time.Duration

	// factor is the multiplier applied at each step (typically 2.0)
	factor float64

	// jitter is the fraction of randomness mixed into each delay (0.0-1.0)
	// Jitter of 0.1 means +/- 10% randomness
	jitter float64

	// randFunc provides random values [0, 1) for jitter calculation.
	// Nil means each sequence seeds its own generator.
	randFunc func() float64
}

// Option is a functional option for configuring Exponential.
type Option func(*Exponential)

// WithFirstDelay sets the first delay in the sequence.
func WithFirstDelay(d time.Duration) Option {
	return func(b *Exponential) {
		b.firstDelay = d
	}
}

// WithMaxDelay sets the ceiling applied to every delay.
// Pass NoLimit to allow unbounded growth.
func WithMaxDelay(d time.Duration) Option {
	return func(b *Exponential) {
		b.maxDelay = d
	}
}

// WithFactor sets the multiplier applied to each delay step.
// A factor of 1 yields a constant delay (modulo jitter).
func WithFactor(f float64) Option {
	return func(b *Exponential) {
		b.factor = f
	}
}

// WithJitter sets the jitter fraction (0.0-1.0) mixed into each delay.
func WithJitter(j float64) Option {
	return func(b *Exponential) {
		b.jitter = j
	}
}

// WithRandFunc sets a custom source of random values in [0, 1) for jitter.
// Tests use this to make sequences deterministic.
func WithRandFunc(f func() float64) Option {
	return func(b *Exponential) {
		b.randFunc = f
	}
}

// New creates an exponential backoff spec producing exactly count delays.
// count may be zero, which yields empty sequences. Invalid configuration
// (negative count, non-positive delays, jitter outside [0,1], negative
// factor) fails fast with an error wrapping backstop.ErrInvalidSpec.
//
// Example:
//
//	spec, err := backoff.New(3,
//	    backoff.WithFirstDelay(200*time.Millisecond),
//	    backoff.WithMaxDelay(1*time.Minute),
//	    backoff.WithJitter(0.2),
//	)
func New(count int, opts ...Option) (*Exponential, error) {
	b := &Exponential{
		count:      count,
		firstDelay: backstop.DefaultFirstDelay,
		maxDelay:   backstop.DefaultMaxDelay,
		factor:     backstop.DefaultFactor,
		jitter:     backstop.DefaultJitter,
	}

	for _, opt := range opts {
		opt(b)
	}

	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Exponential) validate() error {
	if b.count < 0 {
		return fmt.Errorf("count must be non-negative, got %d: %w", b.count, backstop.ErrInvalidSpec)
	}
	if b.firstDelay <= 0 {
		return fmt.Errorf("first delay must be positive, got %v: %w", b.firstDelay, backstop.ErrInvalidSpec)
	}
	if b.maxDelay <= 0 {
		return fmt.Errorf("max delay must be positive, got %v: %w", b.maxDelay, backstop.ErrInvalidSpec)
	}
	if b.factor < 0 {
		return fmt.Errorf("factor must be non-negative, got %v: %w", b.factor, backstop.ErrInvalidSpec)
	}
	if b.jitter < 0 || b.jitter > 1 {
		return fmt.Errorf("jitter must be in [0,1], got %v: %w", b.jitter, backstop.ErrInvalidSpec)
	}
	return nil
}

// Schedule returns a fresh lazy sequence of exactly Count() delays.
// Each call yields an independent sequence with its own random state.
func (b *Exponential) Schedule() backstop.Schedule {
	randFunc := b.randFunc
	if randFunc == nil {
		// Private generator per sequence; never process-global state, so
		// concurrent sequences stay independent.
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		randFunc = rng.Float64
	}
	return &Sequence{spec: b, remaining: b.count, randFunc: randFunc}
}

// Delays materializes a fresh sequence into a slice.
func (b *Exponential) Delays() []time.Duration {
	out := make([]time.Duration, 0, b.count)
	seq := b.Schedule()
	for d, ok := seq.Next(); ok; d, ok = seq.Next() {
		out = append(out, d)
	}
	return out
}

// Count returns the number of delays each sequence produces.
func (b *Exponential) Count() int {
	return b.count
}

// FirstDelay returns the configured first delay.
func (b *Exponential) FirstDelay() time.Duration {
	return b.firstDelay
}

// MaxDelay returns the configured delay ceiling.
func (b *Exponential) MaxDelay() time.Duration {
	return b.maxDelay
}

// Factor returns the configured growth factor.
func (b *Exponential) Factor() float64 {
	return b.factor
}

// Jitter returns the configured jitter fraction.
func (b *Exponential) Jitter() float64 {
	return b.jitter
}

// Sequence is one lazy traversal of an Exponential spec.
// Not safe for concurrent use; obtain one per consumer via Schedule.
type Sequence struct {
	spec      *Exponential
	remaining int
	started   bool
	prev      float64 // last produced delay, in nanoseconds
	randFunc  func() float64
}

// Next returns the next delay, or ok=false once count delays were produced.
func (s *Sequence) Next() (time.Duration, bool) {
	if s.remaining <= 0 {
		return 0, false
	}
	s.remaining--

	maxNs := float64(s.spec.maxDelay)

	var raw float64
	if !s.started {
		s.started = true
		raw = float64(s.spec.firstDelay)
	} else {
		raw = s.prev * s.spec.factor
	}
	if raw > maxNs {
		raw = maxNs
	}

	d := raw
	if s.spec.jitter > 0 {
		// Map [0,1) to [-1,1) and scale: delay * (1 + jitter*offset)
		offset := 2*s.randFunc() - 1
		d = raw * (1 + s.spec.jitter*offset)
	}

	// Jitter may overshoot the ceiling or collapse to zero; keep every
	// produced value inside (0, maxDelay].
	if d > maxNs {
		d = maxNs
	}
	if d < 1 {
		d = 1
	}

	s.prev = d
	return time.Duration(d), true
}

// Remaining reports how many delays the sequence has yet to produce.
func (s *Sequence) Remaining() int {
	return s.remaining
}
