package retry

import (
	"context"
	"time"

	"github.com/vvka-141/backstop/pkg/backstop"
)

// Always is the default classifier: retry every failure and propagate the
// original error unchanged.
func Always(attempt int, err error) (bool, error) {
	return true, err
}

// Executor orchestrates retry attempts over a delay schedule.
//
// Thread Safety:
// The Executor itself is safe for concurrent use when calling Execute().
// The With* methods return a NEW instance with the setting applied,
// ensuring each goroutine can have its own configuration without shared
// state. The original Executor remains unchanged.
type Executor struct {
	provider backstop.ScheduleProvider
	classify backstop.Classifier
	onRetry  func(attempt int, err error, delay time.Duration)
	logger   backstop.Logger
}

// NewExecutor creates a retry executor drawing delays from provider.
// Panics if provider is nil.
func NewExecutor(provider backstop.ScheduleProvider, opts ...ExecutorOption) *Executor {
	if provider == nil {
		panic("provider cannot be nil")
	}
	e := &Executor{
		provider: provider,
		classify: Always,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExecutorOption is a functional option for configuring an Executor.
type ExecutorOption func(*Executor)

// WithClassifier sets the failure classifier consulted after every failed
// attempt. The default is Always.
func WithClassifier(c backstop.Classifier) ExecutorOption {
	return func(e *Executor) {
		if c != nil {
			e.classify = c
		}
	}
}

// WithLogger sets the logger used for verbose attempt traces.
func WithLogger(l backstop.Logger) ExecutorOption {
	return func(e *Executor) {
		e.logger = l
	}
}

// WithOnRetry returns a new Executor with the specified retry callback.
// The callback fires before each inter-attempt wait, with the classified
// error and the delay about to be slept.
//
// This method does NOT modify the receiver; it returns a new instance.
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// Execute runs the operation, retrying failures per the schedule and the
// classifier. It returns nil as soon as an attempt succeeds. On terminal
// failure it returns the classifier's effective error from the final
// attempt; earlier errors are discarded.
//
// The classifier is consulted on every failure, including the last one, so
// reclassification applies even when no retry budget remains. The wait
// between attempts is context-aware: cancellation during the wait returns
// ctx.Err().
func (e *Executor) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	seq := e.provider.Schedule()

	for attempt := 0; ; attempt++ {
		err := operation(ctx)
		if err == nil {
			return nil
		}

		shouldRetry, effective := e.classify(attempt, err)

		if !shouldRetry {
			e.logf("attempt %d failed, not retryable: %v", attempt, effective)
			return effective
		}

		delay, ok := seq.Next()
		if !ok {
			// Schedule exhausted: the classified error from this final
			// attempt propagates, retry request notwithstanding.
			e.logf("attempt %d failed, schedule exhausted: %v", attempt, effective)
			return effective
		}

		if e.onRetry != nil {
			e.onRetry(attempt, effective, delay)
		}
		e.logf("attempt %d failed, retrying in %v: %v", attempt, delay, effective)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (e *Executor) logf(format string, args ...interface{}) {
	if e.logger != nil {
		e.logger.Verbose(format, args...)
	}
}

// Do runs a value-returning operation under the executor. On success it
// returns the succeeding attempt's value; on terminal failure the zero
// value and the effective error.
func Do[T any](ctx context.Context, e *Executor, operation func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := e.Execute(ctx, func(ctx context.Context) error {
		var opErr error
		result, opErr = operation(ctx)
		return opErr
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
