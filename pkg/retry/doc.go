// Package retry re-invokes fallible operations according to a delay schedule
// and a pluggable classification of their failures.
//
// The Executor pairs a backstop.ScheduleProvider (usually a backoff spec)
// with a backstop.Classifier. A schedule of n delays allows n+1 attempts.
// After every failed attempt the classifier is consulted; it decides both
// whether to continue and which error ultimately propagates, so transport
// errors can be reclassified into domain errors on the way out.
//
// # Example Usage
//
//	spec, _ := backoff.New(3)
//	executor := retry.NewExecutor(spec,
//	    retry.WithClassifier(classify.Network()),
//	)
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return fetchRemoteState(ctx)
//	})
//
// Value-returning operations go through the generic Do helper.
//
// # Thread Safety
//
// Executor instances are safe for concurrent use. Every Execute call draws
// a fresh delay sequence from the provider, so concurrent runs never share
// iteration or random state. WithOnRetry and friends return new instances,
// allowing independent configurations per goroutine.
package retry
