// Package classify provides ready-made failure classifiers for retry loops.
package classify

import "github.com/vvka-141/backstop/pkg/backstop"

// Transient adapts a boolean transience test into a Classifier.
// Transient errors are retried; everything else stops the loop. The error
// always propagates unchanged.
func Transient(isTransient func(error) bool) backstop.Classifier {
	return func(attempt int, err error) (bool, error) {
		return isTransient(err), err
	}
}

// Reclassify wraps a classifier, replacing the effective error on terminal
// decisions with translate(err). Retry decisions are unchanged.
func Reclassify(c backstop.Classifier, translate func(error) error) backstop.Classifier {
	return func(attempt int, err error) (bool, error) {
		shouldRetry, effective := c(attempt, err)
		return shouldRetry, translate(effective)
	}
}
