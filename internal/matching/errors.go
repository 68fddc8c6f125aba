// Package matching implements the match engine: per-record component
// scoring, weighted combination, and ranked multi-track matching.
package matching

import "fmt"

// InvalidWeightsError reports a weight configuration that cannot be used for
// scoring: negative components or a sum away from 1.0. It is raised before
// any scoring work begins.
type InvalidWeightsError struct {
	Track string
	Sum   float64
}

func (e *InvalidWeightsError) Error() string {
	if e.Track != "" {
		return fmt.Sprintf("invalid weights for track %q: must be non-negative and sum to 1.0, got sum %.3f", e.Track, e.Sum)
	}
	return fmt.Sprintf("invalid weights: must be non-negative and sum to 1.0, got sum %.3f", e.Sum)
}
