// Package profile converts raw candidate profiles into the canonical
// normalized representation used by the match engine.
package profile

import "fmt"

// InvalidProfileError reports a raw profile that cannot be normalized, such
// as an affinity vector with the wrong number of components or a degenerate
// source scale.
type InvalidProfileError struct {
	Message string
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid profile: %s", e.Message)
}
