// Package similarity provides the pure similarity toolkit used by the match
// engine: vector cosine similarity with baseline correction, IDF-weighted set
// similarity with fuzzy matching, and sigmoid score shaping.
package similarity

import "fmt"

// InvalidInputError reports malformed toolkit input, such as a vector length
// mismatch or empty comparison vectors. It is always surfaced to the caller,
// never silently repaired.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}
