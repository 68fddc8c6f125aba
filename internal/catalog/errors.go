// Package catalog loads the finished job catalog produced by the upstream
// ETL pipeline into the immutable in-memory form the matcher consumes.
package catalog

import "fmt"

// LoadError represents an error during catalog file I/O or JSON parsing.
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
