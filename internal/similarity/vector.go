package similarity

import (
	"fmt"
	"math"
)

// maxCosine is the theoretical maximum cosine similarity for non-negative
// affinity vectors.
const maxCosine = 1.0

// Cosine computes the cosine similarity between two vectors, clamped to
// [0.0, 1.0]. The canonical affinity vectors are non-negative by
// construction, so a true cosine similarity is already non-negative; the
// clamp guards against numerical drift.
//
// Vectors must have equal, positive length. A zero-magnitude vector yields
// 0.0 rather than a division by zero.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, &InvalidInputError{
			Message: fmt.Sprintf("vectors must have same length, got %d and %d", len(a), len(b)),
		}
	}
	if len(a) == 0 {
		return 0, &InvalidInputError{Message: "vectors cannot be empty"}
	}

	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}

	if magA == 0 || magB == 0 {
		return 0.0, nil
	}

	return clamp01(dot / (math.Sqrt(magA) * math.Sqrt(magB))), nil
}

// NormalizeWithBaseline rescales a raw cosine score relative to the corpus
// baseline: the sub-range [baseline, 1.0] maps linearly onto [0.0, 1.0] and
// anything below the baseline collapses to 0.0. A degenerate baseline at or
// above the maximum maps everything remaining to 1.0.
func NormalizeWithBaseline(rawCosine, baseline float64) float64 {
	if rawCosine < baseline {
		return 0.0
	}
	if baseline >= maxCosine {
		return 1.0
	}

	return clamp01((rawCosine - baseline) / (maxCosine - baseline))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
