package similarity

import (
	"math/rand"

	"github.com/jonathan/job-matcher/internal/types"
)

// Baseline sampling parameters.
const (
	DefaultBaselineSampleSize = 100

	// FallbackBaseline is used when the catalog is too small to sample or
	// no sampled pair had a well-formed vector.
	FallbackBaseline = 0.75
)

// CosineBaseline estimates the typical affinity similarity between two
// unrelated records by averaging the cosine similarity of up to sampleSize
// distinct unordered record pairs, drawn without replacement. Pairs with a
// malformed vector on either side contribute nothing. Catalogs with fewer
// than two records, and sample runs where every pair was malformed, fall
// back to FallbackBaseline.
//
// The rng is the only source of randomness in the whole engine; it is owned
// by statistics computation and never consulted during per-match scoring.
func CosineBaseline(records []types.JobRecord, sampleSize int, rng *rand.Rand) float64 {
	n := len(records)
	if n < 2 {
		return FallbackBaseline
	}

	maxPairs := n * (n - 1) / 2
	if sampleSize <= 0 {
		sampleSize = DefaultBaselineSampleSize
	}

	var sum float64
	var count int

	if sampleSize >= maxPairs {
		// Small catalog: use every distinct pair, no sampling needed.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if sim, ok := pairCosine(records[i], records[j]); ok {
					sum += sim
					count++
				}
			}
		}
	} else {
		seen := make(map[[2]int]bool, sampleSize)
		for len(seen) < sampleSize {
			i := rng.Intn(n)
			j := rng.Intn(n)
			if i == j {
				continue
			}
			if i > j {
				i, j = j, i
			}
			key := [2]int{i, j}
			if seen[key] {
				continue
			}
			seen[key] = true

			if sim, ok := pairCosine(records[i], records[j]); ok {
				sum += sim
				count++
			}
		}
	}

	if count == 0 {
		return FallbackBaseline
	}

	return sum / float64(count)
}

func pairCosine(a, b types.JobRecord) (float64, bool) {
	if len(a.AffinityVector) != types.AffinityVectorSize || len(b.AffinityVector) != types.AffinityVectorSize {
		return 0, false
	}
	sim, err := Cosine(a.AffinityVector, b.AffinityVector)
	if err != nil {
		return 0, false
	}
	return sim, true
}
