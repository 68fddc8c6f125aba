package profile

import (
	"fmt"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// NormalizeAffinityVector rescales a raw affinity vector from
// [sourceMin, sourceMax] onto the unit interval. Each value is clamped into
// the source range before the linear rescale, so out-of-range input degrades
// gracefully instead of producing scores outside [0.0, 1.0]. The vector must
// have exactly types.AffinityVectorSize components and the scale must be
// non-degenerate.
func NormalizeAffinityVector(raw []float64, sourceMin, sourceMax float64) ([]float64, error) {
	if len(raw) != types.AffinityVectorSize {
		return nil, &InvalidProfileError{
			Message: fmt.Sprintf("affinity vector must have exactly %d values, got %d", types.AffinityVectorSize, len(raw)),
		}
	}
	if sourceMax <= sourceMin {
		return nil, &InvalidProfileError{
			Message: fmt.Sprintf("source scale [%v, %v] is degenerate", sourceMin, sourceMax),
		}
	}

	normalized := make([]float64, len(raw))
	for i, v := range raw {
		if v < sourceMin {
			v = sourceMin
		}
		if v > sourceMax {
			v = sourceMax
		}
		normalized[i] = (v - sourceMin) / (sourceMax - sourceMin)
	}

	return normalized, nil
}

// NormalizeKeywords trims whitespace, lower-cases, and drops empty entries.
// Duplicates are kept; they collapse naturally when the list is treated as a
// set downstream.
func NormalizeKeywords(raw []string) []string {
	if len(raw) == 0 {
		return []string{}
	}

	normalized := make([]string, 0, len(raw))
	for _, s := range raw {
		cleaned := strings.ToLower(strings.TrimSpace(s))
		if cleaned != "" {
			normalized = append(normalized, cleaned)
		}
	}

	return normalized
}

// Normalize converts a raw candidate profile into the canonical
// NormalizedProfile. Missing keyword lists become empty lists, never an
// error. Normalization is pure: the same raw profile always yields the same
// result.
func Normalize(raw *types.CandidateProfile) (*types.NormalizedProfile, error) {
	if raw == nil {
		return nil, &InvalidProfileError{Message: "profile is nil"}
	}

	srcMin, srcMax := raw.ScaleBounds()
	vector, err := NormalizeAffinityVector(raw.AffinityVector, srcMin, srcMax)
	if err != nil {
		return nil, err
	}

	return &types.NormalizedProfile{
		AffinityVector:   vector,
		KnowledgeDomains: NormalizeKeywords(raw.KnowledgeDomains),
		TechSkills:       NormalizeKeywords(raw.TechSkills),
	}, nil
}
