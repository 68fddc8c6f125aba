package types

import "math"

// WeightSumTolerance is the allowed floating point slack when checking that
// the three component weights sum to 1.0.
const WeightSumTolerance = 0.001

// WeightConfig holds the three component weights used to combine personality,
// knowledge and skills scores into a final score. Weights must be
// non-negative and sum to 1.0 within WeightSumTolerance.
type WeightConfig struct {
	Personality float64 `json:"personality" validate:"min=0"`
	Knowledge   float64 `json:"knowledge" validate:"min=0"`
	Skills      float64 `json:"skills" validate:"min=0"`
}

// Sum returns the total of the three weights.
func (w WeightConfig) Sum() float64 {
	return w.Personality + w.Knowledge + w.Skills
}

// IsNormalized reports whether the weights sum to 1.0 within tolerance and
// are all non-negative.
func (w WeightConfig) IsNormalized() bool {
	if w.Personality < 0 || w.Knowledge < 0 || w.Skills < 0 {
		return false
	}
	return math.Abs(w.Sum()-1.0) <= WeightSumTolerance
}

// Track names for the predefined weight configurations.
const (
	TrackCapability    = "capability"
	TrackCompatibility = "compatibility"
)

// Track is a named weight configuration defining one ranking.
type Track struct {
	Name    string       `json:"name"`
	Weights WeightConfig `json:"weights"`
}

// CapabilityTrack answers "can I get hired?": knowledge-heavy weighting.
func CapabilityTrack() Track {
	return Track{
		Name:    TrackCapability,
		Weights: WeightConfig{Knowledge: 0.5, Skills: 0.3, Personality: 0.2},
	}
}

// CompatibilityTrack answers "will I be happy?": personality-heavy weighting.
func CompatibilityTrack() Track {
	return Track{
		Name:    TrackCompatibility,
		Weights: WeightConfig{Personality: 0.7, Knowledge: 0.2, Skills: 0.1},
	}
}

// CustomTrack wraps arbitrary caller-supplied weights under a name. The
// weights are validated when matching starts, not here.
func CustomTrack(name string, weights WeightConfig) Track {
	return Track{Name: name, Weights: weights}
}

// DefaultTracks returns the two predefined tracks in canonical order.
func DefaultTracks() []Track {
	return []Track{CapabilityTrack(), CompatibilityTrack()}
}
