package similarity

import "math"

// Default sigmoid parameters tuned for raw weighted-Jaccard scores, which
// compress most real overlaps near zero.
const (
	DefaultSigmoidCenter    = 0.15
	DefaultSigmoidSteepness = 20.0
)

// Sigmoid applies a logistic S-curve to a raw overlap score, spreading
// mid-range overlaps into a more discriminative range while keeping perfect
// and near-zero matches near their extremes. Inputs at or below zero are
// floored to 0.0: "no overlap" must never be shaped upward.
func Sigmoid(x, center, steepness float64) float64 {
	if x <= 0 {
		return 0.0
	}

	return clamp01(1.0 / (1.0 + math.Exp(-steepness*(x-center))))
}
