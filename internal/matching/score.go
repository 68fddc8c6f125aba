package matching

import (
	"fmt"
	"math"

	"github.com/jonathan/job-matcher/internal/similarity"
	"github.com/jonathan/job-matcher/internal/types"
)

// Params holds the scoring knobs shared by every record in a match run.
type Params struct {
	FuzzyThreshold   float64
	SigmoidCenter    float64
	SigmoidSteepness float64
}

// DefaultFuzzyThreshold is the minimum normalized string similarity for two
// keywords to count as the same token.
const DefaultFuzzyThreshold = 0.70

// DefaultParams returns the tuned scoring parameters.
func DefaultParams() Params {
	return Params{
		FuzzyThreshold:   DefaultFuzzyThreshold,
		SigmoidCenter:    similarity.DefaultSigmoidCenter,
		SigmoidSteepness: similarity.DefaultSigmoidSteepness,
	}
}

// ScoreRecord computes the shaped and raw component scores for one catalog
// record against a normalized profile.
//
// Personality: cosine similarity of the affinity vectors, recentered against
// the corpus baseline. Knowledge and skills: IDF-weighted Jaccard shaped
// through the sigmoid. A record vector of the wrong length is treated as the
// documented neutral all-zero vector rather than an error; malformed catalog
// data is the ETL collaborator's concern.
func ScoreRecord(
	prof *types.NormalizedProfile,
	record *types.JobRecord,
	statistics *types.CorpusStatistics,
	params Params,
) (shaped, raw types.ComponentScores, err error) {
	recordVector := record.AffinityVector
	if len(recordVector) != types.AffinityVectorSize {
		recordVector = make([]float64, types.AffinityVectorSize)
	}

	rawCosine, err := similarity.Cosine(prof.AffinityVector, recordVector)
	if err != nil {
		return shaped, raw, fmt.Errorf("scoring record %s: %w", record.ID, err)
	}

	rawKnowledge := similarity.WeightedJaccard(
		prof.KnowledgeDomains, record.KnowledgeDomains,
		statistics.KnowledgeIDF, params.FuzzyThreshold,
	)
	rawSkills := similarity.WeightedJaccard(
		prof.TechSkills, record.TechSkills,
		statistics.SkillsIDF, params.FuzzyThreshold,
	)

	raw = types.ComponentScores{
		Personality: rawCosine,
		Knowledge:   rawKnowledge,
		Skills:      rawSkills,
	}
	shaped = types.ComponentScores{
		Personality: similarity.NormalizeWithBaseline(rawCosine, statistics.CosineBaseline),
		Knowledge:   similarity.Sigmoid(rawKnowledge, params.SigmoidCenter, params.SigmoidSteepness),
		Skills:      similarity.Sigmoid(rawSkills, params.SigmoidCenter, params.SigmoidSteepness),
	}

	return shaped, raw, nil
}

// Combine blends the shaped component scores into one final score. Weights
// are validated before any arithmetic; every component lies in [0.0, 1.0],
// so a normalized combination does too.
func Combine(scores types.ComponentScores, weights types.WeightConfig) (float64, error) {
	if !weights.IsNormalized() {
		return 0, &InvalidWeightsError{Sum: weights.Sum()}
	}

	return scores.Personality*weights.Personality +
		scores.Knowledge*weights.Knowledge +
		scores.Skills*weights.Skills, nil
}

// round4 trims scores to 4 decimal places for serialized results.
func round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}

func roundScores(s types.ComponentScores) types.ComponentScores {
	return types.ComponentScores{
		Personality: round4(s.Personality),
		Knowledge:   round4(s.Knowledge),
		Skills:      round4(s.Skills),
	}
}
