// Package stats derives corpus statistics (IDF weight tables and the cosine
// similarity baseline) from a catalog snapshot and memoizes them per catalog
// version.
package stats

import (
	"math/rand"

	"github.com/jonathan/job-matcher/internal/similarity"
	"github.com/jonathan/job-matcher/internal/types"
)

// DefaultBaselineSeed seeds the pair-sampling source so repeated statistics
// runs over the same catalog agree. Randomness stays confined to this
// computation; scoring never draws from it.
const DefaultBaselineSeed int64 = 1

// Options controls a statistics computation.
type Options struct {
	// BaselineSampleSize caps the number of record pairs sampled for the
	// cosine baseline. Zero means similarity.DefaultBaselineSampleSize.
	BaselineSampleSize int

	// BaselineSeed seeds the sampling source. Zero means DefaultBaselineSeed.
	BaselineSeed int64
}

// Compute derives the full statistics bundle for a catalog snapshot in one
// pass: both IDF tables and the cosine baseline. The computation is total;
// there is no incremental update path.
func Compute(catalog *types.Catalog, opts Options) *types.CorpusStatistics {
	var records []types.JobRecord
	var version string
	if catalog != nil {
		records = catalog.Records
		version = catalog.Version
	}

	seed := opts.BaselineSeed
	if seed == 0 {
		seed = DefaultBaselineSeed
	}
	rng := rand.New(rand.NewSource(seed))

	idf := similarity.CalculateIDFWeights(records)

	return &types.CorpusStatistics{
		CatalogVersion: version,
		KnowledgeIDF:   idf.KnowledgeDomains,
		SkillsIDF:      idf.TechSkills,
		CosineBaseline: similarity.CosineBaseline(records, opts.BaselineSampleSize, rng),
	}
}
