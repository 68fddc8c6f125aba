package similarity

import (
	"math"

	"github.com/jonathan/job-matcher/internal/types"
)

// CategoryIDF holds the normalized IDF table for each keyword category.
type CategoryIDF struct {
	KnowledgeDomains types.IDFWeights
	TechSkills       types.IDFWeights
}

// CalculateIDFWeights computes normalized inverse-document-frequency weights
// for every keyword in the catalog, per category. Raw IDF is
// ln(totalRecords/documentFrequency) with keyword sets de-duplicated per
// record before counting; each category is then divided by its own maximum
// so weights land in [0.0, 1.0] with 1.0 marking the rarest observed
// keyword. An empty catalog or an empty category yields empty tables.
func CalculateIDFWeights(records []types.JobRecord) CategoryIDF {
	total := len(records)
	if total == 0 {
		return CategoryIDF{
			KnowledgeDomains: types.IDFWeights{},
			TechSkills:       types.IDFWeights{},
		}
	}

	knowledgeDF := make(map[string]int)
	skillsDF := make(map[string]int)
	for _, rec := range records {
		for kw := range toSet(rec.KnowledgeDomains) {
			knowledgeDF[kw]++
		}
		for kw := range toSet(rec.TechSkills) {
			skillsDF[kw]++
		}
	}

	return CategoryIDF{
		KnowledgeDomains: normalizedIDF(knowledgeDF, total),
		TechSkills:       normalizedIDF(skillsDF, total),
	}
}

func normalizedIDF(documentFrequency map[string]int, totalRecords int) types.IDFWeights {
	raw := make(types.IDFWeights, len(documentFrequency))
	maxIDF := 0.0
	for kw, df := range documentFrequency {
		if df <= 0 {
			continue
		}
		idf := math.Log(float64(totalRecords) / float64(df))
		raw[kw] = idf
		if idf > maxIDF {
			maxIDF = idf
		}
	}

	weights := make(types.IDFWeights, len(raw))
	for kw, idf := range raw {
		if maxIDF > 0 {
			weights[kw] = idf / maxIDF
		} else {
			weights[kw] = 0.0
		}
	}

	return weights
}
