package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

func record(id string, knowledge, skills []string) types.JobRecord {
	return types.JobRecord{
		ID:               id,
		KnowledgeDomains: knowledge,
		TechSkills:       skills,
	}
}

func TestCalculateIDFWeights_EmptyCatalog(t *testing.T) {
	idf := CalculateIDFWeights(nil)

	assert.Empty(t, idf.KnowledgeDomains)
	assert.Empty(t, idf.TechSkills)
}

func TestCalculateIDFWeights_RarestKeywordGetsFullWeight(t *testing.T) {
	records := []types.JobRecord{
		record("a", nil, []string{"python", "sql"}),
		record("b", nil, []string{"python", "sql"}),
		record("c", nil, []string{"python", "rust"}),
	}

	idf := CalculateIDFWeights(records)

	// "rust" appears in 1 of 3 records: the rarest, so weight 1.0.
	require.Contains(t, idf.TechSkills, "rust")
	assert.InDelta(t, 1.0, idf.TechSkills["rust"], 1e-9)

	// "python" appears everywhere: ln(3/3) = 0.
	assert.InDelta(t, 0.0, idf.TechSkills["python"], 1e-9)

	// "sql" sits between: ln(3/2)/ln(3/1).
	assert.Greater(t, idf.TechSkills["sql"], 0.0)
	assert.Less(t, idf.TechSkills["sql"], 1.0)
}

func TestCalculateIDFWeights_CategoriesAreIndependent(t *testing.T) {
	records := []types.JobRecord{
		record("a", []string{"mathematics"}, []string{"python"}),
		record("b", []string{"mathematics", "biology"}, []string{"python"}),
	}

	idf := CalculateIDFWeights(records)

	// Knowledge normalizes against its own maximum.
	assert.InDelta(t, 1.0, idf.KnowledgeDomains["biology"], 1e-9)
	assert.InDelta(t, 0.0, idf.KnowledgeDomains["mathematics"], 1e-9)

	// A category whose every keyword is ubiquitous normalizes to all zeros.
	assert.InDelta(t, 0.0, idf.TechSkills["python"], 1e-9)
}

func TestCalculateIDFWeights_DeduplicatesPerRecord(t *testing.T) {
	records := []types.JobRecord{
		record("a", nil, []string{"python", "python", "python"}),
		record("b", nil, []string{"rust"}),
	}

	idf := CalculateIDFWeights(records)

	// Repeats within one record count once: df(python) = 1, same as rust.
	assert.InDelta(t, idf.TechSkills["rust"], idf.TechSkills["python"], 1e-9)
}

func TestCalculateIDFWeights_EmptyCategory(t *testing.T) {
	records := []types.JobRecord{
		record("a", []string{"mathematics"}, nil),
		record("b", []string{"biology"}, nil),
	}

	idf := CalculateIDFWeights(records)

	assert.NotEmpty(t, idf.KnowledgeDomains)
	assert.Empty(t, idf.TechSkills)
}

func TestCalculateIDFWeights_AllWeightsInUnitInterval(t *testing.T) {
	records := []types.JobRecord{
		record("a", []string{"x", "y"}, []string{"python", "sql", "go"}),
		record("b", []string{"y", "z"}, []string{"python"}),
		record("c", []string{"x"}, []string{"sql", "go"}),
	}

	idf := CalculateIDFWeights(records)

	for kw, w := range idf.KnowledgeDomains {
		assert.GreaterOrEqual(t, w, 0.0, "knowledge weight for %s", kw)
		assert.LessOrEqual(t, w, 1.0, "knowledge weight for %s", kw)
	}
	for kw, w := range idf.TechSkills {
		assert.GreaterOrEqual(t, w, 0.0, "skills weight for %s", kw)
		assert.LessOrEqual(t, w, 1.0, "skills weight for %s", kw)
	}
}
