package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaccard_BothEmpty(t *testing.T) {
	assert.Equal(t, 1.0, Jaccard([]string{}, []string{}))
}

func TestJaccard_OneEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Jaccard([]string{"a"}, []string{}))
	assert.Equal(t, 0.0, Jaccard([]string{}, []string{"a"}))
}

func TestJaccard_PartialOverlap(t *testing.T) {
	a := []string{"python", "sql", "java"}
	b := []string{"python", "sql", "c++"}

	// Intersection {python, sql}, union {python, sql, java, c++}.
	assert.InDelta(t, 0.5, Jaccard(a, b), 1e-9)
}

func TestJaccard_DeduplicatesBeforeCounting(t *testing.T) {
	a := []string{"python", "python", "python"}
	b := []string{"python"}

	assert.InDelta(t, 1.0, Jaccard(a, b), 1e-9)
}

func TestEditDistance(t *testing.T) {
	assert.Equal(t, 0, EditDistance("python", "python"))
	assert.Equal(t, 1, EditDistance("python", "pythom"))
	assert.Equal(t, 2, EditDistance("node", "nodejs"))
	assert.Equal(t, 3, EditDistance("", "sql"))
	assert.Equal(t, 3, EditDistance("sql", ""))
	assert.Equal(t, 3, EditDistance("kitten", "sitting"))
}

func TestEditDistance_CaseSensitive(t *testing.T) {
	assert.Equal(t, 1, EditDistance("Python", "python"))
}

func TestFuzzyMatch(t *testing.T) {
	assert.True(t, FuzzyMatch("python", "pythom", 0.70))
	assert.False(t, FuzzyMatch("node", "nodejs", 0.70))
	assert.True(t, FuzzyMatch("exact", "exact", 0.99))
	assert.True(t, FuzzyMatch("", "", 0.99))
}

func TestFindFuzzyMatches_ReportsJobSideTokens(t *testing.T) {
	user := []string{"python", "javascript"}
	job := []string{"pythom", "java", "sql"}

	matches := FindFuzzyMatches(user, job, 0.70)

	assert.True(t, matches["pythom"])
	assert.False(t, matches["sql"])
	// Only job-side tokens ever appear in the match set.
	assert.False(t, matches["python"])
}

func TestFindFuzzyMatches_ManyToOneAllowed(t *testing.T) {
	user := []string{"python", "pythons"}
	job := []string{"python"}

	matches := FindFuzzyMatches(user, job, 0.70)
	assert.Len(t, matches, 1)
	assert.True(t, matches["python"])
}

func TestWeightedJaccard_BothEmpty(t *testing.T) {
	assert.Equal(t, 1.0, WeightedJaccard(nil, nil, nil, 0.70))
}

func TestWeightedJaccard_OneEmpty(t *testing.T) {
	assert.Equal(t, 0.0, WeightedJaccard([]string{"python"}, nil, nil, 0.70))
	assert.Equal(t, 0.0, WeightedJaccard(nil, []string{"python"}, nil, 0.70))
}

func TestWeightedJaccard_IDFWeighting(t *testing.T) {
	idf := map[string]float64{
		"python":        0.9,
		"sql":           0.8,
		"communication": 0.1,
	}

	score := WeightedJaccard([]string{"python"}, []string{"python", "communication"}, idf, 0.70)

	// Matched weight 0.9 over union weight 0.9 + 0.1.
	assert.InDelta(t, 0.9, score, 1e-9)
}

func TestWeightedJaccard_UnknownKeywordsGetDefaultWeight(t *testing.T) {
	score := WeightedJaccard([]string{"zig"}, []string{"zig", "cobol"}, map[string]float64{}, 0.70)

	// Both tokens carry DefaultIDFWeight: 0.1 / (0.1 + 0.1).
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestWeightedJaccard_FuzzyAndExactMatchesUnion(t *testing.T) {
	idf := map[string]float64{
		"python": 0.9,
		"pandas": 0.7,
	}

	// "python" matches exactly, "pandas" only via the typo.
	score := WeightedJaccard([]string{"python", "pandsa"}, []string{"python", "pandas"}, idf, 0.60)

	// Union includes the user-side typo token at the default weight:
	// (0.9 + 0.7) / (0.9 + 0.7 + 0.1).
	assert.InDelta(t, 1.6/1.7, score, 1e-9)
}

func TestWeightedJaccard_ZeroWeightUnion(t *testing.T) {
	idf := map[string]float64{
		"python": 0.0,
		"sql":    0.0,
	}

	score := WeightedJaccard([]string{"python"}, []string{"sql"}, idf, 0.70)
	assert.Equal(t, 0.0, score)
}
