package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tieredCatalog() *Catalog {
	return &Catalog{
		Version: "v-tiers",
		Records: []JobRecord{
			{ID: "untagged"},
			{ID: "entry", Tier: 1},
			{ID: "mid", Tier: 3},
			{ID: "senior", Tier: 5},
		},
	}
}

func recordIDs(c *Catalog) []string {
	ids := make([]string, 0, c.Len())
	for _, r := range c.Records {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestFilterByTier_NoBoundsReturnsSameCatalog(t *testing.T) {
	cat := tieredCatalog()
	assert.Same(t, cat, cat.FilterByTier(0, 0))
}

func TestFilterByTier_Range(t *testing.T) {
	filtered := tieredCatalog().FilterByTier(2, 4)
	assert.Equal(t, []string{"untagged", "mid"}, recordIDs(filtered))
}

func TestFilterByTier_MinOnly(t *testing.T) {
	filtered := tieredCatalog().FilterByTier(3, 0)
	assert.Equal(t, []string{"untagged", "mid", "senior"}, recordIDs(filtered))
}

func TestFilterByTier_MaxOnly(t *testing.T) {
	filtered := tieredCatalog().FilterByTier(0, 1)
	assert.Equal(t, []string{"untagged", "entry"}, recordIDs(filtered))
}

func TestFilterByTier_UnsetTierAlwaysKept(t *testing.T) {
	filtered := tieredCatalog().FilterByTier(4, 4)
	assert.Contains(t, recordIDs(filtered), "untagged")
}

func TestFilterByTier_SharesVersion(t *testing.T) {
	cat := tieredCatalog()
	filtered := cat.FilterByTier(1, 3)
	require.NotNil(t, filtered)
	assert.Equal(t, cat.Version, filtered.Version)
}

func TestCatalogLen_NilSafe(t *testing.T) {
	var cat *Catalog
	assert.Equal(t, 0, cat.Len())
	assert.Nil(t, cat.FilterByTier(1, 2))
}

func TestCandidateProfileValidate(t *testing.T) {
	valid := &CandidateProfile{AffinityVector: []float64{1, 2, 3, 4, 5, 6}}
	assert.NoError(t, valid.Validate())

	short := &CandidateProfile{AffinityVector: []float64{1, 2, 3}}
	assert.Error(t, short.Validate())

	missing := &CandidateProfile{}
	assert.Error(t, missing.Validate())
}

func TestScaleBounds_Defaults(t *testing.T) {
	p := &CandidateProfile{}
	min, max := p.ScaleBounds()
	assert.Equal(t, DefaultSourceScaleMin, min)
	assert.Equal(t, DefaultSourceScaleMax, max)

	p = &CandidateProfile{SourceScaleMin: 0, SourceScaleMax: 100}
	min, max = p.ScaleBounds()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 100.0, max)
}
