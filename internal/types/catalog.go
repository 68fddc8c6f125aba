// Package types provides type definitions for structured data used throughout the job-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AffinityVectorSize is the number of personality axes in an affinity vector.
// The six components follow the canonical RIASEC order:
// Realistic, Investigative, Artistic, Social, Enterprising, Conventional.
const AffinityVectorSize = 6

// JobRecord represents one occupation in the catalog. Records are immutable
// once loaded; the matcher never mutates them.
type JobRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// AffinityVector always holds exactly 6 components in [0.0, 1.0].
	// Missing source data is represented as 0.0, never as absence.
	AffinityVector []float64 `json:"affinity_vector"`

	// KnowledgeDomains and TechSkills are case-normalized keyword lists.
	KnowledgeDomains []string `json:"knowledge_domains"`
	TechSkills       []string `json:"tech_skills"`

	// Tier is an optional difficulty/preparation zone used only for
	// pre-match filtering, never for scoring. Zero means unset.
	Tier int `json:"tier,omitempty"`
}

// Catalog is an ordered, read-only collection of job records plus the
// version fingerprint used to key corpus statistics memoization.
type Catalog struct {
	// Version identifies this catalog snapshot. The loader derives it from
	// the file contents; statistics computed for one version are never
	// reused for another.
	Version string `json:"version"`

	Records []JobRecord `json:"records"`
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Records)
}

// FilterByTier returns a catalog containing only records whose tier falls in
// [minTier, maxTier]. Records with an unset tier (zero) are kept: the tier is
// an optional attribute and absence must not exclude a record. A zero maxTier
// means no upper bound. The returned catalog shares the parent's version so
// cached statistics remain valid for scoring the subset.
func (c *Catalog) FilterByTier(minTier, maxTier int) *Catalog {
	if c == nil {
		return nil
	}
	if minTier <= 0 && maxTier <= 0 {
		return c
	}

	filtered := make([]JobRecord, 0, len(c.Records))
	for _, rec := range c.Records {
		if rec.Tier == 0 {
			filtered = append(filtered, rec)
			continue
		}
		if minTier > 0 && rec.Tier < minTier {
			continue
		}
		if maxTier > 0 && rec.Tier > maxTier {
			continue
		}
		filtered = append(filtered, rec)
	}

	return &Catalog{Version: c.Version, Records: filtered}
}
