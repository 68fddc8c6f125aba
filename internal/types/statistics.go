package types

// IDFWeights maps a keyword to its normalized inverse-document-frequency
// weight in [0.0, 1.0]. 1.0 marks the rarest keyword observed in the corpus;
// weights near zero mark keywords that appear in almost every record.
type IDFWeights map[string]float64

// CorpusStatistics is the immutable bundle of catalog-derived numbers the
// matcher needs: one IDF table per keyword category plus the average
// inter-record cosine similarity baseline. Computed once per catalog
// version, all-or-nothing; never partially updated.
type CorpusStatistics struct {
	CatalogVersion string     `json:"catalog_version"`
	KnowledgeIDF   IDFWeights `json:"knowledge_idf"`
	SkillsIDF      IDFWeights `json:"skills_idf"`

	// CosineBaseline is the typical affinity similarity between two
	// unrelated records, in [0.0, 1.0]. Personality scores are recentered
	// against it so an average pair scores 0 rather than some arbitrary
	// positive number.
	CosineBaseline float64 `json:"cosine_baseline"`
}
