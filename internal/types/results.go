package types

// ComponentScores holds the three per-axis scores for one record.
type ComponentScores struct {
	Personality float64 `json:"personality"`
	Knowledge   float64 `json:"knowledge"`
	Skills      float64 `json:"skills"`
}

// MatchResult is one scored catalog record. Scores carries the shaped
// component scores that feed the final score; RawScores carries the
// pre-shaping values for diagnostics. Results are produced fresh per request
// and never mutated afterwards.
type MatchResult struct {
	JobID       string          `json:"job_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	FinalScore  float64         `json:"final_score"`
	Scores      ComponentScores `json:"scores"`
	RawScores   ComponentScores `json:"raw_scores"`
}

// TrackResults is the ranked output of one track.
type TrackResults struct {
	Track   Track         `json:"track"`
	Results []MatchResult `json:"results"`
}

// MatchReport wraps the output of one match run across all requested tracks.
type MatchReport struct {
	RunID          string         `json:"run_id"`
	CatalogVersion string         `json:"catalog_version"`
	Tracks         []TrackResults `json:"tracks"`
}
