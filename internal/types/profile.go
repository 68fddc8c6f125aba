package types

import (
	"github.com/go-playground/validator/v10"
)

// Default source scale for raw affinity scores (a 1-7 interest inventory).
const (
	DefaultSourceScaleMin = 1.0
	DefaultSourceScaleMax = 7.0
)

// CandidateProfile is the raw matching input supplied by the caller. The
// affinity vector is on the declared source scale (default 1-7); keyword
// lists are free text and may be empty.
type CandidateProfile struct {
	AffinityVector   []float64 `json:"affinity_vector" validate:"required,len=6"`
	KnowledgeDomains []string  `json:"knowledge_domains,omitempty"`
	TechSkills       []string  `json:"tech_skills,omitempty"`

	// SourceScaleMin/Max declare the scale of AffinityVector. Both zero
	// means the default 1-7 scale.
	SourceScaleMin float64 `json:"source_scale_min,omitempty"`
	SourceScaleMax float64 `json:"source_scale_max,omitempty"`
}

// Validate validates the CandidateProfile using the validator.
func (p *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// ScaleBounds returns the declared source scale, falling back to the default
// 1-7 scale when unset.
func (p *CandidateProfile) ScaleBounds() (min, max float64) {
	if p.SourceScaleMin == 0 && p.SourceScaleMax == 0 {
		return DefaultSourceScaleMin, DefaultSourceScaleMax
	}
	return p.SourceScaleMin, p.SourceScaleMax
}

// NormalizedProfile is the canonical matching input: a unit-interval affinity
// vector and lower-cased, trimmed keyword lists. Produced by the profile
// normalizer; the same raw profile always normalizes identically.
type NormalizedProfile struct {
	AffinityVector   []float64 `json:"affinity_vector"`
	KnowledgeDomains []string  `json:"knowledge_domains"`
	TechSkills       []string  `json:"tech_skills"`
}
