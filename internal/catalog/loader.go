package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"

	"github.com/jonathan/job-matcher/internal/profile"
	"github.com/jonathan/job-matcher/internal/types"
)

// versionLen is the number of hex characters of the content digest kept as
// the catalog version.
const versionLen = 12

// Wire format of jobs_database.json as emitted by the ETL pipeline.
type fileRecord struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Vectors     fileVectors  `json:"vectors"`
	Keywords    fileKeywords `json:"keywords"`
	Filters     fileFilters  `json:"filters"`
}

type fileVectors struct {
	Riasec []float64 `json:"riasec"`
}

type fileKeywords struct {
	KnowledgeDomains []string `json:"knowledge_domains"`
	TechSkills       []string `json:"tech_skills"`
}

type fileFilters struct {
	JobZone int `json:"job_zone"`
}

// Load reads a catalog JSON file and converts it into the immutable
// in-memory catalog. The catalog version is a digest of the file contents,
// so statistics memoized for one snapshot are never reused after the file
// changes.
func Load(path string) (*types.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: "failed to read catalog file " + path, Cause: err}
	}

	return Parse(data)
}

// Parse converts raw catalog JSON into the in-memory catalog. Missing fields
// default to their neutral values: an absent or wrong-length affinity vector
// becomes the all-zero vector and absent keyword lists become empty lists.
// Keywords are trimmed and lower-cased on the way in; the matcher assumes
// case-normalized catalog keywords.
func Parse(data []byte) (*types.Catalog, error) {
	var fileRecords []fileRecord
	if err := json.Unmarshal(data, &fileRecords); err != nil {
		return nil, &LoadError{Message: "failed to parse catalog JSON", Cause: err}
	}

	records := make([]types.JobRecord, 0, len(fileRecords))
	for _, fr := range fileRecords {
		records = append(records, types.JobRecord{
			ID:               fr.ID,
			Title:            fr.Title,
			Description:      fr.Description,
			AffinityVector:   neutralizeVector(fr.Vectors.Riasec),
			KnowledgeDomains: profile.NormalizeKeywords(fr.Keywords.KnowledgeDomains),
			TechSkills:       profile.NormalizeKeywords(fr.Keywords.TechSkills),
			Tier:             fr.Filters.JobZone,
		})
	}

	digest := sha256.Sum256(data)

	return &types.Catalog{
		Version: hex.EncodeToString(digest[:])[:versionLen],
		Records: records,
	}, nil
}

// neutralizeVector enforces the length-6 invariant: anything else is
// replaced by the documented neutral all-zero vector.
func neutralizeVector(v []float64) []float64 {
	if len(v) != types.AffinityVectorSize {
		return make([]float64, types.AffinityVectorSize)
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
