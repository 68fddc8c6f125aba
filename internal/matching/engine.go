package matching

import (
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-matcher/internal/types"
)

// MatchAll scores every catalog record against the profile, combines the
// component scores with the given weights, and returns the first topN
// results ranked by final score. topN at or above the catalog size, or
// non-positive, returns everything.
//
// Records are scored concurrently; each worker writes only its own result
// slots, so the pre-sort order is exactly the catalog order. The sort is
// stable and compares final scores only: records with equal final scores
// keep their catalog order, which makes repeated runs bit-identical.
func MatchAll(
	prof *types.NormalizedProfile,
	catalog *types.Catalog,
	statistics *types.CorpusStatistics,
	weights types.WeightConfig,
	topN int,
	params Params,
) ([]types.MatchResult, error) {
	// Surface bad weights before any scoring work begins.
	if !weights.IsNormalized() {
		return nil, &InvalidWeightsError{Sum: weights.Sum()}
	}

	records := catalog.Records
	results := make([]types.MatchResult, len(records))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for i := range records {
		i := i
		g.Go(func() error {
			record := &records[i]
			shaped, raw, err := ScoreRecord(prof, record, statistics, params)
			if err != nil {
				return err
			}

			final, err := Combine(shaped, weights)
			if err != nil {
				return err
			}

			results[i] = types.MatchResult{
				JobID:       record.ID,
				Title:       record.Title,
				Description: record.Description,
				FinalScore:  round4(final),
				Scores:      roundScores(shaped),
				RawScores:   roundScores(raw),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("matching failed: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})

	if topN > 0 && topN < len(results) {
		results = results[:topN]
	}

	return results, nil
}

// MatchTracks runs MatchAll once per track against the same profile,
// catalog, and statistics bundle, returning one ranked list per track in the
// order supplied. Every track's weights are validated up front so a bad
// configuration fails before any scoring starts; tracks then run in
// parallel, each filling its own result list off the shared read-only
// statistics.
func MatchTracks(
	prof *types.NormalizedProfile,
	catalog *types.Catalog,
	statistics *types.CorpusStatistics,
	tracks []types.Track,
	topN int,
	params Params,
) ([]types.TrackResults, error) {
	if len(tracks) == 0 {
		tracks = types.DefaultTracks()
	}

	for _, track := range tracks {
		if !track.Weights.IsNormalized() {
			return nil, &InvalidWeightsError{Track: track.Name, Sum: track.Weights.Sum()}
		}
	}

	trackResults := make([]types.TrackResults, len(tracks))

	g := new(errgroup.Group)
	for i := range tracks {
		i := i
		g.Go(func() error {
			track := tracks[i]
			ranked, err := MatchAll(prof, catalog, statistics, track.Weights, topN, params)
			if err != nil {
				return fmt.Errorf("track %s: %w", track.Name, err)
			}
			trackResults[i] = types.TrackResults{Track: track, Results: ranked}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return trackResults, nil
}
