package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-matcher/internal/catalog"
	"github.com/jonathan/job-matcher/internal/matching"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/profile"
	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/stats"
	"github.com/jonathan/job-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank the job catalog against a candidate profile",
	Long:  "Scores every catalog record against a candidate profile on the personality, knowledge and skills axes and writes ranked per-track results as JSON.",
	RunE:  runMatch,
}

var (
	matchCatalogPath string
	matchProfilePath string
	matchOutputPath  string
	matchTrack       string
	matchWeights     string
	matchTopN        int
	matchMinTier     int
	matchMaxTier     int
	matchVerbose     bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchCatalogPath, "catalog", "c", "", "Path to jobs catalog JSON file (required unless set in config)")
	matchCmd.Flags().StringVarP(&matchProfilePath, "profile", "p", "", "Path to candidate profile JSON file (required unless set in config)")
	matchCmd.Flags().StringVarP(&matchOutputPath, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().StringVarP(&matchTrack, "track", "t", "both", "Track to run: capability, compatibility, both, or custom")
	matchCmd.Flags().StringVarP(&matchWeights, "weights", "w", "", "Custom weights as personality,knowledge,skills (requires --track custom)")
	matchCmd.Flags().IntVarP(&matchTopN, "top", "n", 0, "Number of results per track (default from config)")
	matchCmd.Flags().IntVar(&matchMinTier, "min-tier", 0, "Keep only records at or above this tier (0 = no bound)")
	matchCmd.Flags().IntVar(&matchMaxTier, "max-tier", 0, "Keep only records at or below this tier (0 = no bound)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed match information")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	catalogPath := matchCatalogPath
	if catalogPath == "" {
		catalogPath = cfg.Catalog
	}
	profilePath := matchProfilePath
	if profilePath == "" {
		profilePath = cfg.Profile
	}
	if catalogPath == "" {
		return fmt.Errorf("no catalog file: provide --catalog or set 'catalog' in the config file")
	}
	if profilePath == "" {
		return fmt.Errorf("no profile file: provide --profile or set 'profile' in the config file")
	}

	topN := matchTopN
	if topN == 0 {
		topN = cfg.TopN
	}

	// 1. Load catalog
	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	log.Info("catalog loaded",
		zap.String("path", catalogPath),
		zap.String("version", cat.Version),
		zap.Int("records", cat.Len()))

	// 2. Load and validate candidate profile
	candidate, err := loadCandidateProfile(profilePath)
	if err != nil {
		return err
	}

	// 3. Normalize profile
	normalized, err := profile.Normalize(candidate)
	if err != nil {
		return fmt.Errorf("failed to normalize profile: %w", err)
	}

	// 4. Compute corpus statistics over the full catalog
	provider := stats.NewProvider(stats.Options{
		BaselineSampleSize: cfg.BaselineSampleSize,
		BaselineSeed:       cfg.BaselineSeed,
	})
	statistics := provider.Get(cat)
	log.Debug("corpus statistics ready",
		zap.Int("knowledge_keywords", len(statistics.KnowledgeIDF)),
		zap.Int("skills_keywords", len(statistics.SkillsIDF)),
		zap.Float64("cosine_baseline", statistics.CosineBaseline))

	// 5. Optional tier filtering (never affects statistics)
	scoped := cat.FilterByTier(matchMinTier, matchMaxTier)
	if scoped.Len() != cat.Len() {
		log.Info("tier filter applied",
			zap.Int("kept", scoped.Len()),
			zap.Int("dropped", cat.Len()-scoped.Len()))
	}

	// 6. Run the requested tracks
	tracks, err := resolveTracks(matchTrack, matchWeights)
	if err != nil {
		return err
	}

	params := matching.Params{
		FuzzyThreshold:   cfg.FuzzyThreshold,
		SigmoidCenter:    cfg.SigmoidCenter,
		SigmoidSteepness: cfg.SigmoidSteepness,
	}

	trackResults, err := matching.MatchTracks(normalized, scoped, statistics, tracks, topN, params)
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	report := &types.MatchReport{
		RunID:          uuid.New().String(),
		CatalogVersion: cat.Version,
		Tracks:         trackResults,
	}

	if matchVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintProfile(normalized)
		printer.PrintStatistics(statistics)
		for i := range report.Tracks {
			printer.PrintTrackResults(&report.Tracks[i])
		}
	}

	// 7. Write report
	if err := writeReport(report, matchOutputPath); err != nil {
		return err
	}

	log.Info("match run complete",
		zap.String("run_id", report.RunID),
		zap.Int("tracks", len(report.Tracks)))

	return nil
}

// loadCandidateProfile reads, schema-checks, and struct-validates the
// candidate profile file. The schema check runs only when the schemas
// directory can be located; struct validation is authoritative.
func loadCandidateProfile(path string) (*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.ProfileSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return nil, fmt.Errorf("profile file %s is invalid: %w", path, err)
		}
	}

	var candidate types.CandidateProfile
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	if err := candidate.Validate(); err != nil {
		return nil, fmt.Errorf("invalid candidate profile: %w", err)
	}

	return &candidate, nil
}

// resolveTracks maps the --track flag (plus optional custom weights) onto
// the weight configurations to run.
func resolveTracks(track, weights string) ([]types.Track, error) {
	switch track {
	case "both", "":
		return types.DefaultTracks(), nil
	case types.TrackCapability:
		return []types.Track{types.CapabilityTrack()}, nil
	case types.TrackCompatibility:
		return []types.Track{types.CompatibilityTrack()}, nil
	case "custom":
		if weights == "" {
			return nil, fmt.Errorf("--track custom requires --weights personality,knowledge,skills")
		}
		w, err := parseWeights(weights)
		if err != nil {
			return nil, err
		}
		return []types.Track{types.CustomTrack("custom", w)}, nil
	default:
		return nil, fmt.Errorf("invalid track %q: must be capability, compatibility, both, or custom", track)
	}
}

func parseWeights(s string) (types.WeightConfig, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return types.WeightConfig{}, fmt.Errorf("invalid weights %q: expected three comma-separated values", s)
	}

	values := make([]float64, 3)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return types.WeightConfig{}, fmt.Errorf("invalid weight %q: %w", part, err)
		}
		values[i] = v
	}

	return types.WeightConfig{
		Personality: values[0],
		Knowledge:   values[1],
		Skills:      values[2],
	}, nil
}

func writeReport(report *types.MatchReport, outputPath string) error {
	jsonOutput, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match report to JSON: %w", err)
	}

	if outputPath == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(outputPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(outputPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write match report to %s: %w", outputPath, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Wrote match report to %s\n", outputPath)
	return nil
}
