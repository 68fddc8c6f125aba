// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxResultsToShow is the default number of results to display per track
	maxResultsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the normalized candidate profile.
func (p *Printer) PrintProfile(prof *types.NormalizedProfile) {
	if prof == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString("Affinity: ")
	components := make([]string, 0, len(prof.AffinityVector))
	for _, v := range prof.AffinityVector {
		components = append(components, fmt.Sprintf("%.2f", v))
	}
	sb.WriteString(strings.Join(components, " "))
	sb.WriteString("\n\n")

	if len(prof.KnowledgeDomains) > 0 {
		knowledge := strings.Join(prof.KnowledgeDomains, ", ")
		if len(knowledge) > 45 {
			knowledge = knowledge[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Knowledge: %s\n", knowledge))
	}
	if len(prof.TechSkills) > 0 {
		skills := strings.Join(prof.TechSkills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills:    %s\n", skills))
	}

	p.printBox("NORMALIZED CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStatistics outputs a summary of the corpus statistics bundle.
func (p *Printer) PrintStatistics(statistics *types.CorpusStatistics) {
	if statistics == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Catalog version:   %s\n", statistics.CatalogVersion))
	sb.WriteString(fmt.Sprintf("Knowledge domains: %d unique keywords\n", len(statistics.KnowledgeIDF)))
	sb.WriteString(fmt.Sprintf("Tech skills:       %d unique keywords\n", len(statistics.SkillsIDF)))
	sb.WriteString(fmt.Sprintf("Cosine baseline:   %.4f", statistics.CosineBaseline))

	p.printBox("CORPUS STATISTICS", sb.String())
}

// PrintTrackResults outputs the top ranked matches for one track with score
// breakdowns.
func (p *Printer) PrintTrackResults(tr *types.TrackResults) {
	if tr == nil || len(tr.Results) == 0 {
		return
	}

	w := tr.Track.Weights

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Weights: P %.0f%%  K %.0f%%  S %.0f%%\n\n",
		w.Personality*100, w.Knowledge*100, w.Skills*100))

	count := min(len(tr.Results), maxResultsToShow)
	for i := 0; i < count; i++ {
		result := tr.Results[i]
		title := result.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Score: %.4f (P:%.2f K:%.2f S:%.2f)\n",
			result.FinalScore,
			result.Scores.Personality,
			result.Scores.Knowledge,
			result.Scores.Skills))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(tr.Results) > maxResultsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(tr.Results)-maxResultsToShow))
	}

	p.printBox(fmt.Sprintf("TRACK: %s", strings.ToUpper(tr.Track.Name)), sb.String())
}
