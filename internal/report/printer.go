// Package report provides formatted CLI output for match results.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/recruit-matcher/internal/types"
)

const (
	// boxWidth is the width of formatted output boxes
	boxWidth = 60
	// maxItemsToShow caps list output
	maxItemsToShow = 5
)

// Printer handles formatted output for match results.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs a human-readable summary of a match result.
func (p *Printer) PrintMatchResult(candidate *types.CandidateProfile, requirement *types.RequirementProfile, result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	if candidate != nil && candidate.Name != "" {
		sb.WriteString(fmt.Sprintf("Candidate: %s\n", candidate.Name))
	}
	if requirement != nil && requirement.Title != "" {
		sb.WriteString(fmt.Sprintf("Role:      %s\n", requirement.Title))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Total Score:  %.2f / 100  (%s, %s)\n", result.TotalScore, result.Grade(), result.Quality()))
	sb.WriteString(fmt.Sprintf("Semantic:     %.4f\n", result.SemanticScore))
	sb.WriteString(fmt.Sprintf("Skills:       %.4f\n", result.SkillMatchRatio))
	sb.WriteString(fmt.Sprintf("Experience:   %.4f\n", result.ExperienceScore))
	sb.WriteString(fmt.Sprintf("Education:    %.4f\n", result.EducationScore))

	p.printBox("Match Summary", strings.TrimRight(sb.String(), "\n"))

	p.printSkills(result)
	p.printNarrative(result)
}

// printSkills outputs the matched/missing partition with per-skill detail.
func (p *Printer) printSkills(result *types.MatchResult) {
	if len(result.MatchDetail) == 0 {
		return
	}

	var sb strings.Builder

	if len(result.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Matched (%d):\n", len(result.MatchedSkills)))
		for i, skill := range result.MatchedSkills {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MatchedSkills)-maxItemsToShow))
				break
			}
			detail := result.MatchDetail[skill]
			sb.WriteString(fmt.Sprintf("  • %s (%s, %.2f)\n", skill, detail.Method, detail.Score))
		}
	}

	if len(result.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Missing (%d):\n", len(result.MissingSkills)))
		missing := append([]string(nil), result.MissingSkills...)
		sort.Strings(missing)
		for i, skill := range missing {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(missing)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
	}

	p.printBox("Skills", strings.TrimRight(sb.String(), "\n"))
}

// printNarrative outputs strengths, weaknesses and recommendations.
func (p *Printer) printNarrative(result *types.MatchResult) {
	sections := []struct {
		title string
		items []string
	}{
		{"Strengths", result.Strengths},
		{"Weaknesses", result.Weaknesses},
		{"Recommendations", result.Recommendations},
	}

	for _, section := range sections {
		if len(section.items) == 0 {
			continue
		}
		var sb strings.Builder
		for _, item := range section.items {
			sb.WriteString(fmt.Sprintf("• %s\n", item))
		}
		p.printBox(section.title, strings.TrimRight(sb.String(), "\n"))
	}
}
