// Package types provides type definitions for structured data used throughout the matching system.
package types

import (
	"regexp"
	"strconv"
	"strings"
)

// ReferenceYear anchors open-ended date ranges like "2020-present".
// Kept fixed so that experience extraction stays deterministic across runs.
const ReferenceYear = 2025

// CandidateProfile represents a candidate's CV with extracted information.
// The profile is constructed once from extracted fields and treated as
// immutable for the duration of a match; the embedding is attached after
// construction by the embedding layer.
type CandidateProfile struct {
	Name       string            `json:"name,omitempty"`
	Contact    map[string]string `json:"contact,omitempty"`
	Skills     []string          `json:"skills"`
	Education  []string          `json:"education"`
	Diplomas   []string          `json:"diplomas"`
	Experience []string          `json:"experience"`

	// Embedding is the semantic vector for the whole profile text.
	// Nil until computed. Excluded from API payloads.
	Embedding []float64 `json:"-"`
}

var (
	explicitYearsPattern = regexp.MustCompile(`(\d+)\s*(?:years?|ans?)`)
	yearRangePattern     = regexp.MustCompile(`(\d{4})\s*-\s*(\d{4})`)
	openRangePattern     = regexp.MustCompile(`(\d{4})\s*-\s*(?:present|now|current|aujourd'hui|actuel)`)
)

// NormalizedSkills returns the candidate's skills lowercased, trimmed and
// deduplicated case-insensitively. Empty and whitespace-only entries are
// dropped. First-seen order is preserved.
func (c *CandidateProfile) NormalizedSkills() []string {
	return normalizeSkillList(c.Skills)
}

// YearsOfExperience extracts the total years of experience from the free-text
// experience entries. It detects explicit mentions ("3 years", "2 ans"),
// closed year ranges ("2020-2022") and open ranges ("2020-present"), summing
// every detected duration. The second return value is false when nothing
// could be detected, which is distinct from a detected total of zero.
func (c *CandidateProfile) YearsOfExperience() (int, bool) {
	if len(c.Experience) == 0 {
		return 0, false
	}

	total := 0
	for _, entry := range c.Experience {
		lower := strings.ToLower(entry)

		for _, m := range explicitYearsPattern.FindAllStringSubmatch(lower, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil {
				total += n
			}
		}

		for _, m := range yearRangePattern.FindAllStringSubmatch(entry, -1) {
			start, err1 := strconv.Atoi(m[1])
			end, err2 := strconv.Atoi(m[2])
			if err1 == nil && err2 == nil && end > start {
				total += end - start
			}
		}

		for _, m := range openRangePattern.FindAllStringSubmatch(lower, -1) {
			if start, err := strconv.Atoi(m[1]); err == nil && start <= ReferenceYear {
				total += ReferenceYear - start
			}
		}
	}

	if total <= 0 {
		return 0, false
	}
	return total, true
}

// EducationText returns the candidate's combined education and diploma
// entries as a single lowercase string for keyword matching.
func (c *CandidateProfile) EducationText() string {
	parts := make([]string, 0, len(c.Education)+len(c.Diplomas))
	parts = append(parts, c.Education...)
	parts = append(parts, c.Diplomas...)
	return strings.ToLower(strings.Join(parts, " "))
}

// HasEducation reports whether the candidate has any education or diploma entries.
func (c *CandidateProfile) HasEducation() bool {
	return len(c.Education) > 0 || len(c.Diplomas) > 0
}

// normalizeSkillList lowercases, trims and deduplicates a skill list,
// preserving first-seen order and dropping empty tokens.
func normalizeSkillList(skills []string) []string {
	if len(skills) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		normalized := strings.ToLower(strings.TrimSpace(s))
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}
