package types

import (
	"regexp"
	"strconv"
	"strings"
)

// RequirementProfile represents a job posting with extracted requirements.
type RequirementProfile struct {
	Title            string   `json:"title,omitempty"`
	Organization     string   `json:"organization,omitempty"`
	Location         string   `json:"location,omitempty"`
	EmploymentType   string   `json:"employment_type,omitempty"`
	Responsibilities []string `json:"responsibilities"`
	RequiredSkills   []string `json:"required_skills"`

	// ExperienceRequirement is free text, e.g. "3-5 years" or "Senior".
	ExperienceRequirement string `json:"experience_requirement,omitempty"`

	EducationRequirements []string `json:"education_requirements"`

	// Embedding is the semantic vector for the whole posting text.
	// Nil until computed. Excluded from API payloads.
	Embedding []float64 `json:"-"`
}

var (
	requiredRangePattern = regexp.MustCompile(`(\d+)\s*-\s*(\d+)\s*(?:years?|ans?)`)
	requiredYearsPattern = regexp.MustCompile(`(\d+)\+?\s*(?:years?|ans?)`)
)

// Seniority keyword fallbacks for experience requirements without an
// explicit number of years.
var seniorityYears = []struct {
	keywords []string
	years    int
}{
	{[]string{"junior", "entry", "débutant"}, 0},
	{[]string{"mid", "intermediate", "confirmé"}, 3},
	{[]string{"senior", "lead", "expert"}, 7},
}

// NormalizedSkills returns the required skills lowercased, trimmed and
// deduplicated case-insensitively, preserving first-seen order.
func (r *RequirementProfile) NormalizedSkills() []string {
	return normalizeSkillList(r.RequiredSkills)
}

// RequiredYears parses the experience requirement text for a number of
// years. Ranges like "3-5 years" resolve to the lower bound; "5+ years"
// resolves to 5. When no explicit number is present, seniority keywords
// map to fixed values (junior 0, mid 3, senior 7). The second return
// value is false when nothing matched.
func (r *RequirementProfile) RequiredYears() (int, bool) {
	if r.ExperienceRequirement == "" {
		return 0, false
	}

	lower := strings.ToLower(r.ExperienceRequirement)

	// Ranges first so "3-5 years" resolves to 3 rather than 5.
	if m := requiredRangePattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n, true
		}
	}
	if m := requiredYearsPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return n, true
		}
	}

	for _, level := range seniorityYears {
		for _, kw := range level.keywords {
			if strings.Contains(lower, kw) {
				return level.years, true
			}
		}
	}

	return 0, false
}

// EducationText returns the combined education requirements as a single
// lowercase string for keyword matching.
func (r *RequirementProfile) EducationText() string {
	return strings.ToLower(strings.Join(r.EducationRequirements, " "))
}
