package types

// Match methods recorded in the per-skill detail.
const (
	MatchMethodExact    = "exact"
	MatchMethodFuzzy    = "fuzzy"
	MatchMethodSemantic = "semantic"
	MatchMethodNone     = "none"
)

// SkillMatch is the audit record for a single required skill: how it was
// matched, with what confidence, and against which candidate skill.
type SkillMatch struct {
	Method string `json:"method"`
	Score  float64 `json:"score"`

	// CandidateSkill is the matched candidate skill with its original
	// casing, empty when the skill was not matched.
	CandidateSkill string `json:"matched_candidate_skill,omitempty"`
}

// MatchResult is the outcome of matching a candidate against a requirement
// profile. It is owned by the caller once produced and never mutated by the
// matcher.
type MatchResult struct {
	TotalScore      float64 `json:"total_score"`
	SemanticScore   float64 `json:"semantic_score"`
	SkillMatchRatio float64 `json:"skill_match_ratio"`

	// MatchedSkills and MissingSkills partition the required skills:
	// every required skill appears verbatim in exactly one of the two.
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`

	ExperienceScore float64 `json:"experience_score"`
	EducationScore  float64 `json:"education_score"`

	// MatchDetail holds one entry per required skill, keyed by the
	// original required-skill string.
	MatchDetail map[string]SkillMatch `json:"match_detail"`

	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
}

// Grade returns the letter grade for the total score.
func (m *MatchResult) Grade() string {
	switch {
	case m.TotalScore >= 90:
		return "A+"
	case m.TotalScore >= 85:
		return "A"
	case m.TotalScore >= 80:
		return "A-"
	case m.TotalScore >= 75:
		return "B+"
	case m.TotalScore >= 70:
		return "B"
	case m.TotalScore >= 65:
		return "B-"
	case m.TotalScore >= 60:
		return "C+"
	case m.TotalScore >= 55:
		return "C"
	case m.TotalScore >= 50:
		return "C-"
	default:
		return "F"
	}
}

// Quality returns a qualitative label for the total score.
func (m *MatchResult) Quality() string {
	switch {
	case m.TotalScore >= 85:
		return "Excellent Match"
	case m.TotalScore >= 70:
		return "Good Match"
	case m.TotalScore >= 55:
		return "Fair Match"
	default:
		return "Poor Match"
	}
}
