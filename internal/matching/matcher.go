package matching

import (
	"context"
	"math"
	"strings"

	"github.com/jonathan/recruit-matcher/internal/types"
)

// Matcher orchestrates skill, semantic, experience and education scoring
// into a single weighted composite. It holds only read-only state after
// construction and is safe for concurrent use.
type Matcher struct {
	weights Weights
	skills  *SkillMatcher
}

// NewMatcher creates a matcher with the given weights and skill matcher.
// Weight misconfiguration is the only construction failure; it returns a
// *WeightError when the weights do not sum to 1.0 within tolerance.
func NewMatcher(weights Weights, skills *SkillMatcher) (*Matcher, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if skills == nil {
		skills = NewSkillMatcher(nil)
	}
	return &Matcher{weights: weights, skills: skills}, nil
}

// Weights returns the matcher's dimension weights.
func (m *Matcher) Weights() Weights {
	return m.weights
}

// Match scores a candidate against a requirement profile. It always produces
// a result for syntactically valid inputs: a missing embedding degrades the
// semantic score to 0.0, unparsable experience or education text yields the
// documented neutral fallbacks, and embedding failures inside the skill
// layer surface only as "none" entries in the match detail.
func (m *Matcher) Match(ctx context.Context, candidate *types.CandidateProfile, requirement *types.RequirementProfile) *types.MatchResult {
	semanticScore := 0.0
	if candidate.Embedding != nil && requirement.Embedding != nil {
		semanticScore = CosineSimilarity(candidate.Embedding, requirement.Embedding)
	}

	matched, missing, detail := m.skills.MatchSkills(ctx, dedupeSkills(candidate.Skills), requirement.RequiredSkills)
	skillRatio := 0.0
	if len(requirement.RequiredSkills) > 0 {
		skillRatio = float64(len(matched)) / float64(len(requirement.RequiredSkills))
	}

	experienceScore := m.experienceScore(candidate, requirement)
	educationScore := EducationFit(candidate, requirement)

	total := 100 * (semanticScore*m.weights.Semantic +
		skillRatio*m.weights.Skills +
		experienceScore*m.weights.Experience +
		educationScore*m.weights.Education)

	return &types.MatchResult{
		TotalScore:      round2(total),
		SemanticScore:   round4(semanticScore),
		SkillMatchRatio: round4(skillRatio),
		MatchedSkills:   matched,
		MissingSkills:   missing,
		ExperienceScore: round4(experienceScore),
		EducationScore:  round4(educationScore),
		MatchDetail:     detail,
		Strengths:       buildStrengths(matched, semanticScore, experienceScore, educationScore),
		Weaknesses:      buildWeaknesses(missing, experienceScore, educationScore),
		Recommendations: buildRecommendations(matched, missing, experienceScore, educationScore),
	}
}

// experienceScore resolves years on both sides and applies the fit curve,
// falling back to the neutral score when either side cannot be determined.
func (m *Matcher) experienceScore(candidate *types.CandidateProfile, requirement *types.RequirementProfile) float64 {
	candidateYears, candidateOK := candidate.YearsOfExperience()
	requiredYears, requiredOK := requirement.RequiredYears()
	if !candidateOK || !requiredOK {
		return neutralExperienceScore
	}
	return ExperienceFit(candidateYears, requiredYears)
}

// dedupeSkills removes case-insensitive duplicates and empty tokens while
// preserving the original casing, so match details can report candidate
// skills verbatim.
func dedupeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
