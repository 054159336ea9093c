package matching

import (
	"fmt"
	"strings"
)

// Narrative thresholds. The sentences below are rule-generated, not
// LLM-generated; downstream presentation relies on their exact wording.
const (
	strongSkillCount   = 5
	goodSkillCount     = 3
	significantGapSize = 5
	notableGapSize     = 3

	excellentSemanticScore = 0.8
	goodSemanticScore      = 0.65
	suitableExperience     = 0.85
	strongEducation        = 0.9
	weakDimensionScore     = 0.5

	maxRecommendedSkills = 5
)

// buildStrengths generates the candidate's strengths narrative.
func buildStrengths(matched []string, semanticScore, experienceScore, educationScore float64) []string {
	strengths := []string{}

	switch {
	case len(matched) >= strongSkillCount:
		strengths = append(strengths, fmt.Sprintf("Strong skill alignment with %d matching required skills", len(matched)))
	case len(matched) >= goodSkillCount:
		strengths = append(strengths, fmt.Sprintf("Good skill match with %d key skills aligned", len(matched)))
	}

	switch {
	case semanticScore >= excellentSemanticScore:
		strengths = append(strengths, "Excellent semantic match - profile closely aligns with job description")
	case semanticScore >= goodSemanticScore:
		strengths = append(strengths, "Good overall fit based on profile content")
	}

	if experienceScore >= suitableExperience {
		strengths = append(strengths, "Experience level highly suitable for this role")
	}

	if educationScore >= strongEducation {
		strengths = append(strengths, "Educational background exceeds or meets requirements")
	}

	return strengths
}

// buildWeaknesses generates the candidate's weaknesses narrative.
func buildWeaknesses(missing []string, experienceScore, educationScore float64) []string {
	weaknesses := []string{}

	switch {
	case len(missing) >= significantGapSize:
		weaknesses = append(weaknesses, fmt.Sprintf("Significant skill gap: %d required skills not found in CV", len(missing)))
	case len(missing) >= notableGapSize:
		weaknesses = append(weaknesses, fmt.Sprintf("Notable skill gap: Missing %d required skills", len(missing)))
	}

	if experienceScore < weakDimensionScore {
		weaknesses = append(weaknesses, "Experience level may not fully meet job requirements")
	}

	if educationScore < weakDimensionScore {
		weaknesses = append(weaknesses, "Educational background may not meet stated requirements")
	}

	return weaknesses
}

// buildRecommendations generates actionable recommendations.
func buildRecommendations(matched, missing []string, experienceScore, educationScore float64) []string {
	recommendations := []string{}

	if len(missing) > 0 {
		top := missing
		if len(top) > maxRecommendedSkills {
			top = top[:maxRecommendedSkills]
		}
		recommendations = append(recommendations, "Consider acquiring these key skills: "+strings.Join(top, ", "))
	}

	if experienceScore < weakDimensionScore {
		recommendations = append(recommendations, "Gain more relevant work experience in this domain through projects or internships")
	}

	if educationScore < weakDimensionScore {
		recommendations = append(recommendations, "Consider additional certifications or formal education to meet requirements")
	}

	if len(matched) >= goodSkillCount && len(missing) <= 2 {
		recommendations = append(recommendations, "Strong candidate - highlight matching skills prominently in interview")
	}

	return recommendations
}
