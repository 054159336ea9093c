package matching

import "math"

// Experience scoring constants. These curves are intentionally preserved
// from the original scoring model; their exact shape is part of the
// behavioral contract.
const (
	neutralExperienceScore = 0.5

	overqualifiedPenaltyPerYear = 0.02
	maxOverqualifiedPenalty     = 0.1

	juniorRoleYears       = 2
	juniorGapPenalty      = 0.2
	juniorScoreFloor      = 0.3
	defaultGapPenalty     = 0.15
	underqualifiedMinimum = 0.1
)

// CosineSimilarity computes the cosine similarity between two flat vectors.
// Identical vectors score ~1.0, orthogonal vectors ~0.0. Mismatched lengths
// and zero vectors score 0.0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0.0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// ExperienceFit scores candidate years of experience against required years
// on a 0-1 scale. Meeting the requirement exactly scores 1.0; exceeding it
// takes a mild overqualification penalty capped at 10%; falling short decays
// linearly with the gap, more forgivingly for junior roles.
func ExperienceFit(candidateYears, requiredYears int) float64 {
	if candidateYears == requiredYears {
		return 1.0
	}

	if candidateYears > requiredYears {
		penalty := math.Min(maxOverqualifiedPenalty, float64(candidateYears-requiredYears)*overqualifiedPenaltyPerYear)
		return math.Max(0.9, 1.0-penalty)
	}

	gap := float64(requiredYears - candidateYears)
	if requiredYears <= juniorRoleYears {
		return math.Max(juniorScoreFloor, 1.0-gap*juniorGapPenalty)
	}
	return math.Max(underqualifiedMinimum, 1.0-gap*defaultGapPenalty)
}
