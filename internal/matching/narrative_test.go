package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func skillList(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i))
	}
	return out
}

func TestBuildStrengths(t *testing.T) {
	tests := []struct {
		name            string
		matched         []string
		semanticScore   float64
		experienceScore float64
		educationScore  float64
		expected        []string
	}{
		{
			name:    "five matched skills",
			matched: skillList(5),
			expected: []string{
				"Strong skill alignment with 5 matching required skills",
			},
		},
		{
			name:    "three matched skills",
			matched: skillList(3),
			expected: []string{
				"Good skill match with 3 key skills aligned",
			},
		},
		{
			name:          "excellent semantic fit",
			semanticScore: 0.8,
			expected: []string{
				"Excellent semantic match - profile closely aligns with job description",
			},
		},
		{
			name:          "good semantic fit",
			semanticScore: 0.65,
			expected: []string{
				"Good overall fit based on profile content",
			},
		},
		{
			name:            "suitable experience",
			experienceScore: 0.85,
			expected: []string{
				"Experience level highly suitable for this role",
			},
		},
		{
			name:           "strong education",
			educationScore: 0.9,
			expected: []string{
				"Educational background exceeds or meets requirements",
			},
		},
		{
			name:     "nothing noteworthy",
			matched:  skillList(2),
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildStrengths(tt.matched, tt.semanticScore, tt.experienceScore, tt.educationScore)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBuildWeaknesses(t *testing.T) {
	tests := []struct {
		name            string
		missing         []string
		experienceScore float64
		educationScore  float64
		expected        []string
	}{
		{
			name:            "significant gap",
			missing:         skillList(5),
			experienceScore: 1.0,
			educationScore:  1.0,
			expected: []string{
				"Significant skill gap: 5 required skills not found in CV",
			},
		},
		{
			name:            "notable gap",
			missing:         skillList(3),
			experienceScore: 1.0,
			educationScore:  1.0,
			expected: []string{
				"Notable skill gap: Missing 3 required skills",
			},
		},
		{
			name:            "weak experience and education",
			experienceScore: 0.4,
			educationScore:  0.3,
			expected: []string{
				"Experience level may not fully meet job requirements",
				"Educational background may not meet stated requirements",
			},
		},
		{
			name:            "no weaknesses",
			missing:         skillList(2),
			experienceScore: 0.5,
			educationScore:  0.5,
			expected:        []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildWeaknesses(tt.missing, tt.experienceScore, tt.educationScore)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBuildRecommendations(t *testing.T) {
	t.Run("missing skills capped at five", func(t *testing.T) {
		missing := []string{"Go", "Rust", "Kafka", "Redis", "Terraform", "Spark"}
		got := buildRecommendations(nil, missing, 1.0, 1.0)
		assert.Equal(t, []string{
			"Consider acquiring these key skills: Go, Rust, Kafka, Redis, Terraform",
		}, got)
	})

	t.Run("weak dimensions", func(t *testing.T) {
		got := buildRecommendations(nil, nil, 0.2, 0.3)
		assert.Equal(t, []string{
			"Gain more relevant work experience in this domain through projects or internships",
			"Consider additional certifications or formal education to meet requirements",
		}, got)
	})

	t.Run("strong candidate interview note", func(t *testing.T) {
		got := buildRecommendations(skillList(4), skillList(2), 1.0, 1.0)
		assert.Equal(t, []string{
			"Consider acquiring these key skills: a, b",
			"Strong candidate - highlight matching skills prominently in interview",
		}, got)
	})

	t.Run("no recommendations for a clean match", func(t *testing.T) {
		got := buildRecommendations(skillList(2), nil, 1.0, 1.0)
		assert.Empty(t, got)
	})
}
