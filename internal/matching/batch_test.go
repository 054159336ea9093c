package matching

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/recruit-matcher/internal/types"
)

func TestRankAll(t *testing.T) {
	m, err := NewMatcher(DefaultWeights(), NewSkillMatcher(nil))
	require.NoError(t, err)

	requirement := &types.RequirementProfile{
		RequiredSkills:        []string{"Python", "Docker", "Kubernetes", "AWS"},
		ExperienceRequirement: "5 years",
		EducationRequirements: []string{"Master's degree"},
	}

	candidates := []*types.CandidateProfile{
		{
			// Weak fit: one skill, no experience signal, no education.
			Skills: []string{"Python"},
		},
		{
			// Strong fit across all dimensions.
			Skills:     []string{"Python", "Docker", "Kubernetes", "AWS"},
			Education:  []string{"Master of Science"},
			Experience: []string{"5 years of platform engineering"},
		},
		{
			// Middling fit.
			Skills:     []string{"Python", "Docker"},
			Education:  []string{"Bachelor of Science"},
			Experience: []string{"3 years of backend work"},
		},
	}

	ranked, err := m.RankAll(context.Background(), candidates, requirement)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	// Sorted by total score, highest first.
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Result.TotalScore, ranked[i].Result.TotalScore)
	}

	assert.Equal(t, 1, ranked[0].CandidateIndex)
	assert.Equal(t, 2, ranked[1].CandidateIndex)
	assert.Equal(t, 0, ranked[2].CandidateIndex)
}

func TestRankAll_Empty(t *testing.T) {
	m, err := NewMatcher(DefaultWeights(), NewSkillMatcher(nil))
	require.NoError(t, err)

	ranked, err := m.RankAll(context.Background(), nil, &types.RequirementProfile{})
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankAll_CancelledContext(t *testing.T) {
	m, err := NewMatcher(DefaultWeights(), NewSkillMatcher(nil))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	candidates := []*types.CandidateProfile{{Skills: []string{"Python"}}}
	_, err = m.RankAll(ctx, candidates, &types.RequirementProfile{})
	assert.Error(t, err)
}
