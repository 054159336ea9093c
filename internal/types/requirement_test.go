package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredYears(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
		ok       bool
	}{
		{"range takes lower bound", "4-6 years of experience", 4, true},
		{"french range", "3-5 ans d'expérience", 3, true},
		{"plus suffix", "5+ years", 5, true},
		{"plain years", "2 years minimum", 2, true},
		{"french years", "3 ans", 3, true},
		{"senior keyword", "Senior backend engineer", 7, true},
		{"lead keyword", "Tech Lead position", 7, true},
		{"mid keyword", "Mid-level developer", 3, true},
		{"intermediate keyword", "Intermediate profile welcome", 3, true},
		{"junior keyword", "Junior position", 0, true},
		{"entry keyword", "Entry level role", 0, true},
		{"french junior keyword", "Profil débutant accepté", 0, true},
		{"explicit years beat keywords", "Senior role, 4 years required", 4, true},
		{"empty text", "", 0, false},
		{"no signal", "Motivated self-starter", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &RequirementProfile{ExperienceRequirement: tt.text}
			years, ok := r.RequiredYears()
			require.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, years)
		})
	}
}

func TestRequirementNormalizedSkills(t *testing.T) {
	r := &RequirementProfile{
		RequiredSkills: []string{"Python", "PYTHON", " Docker "},
	}

	assert.Equal(t, []string{"python", "docker"}, r.NormalizedSkills())
}

func TestRequirementEducationText(t *testing.T) {
	r := &RequirementProfile{
		EducationRequirements: []string{"Master's Degree", "Engineering School"},
	}

	assert.Equal(t, "master's degree engineering school", r.EducationText())
}
