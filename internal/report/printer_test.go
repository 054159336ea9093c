package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/recruit-matcher/internal/types"
)

func sampleResult() *types.MatchResult {
	return &types.MatchResult{
		TotalScore:      86.07,
		SemanticScore:   1.0,
		SkillMatchRatio: 0.6667,
		MatchedSkills:   []string{"Python", "Docker"},
		MissingSkills:   []string{"Kubernetes"},
		ExperienceScore: 0.96,
		EducationScore:  1.0,
		MatchDetail: map[string]types.SkillMatch{
			"Python":     {Method: types.MatchMethodExact, Score: 1.0, CandidateSkill: "Python"},
			"Docker":     {Method: types.MatchMethodFuzzy, Score: 0.91, CandidateSkill: "docker"},
			"Kubernetes": {Method: types.MatchMethodNone, Score: 0.0},
		},
		Strengths:       []string{"Experience level highly suitable for this role"},
		Weaknesses:      []string{},
		Recommendations: []string{"Consider acquiring these key skills: Kubernetes"},
	}
}

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResult(
		&types.CandidateProfile{Name: "Jane Doe"},
		&types.RequirementProfile{Title: "Backend Engineer"},
		sampleResult(),
	)

	out := buf.String()
	assert.Contains(t, out, "Match Summary")
	assert.Contains(t, out, "Candidate: Jane Doe")
	assert.Contains(t, out, "Role:      Backend Engineer")
	assert.Contains(t, out, "86.07 / 100  (A, Excellent Match)")
	assert.Contains(t, out, "Matched (2):")
	assert.Contains(t, out, "Python (exact, 1.00)")
	assert.Contains(t, out, "Missing (1):")
	assert.Contains(t, out, "Kubernetes")
	assert.Contains(t, out, "Strengths")
	assert.Contains(t, out, "Recommendations")
	assert.NotContains(t, out, "Weaknesses")
}

func TestPrintMatchResult_NilResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchResult(nil, nil, nil)
	assert.Empty(t, buf.String())
}

func TestPrintSkills_CapsLongLists(t *testing.T) {
	result := &types.MatchResult{
		MatchDetail: map[string]types.SkillMatch{},
	}
	for _, skill := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		result.MissingSkills = append(result.MissingSkills, skill)
		result.MatchDetail[skill] = types.SkillMatch{Method: types.MatchMethodNone}
	}

	var buf bytes.Buffer
	p := NewPrinter(&buf)
	p.printSkills(result)

	out := buf.String()
	assert.Contains(t, out, "Missing (7):")
	assert.Contains(t, out, "... and 2 more")
	assert.Equal(t, 1, strings.Count(out, "... and"))
}
