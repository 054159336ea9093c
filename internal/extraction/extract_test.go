package extraction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/recruit-matcher/schemas"
)

// fakeLLM returns a canned response for every prompt.
type fakeLLM struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeLLM) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLM) Close() error { return nil }

const validCandidateJSON = `{
	"name": "Jane Doe",
	"contact": {"email": "jane@example.com", "phone": null},
	"skills": ["Python", "Docker"],
	"education": ["MSc Computer Science, University of Lyon (2020 - 2022)"],
	"experience": ["Backend engineer at Acme, 3 years"],
	"diplomas": []
}`

const validRequirementJSON = `{
	"title": "Backend Engineer",
	"organization": "Globex",
	"location": null,
	"employment_type": "Full-time",
	"responsibilities": ["Design and build APIs"],
	"required_skills": ["Go", "PostgreSQL"],
	"experience_requirement": "3-5 years",
	"education_requirements": ["Master's degree"]
}`

func TestExtractCandidate(t *testing.T) {
	client := &fakeLLM{response: validCandidateJSON}

	profile, err := ExtractCandidate(context.Background(), client, "Jane Doe\nPython, Docker\n...")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, map[string]string{"email": "jane@example.com"}, profile.Contact)
	assert.Equal(t, []string{"Python", "Docker"}, profile.Skills)
	assert.Len(t, profile.Education, 1)
	assert.Len(t, profile.Experience, 1)
	assert.NotNil(t, profile.Diplomas)
	assert.Empty(t, profile.Diplomas)

	require.Len(t, client.prompts, 1)
	assert.Contains(t, client.prompts[0], "Jane Doe\nPython, Docker")
}

func TestExtractCandidate_NullFields(t *testing.T) {
	client := &fakeLLM{response: `{
		"name": null,
		"contact": null,
		"skills": [],
		"education": [],
		"experience": [],
		"diplomas": []
	}`}

	profile, err := ExtractCandidate(context.Background(), client, "some cv text")
	require.NoError(t, err)

	assert.Empty(t, profile.Name)
	assert.Nil(t, profile.Contact)
	assert.NotNil(t, profile.Skills)
	assert.Empty(t, profile.Skills)
}

func TestExtractCandidate_EmptyText(t *testing.T) {
	client := &fakeLLM{response: validCandidateJSON}

	_, err := ExtractCandidate(context.Background(), client, "")
	require.Error(t, err)
	assert.Empty(t, client.prompts)
}

func TestExtractCandidate_LLMError(t *testing.T) {
	client := &fakeLLM{err: errors.New("model unavailable")}

	_, err := ExtractCandidate(context.Background(), client, "cv text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model unavailable")
}

func TestExtractCandidate_SchemaRejection(t *testing.T) {
	// Missing the required "experience" field.
	client := &fakeLLM{response: `{"name": "Jane", "skills": [], "education": []}`}

	_, err := ExtractCandidate(context.Background(), client, "cv text")
	require.Error(t, err)

	var ve *schemas.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestExtractRequirement(t *testing.T) {
	client := &fakeLLM{response: validRequirementJSON}

	profile, err := ExtractRequirement(context.Background(), client, "We are hiring a Backend Engineer...")
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", profile.Title)
	assert.Equal(t, "Globex", profile.Organization)
	assert.Empty(t, profile.Location)
	assert.Equal(t, "Full-time", profile.EmploymentType)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, profile.RequiredSkills)
	assert.Equal(t, "3-5 years", profile.ExperienceRequirement)
	assert.Equal(t, []string{"Master's degree"}, profile.EducationRequirements)
}

func TestExtractRequirement_SchemaRejection(t *testing.T) {
	client := &fakeLLM{response: `{"title": "Engineer"}`}

	_, err := ExtractRequirement(context.Background(), client, "job text")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid data"))
}

func TestExtractRequirement_EmptyText(t *testing.T) {
	client := &fakeLLM{response: validRequirementJSON}

	_, err := ExtractRequirement(context.Background(), client, "")
	assert.Error(t, err)
}
