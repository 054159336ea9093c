// Package extraction turns raw CV and job-posting text into typed profiles
// using LLM-driven field extraction. Extracted JSON is validated against the
// embedded schemas before it is accepted, so the matching core only ever
// sees well-formed profiles.
package extraction

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/recruit-matcher/internal/llm"
	"github.com/jonathan/recruit-matcher/internal/types"
	"github.com/jonathan/recruit-matcher/schemas"
)

const candidatePrompt = `You are an expert CV and resume parser. Analyze the provided text and
extract the key information into a structured JSON object.

Extract the following fields:
- "name": the candidate's full name, or null.
- "contact": an object with "email" and "phone" string fields, or null.
- "skills": a list of strings, one per skill.
- "education": a list of strings, one per education entry (e.g. "MSc Computer Science, University of Lyon (2020 - 2022) (2 ans)").
- "experience": a list of strings, one per work experience entry, keeping any dates or durations mentioned.
- "diplomas": a list of strings for any diplomas or certifications mentioned.

Rules:
- The entire output must be a single valid JSON object with no surrounding text or markdown.
- Use an empty list [] for list fields with no data and null for missing string/object fields.
- Clean extracted text of unnecessary line breaks and formatting.

Here is the CV text to analyze:
---
%s
---`

const requirementPrompt = `You are an expert recruiter and job-posting analyst. Analyze the provided
job posting and extract the key information into a structured JSON object.

Extract the following fields:
- "title": the exact job title, or null.
- "organization": the hiring organization's name, or null.
- "location": the work location (e.g. "Paris, France", "Remote", "Hybrid (Lyon)"), or null.
- "employment_type": the contract type (e.g. "Full-time", "Contract", "Internship"), or null.
- "responsibilities": a list of strings, one per responsibility.
- "required_skills": a list of strings, one per required skill.
- "experience_requirement": the experience expectation as free text (e.g. "3-5 years", "Senior"), or null.
- "education_requirements": a list of strings, one per education or credential requirement.

Rules:
- The entire output must be a single valid JSON object with no surrounding text or markdown.
- Use an empty list [] for list fields with no data and null for missing string fields.
- Clean extracted text of unnecessary line breaks and formatting.

Here is the job posting text to analyze:
---
%s
---`

// candidatePayload mirrors the candidate profile schema, with nullable
// fields as the LLM is instructed to emit them.
type candidatePayload struct {
	Name       *string            `json:"name"`
	Contact    map[string]*string `json:"contact"`
	Skills     []string           `json:"skills"`
	Education  []string           `json:"education"`
	Experience []string           `json:"experience"`
	Diplomas   []string           `json:"diplomas"`
}

// requirementPayload mirrors the requirement profile schema.
type requirementPayload struct {
	Title                 *string  `json:"title"`
	Organization          *string  `json:"organization"`
	Location              *string  `json:"location"`
	EmploymentType        *string  `json:"employment_type"`
	Responsibilities      []string `json:"responsibilities"`
	RequiredSkills        []string `json:"required_skills"`
	ExperienceRequirement *string  `json:"experience_requirement"`
	EducationRequirements []string `json:"education_requirements"`
}

// ExtractCandidate extracts a candidate profile from raw CV text.
func ExtractCandidate(ctx context.Context, client llm.Client, cvText string) (*types.CandidateProfile, error) {
	if cvText == "" {
		return nil, fmt.Errorf("CV text is empty")
	}

	raw, err := client.GenerateJSON(ctx, fmt.Sprintf(candidatePrompt, cvText))
	if err != nil {
		return nil, fmt.Errorf("candidate extraction failed: %w", err)
	}

	if err := schemas.ValidateCandidateProfile([]byte(raw)); err != nil {
		return nil, fmt.Errorf("candidate extraction produced invalid data: %w", err)
	}

	var payload candidatePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse candidate extraction response: %w", err)
	}

	return payload.toProfile(), nil
}

// ExtractRequirement extracts a requirement profile from raw job-posting text.
func ExtractRequirement(ctx context.Context, client llm.Client, jobText string) (*types.RequirementProfile, error) {
	if jobText == "" {
		return nil, fmt.Errorf("job posting text is empty")
	}

	raw, err := client.GenerateJSON(ctx, fmt.Sprintf(requirementPrompt, jobText))
	if err != nil {
		return nil, fmt.Errorf("requirement extraction failed: %w", err)
	}

	if err := schemas.ValidateRequirementProfile([]byte(raw)); err != nil {
		return nil, fmt.Errorf("requirement extraction produced invalid data: %w", err)
	}

	var payload requirementPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse requirement extraction response: %w", err)
	}

	return payload.toProfile(), nil
}

func (p *candidatePayload) toProfile() *types.CandidateProfile {
	profile := &types.CandidateProfile{
		Name:       deref(p.Name),
		Skills:     emptyIfNil(p.Skills),
		Education:  emptyIfNil(p.Education),
		Experience: emptyIfNil(p.Experience),
		Diplomas:   emptyIfNil(p.Diplomas),
	}
	if len(p.Contact) > 0 {
		profile.Contact = make(map[string]string, len(p.Contact))
		for key, value := range p.Contact {
			if value != nil && *value != "" {
				profile.Contact[key] = *value
			}
		}
	}
	return profile
}

func (p *requirementPayload) toProfile() *types.RequirementProfile {
	return &types.RequirementProfile{
		Title:                 deref(p.Title),
		Organization:          deref(p.Organization),
		Location:              deref(p.Location),
		EmploymentType:        deref(p.EmploymentType),
		Responsibilities:      emptyIfNil(p.Responsibilities),
		RequiredSkills:        emptyIfNil(p.RequiredSkills),
		ExperienceRequirement: deref(p.ExperienceRequirement),
		EducationRequirements: emptyIfNil(p.EducationRequirements),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
