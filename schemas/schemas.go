// Package schemas provides JSON Schema validation for LLM-extracted profile
// data. Schemas are embedded so validation works regardless of the working
// directory the binary runs from.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed candidate_profile.json
var candidateProfileSchema []byte

//go:embed requirement_profile.json
var requirementProfileSchema []byte

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s validation failed:\n", ve.Schema))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateCandidateProfile validates raw JSON against the candidate profile schema.
func ValidateCandidateProfile(data []byte) error {
	return validate("candidate_profile", candidateProfileSchema, data)
}

// ValidateRequirementProfile validates raw JSON against the requirement profile schema.
func ValidateRequirementProfile(data []byte) error {
	return validate("requirement_profile", requirementProfileSchema, data)
}

func validate(name string, schema, data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("failed to validate against schema %s: %w", name, err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Schema: name}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
