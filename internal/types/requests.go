package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateCandidateRequest represents the request to ingest a candidate CV.
type CreateCandidateRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// CreateRequirementRequest represents the request to ingest a job posting.
// Exactly one of Text or URL must be provided.
type CreateRequirementRequest struct {
	Text string `json:"text,omitempty" validate:"required_without=URL,excluded_with=URL"`
	URL  string `json:"url,omitempty" validate:"omitempty,url"`
}

// MatchRequest represents the request to match a stored candidate against a
// stored requirement. Weights are optional; when omitted the server defaults
// apply.
type MatchRequest struct {
	CandidateID   uuid.UUID          `json:"candidate_id" validate:"required"`
	RequirementID uuid.UUID          `json:"requirement_id" validate:"required"`
	Weights       map[string]float64 `json:"weights,omitempty"`
}

// BatchMatchRequest represents the request to rank all stored candidates
// against a single requirement.
type BatchMatchRequest struct {
	RequirementID uuid.UUID `json:"requirement_id" validate:"required"`
	Limit         int       `json:"limit,omitempty" validate:"omitempty,min=1,max=500"`
}

var validate = validator.New()

// Validate validates the CreateCandidateRequest using the validator.
func (r *CreateCandidateRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CreateRequirementRequest using the validator.
func (r *CreateRequirementRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the BatchMatchRequest using the validator.
func (r *BatchMatchRequest) Validate() error {
	return validate.Struct(r)
}
