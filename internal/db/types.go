package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/recruit-matcher/internal/types"
)

// CandidateRecord is a stored candidate profile.
type CandidateRecord struct {
	ID        uuid.UUID               `json:"id"`
	Profile   *types.CandidateProfile `json:"profile"`
	CreatedAt time.Time               `json:"created_at"`
}

// RequirementRecord is a stored requirement profile.
type RequirementRecord struct {
	ID        uuid.UUID                 `json:"id"`
	Profile   *types.RequirementProfile `json:"profile"`
	CreatedAt time.Time                 `json:"created_at"`
}

// MatchRecord is a stored match result.
type MatchRecord struct {
	ID            uuid.UUID          `json:"id"`
	CandidateID   uuid.UUID          `json:"candidate_id"`
	RequirementID uuid.UUID          `json:"requirement_id"`
	Result        *types.MatchResult `json:"result"`
	CreatedAt     time.Time          `json:"created_at"`
}
