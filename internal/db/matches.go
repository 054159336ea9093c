package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/recruit-matcher/internal/types"
)

// SaveMatch stores a match result and returns its ID.
func (db *DB) SaveMatch(ctx context.Context, candidateID, requirementID uuid.UUID, result *types.MatchResult) (uuid.UUID, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal match result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO match_results (candidate_id, requirement_id, total_score, result)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		candidateID, requirementID, result.TotalScore, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save match result: %w", err)
	}
	return id, nil
}

// GetMatch loads a match result by ID.
func (db *DB) GetMatch(ctx context.Context, id uuid.UUID) (*MatchRecord, error) {
	record := &MatchRecord{ID: id}

	var payload []byte
	err := db.pool.QueryRow(ctx,
		`SELECT candidate_id, requirement_id, result, created_at
		 FROM match_results WHERE id = $1`,
		id,
	).Scan(&record.CandidateID, &record.RequirementID, &payload, &record.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load match result %s: %w", id, err)
	}

	var result types.MatchResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match result %s: %w", id, err)
	}
	record.Result = &result

	return record, nil
}
