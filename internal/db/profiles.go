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

// ErrNotFound indicates that the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// SaveCandidate stores a candidate profile and returns its ID. The profile
// embedding is stored in a separate column so JSON payloads stay small.
func (db *DB) SaveCandidate(ctx context.Context, profile *types.CandidateProfile) (uuid.UUID, error) {
	payload, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal candidate profile: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, profile, embedding)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		profile.Name, payload, profile.Embedding,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save candidate: %w", err)
	}
	return id, nil
}

// GetCandidate loads a candidate profile by ID.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*CandidateRecord, error) {
	record := &CandidateRecord{ID: id}

	var payload []byte
	var embedding []float64
	err := db.pool.QueryRow(ctx,
		`SELECT profile, embedding, created_at FROM candidates WHERE id = $1`,
		id,
	).Scan(&payload, &embedding, &record.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate %s: %w", id, err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidate %s: %w", id, err)
	}
	profile.Embedding = embedding
	record.Profile = &profile

	return record, nil
}

// ListCandidates loads all stored candidates, newest first. A limit of 0
// means no limit.
func (db *DB) ListCandidates(ctx context.Context, limit int) ([]*CandidateRecord, error) {
	query := `SELECT id, profile, embedding, created_at FROM candidates ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var records []*CandidateRecord
	for rows.Next() {
		record := &CandidateRecord{}
		var payload []byte
		var embedding []float64
		if err := rows.Scan(&record.ID, &payload, &embedding, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}

		var profile types.CandidateProfile
		if err := json.Unmarshal(payload, &profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal candidate %s: %w", record.ID, err)
		}
		profile.Embedding = embedding
		record.Profile = &profile
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidate rows: %w", err)
	}

	return records, nil
}

// SaveRequirement stores a requirement profile and returns its ID.
func (db *DB) SaveRequirement(ctx context.Context, profile *types.RequirementProfile) (uuid.UUID, error) {
	payload, err := json.Marshal(profile)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal requirement profile: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO requirements (title, profile, embedding)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		profile.Title, payload, profile.Embedding,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save requirement: %w", err)
	}
	return id, nil
}

// GetRequirement loads a requirement profile by ID.
func (db *DB) GetRequirement(ctx context.Context, id uuid.UUID) (*RequirementRecord, error) {
	record := &RequirementRecord{ID: id}

	var payload []byte
	var embedding []float64
	err := db.pool.QueryRow(ctx,
		`SELECT profile, embedding, created_at FROM requirements WHERE id = $1`,
		id,
	).Scan(&payload, &embedding, &record.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load requirement %s: %w", id, err)
	}

	var profile types.RequirementProfile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal requirement %s: %w", id, err)
	}
	profile.Embedding = embedding
	record.Profile = &profile

	return record, nil
}
