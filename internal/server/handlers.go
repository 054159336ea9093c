package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/recruit-matcher/internal/extraction"
	"github.com/jonathan/recruit-matcher/internal/fetch"
	"github.com/jonathan/recruit-matcher/internal/matching"
	"github.com/jonathan/recruit-matcher/internal/types"
)

// batchDefaultLimit caps batch ranking when the request does not set one.
const batchDefaultLimit = 100

// candidateResponse is returned when a candidate is ingested or fetched.
type candidateResponse struct {
	ID      uuid.UUID               `json:"id"`
	Profile *types.CandidateProfile `json:"profile"`
}

// requirementResponse is returned when a requirement is ingested.
type requirementResponse struct {
	ID      uuid.UUID                 `json:"id"`
	Profile *types.RequirementProfile `json:"profile"`
}

// matchResponse is returned for a stored pair match.
type matchResponse struct {
	ID            uuid.UUID          `json:"id"`
	CandidateID   uuid.UUID          `json:"candidate_id"`
	RequirementID uuid.UUID          `json:"requirement_id"`
	Result        *types.MatchResult `json:"result"`
	Grade         string             `json:"grade"`
	Quality       string             `json:"quality"`
}

// rankedCandidate is one entry of the batch ranking response.
type rankedCandidate struct {
	CandidateID uuid.UUID          `json:"candidate_id"`
	Name        string             `json:"name,omitempty"`
	Result      *types.MatchResult `json:"result"`
	Grade       string             `json:"grade"`
	Quality     string             `json:"quality"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, &ErrValidation{Message: err.Error()})
		return
	}

	profile, err := extraction.ExtractCandidate(r.Context(), s.llm, req.Text)
	if err != nil {
		writeError(w, &ErrDependency{Operation: "candidate extraction", Cause: err})
		return
	}

	s.attachEmbedding(r, req.Text, &profile.Embedding)

	id, err := s.store.SaveCandidate(r.Context(), profile)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, candidateResponse{ID: id, Profile: profile})
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, &ErrValidation{Message: "invalid candidate id"})
		return
	}

	record, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, candidateResponse{ID: record.ID, Profile: record.Profile})
}

func (s *Server) handleCreateRequirement(w http.ResponseWriter, r *http.Request) {
	var req types.CreateRequirementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, &ErrValidation{Message: err.Error()})
		return
	}

	text := req.Text
	if req.URL != "" {
		result, err := fetch.JobPostingText(r.Context(), req.URL, nil)
		if err != nil {
			writeError(w, &ErrDependency{Operation: "job posting fetch", Cause: err})
			return
		}
		text = result.Text
	}

	profile, err := extraction.ExtractRequirement(r.Context(), s.llm, text)
	if err != nil {
		writeError(w, &ErrDependency{Operation: "requirement extraction", Cause: err})
		return
	}

	s.attachEmbedding(r, text, &profile.Embedding)

	id, err := s.store.SaveRequirement(r.Context(), profile)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, requirementResponse{ID: id, Profile: profile})
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req types.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, &ErrValidation{Message: err.Error()})
		return
	}

	matcher := s.matcher
	if req.Weights != nil {
		weights, err := matching.WeightsFromMap(req.Weights)
		if err != nil {
			writeError(w, &ErrValidation{Message: err.Error()})
			return
		}
		matcher, err = matching.NewMatcher(weights, s.skills)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	candidate, err := s.store.GetCandidate(r.Context(), req.CandidateID)
	if err != nil {
		writeError(w, err)
		return
	}
	requirement, err := s.store.GetRequirement(r.Context(), req.RequirementID)
	if err != nil {
		writeError(w, err)
		return
	}

	result := matcher.Match(r.Context(), candidate.Profile, requirement.Profile)

	id, err := s.store.SaveMatch(r.Context(), candidate.ID, requirement.ID, result)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, matchResponse{
		ID:            id,
		CandidateID:   candidate.ID,
		RequirementID: requirement.ID,
		Result:        result,
		Grade:         result.Grade(),
		Quality:       result.Quality(),
	})
}

func (s *Server) handleBatchMatch(w http.ResponseWriter, r *http.Request) {
	var req types.BatchMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &ErrValidation{Message: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, &ErrValidation{Message: err.Error()})
		return
	}

	limit := req.Limit
	if limit == 0 {
		limit = batchDefaultLimit
	}

	requirement, err := s.store.GetRequirement(r.Context(), req.RequirementID)
	if err != nil {
		writeError(w, err)
		return
	}

	records, err := s.store.ListCandidates(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	profiles := make([]*types.CandidateProfile, len(records))
	for i, record := range records {
		profiles[i] = record.Profile
	}

	ranked, err := s.matcher.RankAll(r.Context(), profiles, requirement.Profile)
	if err != nil {
		writeError(w, err)
		return
	}

	response := make([]rankedCandidate, len(ranked))
	for i, rm := range ranked {
		record := records[rm.CandidateIndex]
		response[i] = rankedCandidate{
			CandidateID: record.ID,
			Name:        record.Profile.Name,
			Result:      rm.Result,
			Grade:       rm.Result.Grade(),
			Quality:     rm.Result.Quality(),
		}
	}
	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, &ErrValidation{Message: "invalid match id"})
		return
	}

	record, err := s.store.GetMatch(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matchResponse{
		ID:            record.ID,
		CandidateID:   record.CandidateID,
		RequirementID: record.RequirementID,
		Result:        record.Result,
		Grade:         record.Result.Grade(),
		Quality:       record.Result.Quality(),
	})
}

// attachEmbedding computes and attaches a profile embedding. Embedding
// failure degrades the profile (semantic score falls back to 0.0) instead
// of failing ingestion.
func (s *Server) attachEmbedding(r *http.Request, text string, target *[]float64) {
	if s.embedder == nil {
		return
	}
	vector, err := s.embedder.Embed(r.Context(), text)
	if err != nil {
		log.Printf("embedding failed, profile stored without vector: %v", err)
		return
	}
	*target = vector
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, HTTPStatus(err), map[string]string{"error": err.Error()})
}
