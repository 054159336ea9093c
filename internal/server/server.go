package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/recruit-matcher/internal/config"
	"github.com/jonathan/recruit-matcher/internal/db"
	"github.com/jonathan/recruit-matcher/internal/embedding"
	"github.com/jonathan/recruit-matcher/internal/llm"
	"github.com/jonathan/recruit-matcher/internal/matching"
	"github.com/jonathan/recruit-matcher/internal/types"
)

// shutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

// Store is the persistence surface the handlers depend on. *db.DB satisfies
// it; tests supply in-memory fakes.
type Store interface {
	SaveCandidate(ctx context.Context, profile *types.CandidateProfile) (uuid.UUID, error)
	GetCandidate(ctx context.Context, id uuid.UUID) (*db.CandidateRecord, error)
	ListCandidates(ctx context.Context, limit int) ([]*db.CandidateRecord, error)
	SaveRequirement(ctx context.Context, profile *types.RequirementProfile) (uuid.UUID, error)
	GetRequirement(ctx context.Context, id uuid.UUID) (*db.RequirementRecord, error)
	SaveMatch(ctx context.Context, candidateID, requirementID uuid.UUID, result *types.MatchResult) (uuid.UUID, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*db.MatchRecord, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      Store
	matcher    *matching.Matcher
	skills     *matching.SkillMatcher
	llm        llm.Client
	embedder   matching.Embedder
}

// New creates a server wired to PostgreSQL and Gemini from the merged
// configuration.
func New(cfg config.Config) (*Server, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	client, err := llm.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	skills := matching.NewSkillMatcher(embedder,
		matching.WithFuzzyThreshold(cfg.FuzzyThreshold),
		matching.WithSemanticThreshold(cfg.SemanticThreshold),
	)

	weights := matching.DefaultWeights()
	if cfg.Weights != nil {
		weights = *cfg.Weights
	}
	matcher, err := matching.NewMatcher(weights, skills)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create matcher: %w", err)
	}

	s := newServer(database, matcher, skills, client, embedder)
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// newServer wires handlers to their dependencies. Split from New so tests
// can inject fakes.
func newServer(store Store, matcher *matching.Matcher, skills *matching.SkillMatcher, client llm.Client, embedder matching.Embedder) *Server {
	return &Server{
		store:    store,
		matcher:  matcher,
		skills:   skills,
		llm:      client,
		embedder: embedder,
	}
}

// routes builds the request multiplexer.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /candidates", s.handleCreateCandidate)
	mux.HandleFunc("GET /candidates/{id}", s.handleGetCandidate)
	mux.HandleFunc("POST /requirements", s.handleCreateRequirement)
	mux.HandleFunc("POST /match", s.handleMatch)
	mux.HandleFunc("POST /match/batch", s.handleBatchMatch)
	mux.HandleFunc("GET /matches/{id}", s.handleGetMatch)
	return mux
}

// Start runs the HTTP server until SIGINT/SIGTERM, then shuts down
// gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		log.Printf("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
