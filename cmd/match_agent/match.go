package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/recruit-matcher/internal/config"
	"github.com/jonathan/recruit-matcher/internal/embedding"
	"github.com/jonathan/recruit-matcher/internal/extraction"
	"github.com/jonathan/recruit-matcher/internal/fetch"
	"github.com/jonathan/recruit-matcher/internal/llm"
	"github.com/jonathan/recruit-matcher/internal/matching"
	"github.com/jonathan/recruit-matcher/internal/report"
	"github.com/jonathan/recruit-matcher/internal/types"
)

var (
	matchCVPath     string
	matchJobPath    string
	matchJobURL     string
	matchConfigPath string
	matchJSONOutput bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a CV against a job posting",
	Long:  `Extract structured profiles from a CV text file and a job posting (file or URL), then score the candidate against the requirements.`,
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchCVPath, "cv", "", "Path to CV text file (required)")
	matchCmd.Flags().StringVar(&matchJobPath, "job", "", "Path to job posting text file")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "URL to fetch job posting from")
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to JSON config file")
	matchCmd.Flags().BoolVar(&matchJSONOutput, "json", false, "Print the raw match result as JSON")
	_ = matchCmd.MarkFlagRequired("cv")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	if (matchJobPath == "") == (matchJobURL == "") {
		return fmt.Errorf("exactly one of --job or --job-url is required")
	}

	cfg, err := loadConfig(matchConfigPath)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := cmd.Context()

	cvText, err := os.ReadFile(matchCVPath)
	if err != nil {
		return fmt.Errorf("failed to read CV file: %w", err)
	}

	jobText, err := loadJobText(ctx, matchJobPath, matchJobURL)
	if err != nil {
		return err
	}

	client, err := llm.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}
	defer func() { _ = embedder.Close() }()

	candidate, err := extraction.ExtractCandidate(ctx, client, string(cvText))
	if err != nil {
		return fmt.Errorf("failed to extract candidate profile: %w", err)
	}
	requirement, err := extraction.ExtractRequirement(ctx, client, jobText)
	if err != nil {
		return fmt.Errorf("failed to extract requirement profile: %w", err)
	}

	attachEmbeddings(ctx, embedder, string(cvText), jobText, candidate, requirement)

	skills := matching.NewSkillMatcher(embedder,
		matching.WithFuzzyThreshold(cfg.FuzzyThreshold),
		matching.WithSemanticThreshold(cfg.SemanticThreshold),
	)
	matcher, err := matching.NewMatcher(*cfg.Weights, skills)
	if err != nil {
		return fmt.Errorf("failed to create matcher: %w", err)
	}

	result := matcher.Match(ctx, candidate, requirement)

	if matchJSONOutput {
		return printJSON(result)
	}
	report.NewPrinter(os.Stdout).PrintMatchResult(candidate, requirement, result)
	return nil
}

// loadConfig loads the optional config file and merges it with defaults.
func loadConfig(path string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded.MergeWithDefaults(config.Default())
	} else {
		merged := (&config.Config{}).MergeWithDefaults(cfg)
		cfg = merged
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadJobText reads the job posting from a file or fetches it from a URL.
func loadJobText(ctx context.Context, path, url string) (string, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read job file: %w", err)
		}
		return string(data), nil
	}

	result, err := fetch.JobPostingText(ctx, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return result.Text, nil
}

// printJSON writes a value to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// attachEmbeddings computes whole-profile embeddings. Failures degrade the
// semantic score to 0.0 instead of aborting the match.
func attachEmbeddings(ctx context.Context, embedder matching.Embedder, cvText, jobText string, candidate *types.CandidateProfile, requirement *types.RequirementProfile) {
	if vec, err := embedder.Embed(ctx, cvText); err == nil {
		candidate.Embedding = vec
	} else {
		fmt.Fprintf(os.Stderr, "warning: CV embedding failed, semantic score degrades to 0: %v\n", err)
	}
	if vec, err := embedder.Embed(ctx, jobText); err == nil {
		requirement.Embedding = vec
	} else {
		fmt.Fprintf(os.Stderr, "warning: job embedding failed, semantic score degrades to 0: %v\n", err)
	}
}
