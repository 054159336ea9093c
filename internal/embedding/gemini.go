// Package embedding provides embedding-vector generation for profile text
// and individual skills.
package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultModel is the Gemini embedding model.
const DefaultModel = "text-embedding-004"

// GeminiEmbedder generates embeddings via the Gemini API. It satisfies
// matching.Embedder.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates a Gemini-backed embedder. An empty model selects
// DefaultModel.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{client: client, model: model}, nil
}

// Embed generates an embedding vector for the given text.
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	em := e.client.EmbeddingModel(e.model)

	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to embed content: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, fmt.Errorf("empty embedding in response")
	}

	vector := make([]float64, len(resp.Embedding.Values))
	for i, v := range resp.Embedding.Values {
		vector[i] = float64(v)
	}
	return vector, nil
}

// Close releases resources held by the embedder.
func (e *GeminiEmbedder) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}
