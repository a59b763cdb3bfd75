package service

import "context"

// LLMServiceInterface generates free text for a prompt.
type LLMServiceInterface interface {
	GenerateText(ctx context.Context, prompt string, maxTokens int32) (string, error)
}

// EmbeddingServiceInterface turns text into a vector for similarity search.
type EmbeddingServiceInterface interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}
