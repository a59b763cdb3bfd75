package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/fadilmartias/sustainability-judge/internal/config"
	"google.golang.org/genai"
)

var (
	_ LLMServiceInterface       = (*GeminiService)(nil)
	_ EmbeddingServiceInterface = (*GeminiService)(nil)
)

type GeminiService struct {
	Client         *genai.Client
	Model          string
	EmbeddingModel string
	MaxRetries     int
	BaseDelay      time.Duration
	MaxDelay       time.Duration
	RequestTimeout time.Duration
	// CircuitBreakerCooldown is how long an open breaker rejects calls
	// before letting a trial call through.
	CircuitBreakerCooldown time.Duration
	mu                     sync.Mutex
	consecutiveErrors      int
	circuitBreakerMax      int
	openedAt               time.Time
}

func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{
		Client:                 client,
		Model:                  cfg.Model,
		EmbeddingModel:         cfg.EmbeddingModel,
		MaxRetries:             3,
		BaseDelay:              time.Second,
		MaxDelay:               90 * time.Second,
		RequestTimeout:         90 * time.Second,
		CircuitBreakerCooldown: 30 * time.Second,
		circuitBreakerMax:      5,
	}, nil
}

func (s *GeminiService) GenerateText(ctx context.Context, prompt string, maxTokens int32) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	var text string
	err := s.withRetry(ctx, "GenerateText", func(ctx context.Context) error {
		genConfig := &genai.GenerateContentConfig{
			Temperature:     genai.Ptr(float32(0.1)),
			MaxOutputTokens: maxTokens,
		}
		result, err := s.Client.Models.GenerateContent(ctx, s.Model, genai.Text(prompt), genConfig)
		if err != nil {
			return err
		}
		if err := validateGenerateResponse(result); err != nil {
			return permanent(fmt.Errorf("invalid response: %w", err))
		}
		text = result.Text()
		return nil
	})
	return text, err
}

func (s *GeminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	trimmedText := strings.TrimSpace(text)
	if trimmedText == "" {
		return nil, fmt.Errorf("text for embedding cannot be empty")
	}

	if len(trimmedText) > 10000 {
		log.Printf("Warning: text length %d exceeds recommended limit, truncating...", len(trimmedText))
		trimmedText = trimmedText[:10000]
	}

	content := []*genai.Content{genai.NewContentFromText(trimmedText, genai.RoleUser)}

	var embeddings []float32
	err := s.withRetry(ctx, "GenerateEmbedding", func(ctx context.Context) error {
		result, err := s.Client.Models.EmbedContent(ctx, s.EmbeddingModel, content, nil)
		if err != nil {
			return err
		}
		embeddings, err = validateEmbeddingResponse(result)
		if err != nil {
			return permanent(fmt.Errorf("invalid embedding response: %w", err))
		}
		return nil
	})
	return embeddings, err
}

// permanentError stops the retry loop without counting against the breaker.
type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func permanent(err error) error { return &permanentError{err} }

// withRetry runs fn with exponential backoff on retryable errors and trips
// the circuit breaker after too many consecutive failed calls. Once the
// cooldown passes a single trial call decides whether it closes again.
func (s *GeminiService) withRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	if n, open := s.GetCircuitBreakerStatus(); open {
		return fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", n)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	var lastErr error
	for attempt := 0; attempt <= s.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := s.calculateBackoff(attempt)
			log.Printf("Retry attempt %d/%d for %s after %v", attempt, s.MaxRetries, op, delay)

			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				return fmt.Errorf("context timeout during retry: %w", timeoutCtx.Err())
			}
		}

		err := fn(timeoutCtx)
		if err == nil {
			s.recordResult(true)
			return nil
		}
		if p, ok := err.(*permanentError); ok {
			s.recordResult(true)
			return p.err
		}

		lastErr = err
		if !isRetryableError(err) {
			log.Printf("Non-retryable error: %v", err)
			s.recordResult(false)
			return fmt.Errorf("%s failed: %w", op, err)
		}

		log.Printf("Retryable error on attempt %d: %v", attempt+1, err)
	}

	s.recordResult(false)
	return fmt.Errorf("max retries (%d) exceeded for %s: %w", s.MaxRetries, op, lastErr)
}

func (s *GeminiService) recordResult(ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		s.consecutiveErrors = 0
		s.openedAt = time.Time{}
		return
	}
	s.consecutiveErrors++
	if s.consecutiveErrors >= s.circuitBreakerMax {
		// a failed trial call re-opens the breaker for another cooldown
		s.openedAt = time.Now()
	}
}

func (s *GeminiService) calculateBackoff(attempt int) time.Duration {
	delay := s.BaseDelay * time.Duration(math.Pow(2, float64(attempt-1)))

	if delay > s.MaxDelay {
		delay = s.MaxDelay
	}

	// +/-12.5%
	jitter := time.Duration(float64(delay) * 0.25)
	delay = delay - jitter/2 + time.Duration(rand.Int64N(int64(jitter)+1))

	return delay
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errMsg := err.Error()

	if strings.Contains(errMsg, "context canceled") ||
		strings.Contains(errMsg, "context deadline exceeded") {
		return false
	}
	if apiErr, ok := err.(*genai.APIError); ok {
		switch apiErr.Code {
		case 429: // Rate limit
			return true
		case 500, 502, 503, 504: // Server errors
			return true
		case 400, 401, 403, 404: // Client errors
			return false
		}
	}

	if strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF") {
		return true
	}

	return false
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}

	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}

	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}

	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}

	return nil
}

func validateEmbeddingResponse(resp *genai.EmbedContentResponse) ([]float32, error) {
	if resp == nil {
		return nil, fmt.Errorf("response is nil")
	}

	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	embeddings := resp.Embeddings[0].Values

	if len(embeddings) == 0 {
		return nil, fmt.Errorf("embedding vector is empty")
	}

	for i, val := range embeddings {
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil, fmt.Errorf("invalid embedding value at index %d: %v", i, val)
		}
	}

	return embeddings, nil
}

// GetCircuitBreakerStatus reports the breaker as open while the error count
// is at the limit and the cooldown has not yet passed.
func (s *GeminiService) GetCircuitBreakerStatus() (consecutiveErrors int, isOpen bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consecutiveErrors < s.circuitBreakerMax {
		return s.consecutiveErrors, false
	}
	return s.consecutiveErrors, time.Since(s.openedAt) < s.CircuitBreakerCooldown
}
