package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/sustainability-judge/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

var _ LLMServiceInterface = (*OpenRouterService)(nil)

type OpenRouterService struct {
	APIKey string
	Model  string
	URL    string
	client *resty.Client
}

func NewOpenRouterService(cfg *config.OpenRouterConfig) *OpenRouterService {
	return &OpenRouterService{
		APIKey: cfg.APIKey,
		Model:  cfg.Model,
		URL:    cfg.URL,
		client: resty.New().SetTimeout(90 * time.Second),
	}
}

func (s *OpenRouterService) GenerateText(ctx context.Context, prompt string, maxTokens int32) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"model":      s.Model,
			"max_tokens": maxTokens,
			"messages": []map[string]string{
				{"role": "system", "content": "You are a food sustainability judge."},
				{"role": "user", "content": prompt},
			},
		}).
		Post(s.URL)
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	if resp.IsError() {
		msg := gjson.Get(resp.String(), "error.message").String()
		if msg == "" {
			msg = resp.Status()
		}
		return "", fmt.Errorf("openrouter returned %d: %s", resp.StatusCode(), msg)
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return text, nil
}
