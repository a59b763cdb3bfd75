package config

import (
	"log"
	"sync"

	"github.com/caarlos0/env/v11"
)

type GeminiConfig struct {
	APIKey         string `env:"GEMINI_API_KEY"`
	Model          string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	EmbeddingModel string `env:"GEMINI_EMBEDDING_MODEL" envDefault:"gemini-embedding-001"`
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		geminiConfig = &GeminiConfig{}
		if err := env.Parse(geminiConfig); err != nil {
			log.Fatalf("Could not parse gemini config: %v", err)
		}
	})
	return geminiConfig
}
