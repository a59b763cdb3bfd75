package config

import (
	"log"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	Name    string `env:"APP_NAME" envDefault:"Sustainability AI Judge"`
	Env     string `env:"APP_ENV"`
	Port    string `env:"APP_PORT" envDefault:":5000"`
	BaseURL string `env:"APP_URL"`

	DataFile            string        `env:"DATA_FILE" envDefault:"user_data.json"`
	LLMProvider         string        `env:"LLM_PROVIDER" envDefault:"gemini"`
	SimilarityThreshold float64       `env:"JUDGE_SIMILARITY_THRESHOLD" envDefault:"0"`
	RateLimitMax        int           `env:"RATE_LIMIT_MAX" envDefault:"50"`
	RateLimitWindow     time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		cfg, err := parseAppConfig()
		if err != nil {
			log.Fatalf("Could not parse app config: %v", err)
		}
		appConfig = cfg
	})
	return appConfig
}

func parseAppConfig() (*AppConfig, error) {
	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.Env == "" {
		cfg.Env = "development"
		log.Printf("Warning: APP_ENV not set, defaulting to %s", cfg.Env)
	}
	return cfg, nil
}

// IsProduction hides stack traces and debug endpoints.
func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
