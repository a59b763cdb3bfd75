package config

import (
	"log"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultUserID is the only user the front-ends know about.
const DefaultUserID = "default_user"

type ClientConfig struct {
	APIBaseURL string        `env:"SUSTAIN_API_URL" envDefault:"http://localhost:5000"`
	UserID     string        `env:"SUSTAIN_USER_ID" envDefault:"default_user"`
	Timeout    time.Duration `env:"SUSTAIN_TIMEOUT" envDefault:"30s"`
}

var (
	clientConfig *ClientConfig
	clientOnce   sync.Once
)

func LoadClientConfig() *ClientConfig {
	clientOnce.Do(func() {
		cfg, err := parseClientConfig()
		if err != nil {
			log.Fatalf("Could not parse client config: %v", err)
		}
		clientConfig = cfg
	})
	return clientConfig
}

func parseClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
