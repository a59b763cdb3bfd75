package config

import (
	"log"
	"sync"

	"github.com/caarlos0/env/v11"
)

type DBConfig struct {
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

var (
	dbConfig *DBConfig
	dbOnce   sync.Once
)

func LoadDBConfig() *DBConfig {
	dbOnce.Do(func() {
		dbConfig = &DBConfig{}
		if err := env.Parse(dbConfig); err != nil {
			log.Fatalf("Could not parse database config: %v", err)
		}
	})
	return dbConfig
}

// Enabled reports whether a Postgres host is configured. Without one the
// server falls back to the file-backed store.
func (c *DBConfig) Enabled() bool {
	return c.Host != ""
}
