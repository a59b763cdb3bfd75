package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppConfig_Defaults(t *testing.T) {
	unsetenv(t, "APP_ENV", "APP_PORT", "LLM_PROVIDER", "RATE_LIMIT_WINDOW")

	cfg, err := parseAppConfig()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":5000", cfg.Port)
	assert.Equal(t, "gemini", cfg.LLMProvider)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.False(t, cfg.IsProduction())
}

func TestParseAppConfig_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JUDGE_SIMILARITY_THRESHOLD", "0.35")
	t.Setenv("RATE_LIMIT_MAX", "7")

	cfg, err := parseAppConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.InDelta(t, 0.35, cfg.SimilarityThreshold, 1e-9)
	assert.Equal(t, 7, cfg.RateLimitMax)
}

func TestParseAppConfig_InvalidNumber(t *testing.T) {
	t.Setenv("RATE_LIMIT_MAX", "many")

	_, err := parseAppConfig()
	assert.Error(t, err)
}

func TestParseClientConfig(t *testing.T) {
	t.Setenv("SUSTAIN_API_URL", "http://10.0.0.5:5000")
	t.Setenv("SUSTAIN_TIMEOUT", "5s")
	unsetenv(t, "SUSTAIN_USER_ID")

	cfg, err := parseClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:5000", cfg.APIBaseURL)
	assert.Equal(t, DefaultUserID, cfg.UserID)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}
