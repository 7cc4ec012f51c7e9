package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		// Setenv registers the restore, Unsetenv makes it truly absent
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "EMAIL_PROVIDER", "CONTACT_EMAIL_FROM", "CONTACT_EMAIL_TO", "CONTACT_EMAIL_SUBJECT",
		"CORS_ALLOWED_ORIGINS", "CONTENT_CACHE_TTL_SECONDS", "RATE_LIMIT_WINDOW_SECONDS",
		"RATE_LIMIT_CONTACT_THRESHOLD", "EMAIL_SEND_TIMEOUT_SECONDS")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "resend", cfg.EmailProvider)
	assert.Equal(t, "contato@cavaltron.com.br", cfg.ContactEmailTo)
	assert.Equal(t, "Solicitações de Contato via Site", cfg.ContactEmailSubject)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, time.Minute, cfg.ContentCacheTTL)
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
	assert.Equal(t, 5, cfg.RateLimitContactThreshold)
	assert.Equal(t, 10*time.Second, cfg.EmailSendTimeout)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("EMAIL_PROVIDER", "SMTP")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://cavaltron.com.br, ,https://www.cavaltron.com.br")
	t.Setenv("CONTENT_CACHE_TTL_SECONDS", "0")
	t.Setenv("RATE_LIMIT_CONTACT_THRESHOLD", "3")
	t.Setenv("EMAIL_SEND_TIMEOUT_SECONDS", "-1")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "smtp", cfg.EmailProvider)
	assert.Equal(t, []string{"https://cavaltron.com.br", "https://www.cavaltron.com.br"}, cfg.CORSAllowedOrigins)
	assert.Zero(t, cfg.ContentCacheTTL)
	assert.Equal(t, 3, cfg.RateLimitContactThreshold)
	assert.Equal(t, 10*time.Second, cfg.EmailSendTimeout)
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	assert.Equal(t, 7, getEnvInt("SOME_INT", 7))
	t.Setenv("SOME_INT", "12")
	assert.Equal(t, 12, getEnvInt("SOME_INT", 7))
	assert.Equal(t, 5, getEnvInt("UNSET_INT_FOR_TEST", 5))
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{GinMode: "release"}).IsProduction())
	assert.False(t, (&Config{GinMode: "debug"}).IsProduction())
}

func TestGetEnvList_BlankFallsBack(t *testing.T) {
	t.Setenv("SOME_LIST", " , ")
	assert.Equal(t, []string{"*"}, getEnvList("SOME_LIST", []string{"*"}))
}
