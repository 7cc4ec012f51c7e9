package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string
	DBUrl   string
	// Comma separated list; "*" keeps the API open to any origin
	CORSAllowedOrigins []string
	// Email provider: "resend", "smtp" or "log"
	EmailProvider    string
	ResendAPIKey     string
	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	EmailSendTimeout time.Duration
	// Contact email identity
	ContactEmailFrom    string
	ContactEmailTo      string
	ContactEmailSubject string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Content cache TTL, zero disables the cache
	ContentCacheTTL time.Duration
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
}

func LoadConfig() (*Config, error) {
	// Load .env file when present; production reads the real environment
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		DBUrl:              getEnv("DATABASE_URL", ""),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		// Email provider
		EmailProvider:    strings.ToLower(getEnv("EMAIL_PROVIDER", "resend")),
		ResendAPIKey:     getEnv("RESEND_API_KEY", ""),
		SMTPHost:         getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		EmailSendTimeout: time.Duration(getEnvInt("EMAIL_SEND_TIMEOUT_SECONDS", 10)) * time.Second,
		// Contact email identity
		ContactEmailFrom:    getEnv("CONTACT_EMAIL_FROM", "CAVALTRON Site <onboarding@resend.dev>"),
		ContactEmailTo:      getEnv("CONTACT_EMAIL_TO", "contato@cavaltron.com.br"),
		ContactEmailSubject: getEnv("CONTACT_EMAIL_SUBJECT", "Solicitações de Contato via Site"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		ContentCacheTTL:      time.Duration(getEnvInt("CONTENT_CACHE_TTL_SECONDS", 60)) * time.Second,
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5),  // 5 submissions per window
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. The server will not be able to reach the content store.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback and content caching is off.")
	}

	if cfg.EmailSendTimeout <= 0 {
		cfg.EmailSendTimeout = 10 * time.Second
	}

	return cfg, nil
}

// IsProduction reports whether gin runs in release mode
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
