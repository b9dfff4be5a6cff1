package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings holds everything the service reads from the environment.
type Settings struct {
	Port     int
	LogLevel string

	DatabaseDriver string // postgres or sqlite
	DatabaseDSN    string

	JWTSecret    string
	CookieDomain string
	CookieSecure bool

	AIProvider      string // gemini, openai or anthropic
	AIModel         string
	AITimeout       time.Duration
	GeminiAPIKey    string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	AnthropicAPIKey string

	TopicsFile   string
	TopicsStrict bool

	CorsAllowedOrigins []string
}

var (
	ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")
	ErrUnknownDriver    = errors.New("DATABASE_DRIVER must be postgres or sqlite")
	ErrMissingDSN       = errors.New("DATABASE_DSN must be set for postgres")
)

// Load reads Settings from the environment and validates the required ones.
func Load() (*Settings, error) {
	s := &Settings{
		Port:               getEnvInt("PORT", 8080),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DatabaseDriver:     strings.ToLower(getEnv("DATABASE_DRIVER", "postgres")),
		DatabaseDSN:        os.Getenv("DATABASE_DSN"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		CookieDomain:       os.Getenv("COOKIE_DOMAIN"),
		CookieSecure:       getEnvBool("COOKIE_SECURE", true),
		AIProvider:         strings.ToLower(getEnv("AI_PROVIDER", "gemini")),
		AIModel:            os.Getenv("AI_MODEL"),
		AITimeout:          getEnvDuration("AI_TIMEOUT", 60*time.Second),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey:       os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:      os.Getenv("OPENAI_BASE_URL"),
		AnthropicAPIKey:    os.Getenv("ANTHROPIC_API_KEY"),
		TopicsFile:         os.Getenv("TOPICS_FILE"),
		TopicsStrict:       getEnvBool("TOPICS_STRICT", false),
		CorsAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	if s.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	switch s.DatabaseDriver {
	case "postgres":
		if s.DatabaseDSN == "" {
			return nil, ErrMissingDSN
		}
	case "sqlite":
		if s.DatabaseDSN == "" {
			s.DatabaseDSN = "file:interview.db?_foreign_keys=on"
		}
	default:
		return nil, ErrUnknownDriver
	}

	return s, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
