package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Env       string
	Host      string
	Port      string
	LogLevel  string
	LogFormat string

	// OpenAI settings
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	OpenAIModel     string
	OpenAIMaxTokens int
	OpenAIStub      bool

	// Brief assembly settings
	InterestsFile string
	PromptFile    string
	FeedItemLimit int
	FeedTimeout   time.Duration
	BriefTimeout  time.Duration
}

// Load reads configuration from a .env file (if present) and environment variables
func Load() *Config {
	// Local development keeps secrets in .env; missing file is fine.
	_ = godotenv.Load()

	cfg := &Config{
		Env:             getEnvWithDefault("ENV", "development"),
		Host:            getEnvWithDefault("HOST", "0.0.0.0"),
		Port:            getEnvWithDefault("PORT", "8000"),
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "info"),
		LogFormat:       getEnvWithDefault("LOG_FORMAT", "text"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   getEnvWithDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:     getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIMaxTokens: getEnvIntWithDefault("OPENAI_MAX_TOKENS", 400),
		OpenAIStub:      getEnvBool("OPENAI_STUB"),
		InterestsFile:   getEnvWithDefault("INTERESTS_FILE", "data/interests.json"),
		PromptFile:      getEnvWithDefault("PROMPT_FILE", "prompts/brief.yaml"),
		FeedItemLimit:   getEnvIntWithDefault("FEED_ITEM_LIMIT", 5),
		FeedTimeout:     getEnvDurationWithDefault("FEED_TIMEOUT", 10*time.Second),
		BriefTimeout:    getEnvDurationWithDefault("BRIEF_TIMEOUT", 30*time.Second),
	}

	// Warn instead of failing so the server still comes up; the brief
	// endpoint reports the missing key as a status=error payload.
	if cfg.OpenAIAPIKey == "" && !cfg.OpenAIStub {
		log.Println("WARNING: OPENAI_API_KEY not set. Brief generation will fail until it is configured (or set OPENAI_STUB=true).")
	}

	return cfg
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvBool(key string) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && value
}
