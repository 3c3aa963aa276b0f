package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port            string
	LogLevel        string
	APIKey          string
	GeminiModel     string
	SummaryTimeout  time.Duration
	ShutdownTimeout time.Duration
	StatsSchedule   string
	PromptTemplates string
}

// NewConfig loads configuration from the environment, after applying any
// variables found in the given .env files (default ".env"). Missing .env
// files are not an error.
func NewConfig(envFiles ...string) (*Config, error) {
	if err := loadEnvFiles(envFiles...); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:            getEnv("PORT", "8000"),
		LogLevel:        getEnv("LOG_LEVEL", "INFO"),
		APIKey:          getEnv("API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		StatsSchedule:   getEnv("STATS_SCHEDULE", "@every 1h"),
		PromptTemplates: getEnv("PROMPT_TEMPLATES", ""),
	}

	var err error
	if cfg.SummaryTimeout, err = getEnvDuration("SUMMARY_TIMEOUT", 20*time.Second); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY is required")
	}
	if cfg.GeminiModel == "" {
		return nil, fmt.Errorf("GEMINI_MODEL must not be empty")
	}
	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT must not be empty")
	}

	return cfg, nil
}

func loadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	// Variables already set in the process win over the file
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return d, nil
}
