package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	DBPath          string
	CatalogPath     string
	WordsPerDay     int
	ReviewCount     int
	ReviewCycleDays int
	ReviewPolicy    string
	LogLevel        string
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent.
	_ = godotenv.Load()

	return Config{
		Addr:            envOr("ADDR", ":8080"),
		DBPath:          envOr("DB_PATH", "file:worddrill.db"),
		CatalogPath:     envOr("CATALOG_PATH", "words.csv"),
		WordsPerDay:     envIntOr("WORDS_PER_DAY", 20),
		ReviewCount:     envIntOr("REVIEW_COUNT", 10),
		ReviewCycleDays: envIntOr("REVIEW_CYCLE_DAYS", 5),
		ReviewPolicy:    envOr("REVIEW_POLICY", "per_day"),
		LogLevel:        envOr("LOG_LEVEL", "INFO"),
	}
}

// Validate checks the configuration and reports every problem at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	if c.CatalogPath == "" {
		problems = append(problems, "CATALOG_PATH cannot be empty")
	}
	if c.WordsPerDay < 1 {
		problems = append(problems, fmt.Sprintf("WORDS_PER_DAY must be at least 1, got %d", c.WordsPerDay))
	}
	if c.ReviewCount < 0 {
		problems = append(problems, fmt.Sprintf("REVIEW_COUNT cannot be negative, got %d", c.ReviewCount))
	}
	if c.ReviewCycleDays < 1 {
		problems = append(problems, fmt.Sprintf("REVIEW_CYCLE_DAYS must be at least 1, got %d", c.ReviewCycleDays))
	}
	switch c.ReviewPolicy {
	case "per_day", "weekly_block", "special_toggle":
	default:
		problems = append(problems, fmt.Sprintf("REVIEW_POLICY must be per_day, weekly_block or special_toggle, got %q", c.ReviewPolicy))
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be DEBUG, INFO, WARN or ERROR, got %q", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
