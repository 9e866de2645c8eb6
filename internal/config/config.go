// File: internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	// Generative-AI provider credential and endpoint. The base URL is
	// configurable so any OpenAI-compatible gateway can serve as provider.
	AIAPIKey  string
	AIBaseURL string
	AIModel   string
	// DatabaseURL defaults to a local file-backed sqlite store; a
	// postgres:// URL switches the driver.
	DatabaseURL string
	// HistoryWindow is the number of recent transcript messages handed to
	// the generator as conversational context.
	HistoryWindow int
	Environment   string
}

// Load reads configuration from environment variables or a .env file.
func Load() *Config {
	env := os.Getenv("ENVIRONMENT")
	if strings.ToLower(env) != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found; continuing with environment variables")
		}
	}

	cfg := &Config{
		ServerPort:    getEnv("SERVER_PORT", "8000"),
		AIAPIKey:      getEnv("AI_API_KEY", ""),
		AIBaseURL:     getEnv("AI_BASE_URL", ""),
		AIModel:       getEnv("AI_MODEL", "gpt-4o-mini"),
		DatabaseURL:   getEnv("DATABASE_URL", "data/ecommerce_chat.db"),
		HistoryWindow: getEnvAsInt("CHAT_HISTORY_WINDOW", 6),
		Environment:   env,
	}

	if strings.ToLower(env) == "production" {
		missing := []string{}
		if cfg.AIAPIKey == "" {
			missing = append(missing, "AI_API_KEY")
		}
		if cfg.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
		if len(missing) > 0 {
			log.Fatalf("Missing required production environment variables: %v", missing)
		}
	}

	return cfg
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an env var as an integer, with a fallback.
func getEnvAsInt(key string, defaultValue int) int {
	strValue := getEnv(key, "")
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil {
		log.Printf("Warning: could not parse env var %s as integer. Using default value.", key)
		return defaultValue
	}
	return intValue
}
