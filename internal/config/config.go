package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	LogLevel       string
	LogJSON        bool
	AllowedOrigins string

	// OpenAI configuration
	OpenAIAPIKey     string
	OpenAICoachModel string

	// Langfuse configuration
	LangfuseBaseURL   string
	LangfusePublicKey string
	LangfuseSecretKey string
	LangfuseEnv       string
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogJSON:        getEnv("LOG_JSON", "false") == "true",
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),

		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAICoachModel: getEnv("OPENAI_COACH_MODEL", "gpt-4o-mini"),

		LangfuseBaseURL:   getEnv("LANGFUSE_BASE_URL", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseEnv:       getEnv("LANGFUSE_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
