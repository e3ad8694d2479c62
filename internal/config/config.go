package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration for the Creator Lite service.
type Config struct {
	ListenAddr     string
	RateTablePath  string
	DefaultRegion  string
	DefaultLimit   int
	MinLimit       int
	MaxLimit       int
	YouTubeAPIKey  string
	OpenAIAPIKey   string
	OpenAIModel    string
	LLMTemperature float64
	LLMMaxTokens   int
}

// FromEnv creates a configuration instance sourced from environment variables.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:     getEnv("CREATOR_LISTEN_ADDR", ":8080"),
		RateTablePath:  getEnv("CREATOR_RATE_TABLE", ""),
		DefaultRegion:  getEnv("CREATOR_DEFAULT_REGION", "US"),
		DefaultLimit:   5,
		MinLimit:       3,
		MaxLimit:       10,
		YouTubeAPIKey:  getEnv("YOUTUBE_API_KEY", ""),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:    getEnv("CREATOR_OPENAI_MODEL", "gpt-4o-mini"),
		LLMTemperature: 0.7,
		LLMMaxTokens:   100,
	}

	if limit := os.Getenv("CREATOR_DEFAULT_LIMIT"); limit != "" {
		if _, err := fmt.Sscanf(limit, "%d", &cfg.DefaultLimit); err != nil {
			return Config{}, fmt.Errorf("parse CREATOR_DEFAULT_LIMIT: %w", err)
		}
	}

	if temp := os.Getenv("CREATOR_LLM_TEMPERATURE"); temp != "" {
		if _, err := fmt.Sscanf(temp, "%f", &cfg.LLMTemperature); err != nil {
			return Config{}, fmt.Errorf("parse CREATOR_LLM_TEMPERATURE: %w", err)
		}
	}

	if tokens := os.Getenv("CREATOR_LLM_MAX_TOKENS"); tokens != "" {
		if _, err := fmt.Sscanf(tokens, "%d", &cfg.LLMMaxTokens); err != nil {
			return Config{}, fmt.Errorf("parse CREATOR_LLM_MAX_TOKENS: %w", err)
		}
	}

	if cfg.DefaultLimit < cfg.MinLimit || cfg.DefaultLimit > cfg.MaxLimit {
		return Config{}, fmt.Errorf("CREATOR_DEFAULT_LIMIT must be between %d and %d", cfg.MinLimit, cfg.MaxLimit)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
