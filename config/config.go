package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	DBPath      string
	APIPrefix   string
	CORSOrigins []string

	LLMProvider string // openai|anthropic|gemini|mock

	OpenAIEndpoint string
	OpenAIKey      string
	OpenAIModel    string

	AnthropicEndpoint string
	AnthropicKey      string
	AnthropicModel    string

	GeminiEndpoint string
	GeminiKey      string
	GeminiModel    string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:      get("PORT", "8080"),
		DBPath:    get("DB_PATH", "iddss.db"),
		APIPrefix: get("API_PREFIX", "/api/v1"),

		LLMProvider: get("LLM_PROVIDER", "openai"),

		OpenAIEndpoint: get("OPENAI_ENDPOINT", "https://api.openai.com"),
		OpenAIKey:      get("OPENAI_API_KEY", ""),
		OpenAIModel:    get("OPENAI_MODEL", "gpt-4o-mini"),

		AnthropicEndpoint: get("ANTHROPIC_ENDPOINT", "https://api.anthropic.com"),
		AnthropicKey:      get("ANTHROPIC_API_KEY", ""),
		AnthropicModel:    get("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022"),

		GeminiEndpoint: get("GEMINI_ENDPOINT", "https://generativelanguage.googleapis.com"),
		GeminiKey:      get("GEMINI_API_KEY", ""),
		GeminiModel:    get("GEMINI_MODEL", "gemini-1.5-flash"),
	}
	for _, o := range strings.Split(get("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	log.Printf("[cfg] port=%s db=%s provider=%s", cfg.Port, cfg.DBPath, cfg.LLMProvider)
	return cfg
}
