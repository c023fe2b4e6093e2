package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"iddss/config"
	"iddss/database"
	"iddss/pkg/ai"
	actionctrl "iddss/pkg/action/controllerImp"
	actionrepo "iddss/pkg/action/repositoryImp"
	exportctrl "iddss/pkg/export/controllerImp"
	exportsvc "iddss/pkg/export/serviceImp"
	healthctrl "iddss/pkg/health/controllerImp"
	llmctrl "iddss/pkg/llm/controllerImp"
	recctrl "iddss/pkg/recommendation/controllerImp"
	recrepo "iddss/pkg/recommendation/repositoryImp"
	sessctrl "iddss/pkg/session/controllerImp"
	sessrepo "iddss/pkg/session/repositoryImp"
	stepctrl "iddss/pkg/step/controllerImp"
	steprepo "iddss/pkg/step/repositoryImp"
	"iddss/router"
)

func newAIClient(cfg config.AppConfig) ai.Client {
	switch cfg.LLMProvider {
	case "openai":
		if cfg.OpenAIKey != "" {
			return ai.NewOpenAI(cfg.OpenAIEndpoint, cfg.OpenAIKey, cfg.OpenAIModel)
		}
	case "anthropic":
		if cfg.AnthropicKey != "" {
			return ai.NewAnthropic(cfg.AnthropicEndpoint, cfg.AnthropicKey, cfg.AnthropicModel)
		}
	case "gemini":
		if cfg.GeminiKey != "" {
			return ai.NewGemini(cfg.GeminiEndpoint, cfg.GeminiKey, cfg.GeminiModel)
		}
	case "mock":
		return ai.NewMock()
	}
	log.Printf("[ai] provider %q has no key, using mock client", cfg.LLMProvider)
	return ai.NewMock()
}

func main() {
	cfg := config.Load()
	db := database.OpenSQLite(cfg.DBPath)

	sessions := sessrepo.New(db)
	steps := steprepo.New(db)
	recommendations := recrepo.New(db)
	actions := actionrepo.New(db)

	client := newAIClient(cfg)
	exports := exportsvc.New(sessions, steps, recommendations, actions)

	e := router.New(
		echo.New(),
		cfg.APIPrefix,
		cfg.CORSOrigins,
		sessctrl.New(sessions),
		stepctrl.New(steps, sessions),
		recctrl.New(recommendations, steps),
		actionctrl.New(actions, steps, recommendations),
		llmctrl.New(client, cfg, sessions, steps, recommendations),
		exportctrl.New(exports),
		healthctrl.New(db),
	)

	log.Printf("[srv] listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
