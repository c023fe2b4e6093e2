package controllerImp

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"iddss/config"
	"iddss/entities"
	"iddss/pkg/ai"
	recrepo "iddss/pkg/recommendation/repository"
	sessrepo "iddss/pkg/session/repository"
	steprepo "iddss/pkg/step/repository"
)

type LLMCtrl struct {
	client          ai.Client
	cfg             config.AppConfig
	sessions        sessrepo.SessionRepository
	steps           steprepo.StepRepository
	recommendations recrepo.RecommendationRepository
}

func New(
	client ai.Client,
	cfg config.AppConfig,
	sessions sessrepo.SessionRepository,
	steps steprepo.StepRepository,
	recommendations recrepo.RecommendationRepository,
) *LLMCtrl {
	return &LLMCtrl{
		client:          client,
		cfg:             cfg,
		sessions:        sessions,
		steps:           steps,
		recommendations: recommendations,
	}
}

type analyzeReq struct {
	SessionID  uint   `json:"session_id"`
	Objectives string `json:"objectives"`
}

type assessmentReq struct {
	SessionID  uint   `json:"session_id"`
	Objectives string `json:"objectives"`
	Activities string `json:"activities"`
}

func (h *LLMCtrl) AnalyzeObjectives(c echo.Context) error {
	var req analyzeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	return h.generate(c, req.SessionID, "objective-analysis", req.Objectives,
		func(course ai.CourseContext) (map[string]any, error) {
			return h.client.AnalyzeObjectives(course, req.Objectives)
		})
}

func (h *LLMCtrl) SuggestActivities(c echo.Context) error {
	var req analyzeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	return h.generate(c, req.SessionID, "activity-suggestion", req.Objectives,
		func(course ai.CourseContext) (map[string]any, error) {
			return h.client.SuggestActivities(course, req.Objectives)
		})
}

func (h *LLMCtrl) RecommendAssessments(c echo.Context) error {
	var req assessmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	userInput := fmt.Sprintf("Objectives:\n%s\n\nActivities:\n%s", req.Objectives, req.Activities)
	return h.generate(c, req.SessionID, "assessment-recommendation", userInput,
		func(course ai.CourseContext) (map[string]any, error) {
			return h.client.RecommendAssessments(course, req.Objectives, req.Activities)
		})
}

// generate runs one provider call and records the step plus the raw
// recommendation so the export can replay the full history later.
func (h *LLMCtrl) generate(c echo.Context, sessionID uint, phase, userInput string, call func(ai.CourseContext) (map[string]any, error)) error {
	sess, err := h.sessions.FindByID(sessionID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": fmt.Sprintf("session %d not found", sessionID)})
	}

	result, err := call(ai.CourseContext{
		CourseTitle: sess.CourseTitle,
		Level:       sess.Level,
		Modality:    sess.Modality,
		Constraints: sess.Constraints,
	})
	if err != nil {
		if ai.IsUnavailable(err) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "llm request failed: " + err.Error()})
	}

	step := &entities.DesignStep{
		SessionID: sessionID,
		Phase:     phase,
		UserInput: userInput,
	}
	if err := h.steps.Create(step); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	raw, _ := json.Marshal(result)
	rec := &entities.Recommendation{
		StepID:      step.StepID,
		Phase:       phase,
		RawResponse: string(raw),
	}
	if err := h.recommendations.Create(rec); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success":           true,
		"step_id":           step.StepID,
		"recommendation_id": rec.RecommendationID,
		"data":              result,
	})
}

func (h *LLMCtrl) Status(c echo.Context) error {
	provider := h.cfg.LLMProvider
	var configured bool
	var model string
	switch provider {
	case "openai":
		configured = h.cfg.OpenAIKey != ""
		model = h.cfg.OpenAIModel
	case "anthropic":
		configured = h.cfg.AnthropicKey != ""
		model = h.cfg.AnthropicModel
	case "gemini":
		configured = h.cfg.GeminiKey != ""
		model = h.cfg.GeminiModel
	case "mock":
		configured = true
		model = "mock"
	default:
		model = "unknown"
	}

	message := "Ready"
	if !configured {
		if model == "unknown" {
			message = "Unknown LLM provider: " + provider
		} else {
			message = fmt.Sprintf("Set %s_API_KEY in .env file", strings.ToUpper(provider))
		}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"provider":   provider,
		"model":      model,
		"configured": configured,
		"message":    message,
	})
}

// GeminiModels lists the models the configured Gemini key can use,
// regardless of which provider is active.
func (h *LLMCtrl) GeminiModels(c echo.Context) error {
	if h.cfg.GeminiKey == "" {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "Gemini API key not configured. Set GEMINI_API_KEY in .env file."})
	}
	models, err := ai.ListGeminiModels(h.cfg.GeminiEndpoint, h.cfg.GeminiKey)
	if err != nil {
		if ai.IsUnavailable(err) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	generate := make([]ai.GeminiModel, 0, len(models))
	for _, m := range models {
		for _, method := range m.SupportedGenerationMethods {
			if method == "generateContent" {
				generate = append(generate, m)
				break
			}
		}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"configured_model":        h.cfg.GeminiModel,
		"models":                  models,
		"generate_content_models": generate,
	})
}
