package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"iddss/pkg/middleware"
)

func New(
	e *echo.Echo,
	prefix string,
	corsOrigins []string,
	sessionCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Patch(echo.Context) error
	},
	stepCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
	},
	recommendationCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
	},
	actionCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
	},
	llmCtrl interface {
		AnalyzeObjectives(echo.Context) error
		SuggestActivities(echo.Context) error
		RecommendAssessments(echo.Context) error
		Status(echo.Context) error
		GeminiModels(echo.Context) error
	},
	exportCtrl interface {
		ExportJSON(echo.Context) error
		ExportDOCX(echo.Context) error
		ExportPDF(echo.Context) error
		ExportXLSX(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(echomw.Recover())
	e.Use(middleware.CORS(corsOrigins))
	e.GET("/health", healthCtrl.Health)

	api := e.Group(prefix)

	api.POST("/sessions", sessionCtrl.Create)
	api.GET("/sessions", sessionCtrl.List)
	api.GET("/sessions/:id", sessionCtrl.Get)
	api.PATCH("/sessions/:id", sessionCtrl.Patch)

	api.POST("/steps", stepCtrl.Create)
	api.GET("/steps", stepCtrl.List)
	api.GET("/steps/:id", stepCtrl.Get)

	api.POST("/recommendations", recommendationCtrl.Create)
	api.GET("/recommendations", recommendationCtrl.List)
	api.GET("/recommendations/:id", recommendationCtrl.Get)

	api.POST("/actions", actionCtrl.Create)
	api.GET("/actions", actionCtrl.List)
	api.GET("/actions/:id", actionCtrl.Get)

	api.POST("/llm/analyze-objectives", llmCtrl.AnalyzeObjectives)
	api.POST("/llm/suggest-activities", llmCtrl.SuggestActivities)
	api.POST("/llm/recommend-assessments", llmCtrl.RecommendAssessments)
	api.GET("/llm/status", llmCtrl.Status)
	api.GET("/llm/gemini/models", llmCtrl.GeminiModels)

	api.GET("/export/:id", exportCtrl.ExportJSON)
	api.GET("/export/:id/docx", exportCtrl.ExportDOCX)
	api.GET("/export/:id/pdf", exportCtrl.ExportPDF)
	api.GET("/export/:id/xlsx", exportCtrl.ExportXLSX)

	return e
}
