package controller

import "github.com/labstack/echo/v4"

type LLMController interface {
	AnalyzeObjectives(c echo.Context) error
	SuggestActivities(c echo.Context) error
	RecommendAssessments(c echo.Context) error
	Status(c echo.Context) error
	GeminiModels(c echo.Context) error
}
