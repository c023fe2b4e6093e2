package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"iddss/entities"
	repo "iddss/pkg/action/repository"
	recrepo "iddss/pkg/recommendation/repository"
	steprepo "iddss/pkg/step/repository"
)

type ActionCtrl struct {
	repo            repo.ActionRepository
	steps           steprepo.StepRepository
	recommendations recrepo.RecommendationRepository
}

func New(repo repo.ActionRepository, steps steprepo.StepRepository, recommendations recrepo.RecommendationRepository) *ActionCtrl {
	return &ActionCtrl{repo: repo, steps: steps, recommendations: recommendations}
}

type actionReq struct {
	StepID           uint   `json:"step_id"`
	RecommendationID *uint  `json:"recommendation_id"`
	ActionType       string `json:"action_type"`
	EditedContent    string `json:"edited_content"`
	Comment          string `json:"comment"`
}

func (h *ActionCtrl) Create(c echo.Context) error {
	var req actionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if _, err := h.steps.FindByID(req.StepID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": fmt.Sprintf("step %d not found", req.StepID)})
	}
	if req.RecommendationID != nil {
		if _, err := h.recommendations.FindByID(*req.RecommendationID); err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": fmt.Sprintf("recommendation %d not found", *req.RecommendationID)})
		}
	}
	a := &entities.UserAction{
		StepID:           req.StepID,
		RecommendationID: req.RecommendationID,
		ActionType:       req.ActionType,
		EditedContent:    req.EditedContent,
		Comment:          req.Comment,
	}
	if err := h.repo.Create(a); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *ActionCtrl) List(c echo.Context) error {
	parseID := func(name string) (*uint, bool) {
		raw := c.QueryParam(name)
		if raw == "" {
			return nil, true
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, false
		}
		id := uint(v)
		return &id, true
	}
	stepID, ok := parseID("step_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad step_id"})
	}
	recommendationID, ok := parseID("recommendation_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad recommendation_id"})
	}
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.repo.List(stepID, recommendationID, skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ActionCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	a, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": fmt.Sprintf("action %d not found", id)})
	}
	return c.JSON(http.StatusOK, a)
}
