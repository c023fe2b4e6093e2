package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"iddss/entities"
	repo "iddss/pkg/recommendation/repository"
	steprepo "iddss/pkg/step/repository"
)

type RecommendationCtrl struct {
	repo  repo.RecommendationRepository
	steps steprepo.StepRepository
}

func New(repo repo.RecommendationRepository, steps steprepo.StepRepository) *RecommendationCtrl {
	return &RecommendationCtrl{repo: repo, steps: steps}
}

type recommendationReq struct {
	StepID      uint   `json:"step_id"`
	Phase       string `json:"phase"`
	RawResponse string `json:"raw_response"`
}

func (h *RecommendationCtrl) Create(c echo.Context) error {
	var req recommendationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if _, err := h.steps.FindByID(req.StepID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": fmt.Sprintf("step %d not found", req.StepID)})
	}
	rec := &entities.Recommendation{
		StepID:      req.StepID,
		Phase:       req.Phase,
		RawResponse: req.RawResponse,
	}
	if err := h.repo.Create(rec); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *RecommendationCtrl) List(c echo.Context) error {
	var stepID *uint
	if raw := c.QueryParam("step_id"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad step_id"})
		}
		id := uint(v)
		stepID = &id
	}
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.repo.List(stepID, c.QueryParam("phase"), skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RecommendationCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	rec, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": fmt.Sprintf("recommendation %d not found", id)})
	}
	return c.JSON(http.StatusOK, rec)
}
