package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"iddss/entities"
	sessrepo "iddss/pkg/session/repository"
	repo "iddss/pkg/step/repository"
)

type StepCtrl struct {
	repo     repo.StepRepository
	sessions sessrepo.SessionRepository
}

func New(repo repo.StepRepository, sessions sessrepo.SessionRepository) *StepCtrl {
	return &StepCtrl{repo: repo, sessions: sessions}
}

type stepReq struct {
	SessionID uint   `json:"session_id"`
	Phase     string `json:"phase"`
	UserInput string `json:"user_input"`
}

func (h *StepCtrl) Create(c echo.Context) error {
	var req stepReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if _, err := h.sessions.FindByID(req.SessionID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": fmt.Sprintf("session %d not found", req.SessionID)})
	}
	s := &entities.DesignStep{
		SessionID: req.SessionID,
		Phase:     req.Phase,
		UserInput: req.UserInput,
	}
	if err := h.repo.Create(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *StepCtrl) List(c echo.Context) error {
	var sessionID *uint
	if raw := c.QueryParam("session_id"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad session_id"})
		}
		id := uint(v)
		sessionID = &id
	}
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.repo.List(sessionID, skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StepCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	s, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": fmt.Sprintf("step %d not found", id)})
	}
	return c.JSON(http.StatusOK, s)
}
