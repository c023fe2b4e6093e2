package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"iddss/entities"
	repo "iddss/pkg/session/repository"
)

type SessionCtrl struct{ repo repo.SessionRepository }

func New(repo repo.SessionRepository) *SessionCtrl { return &SessionCtrl{repo} }

type sessionReq struct {
	CourseTitle        string `json:"course_title"`
	Level              string `json:"level"`
	Modality           string `json:"modality"`
	Constraints        string `json:"constraints"`
	LearningObjectives string `json:"learning_objectives"`
}

// sessionPatch distinguishes absent fields from empty strings so a PATCH
// only touches what the client sent.
type sessionPatch struct {
	CourseTitle        *string `json:"course_title"`
	Level              *string `json:"level"`
	Modality           *string `json:"modality"`
	Constraints        *string `json:"constraints"`
	LearningObjectives *string `json:"learning_objectives"`
}

func (h *SessionCtrl) Create(c echo.Context) error {
	var req sessionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	s := &entities.Session{
		CourseTitle:        req.CourseTitle,
		Level:              req.Level,
		Modality:           req.Modality,
		Constraints:        req.Constraints,
		LearningObjectives: req.LearningObjectives,
	}
	if err := h.repo.Create(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SessionCtrl) List(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	out, err := h.repo.List(skip, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SessionCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	s, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": fmt.Sprintf("session %d not found", id)})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SessionCtrl) Patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	s, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": fmt.Sprintf("session %d not found", id)})
	}
	var patch sessionPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if patch.CourseTitle != nil {
		s.CourseTitle = *patch.CourseTitle
	}
	if patch.Level != nil {
		s.Level = *patch.Level
	}
	if patch.Modality != nil {
		s.Modality = *patch.Modality
	}
	if patch.Constraints != nil {
		s.Constraints = *patch.Constraints
	}
	if patch.LearningObjectives != nil {
		s.LearningObjectives = *patch.LearningObjectives
	}
	if err := h.repo.Update(s); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, s)
}
