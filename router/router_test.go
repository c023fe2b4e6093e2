package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"iddss/router"
)

type okCtrl struct{}

func (okCtrl) handle(c echo.Context) error { return c.NoContent(http.StatusOK) }

func (s okCtrl) Create(c echo.Context) error { return s.handle(c) }
func (s okCtrl) List(c echo.Context) error   { return s.handle(c) }
func (s okCtrl) Get(c echo.Context) error    { return s.handle(c) }
func (s okCtrl) Patch(c echo.Context) error  { return s.handle(c) }

func (s okCtrl) AnalyzeObjectives(c echo.Context) error    { return s.handle(c) }
func (s okCtrl) SuggestActivities(c echo.Context) error    { return s.handle(c) }
func (s okCtrl) RecommendAssessments(c echo.Context) error { return s.handle(c) }
func (s okCtrl) Status(c echo.Context) error               { return s.handle(c) }
func (s okCtrl) GeminiModels(c echo.Context) error         { return s.handle(c) }

func (s okCtrl) ExportJSON(c echo.Context) error { return s.handle(c) }
func (s okCtrl) ExportDOCX(c echo.Context) error { return s.handle(c) }
func (s okCtrl) ExportPDF(c echo.Context) error  { return s.handle(c) }
func (s okCtrl) ExportXLSX(c echo.Context) error { return s.handle(c) }

type panicHealth struct{}

func (panicHealth) Health(echo.Context) error { panic("db gone") }

func newTestRouter() *echo.Echo {
	var ctrl okCtrl
	return router.New(echo.New(), "/api/v1", nil, ctrl, ctrl, ctrl, ctrl, ctrl, ctrl, panicHealth{})
}

func TestPanicInHandlerBecomes500(t *testing.T) {
	e := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestRoutesRegistered(t *testing.T) {
	e := newTestRouter()
	for _, tt := range []struct {
		method, path string
	}{
		{http.MethodPost, "/api/v1/sessions"},
		{http.MethodPatch, "/api/v1/sessions/1"},
		{http.MethodGet, "/api/v1/llm/status"},
		{http.MethodGet, "/api/v1/llm/gemini/models"},
		{http.MethodGet, "/api/v1/export/1/docx"},
	} {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s %s: status = %d, want %d", tt.method, tt.path, rec.Code, http.StatusOK)
		}
	}
}
