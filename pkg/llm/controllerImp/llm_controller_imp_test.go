package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"iddss/config"
	"iddss/database"
	"iddss/entities"
	"iddss/pkg/ai"
	recrepo "iddss/pkg/recommendation/repositoryImp"
	sessrepo "iddss/pkg/session/repositoryImp"
	steprepo "iddss/pkg/step/repositoryImp"
)

func newTestCtrl(t *testing.T, cfg config.AppConfig) (*LLMCtrl, *gorm.DB) {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	ctrl := New(ai.NewMock(), cfg, sessrepo.New(db), steprepo.New(db), recrepo.New(db))
	return ctrl, db
}

func post(t *testing.T, handler func(echo.Context) error, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestAnalyzeObjectivesSessionNotFound(t *testing.T) {
	ctrl, _ := newTestCtrl(t, config.AppConfig{})
	rec := post(t, ctrl.AnalyzeObjectives, `{"session_id": 7, "objectives": "- Explain things"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestAnalyzeObjectivesPersistsStepAndRecommendation(t *testing.T) {
	ctrl, db := newTestCtrl(t, config.AppConfig{})
	if err := db.Create(&entities.Session{CourseTitle: "Intro to Databases", Level: "undergraduate", Modality: "online"}).Error; err != nil {
		t.Fatal(err)
	}

	rec := post(t, ctrl.AnalyzeObjectives, `{"session_id": 1, "objectives": "- Explain normalization"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{`"success":true`, `"step_id":1`, `"recommendation_id":1`, `"bloom_analysis"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %s: %s", want, body)
		}
	}

	var step entities.DesignStep
	if err := db.First(&step, 1).Error; err != nil {
		t.Fatal(err)
	}
	if step.Phase != "objective-analysis" || step.UserInput != "- Explain normalization" {
		t.Fatalf("step = %+v", step)
	}

	var stored entities.Recommendation
	if err := db.First(&stored, 1).Error; err != nil {
		t.Fatal(err)
	}
	if stored.Phase != "objective-analysis" || !strings.Contains(stored.RawResponse, "bloom_analysis") {
		t.Fatalf("recommendation = %+v", stored)
	}
}

func TestRecommendAssessmentsUserInput(t *testing.T) {
	ctrl, db := newTestCtrl(t, config.AppConfig{})
	if err := db.Create(&entities.Session{CourseTitle: "Intro to Databases"}).Error; err != nil {
		t.Fatal(err)
	}

	rec := post(t, ctrl.RecommendAssessments, `{"session_id": 1, "objectives": "obj text", "activities": "act text"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var step entities.DesignStep
	if err := db.First(&step, 1).Error; err != nil {
		t.Fatal(err)
	}
	if step.Phase != "assessment-recommendation" {
		t.Fatalf("phase = %q", step.Phase)
	}
	if step.UserInput != "Objectives:\nobj text\n\nActivities:\nact text" {
		t.Fatalf("user input = %q", step.UserInput)
	}
}

func getModels(t *testing.T, ctrl *LLMCtrl) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := ctrl.GeminiModels(e.NewContext(req, rec)); err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestGeminiModelsWithoutKey(t *testing.T) {
	ctrl, _ := newTestCtrl(t, config.AppConfig{})
	rec := getModels(t, ctrl)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "GEMINI_API_KEY") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestGeminiModelsListsAndFilters(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "gm-key" {
			t.Errorf("key = %q", r.URL.Query().Get("key"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"models": [
			{"name": "models/gemini-1.5-flash", "displayName": "Gemini 1.5 Flash", "supportedGenerationMethods": ["generateContent", "countTokens"]},
			{"name": "models/embedding-001", "displayName": "Embedding 001", "supportedGenerationMethods": ["embedContent"]}
		]}`))
	}))
	defer srv.Close()

	ctrl, _ := newTestCtrl(t, config.AppConfig{
		GeminiKey:      "gm-key",
		GeminiModel:    "gemini-1.5-flash",
		GeminiEndpoint: srv.URL,
	})
	rec := getModels(t, ctrl)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"configured_model":"gemini-1.5-flash"`) {
		t.Fatalf("body missing configured model: %s", body)
	}
	if !strings.Contains(body, `"name":"gemini-1.5-flash"`) || strings.Contains(body, "models/gemini") {
		t.Fatalf("model name prefix not stripped: %s", body)
	}

	var parsed struct {
		Generate []ai.GeminiModel `json:"generate_content_models"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &parsed); err != nil {
		t.Fatal(err)
	}
	if len(parsed.Generate) != 1 || parsed.Generate[0].Name != "gemini-1.5-flash" {
		t.Fatalf("generate_content_models = %+v", parsed.Generate)
	}
}

func TestStatus(t *testing.T) {
	cases := []struct {
		name       string
		cfg        config.AppConfig
		configured string
		message    string
	}{
		{"openai with key", config.AppConfig{LLMProvider: "openai", OpenAIKey: "sk-x", OpenAIModel: "gpt-4o-mini"}, `"configured":true`, "Ready"},
		{"openai without key", config.AppConfig{LLMProvider: "openai", OpenAIModel: "gpt-4o-mini"}, `"configured":false`, "Set OPENAI_API_KEY"},
		{"mock", config.AppConfig{LLMProvider: "mock"}, `"configured":true`, "Ready"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl, _ := newTestCtrl(t, tc.cfg)
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			if err := ctrl.Status(e.NewContext(req, rec)); err != nil {
				t.Fatal(err)
			}
			body := rec.Body.String()
			if !strings.Contains(body, tc.configured) || !strings.Contains(body, tc.message) {
				t.Fatalf("body = %s", body)
			}
		})
	}
}
