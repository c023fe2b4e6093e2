package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"iddss/database"
	"iddss/entities"
	actionrepo "iddss/pkg/action/repositoryImp"
	exportsvc "iddss/pkg/export/serviceImp"
	recrepo "iddss/pkg/recommendation/repositoryImp"
	sessrepo "iddss/pkg/session/repositoryImp"
	steprepo "iddss/pkg/step/repositoryImp"
	"gorm.io/gorm"
)

func newTestCtrl(t *testing.T) (*ExportCtrl, *gorm.DB) {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	svc := exportsvc.New(sessrepo.New(db), steprepo.New(db), recrepo.New(db), actionrepo.New(db))
	return New(svc), db
}

func doExport(t *testing.T, ctrl *ExportCtrl, handler func(echo.Context) error, id string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	if err := handler(c); err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestExportJSONNotFound(t *testing.T) {
	ctrl, _ := newTestCtrl(t)
	rec := doExport(t, ctrl, ctrl.ExportJSON, "99")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "session 99 not found") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestExportJSONBody(t *testing.T) {
	ctrl, db := newTestCtrl(t)
	sess := &entities.Session{CourseTitle: "Intro to Databases", Level: "undergraduate", Modality: "online"}
	if err := db.Create(sess).Error; err != nil {
		t.Fatal(err)
	}

	rec := doExport(t, ctrl, ctrl.ExportJSON, "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`"course_title":"Intro to Databases"`, `"design_steps":[]`, `"exported_at"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %s: %s", want, body)
		}
	}
}

func TestExportDocumentHeaders(t *testing.T) {
	ctrl, db := newTestCtrl(t)
	if err := db.Create(&entities.Session{CourseTitle: "Intro to Databases"}).Error; err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		handler   func(echo.Context) error
		filename  string
		mediaType string
	}{
		{ctrl.ExportDOCX, `id-dss-session-1.docx`, docxMediaType},
		{ctrl.ExportPDF, `id-dss-session-1.pdf`, pdfMediaType},
		{ctrl.ExportXLSX, `id-dss-session-1.xlsx`, xlsxMediaType},
	}
	for _, tc := range cases {
		rec := doExport(t, ctrl, tc.handler, "1")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", tc.filename, rec.Code)
		}
		if got := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(got, tc.filename) {
			t.Fatalf("%s: disposition = %q", tc.filename, got)
		}
		if got := rec.Header().Get(echo.HeaderContentType); got != tc.mediaType {
			t.Fatalf("%s: content type = %q, want %q", tc.filename, got, tc.mediaType)
		}
		if rec.Body.Len() == 0 {
			t.Fatalf("%s: empty body", tc.filename)
		}
	}
}
