package controllerImp

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"iddss/pkg/export/service"
	"iddss/pkg/export/serviceImp"
	"iddss/pkg/export/types"
)

const (
	docxMediaType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	pdfMediaType  = "application/pdf"
	xlsxMediaType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportCtrl struct{ svc service.ExportService }

func New(svc service.ExportService) *ExportCtrl { return &ExportCtrl{svc} }

func (h *ExportCtrl) snapshot(c echo.Context) (*types.Snapshot, uint, error) {
	id, _ := strconv.Atoi(c.Param("id"))
	snap, err := h.svc.Snapshot(uint(id))
	if err != nil {
		if serviceImp.IsNotFound(err) {
			return nil, 0, c.JSON(http.StatusNotFound, map[string]string{"error": fmt.Sprintf("session %d not found", id)})
		}
		return nil, 0, c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return snap, uint(id), nil
}

// ExportJSON serves the raw snapshot untouched. Reconciliation happens
// only for the document formats.
func (h *ExportCtrl) ExportJSON(c echo.Context) error {
	snap, _, err := h.snapshot(c)
	if snap == nil {
		return err
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *ExportCtrl) ExportDOCX(c echo.Context) error {
	return h.document(c, "docx", docxMediaType, h.svc.RenderDOCX)
}

func (h *ExportCtrl) ExportPDF(c echo.Context) error {
	return h.document(c, "pdf", pdfMediaType, h.svc.RenderPDF)
}

func (h *ExportCtrl) ExportXLSX(c echo.Context) error {
	return h.document(c, "xlsx", xlsxMediaType, h.svc.RenderXLSX)
}

func (h *ExportCtrl) document(c echo.Context, ext, mediaType string, render func(*types.Snapshot) ([]byte, error)) error {
	snap, id, err := h.snapshot(c)
	if snap == nil {
		return err
	}
	out, err := render(snap)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": fmt.Sprintf("%s export failed: %v", ext, err)})
	}
	filename := fmt.Sprintf("id-dss-session-%d.%s", id, ext)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Blob(http.StatusOK, mediaType, out)
}
