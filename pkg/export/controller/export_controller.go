package controller

import "github.com/labstack/echo/v4"

type ExportController interface {
	ExportJSON(c echo.Context) error
	ExportDOCX(c echo.Context) error
	ExportPDF(c echo.Context) error
	ExportXLSX(c echo.Context) error
}
