package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type HealthCtrl struct {
	db      *gorm.DB
	started time.Time
}

func New(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db, started: time.Now()} }

// Health pings the database so the check fails when sqlite is gone, not
// just when the process is.
func (h *HealthCtrl) Health(c echo.Context) error {
	uptime := time.Since(h.started).Round(time.Second).String()
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded", "uptime": uptime, "error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "uptime": uptime})
}
