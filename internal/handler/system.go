package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type SystemHandler struct {
	version   string
	prefix    string
	env       string
	startedAt time.Time
}

func NewSystemHandler(version, prefix, env string) *SystemHandler {
	return &SystemHandler{
		version:   version,
		prefix:    prefix,
		env:       env,
		startedAt: time.Now(),
	}
}

func (h *SystemHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":         "ok",
		"timestamp":      time.Now().UTC(),
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
		"environment":    h.env,
	})
}

func (h *SystemHandler) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"name":        "Flower Forecast API",
		"version":     h.version,
		"description": "Flower bloom forecasting and travel recommendation service",
		"endpoints": map[string]string{
			"locations": h.prefix + "/locations",
			"forecast":  h.prefix + "/forecast",
			"search":    h.prefix + "/search",
			"health":    "/health",
			"metrics":   "/metrics",
		},
	})
}
