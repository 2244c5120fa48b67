package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/flowerforecast/internal/dates"
	"github.com/dharmasatrya/flowerforecast/internal/logging"
	"github.com/dharmasatrya/flowerforecast/internal/models"
)

type ForecastService interface {
	GetForecast(ctx context.Context, slug string, date time.Time) (models.Forecast, error)
	GetForecastRange(ctx context.Context, slug string, start, end time.Time) (models.ForecastRange, error)
	GetHotspots(ctx context.Context, slug string, date time.Time) (models.HotspotReport, error)
}

type ForecastHandler struct {
	service ForecastService
}

func NewForecastHandler(s ForecastService) *ForecastHandler {
	return &ForecastHandler{service: s}
}

// Get handles GET /forecast/:slug/:date.
func (h *ForecastHandler) Get(c echo.Context) error {
	date, err := dates.Parse(c.Param("date"))
	if err != nil {
		return models.ErrInvalidDate
	}

	forecast, err := h.service.GetForecast(c.Request().Context(), c.Param("slug"), date)
	if err != nil {
		return err
	}
	return success(c, forecast, "Forecast retrieved successfully")
}

// Range handles GET /forecast/:slug/range?start=&end=.
func (h *ForecastHandler) Range(c echo.Context) error {
	var req models.ForecastRangeRequest
	err := echo.QueryParamsBinder(c).
		String("start", &req.Start).
		String("end", &req.End).
		BindError()
	if err != nil {
		return &invalidRequest{message: "Invalid query parameters: " + bindMessage(err)}
	}
	if req.Start == "" || req.End == "" {
		return models.ErrRangeRequired
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	start, err := dates.Parse(req.Start)
	if err != nil {
		return models.ErrInvalidDate
	}
	end, err := dates.Parse(req.End)
	if err != nil {
		return models.ErrInvalidDate
	}

	result, err := h.service.GetForecastRange(c.Request().Context(), c.Param("slug"), start, end)
	if err != nil {
		return err
	}

	logging.Ctx(c.Request().Context()).Info().
		Str("slug", result.Location).
		Int("days", len(result.Forecasts)).
		Msg("forecast range served")
	return success(c, result, "Forecast range retrieved successfully")
}

// Hotspots handles GET /forecast/hotspots/:slug/:date.
func (h *ForecastHandler) Hotspots(c echo.Context) error {
	date, err := dates.Parse(c.Param("date"))
	if err != nil {
		return models.ErrInvalidDate
	}

	report, err := h.service.GetHotspots(c.Request().Context(), c.Param("slug"), date)
	if err != nil {
		return err
	}
	return success(c, report, "Hotspots retrieved successfully")
}
