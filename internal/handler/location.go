package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/flowerforecast/internal/catalog"
	"github.com/dharmasatrya/flowerforecast/internal/logging"
	"github.com/dharmasatrya/flowerforecast/internal/models"
	"github.com/dharmasatrya/flowerforecast/pkg/apperror"
)

type LocationHandler struct {
	catalog *catalog.Catalog
}

func NewLocationHandler(c *catalog.Catalog) *LocationHandler {
	return &LocationHandler{catalog: c}
}

func (h *LocationHandler) List(c echo.Context) error {
	locations := h.catalog.All()
	data := make([]models.LocationSummary, 0, len(locations))
	for _, loc := range locations {
		data = append(data, loc.Summary())
	}

	logging.Ctx(c.Request().Context()).Debug().Int("count", len(data)).Msg("locations listed")
	return success(c, data, "Locations retrieved successfully")
}

func (h *LocationHandler) Get(c echo.Context) error {
	slug := c.Param("slug")
	loc, err := h.catalog.BySlug(slug)
	if err != nil {
		return apperror.NotFound("Location not found: "+slug, err)
	}
	return success(c, loc, "Location retrieved successfully")
}
