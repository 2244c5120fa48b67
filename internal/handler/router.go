package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dharmasatrya/flowerforecast/internal/cache"
	"github.com/dharmasatrya/flowerforecast/internal/ratelimit"
)

type RouterConfig struct {
	APIPrefix      string
	AllowedOrigins []string
	// Verbose exposes internal error messages and allows any CORS origin.
	Verbose bool
}

type Handlers struct {
	Search   *SearchHandler
	Location *LocationHandler
	Forecast *ForecastHandler
	System   *SystemHandler
}

// NewRouter builds the echo instance with middleware and every route.
// A nil limiter disables client rate limiting.
func NewRouter(cfg RouterConfig, h Handlers, responseCache cache.Cache, limiter *ratelimit.KeyedLimiter) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Verbose)

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, "X-Requested-With"},
		AllowCredentials: true,
	}
	if cfg.Verbose || len(cfg.AllowedOrigins) == 0 {
		corsConfig.AllowOrigins = []string{"*"}
		corsConfig.AllowCredentials = false
	}

	e.Use(middleware.Recover())
	e.Use(RequestID())
	e.Use(RequestLogger())
	e.Use(Metrics())
	e.Use(middleware.CORSWithConfig(corsConfig))
	e.Use(middleware.Secure())
	e.Use(middleware.Gzip())

	e.GET("/", h.System.Info)
	e.GET("/health", h.System.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group(cfg.APIPrefix)
	if limiter != nil {
		api.Use(RateLimit(limiter))
	}
	if responseCache != nil {
		api.Use(ResponseCache(responseCache))
	}

	api.GET("", h.System.Info)

	api.GET("/locations", h.Location.List)
	api.GET("/locations/:slug", h.Location.Get)

	api.POST("/search", h.Search.Search)
	api.GET("/search/recommendations", h.Search.Recommendations)

	api.GET("/forecast/hotspots/:slug/:date", h.Forecast.Hotspots)
	api.GET("/forecast/:slug/range", h.Forecast.Range)
	api.GET("/forecast/:slug/:date", h.Forecast.Get)

	return e
}
