package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dharmasatrya/flowerforecast/internal/cache"
	"github.com/dharmasatrya/flowerforecast/internal/logging"
	"github.com/dharmasatrya/flowerforecast/internal/metrics"
	"github.com/dharmasatrya/flowerforecast/internal/models"
	"github.com/dharmasatrya/flowerforecast/internal/ratelimit"
)

const cacheHitKey = "cache_hit"

// RequestID tags the request context with an id so every log line written
// while serving the request carries it.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			ctx := logging.WithRequestID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
		},
	})
}

func RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := logging.Info()
			if v.Status >= http.StatusInternalServerError {
				event = logging.Error().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Str("request_id", v.RequestID).
				Bool("cache_hit", c.Get(cacheHitKey) == true).
				Msg("request")
			return nil
		},
	})
}

// Metrics records request counts and latency per route template.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)
			metrics.HTTPRequestsTotal.WithLabelValues(c.Request().Method, route, status).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// RateLimit rejects clients that exhaust their token bucket with 429.
func RateLimit(limiter *ratelimit.KeyedLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				metrics.RateLimited.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests, slow down")
			}
			return next(c)
		}
	}
}

// ResponseCache serves repeated GET requests from store. Only 200 responses
// are stored; hits are flagged with "cached": true.
func ResponseCache(store cache.Cache) echo.MiddlewareFunc {
	dump := middleware.BodyDumpWithConfig(middleware.BodyDumpConfig{
		Handler: func(c echo.Context, _, resBody []byte) {
			if c.Response().Status != http.StatusOK {
				return
			}
			ctx := context.WithoutCancel(c.Request().Context())
			if err := store.Set(ctx, requestKey(c), resBody); err != nil {
				logging.Ctx(ctx).Warn().Err(err).Msg("response cache write failed")
			}
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		miss := dump(next)
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			blob, found := store.Get(c.Request().Context(), requestKey(c))
			if !found {
				metrics.CacheMisses.Inc()
				return miss(c)
			}

			var stored struct {
				Message string          `json:"message"`
				Data    json.RawMessage `json:"data"`
			}
			if err := json.Unmarshal(blob, &stored); err != nil {
				metrics.CacheMisses.Inc()
				return miss(c)
			}

			metrics.CacheHits.Inc()
			c.Set(cacheHitKey, true)
			return c.JSON(http.StatusOK, models.APIResponse{
				Success:   true,
				Message:   stored.Message,
				Data:      stored.Data,
				Cached:    true,
				Timestamp: time.Now().UTC(),
			})
		}
	}
}

func requestKey(c echo.Context) string {
	return cache.Key(c.Request().Method, c.Request().URL.RequestURI())
}
