package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dharmasatrya/flowerforecast/internal/cache"
	"github.com/dharmasatrya/flowerforecast/internal/catalog"
	"github.com/dharmasatrya/flowerforecast/internal/config"
	"github.com/dharmasatrya/flowerforecast/internal/forecast"
	"github.com/dharmasatrya/flowerforecast/internal/handler"
	"github.com/dharmasatrya/flowerforecast/internal/logging"
	"github.com/dharmasatrya/flowerforecast/internal/ranking"
	"github.com/dharmasatrya/flowerforecast/internal/ratelimit"
	"github.com/dharmasatrya/flowerforecast/internal/scheduler"
)

const limiterIdleTimeout = 10 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: os.Stdout})

	locations := catalog.Default()
	logging.Info().Int("locations", locations.Len()).Msg("catalog loaded")

	rnd := ranking.NewRand(time.Now().UnixNano())
	engine := ranking.NewEngine(locations.All(), rnd)

	sourceLimiter := ratelimit.NewKeyedLimiterWithDefaults()
	fileSource := forecast.NewFileSource(cfg.OutputsDir)
	sourceLimiter.SetLimit(fileSource.Name(), 500, 1000)

	forecastService := forecast.NewService(
		locations,
		[]forecast.Source{fileSource},
		forecast.NewEstimator(rnd),
		forecast.Config{
			Timeout:     cfg.ForecastTimeout,
			RateLimiter: sourceLimiter,
		},
	)

	responseCache, jobs, err := initCache(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize cache")
	}
	defer responseCache.Close()

	clientLimiter := ratelimit.NewKeyedLimiter(ratelimit.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	})
	jobs = append(jobs, scheduler.Job{
		Name:     "prune-client-limiters",
		Interval: limiterIdleTimeout,
		Run: func() {
			if n := clientLimiter.Prune(limiterIdleTimeout); n > 0 {
				logging.Debug().Int("removed", n).Msg("pruned idle client limiters")
			}
		},
	})

	sched := scheduler.New(jobs...)
	if err := sched.Start(); err != nil {
		logging.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer sched.Stop()

	e := handler.NewRouter(
		handler.RouterConfig{
			APIPrefix:      cfg.APIPrefix,
			AllowedOrigins: cfg.AllowedOrigins,
			Verbose:        cfg.IsDevelopment(),
		},
		handler.Handlers{
			Search:   handler.NewSearchHandler(engine, responseCache),
			Location: handler.NewLocationHandler(locations),
			Forecast: handler.NewForecastHandler(forecastService),
			System:   handler.NewSystemHandler(cfg.APIVersion, cfg.APIPrefix, cfg.Env),
		},
		responseCache,
		clientLimiter,
	)

	go func() {
		logging.Info().Str("addr", cfg.Address()).Str("env", cfg.Env).Str("api", cfg.APIPrefix).Msg("starting flower forecast server")
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server stopped")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logging.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("error during shutdown")
	}
}

func initCache(cfg *config.Config) (cache.Cache, []scheduler.Job, error) {
	switch cfg.CacheBackend {
	case "redis":
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.CacheTTL,
		})
		if err != nil {
			return nil, nil, err
		}
		logging.Info().Str("host", cfg.RedisHost).Str("port", cfg.RedisPort).Dur("ttl", cfg.CacheTTL).Msg("redis cache enabled")
		return redisCache, nil, nil

	case "memory":
		memCache := cache.NewMemoryCache(cfg.CacheTTL)
		sweep := scheduler.Job{
			Name:     "sweep-memory-cache",
			Interval: cfg.CacheSweepInterval,
			Run: func() {
				if n := memCache.Cleanup(); n > 0 {
					logging.Info().Int("removed", n).Msg("cache cleanup")
				}
			},
		}
		logging.Info().Dur("ttl", cfg.CacheTTL).Msg("memory cache enabled")
		return memCache, []scheduler.Job{sweep}, nil

	default:
		logging.Info().Msg("cache disabled")
		return cache.NewNoOpCache(), nil, nil
	}
}
