package forecast

import (
	"context"
	"errors"
	"time"

	"github.com/dharmasatrya/flowerforecast/internal/bloom"
	"github.com/dharmasatrya/flowerforecast/internal/catalog"
	"github.com/dharmasatrya/flowerforecast/internal/dates"
	"github.com/dharmasatrya/flowerforecast/internal/logging"
	"github.com/dharmasatrya/flowerforecast/internal/models"
	"github.com/dharmasatrya/flowerforecast/internal/ratelimit"
	"github.com/dharmasatrya/flowerforecast/pkg/apperror"
)

const MaxRangeDays = 366

type Config struct {
	// Timeout bounds a single source call.
	Timeout time.Duration
	// RateLimiter, when set, is waited on per source name before each call.
	RateLimiter *ratelimit.KeyedLimiter
}

type Service struct {
	catalog   *catalog.Catalog
	sources   []Source
	estimator *Estimator
	config    Config
}

func NewService(c *catalog.Catalog, sources []Source, estimator *Estimator, config Config) *Service {
	if config.Timeout <= 0 {
		config.Timeout = 2 * time.Second
	}
	return &Service{
		catalog:   c,
		sources:   sources,
		estimator: estimator,
		config:    config,
	}
}

func (s *Service) location(slug string) (models.Location, error) {
	loc, err := s.catalog.BySlug(slug)
	if err != nil {
		return models.Location{}, apperror.NotFound("Location not found: "+slug, err)
	}
	return loc, nil
}

func (s *Service) GetForecast(ctx context.Context, slug string, date time.Time) (models.Forecast, error) {
	loc, err := s.location(slug)
	if err != nil {
		return models.Forecast{}, err
	}

	inSeason := bloom.IsInSeason(date, loc.BloomSeason)

	data, found := s.loadForecast(ctx, loc, date)
	if !found {
		data = s.estimator.Mock(loc.BloomSeason, date, inSeason)
	}

	return models.Forecast{
		Location: loc.Ref(),
		Date:     dates.Format(date),
		InSeason: inSeason,
		Forecast: data,
	}, nil
}

func (s *Service) GetForecastRange(ctx context.Context, slug string, start, end time.Time) (models.ForecastRange, error) {
	if end.Before(start) {
		return models.ForecastRange{}, models.ErrRangeInverted
	}
	if dates.DaysBetween(start, end) >= MaxRangeDays {
		return models.ForecastRange{}, models.ErrRangeTooLong
	}

	loc, err := s.location(slug)
	if err != nil {
		return models.ForecastRange{}, err
	}

	days := dates.Range(start, end)
	forecasts := make([]models.DailyForecast, 0, len(days))
	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return models.ForecastRange{}, err
		}

		inSeason := bloom.IsInSeason(day, loc.BloomSeason)
		daily := models.DailyForecast{
			Date:     dates.Format(day),
			InSeason: inSeason,
		}

		if data, found := s.loadForecast(ctx, loc, day); found {
			daily.Probability = data.Probability
			daily.Confidence = data.Confidence
		} else {
			daily.Probability = s.estimator.Probability(loc.BloomSeason, day, inSeason)
			daily.Confidence = confidenceFor(inSeason)
		}
		forecasts = append(forecasts, daily)
	}

	return models.ForecastRange{
		Location:  loc.Slug,
		Range:     models.DateRange{Start: dates.Format(start), End: dates.Format(end)},
		Forecasts: forecasts,
		PeakDate:  peakOf(forecasts),
	}, nil
}

// peakOf returns the first day with the highest probability.
func peakOf(forecasts []models.DailyForecast) models.PeakDate {
	var peak models.PeakDate
	for i, f := range forecasts {
		if i == 0 || f.Probability > peak.Probability {
			peak = models.PeakDate{Date: f.Date, Probability: f.Probability}
		}
	}
	return peak
}

func (s *Service) GetHotspots(ctx context.Context, slug string, date time.Time) (models.HotspotReport, error) {
	loc, err := s.location(slug)
	if err != nil {
		return models.HotspotReport{}, err
	}

	hotspots := []models.Hotspot{}
	for _, src := range s.sources {
		found, err := s.callHotspots(ctx, src, loc, date)
		if err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("source", src.Name()).Str("slug", slug).Msg("hotspot lookup failed")
			continue
		}
		if len(found) > 0 {
			hotspots = found
			break
		}
	}

	return models.HotspotReport{
		Location:      loc.Name,
		Date:          dates.Format(date),
		HotspotsCount: len(hotspots),
		Hotspots:      hotspots,
	}, nil
}

// loadForecast asks each source in order and returns the first hit. Source
// failures are logged and skipped so the caller can fall back to the mock.
func (s *Service) loadForecast(ctx context.Context, loc models.Location, date time.Time) (models.ForecastData, bool) {
	for _, src := range s.sources {
		data, err := s.callForecast(ctx, src, loc, date)
		if err == nil {
			return data, true
		}
		if errors.Is(err, ErrNoData) {
			logging.Ctx(ctx).Debug().Str("source", src.Name()).Str("aoi", loc.AOIName).Str("date", dates.Format(date)).Msg("forecast not found")
			continue
		}
		logging.Ctx(ctx).Warn().Err(err).Str("source", src.Name()).Str("aoi", loc.AOIName).Msg("forecast lookup failed")
	}
	return models.ForecastData{}, false
}

func (s *Service) callForecast(ctx context.Context, src Source, loc models.Location, date time.Time) (models.ForecastData, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	if s.config.RateLimiter != nil {
		if err := s.config.RateLimiter.Wait(callCtx, src.Name()); err != nil {
			return models.ForecastData{}, NewSourceError(src.Name(), err)
		}
	}
	return src.Forecast(callCtx, loc, date)
}

func (s *Service) callHotspots(ctx context.Context, src Source, loc models.Location, date time.Time) ([]models.Hotspot, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	if s.config.RateLimiter != nil {
		if err := s.config.RateLimiter.Wait(callCtx, src.Name()); err != nil {
			return nil, NewSourceError(src.Name(), err)
		}
	}
	return src.Hotspots(callCtx, loc, date)
}
