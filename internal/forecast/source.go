package forecast

import (
	"context"
	"errors"
	"time"

	"github.com/dharmasatrya/flowerforecast/internal/models"
)

// ErrNoData means the source has nothing for the requested location/date.
var ErrNoData = errors.New("no forecast data")

type Source interface {
	Name() string
	Forecast(ctx context.Context, loc models.Location, date time.Time) (models.ForecastData, error)
	Hotspots(ctx context.Context, loc models.Location, date time.Time) ([]models.Hotspot, error)
}

type SourceError struct {
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return e.Source + ": " + e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func NewSourceError(source string, err error) *SourceError {
	return &SourceError{
		Source: source,
		Err:    err,
	}
}
