package forecast

import (
	"time"

	"github.com/dharmasatrya/flowerforecast/internal/bloom"
	"github.com/dharmasatrya/flowerforecast/internal/models"
)

const (
	mockModel              = "mock"
	mockNote               = "Mock data - run the forecasting pipeline for actual predictions"
	outOfSeasonProbability = 0.1
)

type Rand interface {
	Float64() float64
}

// Estimator derives a bloom probability from the season window alone. It is
// the fallback when no source has data.
type Estimator struct {
	rnd Rand
}

func NewEstimator(rnd Rand) *Estimator {
	return &Estimator{rnd: rnd}
}

// Probability is 0.1 out of season, [0.85, 0.95) in a peak month and
// [0.60, 0.75) otherwise.
func (e *Estimator) Probability(season models.BloomSeason, date time.Time, inSeason bool) float64 {
	if !inSeason {
		return outOfSeasonProbability
	}

	month, _ := bloom.MonthDay(date)
	if bloom.IsPeakMonth(month, season) {
		return 0.85 + e.rnd.Float64()*0.10
	}
	return 0.60 + e.rnd.Float64()*0.15
}

func (e *Estimator) Mock(season models.BloomSeason, date time.Time, inSeason bool) models.ForecastData {
	data := models.ForecastData{
		Probability: e.Probability(season, date, inSeason),
		Confidence:  confidenceFor(inSeason),
		Status:      models.StatusOutOfSeason,
		ModelUsed:   mockModel,
		Note:        mockNote,
	}
	if inSeason {
		data.Status = models.StatusInSeason
	}
	return data
}

func confidenceFor(inSeason bool) string {
	if inSeason {
		return models.ConfidenceMedium
	}
	return models.ConfidenceLow
}
