package ranking

import (
	"strings"
	"time"

	"github.com/dharmasatrya/flowerforecast/internal/bloom"
	"github.com/dharmasatrya/flowerforecast/internal/models"
)

// Factor weights sum to 100, so the summed score is already a percentage.
const (
	LocationWeight = 30
	FlowerWeight   = 20
	SeasonWeight   = 50

	partialLocationScore = 20
	partialFlowerScore   = 15
	offPeakSeasonScore   = 30
)

func scoreLocation(loc models.Location, f models.Filter) int {
	if !f.IsSet() {
		return LocationWeight
	}

	query := strings.ToLower(f.Value)
	slug := strings.ToLower(loc.Slug)
	name := strings.ToLower(loc.Name)

	if slug == query {
		return LocationWeight
	}
	if strings.Contains(slug, query) || strings.Contains(name, query) {
		return partialLocationScore
	}
	return 0
}

func scoreFlower(loc models.Location, f models.Filter) int {
	if !f.IsSet() {
		return FlowerWeight
	}

	query := strings.ToLower(f.Value)
	species := strings.ToLower(loc.Flower.Species)
	common := strings.ToLower(loc.Flower.CommonName)

	if species == query || common == query {
		return FlowerWeight
	}
	if strings.Contains(species, query) || strings.Contains(common, query) {
		return partialFlowerScore
	}
	return 0
}

// scoreSeason prefers the exact date over the month when both are given.
func scoreSeason(season models.BloomSeason, date *time.Time, month int) int {
	if date != nil {
		if !bloom.IsInSeason(*date, season) {
			return 0
		}
		m, _ := bloom.MonthDay(*date)
		if bloom.IsPeakMonth(m, season) {
			return SeasonWeight
		}
		return offPeakSeasonScore
	}

	if month != 0 {
		if bloom.IsPeakMonth(month, season) {
			return SeasonWeight
		}
		if bloom.IsMonthInSeason(month, season) {
			return offPeakSeasonScore
		}
	}

	return 0
}

func verdictFor(score int, inSeason bool) models.Verdict {
	switch {
	case !inSeason:
		return models.VerdictPoor
	case score >= 80:
		return models.VerdictExcellent
	case score >= 60:
		return models.VerdictGood
	default:
		return models.VerdictFair
	}
}

func messageFor(v models.Verdict, loc models.Location) string {
	switch v {
	case models.VerdictExcellent:
		return "Perfect time to visit " + loc.Name + "! Peak bloom season 🎉"
	case models.VerdictGood:
		return "Good time to visit " + loc.Name + ". Flowers are blooming! 🌸"
	case models.VerdictPoor:
		return "Not recommended. Outside bloom season. ❌"
	default:
		return "Fair time to visit. Early or late in bloom season. 🌱"
	}
}
