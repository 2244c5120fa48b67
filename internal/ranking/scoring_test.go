package ranking

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flowerforecast/internal/models"
)

func TestScoreSeason(t *testing.T) {
	wrap := models.BloomSeason{StartMonth: 11, StartDay: 1, EndMonth: 2, EndDay: 15, PeakMonths: []int{12, 1}}

	tests := []struct {
		name  string
		query *models.Query
		want  int
	}{
		{"peak date", &models.Query{Date: date(2025, 12, 25)}, SeasonWeight},
		{"in season date", &models.Query{Date: date(2025, 2, 10)}, offPeakSeasonScore},
		{"out of season date", &models.Query{Date: date(2025, 2, 16)}, 0},
		{"date wins over month", &models.Query{Date: date(2025, 6, 1), Month: 12}, 0},
		{"peak month", &models.Query{Month: 1}, SeasonWeight},
		{"season month", &models.Query{Month: 2}, offPeakSeasonScore},
		{"off month", &models.Query{Month: 7}, 0},
		{"no date or month", &models.Query{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, scoreSeason(wrap, tt.query.Date, tt.query.Month))
		})
	}
}

func TestVerdictFor(t *testing.T) {
	require.Equal(t, models.VerdictPoor, verdictFor(100, false))
	require.Equal(t, models.VerdictExcellent, verdictFor(80, true))
	require.Equal(t, models.VerdictGood, verdictFor(79, true))
	require.Equal(t, models.VerdictGood, verdictFor(60, true))
	require.Equal(t, models.VerdictFair, verdictFor(59, true))
}

func TestMessageFor(t *testing.T) {
	loc := models.Location{Name: "Mộc Châu"}

	require.Contains(t, messageFor(models.VerdictExcellent, loc), "Perfect time to visit Mộc Châu!")
	require.Contains(t, messageFor(models.VerdictGood, loc), "Good time to visit Mộc Châu.")
	require.Contains(t, messageFor(models.VerdictFair, loc), "Fair time to visit.")
	require.Contains(t, messageFor(models.VerdictPoor, loc), "Not recommended.")
}

func TestWeightsSumToHundred(t *testing.T) {
	require.Equal(t, 100, LocationWeight+FlowerWeight+SeasonWeight)
}
