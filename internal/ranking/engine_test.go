package ranking

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/flowerforecast/internal/catalog"
	"github.com/dharmasatrya/flowerforecast/internal/models"
)

type fixedRand float64

func (r fixedRand) Float64() float64 {
	return float64(r)
}

const (
	haGiang   = "ha-giang-tam-giac-mach"
	mocChau   = "moc-chau-prunus"
	hoangLien = "hoang-lien-rhododendron"
	laoCai    = "lao-cai-rhododendron"
)

func newTestEngine() *Engine {
	return NewEngine(catalog.Default().All(), fixedRand(0.5))
}

func date(year, month, day int) *time.Time {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &d
}

func slugsOf(matches []models.Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Location.Slug)
	}
	return out
}

func TestSearch_PeakDateIsExcellent(t *testing.T) {
	matches := newTestEngine().Search(models.Query{
		Location:   models.ValueFilter(haGiang),
		Date:       date(2025, 10, 15),
		Year:       2025,
		MaxResults: 5,
	})

	require.NotEmpty(t, matches)
	top := matches[0]
	require.Equal(t, 1, top.Rank)
	require.Equal(t, haGiang, top.Location.Slug)
	require.Equal(t, 100, top.MatchScore)
	require.True(t, top.InSeason)
	require.Equal(t, models.VerdictExcellent, top.Recommendation.Verdict)
	require.Contains(t, top.Recommendation.Message, "Hà Giang - Tam Giác Mạch")
	require.Equal(t, models.StatusInSeason, top.SeasonInfo.Status)
	require.Equal(t, "9/25", top.SeasonInfo.Start)
	require.Equal(t, "12/20", top.SeasonInfo.End)

	require.Len(t, top.BestDates, 1)
	require.Equal(t, "2025-10-15", top.BestDates[0].Date)
	require.Equal(t, "Peak bloom", top.BestDates[0].Label)
	require.Equal(t, models.ConfidenceHigh, top.BestDates[0].Confidence)
	require.InDelta(t, 0.925, top.BestDates[0].Probability, 1e-9)
}

func TestSearch_OutOfSeasonStaysInResults(t *testing.T) {
	matches := newTestEngine().Search(models.Query{
		Location:   models.ValueFilter(haGiang),
		Date:       date(2025, 12, 25),
		Year:       2025,
		MaxResults: 5,
	})

	require.Len(t, matches, 4)
	top := matches[0]
	require.Equal(t, haGiang, top.Location.Slug)
	require.Equal(t, 50, top.MatchScore)
	require.False(t, top.InSeason)
	require.Equal(t, models.VerdictPoor, top.Recommendation.Verdict)
	require.Equal(t, models.StatusOutOfSeason, top.SeasonInfo.Status)
	require.NotNil(t, top.BestDates)
	require.Empty(t, top.BestDates)

	for _, m := range matches[1:] {
		require.Equal(t, FlowerWeight, m.MatchScore)
		require.Equal(t, models.VerdictPoor, m.Recommendation.Verdict)
	}
}

func TestSearch_MonthQueryBestDates(t *testing.T) {
	matches := newTestEngine().Search(models.Query{
		Location:   models.ValueFilter(haGiang),
		Month:      11,
		Year:       2025,
		MaxResults: 5,
	})

	top := matches[0]
	require.Equal(t, 100, top.MatchScore)
	require.Len(t, top.BestDates, 4)

	wantDates := []string{"2025-11-10", "2025-11-15", "2025-11-20", "2025-11-25"}
	for i, bd := range top.BestDates {
		require.Equal(t, wantDates[i], bd.Date)
		require.InDelta(t, 0.90, bd.Probability, 1e-9)
		if bd.Date == "2025-11-15" {
			require.Equal(t, "Peak bloom", bd.Label)
		} else {
			require.Equal(t, "Near peak", bd.Label)
		}
	}
}

func TestSearch_InSeasonOffPeakDate(t *testing.T) {
	matches := newTestEngine().Search(models.Query{
		Location:   models.ValueFilter(haGiang),
		Date:       date(2025, 12, 5),
		Year:       2025,
		MaxResults: 1,
	})

	require.Len(t, matches, 1)
	require.Equal(t, 80, matches[0].MatchScore)
	require.True(t, matches[0].InSeason)
	require.Equal(t, models.VerdictExcellent, matches[0].Recommendation.Verdict)
	require.Empty(t, matches[0].BestDates)
}

func TestSearch_SortTruncateAndRank(t *testing.T) {
	matches := newTestEngine().Search(models.Query{
		Flower:     models.ValueFilter("rhododendron"),
		Month:      4,
		Year:       2025,
		MaxResults: 5,
	})

	require.Equal(t, []string{hoangLien, laoCai, haGiang, mocChau}, slugsOf(matches))
	require.Equal(t, []int{100, 100, 30, 30}, []int{
		matches[0].MatchScore, matches[1].MatchScore, matches[2].MatchScore, matches[3].MatchScore,
	})
	for i, m := range matches {
		require.Equal(t, i+1, m.Rank)
	}

	truncated := newTestEngine().Search(models.Query{
		Flower:     models.ValueFilter("rhododendron"),
		Month:      4,
		Year:       2025,
		MaxResults: 2,
	})
	require.Equal(t, []string{hoangLien, laoCai}, slugsOf(truncated))
	require.Equal(t, 2, truncated[1].Rank)
}

func TestSearch_TiesKeepCatalogOrder(t *testing.T) {
	matches := newTestEngine().Search(models.Query{Year: 2025, MaxResults: 5})

	require.Equal(t, []string{haGiang, mocChau, hoangLien, laoCai}, slugsOf(matches))
	for _, m := range matches {
		require.Equal(t, LocationWeight+FlowerWeight, m.MatchScore)
		require.False(t, m.InSeason)
	}
}

func TestSearch_PartialMatchesAndVerdicts(t *testing.T) {
	tests := []struct {
		name        string
		query       models.Query
		wantSlugs   []string
		wantScores  []int
		wantVerdict []models.Verdict
	}{
		{
			name:        "partial location, off-peak month",
			query:       models.Query{Location: models.ValueFilter("lao"), Flower: models.ValueFilter("tulip"), Month: 3},
			wantSlugs:   []string{laoCai, hoangLien},
			wantScores:  []int{50, 30},
			wantVerdict: []models.Verdict{models.VerdictFair, models.VerdictFair},
		},
		{
			name:        "wildcard location, off-peak month",
			query:       models.Query{Location: models.AnyFilter(), Flower: models.ValueFilter("tulip"), Month: 3},
			wantSlugs:   []string{hoangLien, laoCai, haGiang, mocChau},
			wantScores:  []int{60, 60, 30, 30},
			wantVerdict: []models.Verdict{models.VerdictGood, models.VerdictGood, models.VerdictPoor, models.VerdictPoor},
		},
		{
			name:        "partial flower, peak month",
			query:       models.Query{Location: models.ValueFilter("rhododendron"), Flower: models.ValueFilter("rhodo"), Month: 4},
			wantSlugs:   []string{hoangLien, laoCai},
			wantScores:  []int{85, 85},
			wantVerdict: []models.Verdict{models.VerdictExcellent, models.VerdictExcellent},
		},
		{
			name:        "species name matches exactly",
			query:       models.Query{Location: models.ValueFilter("nowhere"), Flower: models.ValueFilter("PRUNUS_MUME")},
			wantSlugs:   []string{mocChau},
			wantScores:  []int{20},
			wantVerdict: []models.Verdict{models.VerdictPoor},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.query.Year = 2025
			tt.query.MaxResults = 5
			matches := newTestEngine().Search(tt.query)

			require.Equal(t, tt.wantSlugs, slugsOf(matches))
			for i, m := range matches {
				require.Equal(t, tt.wantScores[i], m.MatchScore, m.Location.Slug)
				require.Equal(t, tt.wantVerdict[i], m.Recommendation.Verdict, m.Location.Slug)
			}
		})
	}
}

func TestSearch_ZeroScoresExcluded(t *testing.T) {
	matches := newTestEngine().Search(models.Query{
		Location:   models.ValueFilter("nowhere"),
		Flower:     models.ValueFilter("tulip"),
		Month:      8,
		Year:       2025,
		MaxResults: 5,
	})

	require.NotNil(t, matches)
	require.Empty(t, matches)
}

func TestSearch_ConcurrentUse(t *testing.T) {
	engine := NewEngine(catalog.Default().All(), nil)
	q := models.Query{Month: 4, Year: 2025, MaxResults: 5}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				matches := engine.Search(q)
				if len(matches) != 4 {
					t.Errorf("expected 4 matches, got %d", len(matches))
					return
				}
			}
		}()
	}
	wg.Wait()
}
