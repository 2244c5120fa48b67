package ranking

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/dharmasatrya/flowerforecast/internal/bloom"
	"github.com/dharmasatrya/flowerforecast/internal/models"
)

// Rand is the source of jitter for best-date probabilities.
type Rand interface {
	Float64() float64
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// NewRand returns a Rand safe for concurrent use.
func NewRand(seed int64) Rand {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

// Engine ranks catalog locations against a travel query. It holds no
// mutable state besides the random source and may be shared across requests.
type Engine struct {
	locations []models.Location
	rnd       Rand
}

func NewEngine(locations []models.Location, rnd Rand) *Engine {
	if rnd == nil {
		rnd = NewRand(time.Now().UnixNano())
	}
	return &Engine{
		locations: locations,
		rnd:       rnd,
	}
}

// Search scores every location, drops zero scores, sorts by score
// descending (catalog order on ties), truncates to q.MaxResults and
// assigns 1-based ranks.
func (e *Engine) Search(q models.Query) []models.Match {
	matches := make([]models.Match, 0, len(e.locations))
	for _, loc := range e.locations {
		m := e.match(loc, q)
		if m.MatchScore > 0 {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})

	if q.MaxResults > 0 && len(matches) > q.MaxResults {
		matches = matches[:q.MaxResults]
	}
	for i := range matches {
		matches[i].Rank = i + 1
	}

	return matches
}

func (e *Engine) match(loc models.Location, q models.Query) models.Match {
	seasonScore := scoreSeason(loc.BloomSeason, q.Date, q.Month)
	score := scoreLocation(loc, q.Location) + scoreFlower(loc, q.Flower) + seasonScore

	inSeason := seasonScore > 0
	verdict := verdictFor(score, inSeason)

	status := models.StatusOutOfSeason
	if inSeason {
		status = models.StatusInSeason
	}

	return models.Match{
		Location: models.MatchLocation{
			ID:     loc.ID,
			Name:   loc.Name,
			Slug:   loc.Slug,
			Flower: loc.Flower,
			Coordinates: models.Coordinates{
				Latitude:  loc.Geo.Latitude,
				Longitude: loc.Geo.Longitude,
			},
		},
		MatchScore: score,
		InSeason:   inSeason,
		BestDates:  e.bestDates(loc.BloomSeason, q),
		SeasonInfo: models.SeasonInfo{
			Start:      loc.BloomSeason.Start(),
			End:        loc.BloomSeason.End(),
			PeakMonths: loc.BloomSeason.PeakMonths,
			Status:     status,
		},
		Recommendation: models.Recommendation{
			Verdict: verdict,
			Message: messageFor(verdict, loc),
			Tips:    loc.Tips,
		},
	}
}

var suggestedDays = []int{10, 15, 20, 25}

// bestDates produces presentation hints only; nothing here is a forecast.
func (e *Engine) bestDates(season models.BloomSeason, q models.Query) []models.BestDate {
	dates := make([]models.BestDate, 0)

	if q.Date != nil {
		m, _ := bloom.MonthDay(*q.Date)
		if bloom.IsPeakMonth(m, season) {
			dates = append(dates, models.BestDate{
				Date:        q.Date.Format(models.DateLayout),
				Probability: 0.90 + e.rnd.Float64()*0.05,
				Confidence:  models.ConfidenceHigh,
				Label:       "Peak bloom",
			})
		}
		return dates
	}

	if q.Month == 0 || !bloom.IsPeakMonth(q.Month, season) {
		return dates
	}

	for _, day := range suggestedDays {
		label := "Near peak"
		if day == 15 {
			label = "Peak bloom"
		}
		dates = append(dates, models.BestDate{
			Date:        fmt.Sprintf("%04d-%02d-%02d", q.Year, q.Month, day),
			Probability: 0.85 + e.rnd.Float64()*0.10,
			Confidence:  models.ConfidenceHigh,
			Label:       label,
		})
	}
	return dates
}
