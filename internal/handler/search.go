package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/flowerforecast/internal/cache"
	"github.com/dharmasatrya/flowerforecast/internal/dates"
	"github.com/dharmasatrya/flowerforecast/internal/logging"
	"github.com/dharmasatrya/flowerforecast/internal/metrics"
	"github.com/dharmasatrya/flowerforecast/internal/models"
)

type Ranker interface {
	Search(q models.Query) []models.Match
}

type SearchHandler struct {
	ranker Ranker
	cache  cache.Cache
	now    func() time.Time
}

func NewSearchHandler(r Ranker, c cache.Cache) *SearchHandler {
	return &SearchHandler{
		ranker: r,
		cache:  c,
		now:    time.Now,
	}
}

// Search handles POST /search.
func (h *SearchHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return &invalidRequest{message: "Failed to parse request body: " + bindMessage(err)}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	query, err := req.ToQuery(dates.Today(h.now()))
	if err != nil {
		return err
	}
	criteria := models.NewSearchCriteria(query)

	key, err := searchKey(criteria)
	if err != nil {
		return err
	}
	if cached, found := h.cache.Get(ctx, key); found {
		metrics.CacheHits.Inc()
		return c.JSON(http.StatusOK, models.APIResponse{
			Success:   true,
			Message:   "Search completed successfully",
			Data:      json.RawMessage(cached),
			Cached:    true,
			Timestamp: time.Now().UTC(),
		})
	}
	metrics.CacheMisses.Inc()

	matches := h.ranker.Search(query)
	resp := models.SearchResponse{
		Query:   criteria,
		Matches: matches,
		Summary: models.Summarize(matches),
	}
	recordVerdicts(matches)

	if data, err := json.Marshal(resp); err == nil {
		if err := h.cache.Set(ctx, key, data); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("search cache write failed")
		}
	}

	logging.Ctx(ctx).Info().Int("matches", len(matches)).Msg("search completed")
	return success(c, resp, "Search completed successfully")
}

// Recommendations handles GET /search/recommendations?month=&year=. Only
// in-season matches are returned.
func (h *SearchHandler) Recommendations(c echo.Context) error {
	if c.QueryParam("month") == "" {
		return models.ErrMonthRequired
	}

	var req models.RecommendationRequest
	err := echo.QueryParamsBinder(c).
		Int("month", &req.Month).
		Int("year", &req.Year).
		BindError()
	if err != nil {
		return &invalidRequest{message: "Invalid query parameters: " + bindMessage(err)}
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	query := req.ToQuery(dates.Today(h.now()))
	matches := h.ranker.Search(query)

	recommendations := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if m.InSeason {
			recommendations = append(recommendations, m)
		}
	}
	recordVerdicts(recommendations)

	logging.Ctx(c.Request().Context()).Info().
		Int("month", req.Month).
		Int("locations", len(recommendations)).
		Msg("recommendations computed")
	return success(c, recommendations, "Recommendations retrieved successfully")
}

func searchKey(criteria models.SearchCriteria) (string, error) {
	data, err := json.Marshal(criteria)
	if err != nil {
		return "", err
	}
	return cache.Key(http.MethodPost, "search", string(data)), nil
}

func recordVerdicts(matches []models.Match) {
	for _, m := range matches {
		metrics.SearchMatches.WithLabelValues(string(m.Recommendation.Verdict)).Inc()
	}
}

func bindMessage(err error) string {
	if be, ok := err.(*echo.BindingError); ok {
		return "invalid value for " + be.Field
	}
	if he, ok := err.(*echo.HTTPError); ok {
		if he.Internal != nil {
			return he.Internal.Error()
		}
		if msg, ok := he.Message.(string); ok {
			return msg
		}
		return strconv.Itoa(he.Code)
	}
	return err.Error()
}
