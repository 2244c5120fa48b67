package models

import "time"

const (
	DefaultSearchResults         = 5
	DefaultRecommendationResults = 10
	MaxSearchResults             = 20
	DateLayout                   = "2006-01-02"
)

type SearchRequest struct {
	Location   *string `json:"location,omitempty"`
	Date       *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Month      *int    `json:"month,omitempty" validate:"omitempty,min=1,max=12"`
	Year       *int    `json:"year,omitempty" validate:"omitempty,min=2015,max=2030"`
	Flower     *string `json:"flower,omitempty"`
	MaxResults *int    `json:"max_results,omitempty" validate:"omitempty,min=1,max=20"`
}

// ToQuery applies defaults and converts the request into an engine query.
// It assumes the struct tags have already been validated.
func (r *SearchRequest) ToQuery(now time.Time) (Query, error) {
	q := Query{
		Location:   ParseFilter(r.Location),
		Flower:     ParseFilter(r.Flower),
		Year:       now.Year(),
		MaxResults: DefaultSearchResults,
	}

	if r.Date != nil && *r.Date != "" {
		d, err := time.Parse(DateLayout, *r.Date)
		if err != nil {
			return Query{}, ErrInvalidDate
		}
		q.Date = &d
	}
	if r.Month != nil && *r.Month != 0 {
		if *r.Month < 1 || *r.Month > 12 {
			return Query{}, ErrInvalidMonth
		}
		q.Month = *r.Month
	}
	if r.Year != nil && *r.Year != 0 {
		q.Year = *r.Year
	}
	if r.MaxResults != nil && *r.MaxResults > 0 {
		q.MaxResults = *r.MaxResults
	}
	if q.MaxResults > MaxSearchResults {
		q.MaxResults = MaxSearchResults
	}
	return q, nil
}

type RecommendationRequest struct {
	Month int `query:"month" validate:"min=1,max=12"`
	Year  int `query:"year" validate:"omitempty,min=2015,max=2030"`
}

func (r *RecommendationRequest) ToQuery(now time.Time) Query {
	q := Query{
		Month:      r.Month,
		Year:       now.Year(),
		MaxResults: DefaultRecommendationResults,
	}
	if r.Year != 0 {
		q.Year = r.Year
	}
	return q
}

type ForecastRangeRequest struct {
	Start string `query:"start" validate:"required,datetime=2006-01-02"`
	End   string `query:"end" validate:"required,datetime=2006-01-02"`
}

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrInvalidDate   ValidationError = "invalid date format, use YYYY-MM-DD"
	ErrInvalidMonth  ValidationError = "invalid month, must be 1-12"
	ErrMonthRequired ValidationError = "month is required"
	ErrRangeRequired ValidationError = "both start and end dates are required"
	ErrRangeInverted ValidationError = "end date must not be before start date"
	ErrRangeTooLong  ValidationError = "date range must not exceed 366 days"
)
