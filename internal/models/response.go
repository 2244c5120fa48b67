package models

import "time"

type APIResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data"`
	Cached    bool      `json:"cached,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

type ErrorResponse struct {
	Success   bool         `json:"success"`
	Error     string       `json:"error"`
	Message   string       `json:"message"`
	Code      int          `json:"code"`
	Errors    []FieldError `json:"errors,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

type SearchCriteria struct {
	Location   Filter  `json:"location"`
	Date       *string `json:"date"`
	Month      *int    `json:"month"`
	Year       int     `json:"year"`
	Flower     Filter  `json:"flower"`
	MaxResults int     `json:"max_results"`
}

func NewSearchCriteria(q Query) SearchCriteria {
	c := SearchCriteria{
		Location:   q.Location,
		Year:       q.Year,
		Flower:     q.Flower,
		MaxResults: q.MaxResults,
	}
	if q.Date != nil {
		d := q.Date.Format(DateLayout)
		c.Date = &d
	}
	if q.Month != 0 {
		m := q.Month
		c.Month = &m
	}
	return c
}

type SearchResponse struct {
	Query   SearchCriteria `json:"query"`
	Matches []Match        `json:"matches"`
	Summary MatchSummary   `json:"summary"`
}
