package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
		want Filter
	}{
		{"nil", nil, Filter{}},
		{"empty", ptr(""), Filter{}},
		{"blank", ptr("   "), Filter{}},
		{"wildcard", ptr("any"), AnyFilter()},
		{"wildcard upper", ptr("ANY"), AnyFilter()},
		{"value", ptr("ha-giang"), ValueFilter("ha-giang")},
		{"value trimmed", ptr(" moc chau "), ValueFilter("moc chau")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFilter(tt.raw)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.want.Kind == FilterValue, got.IsSet())
		})
	}
}

func TestFilter_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		A Filter `json:"a"`
		B Filter `json:"b"`
		C Filter `json:"c"`
	}{Filter{}, AnyFilter(), ValueFilter("buckwheat")})
	require.NoError(t, err)
	require.JSONEq(t, `{"a":null,"b":"any","c":"buckwheat"}`, string(data))
}

func TestSearchRequest_ToQueryDefaults(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	var req SearchRequest
	q, err := req.ToQuery(now)
	require.NoError(t, err)
	require.Equal(t, FilterAbsent, q.Location.Kind)
	require.Equal(t, FilterAbsent, q.Flower.Kind)
	require.Nil(t, q.Date)
	require.Zero(t, q.Month)
	require.Equal(t, 2026, q.Year)
	require.Equal(t, DefaultSearchResults, q.MaxResults)
}

func TestSearchRequest_ToQuery(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	req := SearchRequest{
		Location:   ptr("any"),
		Flower:     ptr("Buckwheat"),
		Date:       ptr("2025-10-15"),
		Month:      ptr(11),
		Year:       ptr(2027),
		MaxResults: ptr(50),
	}
	q, err := req.ToQuery(now)
	require.NoError(t, err)
	require.Equal(t, AnyFilter(), q.Location)
	require.Equal(t, ValueFilter("Buckwheat"), q.Flower)
	require.NotNil(t, q.Date)
	require.Equal(t, "2025-10-15", q.Date.Format(DateLayout))
	require.Equal(t, 11, q.Month)
	require.Equal(t, 2027, q.Year)
	require.Equal(t, MaxSearchResults, q.MaxResults)
}

func TestSearchRequest_ToQueryRejectsBadInput(t *testing.T) {
	now := time.Now()

	_, err := (&SearchRequest{Date: ptr("2025-02-30")}).ToQuery(now)
	require.ErrorIs(t, err, ErrInvalidDate)

	_, err = (&SearchRequest{Month: ptr(13)}).ToQuery(now)
	require.ErrorIs(t, err, ErrInvalidMonth)
}

func TestRecommendationRequest_ToQuery(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	q := (&RecommendationRequest{Month: 4}).ToQuery(now)
	require.Equal(t, 4, q.Month)
	require.Equal(t, 2026, q.Year)
	require.Equal(t, DefaultRecommendationResults, q.MaxResults)
	require.False(t, q.Location.IsSet())

	q = (&RecommendationRequest{Month: 4, Year: 2028}).ToQuery(now)
	require.Equal(t, 2028, q.Year)
}

func TestNewSearchCriteria(t *testing.T) {
	d := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	c := NewSearchCriteria(Query{Location: AnyFilter(), Date: &d, Year: 2025, MaxResults: 5})

	data, err := json.Marshal(c)
	require.NoError(t, err)
	require.JSONEq(t, `{"location":"any","date":"2025-10-15","month":null,"year":2025,"flower":null,"max_results":5}`, string(data))
}
