package models

import "time"

const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

type ForecastData struct {
	Probability float64    `json:"probability"`
	Confidence  string     `json:"confidence"`
	Status      string     `json:"status,omitempty"`
	ModelUsed   string     `json:"model_used"`
	ComputedAt  *time.Time `json:"computed_at,omitempty"`
	Note        string     `json:"note,omitempty"`
}

type Forecast struct {
	Location LocationRef  `json:"location"`
	Date     string       `json:"date"`
	InSeason bool         `json:"in_season"`
	Forecast ForecastData `json:"forecast"`
}

type DailyForecast struct {
	Date        string  `json:"date"`
	Probability float64 `json:"probability"`
	Confidence  string  `json:"confidence"`
	InSeason    bool    `json:"in_season"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type PeakDate struct {
	Date        string  `json:"date"`
	Probability float64 `json:"probability"`
}

type ForecastRange struct {
	Location  string          `json:"location"`
	Range     DateRange       `json:"range"`
	Forecasts []DailyForecast `json:"forecasts"`
	PeakDate  PeakDate        `json:"peak_date"`
}

type Hotspot struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Probability float64 `json:"probability"`
	GiZScore    float64 `json:"gi_z_score"`
	ClusterID   int     `json:"cluster_id"`
}

type HotspotReport struct {
	Location      string    `json:"location"`
	Date          string    `json:"date"`
	HotspotsCount int       `json:"hotspots_count"`
	Hotspots      []Hotspot `json:"hotspots"`
}
