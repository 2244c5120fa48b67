package models

import "fmt"

type Flower struct {
	Species        string `json:"species"`
	CommonName     string `json:"common_name"`
	ScientificName string `json:"scientific_name"`
	LocalName      string `json:"local_name"`
	Color          string `json:"color"`
}

type Geo struct {
	Country      string  `json:"country"`
	Region       string  `json:"region"`
	Province     string  `json:"province"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	ElevationMin int     `json:"elevation_min"`
	ElevationMax int     `json:"elevation_max"`
}

// BloomSeason is an annual month/day window. StartMonth > EndMonth means the
// season wraps across the new year.
type BloomSeason struct {
	StartMonth   int   `json:"start_month"`
	StartDay     int   `json:"start_day"`
	EndMonth     int   `json:"end_month"`
	EndDay       int   `json:"end_day"`
	PeakMonths   []int `json:"peak_months"`
	DurationDays int   `json:"duration_days"`
}

func (s BloomSeason) Start() string {
	return fmt.Sprintf("%d/%d", s.StartMonth, s.StartDay)
}

func (s BloomSeason) End() string {
	return fmt.Sprintf("%d/%d", s.EndMonth, s.EndDay)
}

func (s BloomSeason) Wraps() bool {
	return s.StartMonth > s.EndMonth
}

type Images struct {
	Hero    string   `json:"hero"`
	Gallery []string `json:"gallery"`
}

type Location struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug"`
	AOIName     string      `json:"aoi_name"`
	Flower      Flower      `json:"flower"`
	Geo         Geo         `json:"location"`
	BloomSeason BloomSeason `json:"bloom_season"`
	Images      Images      `json:"images"`
	Description string      `json:"description"`
	Tips        []string    `json:"tips"`
}

type SeasonSummary struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	PeakMonths   []int  `json:"peak_months"`
	DurationDays int    `json:"duration_days"`
}

// LocationSummary is the listing view of a Location.
type LocationSummary struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Flower      Flower        `json:"flower"`
	Geo         Geo           `json:"location"`
	BloomSeason SeasonSummary `json:"bloom_season"`
	Images      Images        `json:"images"`
	Description string        `json:"description"`
}

func (l Location) Summary() LocationSummary {
	return LocationSummary{
		ID:     l.ID,
		Name:   l.Name,
		Slug:   l.Slug,
		Flower: l.Flower,
		Geo:    l.Geo,
		BloomSeason: SeasonSummary{
			Start:        l.BloomSeason.Start(),
			End:          l.BloomSeason.End(),
			PeakMonths:   l.BloomSeason.PeakMonths,
			DurationDays: l.BloomSeason.DurationDays,
		},
		Images:      l.Images,
		Description: l.Description,
	}
}

type LocationRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (l Location) Ref() LocationRef {
	return LocationRef{ID: l.ID, Name: l.Name, Slug: l.Slug}
}
