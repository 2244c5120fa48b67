package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dharmasatrya/flowerforecast/internal/bloom"
	"github.com/dharmasatrya/flowerforecast/internal/models"
)

var ErrNotFound = errors.New("location not found")

// Catalog is a read-only table of locations. It is safe for concurrent use.
type Catalog struct {
	locations []models.Location
	bySlug    map[string]int
	byID      map[int]int
	byAOI     map[string]int
}

func New(locations []models.Location) (*Catalog, error) {
	c := &Catalog{
		locations: make([]models.Location, len(locations)),
		bySlug:    make(map[string]int, len(locations)),
		byID:      make(map[int]int, len(locations)),
		byAOI:     make(map[string]int, len(locations)),
	}

	for i, loc := range locations {
		if err := validateLocation(loc); err != nil {
			return nil, err
		}
		if _, dup := c.bySlug[loc.Slug]; dup {
			return nil, fmt.Errorf("catalog: duplicate slug %q", loc.Slug)
		}
		if _, dup := c.byID[loc.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate id %d", loc.ID)
		}

		c.locations[i] = loc
		c.bySlug[loc.Slug] = i
		c.byID[loc.ID] = i
		if loc.AOIName != "" {
			c.byAOI[loc.AOIName] = i
		}
	}

	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultLocations)
	if err != nil {
		panic(err)
	}
	return c
}

func validateLocation(loc models.Location) error {
	if loc.Slug == "" {
		return fmt.Errorf("catalog: location %d has no slug", loc.ID)
	}
	if loc.Slug != strings.ToLower(loc.Slug) {
		return fmt.Errorf("catalog: slug %q must be lowercase", loc.Slug)
	}

	s := loc.BloomSeason
	if !validMonthDay(s.StartMonth, s.StartDay) || !validMonthDay(s.EndMonth, s.EndDay) {
		return fmt.Errorf("catalog: %s has an invalid bloom window %s-%s", loc.Slug, s.Start(), s.End())
	}
	for _, m := range s.PeakMonths {
		if m < 1 || m > 12 {
			return fmt.Errorf("catalog: %s has invalid peak month %d", loc.Slug, m)
		}
	}
	return nil
}

func validMonthDay(month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= 31
}

func (c *Catalog) Len() int {
	return len(c.locations)
}

// All returns the locations in catalog order. The slice is a copy.
func (c *Catalog) All() []models.Location {
	out := make([]models.Location, len(c.locations))
	copy(out, c.locations)
	return out
}

func (c *Catalog) BySlug(slug string) (models.Location, error) {
	i, ok := c.bySlug[slug]
	if !ok {
		return models.Location{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
	}
	return c.locations[i], nil
}

func (c *Catalog) ByID(id int) (models.Location, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Location{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return c.locations[i], nil
}

func (c *Catalog) ByAOI(aoi string) (models.Location, error) {
	i, ok := c.byAOI[aoi]
	if !ok {
		return models.Location{}, fmt.Errorf("%w: aoi %s", ErrNotFound, aoi)
	}
	return c.locations[i], nil
}

func (c *Catalog) ByFlower(species string) []models.Location {
	var out []models.Location
	for _, loc := range c.locations {
		if loc.Flower.Species == species {
			out = append(out, loc)
		}
	}
	return out
}

// ByMonth returns the locations whose bloom window touches month.
func (c *Catalog) ByMonth(month int) []models.Location {
	var out []models.Location
	for _, loc := range c.locations {
		if bloom.IsMonthInSeason(month, loc.BloomSeason) {
			out = append(out, loc)
		}
	}
	return out
}
