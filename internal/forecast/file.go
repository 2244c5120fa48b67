package forecast

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dharmasatrya/flowerforecast/internal/dates"
	"github.com/dharmasatrya/flowerforecast/internal/models"
)

const (
	defaultFileProbability = 0.75
	fileModel              = "lstm"
)

// FileSource reads the CSV files written by the offline forecasting
// pipeline:
//
//	<dir>/predictions/<AOI>/<AOI>_predictions_<YYYY-MM-DD>.csv
//	<dir>/hotspots/<AOI>/<AOI>_hotspots.csv
type FileSource struct {
	dir string
	now func() time.Time
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir, now: time.Now}
}

func (s *FileSource) Name() string {
	return "files"
}

func (s *FileSource) PredictionsPath(aoi string, date time.Time) string {
	return filepath.Join(s.dir, "predictions", aoi, fmt.Sprintf("%s_predictions_%s.csv", aoi, dates.Format(date)))
}

func (s *FileSource) HotspotsPath(aoi string) string {
	return filepath.Join(s.dir, "hotspots", aoi, aoi+"_hotspots.csv")
}

func (s *FileSource) Forecast(ctx context.Context, loc models.Location, date time.Time) (models.ForecastData, error) {
	if err := ctx.Err(); err != nil {
		return models.ForecastData{}, err
	}

	rows, err := readCSV(s.PredictionsPath(loc.AOIName, date))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.ForecastData{}, ErrNoData
		}
		return models.ForecastData{}, NewSourceError(s.Name(), err)
	}

	probability := defaultFileProbability
	if mean, ok := columnMean(rows, "probability"); ok {
		probability = mean
	}

	computedAt := s.now().UTC()
	return models.ForecastData{
		Probability: probability,
		Confidence:  models.ConfidenceHigh,
		ModelUsed:   fileModel,
		ComputedAt:  &computedAt,
	}, nil
}

// Hotspots returns an empty list when the pipeline has not produced a file.
func (s *FileSource) Hotspots(ctx context.Context, loc models.Location, date time.Time) ([]models.Hotspot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := readCSV(s.HotspotsPath(loc.AOIName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Hotspot{}, nil
		}
		return nil, NewSourceError(s.Name(), err)
	}

	return parseHotspots(rows), nil
}

type csvRows struct {
	header map[string]int
	data   [][]string
}

func readCSV(path string) (*csvRows, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	head, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &csvRows{header: map[string]int{}}, nil
		}
		return nil, err
	}

	rows := &csvRows{header: make(map[string]int, len(head))}
	for i, name := range head {
		rows.header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rows.data = append(rows.data, rec)
	}
	return rows, nil
}

func (r *csvRows) column(names ...string) int {
	for _, n := range names {
		if i, ok := r.header[n]; ok {
			return i
		}
	}
	return -1
}

func (r *csvRows) float(rec []string, col int) (float64, bool) {
	if col < 0 || col >= len(rec) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func columnMean(rows *csvRows, name string) (float64, bool) {
	col := rows.column(name)
	if col < 0 {
		return 0, false
	}

	var sum float64
	var n int
	for _, rec := range rows.data {
		if v, ok := rows.float(rec, col); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

func parseHotspots(rows *csvRows) []models.Hotspot {
	latCol := rows.column("lat", "latitude")
	lonCol := rows.column("lon", "lng", "longitude")
	probCol := rows.column("probability", "bloom_probability")
	zCol := rows.column("gi_z_score", "z_score")
	clusterCol := rows.column("cluster_id", "cluster")

	hotspots := make([]models.Hotspot, 0, len(rows.data))
	for _, rec := range rows.data {
		lat, okLat := rows.float(rec, latCol)
		lon, okLon := rows.float(rec, lonCol)
		if !okLat || !okLon {
			continue
		}

		h := models.Hotspot{Latitude: lat, Longitude: lon}
		h.Probability, _ = rows.float(rec, probCol)
		h.GiZScore, _ = rows.float(rec, zCol)
		if c, ok := rows.float(rec, clusterCol); ok {
			h.ClusterID = int(c)
		}
		hotspots = append(hotspots, h)
	}
	return hotspots
}
