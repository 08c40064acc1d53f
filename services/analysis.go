package services

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"weather-analysis/models"
	"weather-analysis/utils"
)

var (
	// ErrNoData marks a station-year with no retained temperature values.
	ErrNoData = errors.New("no temperature data")
	// ErrWindowTooShort marks a change computation over fewer than two values.
	ErrWindowTooShort = errors.New("window needs at least two values")
	// ErrUnknownStation marks a name that did not resolve to a registry entry.
	ErrUnknownStation = errors.New("unknown station")
)

// Analyzer computes yearly means and average year-over-year temperature
// change from the loaded registry and series snapshots. It performs no I/O
// and never mutates the snapshots.
type Analyzer struct {
	logger   *utils.Logger
	registry map[string]*models.Station
	series   models.SeriesByStation
	resolved map[string]string
}

// NewAnalyzer creates an Analyzer over the loaded datasets. resolved is the
// name-to-identifier mapping produced by the Resolver.
func NewAnalyzer(logger *utils.Logger, registry map[string]*models.Station, series models.SeriesByStation, resolved map[string]string) *Analyzer {
	return &Analyzer{
		logger:   logger,
		registry: registry,
		series:   series,
		resolved: resolved,
	}
}

// MeanTemp returns the arithmetic mean of a temperature sequence.
func MeanTemp(temps []float64) (float64, error) {
	if len(temps) == 0 {
		return 0, ErrNoData
	}
	return stat.Mean(temps, nil), nil
}

// AverageChange returns the mean of the first differences between
// consecutive values. AverageChange([0,1,2,3,4]) is 1.0 and
// AverageChange([2,1.5,1,0.5,0]) is -0.5.
func AverageChange(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, ErrWindowTooShort
	}
	diffs := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		diffs = append(diffs, values[i]-values[i-1])
	}
	return stat.Mean(diffs, nil), nil
}

// TemperaturesForYear returns one station's retained monthly means for one
// year, looked up by display name.
func (a *Analyzer) TemperaturesForYear(name string, year int) ([]float64, error) {
	id, ok := a.resolved[name]
	if !ok {
		return nil, fmt.Errorf("analysis: %w: %q", ErrUnknownStation, name)
	}
	temps, ok := a.series[id][year]
	if !ok {
		return nil, fmt.Errorf("analysis: %w for %s (%s) in %d", ErrNoData, name, id, year)
	}
	return temps, nil
}

// YearlyMeans returns the mean temperature of every year in [start, end), in
// year order. A missing or empty year fails the whole window.
func (a *Analyzer) YearlyMeans(name string, start, end int) ([]float64, error) {
	means := make([]float64, 0, end-start)
	for year := start; year < end; year++ {
		temps, err := a.TemperaturesForYear(name, year)
		if err != nil {
			return nil, err
		}
		mean, err := MeanTemp(temps)
		if err != nil {
			return nil, fmt.Errorf("analysis: %w for %s in %d", ErrNoData, name, year)
		}
		means = append(means, mean)
	}
	return means, nil
}

// ChangeByStation computes the average annual temperature change of each
// named station over [start, end). Stations without complete data for the
// window are logged and left out of the result.
func (a *Analyzer) ChangeByStation(names []string, start, end int) map[string]float64 {
	changes := make(map[string]float64, len(names))
	for _, name := range names {
		means, err := a.YearlyMeans(name, start, end)
		if err != nil {
			a.logger.Warn("[analysis] Skipping %s for %d-%d: %v", name, start, end-1, err)
			continue
		}
		change, err := AverageChange(means)
		if err != nil {
			a.logger.Warn("[analysis] Skipping %s for %d-%d: %v", name, start, end-1, err)
			continue
		}
		changes[name] = change
	}
	return changes
}

// MapPoints joins the computed per-station changes with station coordinates,
// producing the renderer's input.
func (a *Analyzer) MapPoints(names []string, start, end int) map[string]models.MapPoint {
	changes := a.ChangeByStation(names, start, end)
	points := make(map[string]models.MapPoint, len(changes))
	for name, change := range changes {
		station := a.registry[a.resolved[name]]
		points[name] = models.MapPoint{Lat: station.Lat, Lon: station.Lon, Change: change}
	}
	return points
}
